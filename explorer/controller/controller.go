package controller

import (
	"bikeshare/dataset"
	"bikeshare/domain/entities/selection"
	"bikeshare/explorer/config"
	"bikeshare/paginator"
	"bikeshare/prompt"
	"bikeshare/reporters/factory"
	"bikeshare/ui"
	"bikeshare/utils"
	"fmt"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"io"
)

const restartQuestion = "\nWould you like to restart? Enter yes or no.\n"

// ClosingMessage printed when the explorer stops
const ClosingMessage = "Closing program..."

// State of the interactive loop
type State int

const (
	PromptingFilters State = iota
	Loading
	Filtering
	Reporting
	Paginating
	AskRestart
	Finished
)

func (s State) String() string {
	switch s {
	case PromptingFilters:
		return "PromptingFilters"
	case Loading:
		return "Loading"
	case Filtering:
		return "Filtering"
	case Reporting:
		return "Reporting"
	case Paginating:
		return "Paginating"
	case AskRestart:
		return "AskRestart"
	case Finished:
		return "Finished"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Controller runs the explorer loop: filters, load, filter, reports, raw data and restart.
// Datasets belong to a single iteration and are dropped before the next one starts.
type Controller struct {
	config    *config.ExplorerConfig
	prompter  *prompt.Prompter
	writer    io.Writer
	loader    *dataset.Loader
	reporters []factory.IReporter
	state     State
	runID     string
	selection selection.Selection
	loaded    *dataset.Dataset
	working   *dataset.Dataset
}

func NewController(explorerConfig *config.ExplorerConfig, reader io.Reader, writer io.Writer) *Controller {
	loader := dataset.NewLoader(
		explorerConfig.DataDir,
		explorerConfig.Cities,
		explorerConfig.TimestampLayouts,
		explorerConfig.StationSeparator,
	)

	return &Controller{
		config:    explorerConfig,
		prompter:  prompt.NewPrompter(reader, writer),
		writer:    writer,
		loader:    loader,
		reporters: factory.NewReporters(explorerConfig.SeparatorWidth),
		state:     PromptingFilters,
	}
}

func (c *Controller) GetState() State {
	return c.state
}

// Run loops until the user does not want to restart. Fails with ErrInputExhausted when the input is closed.
func (c *Controller) Run() error {
	for c.state != Finished {
		if err := c.step(); err != nil {
			log.Info(c.getLogMessage("Run", fmt.Sprintf("stopped on state %s", c.state), err))
			return err
		}
	}

	log.Info(c.getLogMessage("Run", "finished", nil))
	return nil
}

func (c *Controller) step() error {
	switch c.state {
	case PromptingFilters:
		return c.promptFilters()
	case Loading:
		c.load()
	case Filtering:
		c.filter()
	case Reporting:
		c.report()
	case Paginating:
		return c.paginate()
	case AskRestart:
		return c.askRestart()
	}
	return nil
}

func (c *Controller) promptFilters() error {
	c.runID = uuid.New().String()

	sel, err := c.prompter.GetFilters(c.config.GetCityNames(), c.config.SeparatorWidth)
	if err != nil {
		return err
	}

	c.selection = sel
	log.Debug(c.getLogMessage("promptFilters", fmt.Sprintf("selected %s", sel.String()), nil))
	c.state = Loading
	return nil
}

func (c *Controller) load() {
	loaded, err := c.loader.Load(c.selection.City)
	if err != nil {
		log.Error(c.getLogMessage("load", "error loading dataset", err))
		ui.PrintError(c.writer, fmt.Sprintf("Could not load the %s data: %s", c.selection.City, err.Error()))
		c.state = AskRestart
		return
	}

	c.loaded = loaded
	c.state = Filtering
}

func (c *Controller) filter() {
	c.working = dataset.Filter(c.loaded, c.selection)
	c.loaded = nil

	if c.working.IsEmpty() {
		ui.PrintNotice(c.writer, fmt.Sprintf("No %s trips match the selected filters (%s).", utils.TitleCase(c.selection.City), dataset.FilterSummary(c.selection)))
	}
	log.Debug(c.getLogMessage("filter", fmt.Sprintf("%d trips left with %s", c.working.Len(), dataset.FilterSummary(c.selection)), nil))
	c.state = Reporting
}

func (c *Controller) report() {
	for _, reporter := range c.reporters {
		if err := reporter.Report(c.writer, c.working); err != nil {
			log.Error(c.getLogMessage("report", fmt.Sprintf("error running %s", reporter.GetType()), err))
			ui.PrintError(c.writer, fmt.Sprintf("%s failed: %s", reporter.Title(), err.Error()))
		}
	}
	c.state = Paginating
}

func (c *Controller) paginate() error {
	rawData := paginator.NewPaginator(c.working, paginator.PaginatorConfig{
		PageSize:       c.config.PageSize,
		SeparatorWidth: c.config.SeparatorWidth,
	})

	if err := rawData.Run(c.prompter); err != nil {
		return err
	}
	c.state = AskRestart
	return nil
}

func (c *Controller) askRestart() error {
	c.loaded = nil
	c.working = nil

	answer, err := c.prompter.ReadAnswer(restartQuestion)
	if err != nil {
		return err
	}

	if prompt.IsYes(answer) {
		c.state = PromptingFilters
		return nil
	}

	fmt.Fprintln(c.writer, ClosingMessage)
	c.state = Finished
	return nil
}

func (c *Controller) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: controller][run: %s][method: %s][status: ERROR] %s: %s", c.runID, method, message, err.Error())
	}
	return fmt.Sprintf("[component: controller][run: %s][method: %s][status: OK] %s", c.runID, method, message)
}
