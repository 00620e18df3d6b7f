package paginator

import (
	"bikeshare/dataset"
	explorerErrors "bikeshare/domain/errors"
	"bikeshare/prompt"
	"bikeshare/ui"
	"fmt"
	log "github.com/sirupsen/logrus"
)

const (
	questionTemplate = "Do you want to see %d lines of raw data? Enter yes or no.\n"
	invalidMessage   = "Invalid input. Please enter 'yes' or 'no'."
	exhaustedMessage = "End of the data reached. Exiting raw data..."
	doneMessage      = "Exiting raw data..."
)

// State of the raw data paginator
type State int

const (
	AwaitingChoice State = iota
	Showing
	Exhausted
	Done
)

func (s State) String() string {
	switch s {
	case AwaitingChoice:
		return "AwaitingChoice"
	case Showing:
		return "Showing"
	case Exhausted:
		return "Exhausted"
	case Done:
		return "Done"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// PaginatorConfig config of the raw data paginator
// + PageSize: amount of rows shown per page
// + SeparatorWidth: width of the line printed when the paginator finishes
type PaginatorConfig struct {
	PageSize       int
	SeparatorWidth int
}

// Page is a slice of rows of the dataset, ready to be rendered
type Page struct {
	Header []string
	Rows   [][]string
}

// Paginator walks through the rows of a dataset a page at a time. It never modifies the dataset.
type Paginator struct {
	config PaginatorConfig
	ds     *dataset.Dataset
	index  int
	state  State
}

// NewPaginator returns a paginator positioned at the first row. A paginator over an empty dataset starts exhausted.
func NewPaginator(ds *dataset.Dataset, config PaginatorConfig) *Paginator {
	state := AwaitingChoice
	if ds.IsEmpty() {
		state = Exhausted
	}

	return &Paginator{
		config: config,
		ds:     ds,
		state:  state,
	}
}

func (p *Paginator) GetState() State {
	return p.state
}

// GetIndex returns the position of the first row of the next page
func (p *Paginator) GetIndex() int {
	return p.index
}

// IsFinished returns true once the paginator reached Exhausted or Done
func (p *Paginator) IsFinished() bool {
	return p.state == Exhausted || p.state == Done
}

// Step applies a normalized answer to the paginator. A yes returns the next page, a no finishes the
// paginator and any other answer fails with ErrInvalidInput leaving the state untouched.
// Run only passes answers already accepted by Prompter.Ask.
// Once finished, Step does nothing.
func (p *Paginator) Step(answer string) (Page, error) {
	if p.IsFinished() {
		return Page{}, nil
	}

	if !prompt.IsYesOrNo(answer) {
		return Page{}, fmt.Errorf("%q is not yes or no: %w", answer, explorerErrors.ErrInvalidInput)
	}

	if !prompt.IsYes(answer) {
		p.state = Done
		return Page{}, nil
	}

	p.state = Showing
	end := p.index + p.config.PageSize
	header, rows := p.ds.Rows(p.index, end)
	p.index = end

	p.state = AwaitingChoice
	if p.index >= p.ds.Len() {
		p.state = Exhausted
	}

	log.Debug(getLogMessage("Step", fmt.Sprintf("showed %d rows, next state %s", len(rows), p.state), nil))
	return Page{Header: header, Rows: rows}, nil
}

// Run asks the user whether to see the next page until the dataset is exhausted or the user says no
func (p *Paginator) Run(prompter *prompt.Prompter) error {
	w := prompter.Writer()
	question := fmt.Sprintf(questionTemplate, p.config.PageSize)

	for !p.IsFinished() {
		answer, err := prompter.Ask(question, prompt.IsYesOrNo, invalidMessage)
		if err != nil {
			return err
		}

		page, err := p.Step(answer)
		if err != nil {
			return err
		}

		if len(page.Rows) > 0 {
			fmt.Fprintln(w, ui.RenderTable(page.Header, page.Rows))
		}
	}

	if p.state == Exhausted {
		fmt.Fprintln(w, exhaustedMessage)
	} else {
		fmt.Fprintln(w, doneMessage)
	}
	fmt.Fprintln(w, ui.Separator(p.config.SeparatorWidth))
	return nil
}

func getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: paginator][method: %s][status: ERROR] %s: %s", method, message, err.Error())
	}
	return fmt.Sprintf("[component: paginator][method: %s][status: OK] %s", method, message)
}
