package prompt

import (
	explorerErrors "bikeshare/domain/errors"
	"bikeshare/utils"
	"bufio"
	"errors"
	"fmt"
	log "github.com/sirupsen/logrus"
	"io"
)

const (
	yes = "yes"
	no  = "no"
)

// Prompter asks questions on writer and reads the answers, one per line, from reader
type Prompter struct {
	reader *bufio.Reader
	writer io.Writer
}

func NewPrompter(reader io.Reader, writer io.Writer) *Prompter {
	return &Prompter{
		reader: bufio.NewReader(reader),
		writer: writer,
	}
}

// Writer returns where the questions are written
func (p *Prompter) Writer() io.Writer {
	return p.writer
}

// Ask writes question and reads an answer until isValid accepts it, printing invalidMessage after each
// rejected one. Answers are trimmed and lowercased before validation.
// Fails with ErrInputExhausted when there is nothing left to read.
func (p *Prompter) Ask(question string, isValid func(answer string) bool, invalidMessage string) (string, error) {
	for {
		answer, err := p.ReadAnswer(question)
		if err != nil {
			return "", err
		}

		if isValid(answer) {
			return answer, nil
		}

		log.Debugf("[component: prompt][status: OK] rejected answer %q: %s", answer, explorerErrors.ErrInvalidInput)
		fmt.Fprintln(p.writer, invalidMessage)
	}
}

// AskYesNo asks question until the answer is yes or no
func (p *Prompter) AskYesNo(question string, invalidMessage string) (bool, error) {
	answer, err := p.Ask(question, IsYesOrNo, invalidMessage)
	if err != nil {
		return false, err
	}
	return answer == yes, nil
}

// ReadAnswer writes question and returns the next normalized answer, whatever it is.
// A last line without line break is still returned.
func (p *Prompter) ReadAnswer(question string) (string, error) {
	fmt.Fprint(p.writer, question)

	line, err := p.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("error reading answer: %s: %w", err.Error(), explorerErrors.ErrInputExhausted)
		}
		if line == "" {
			return "", fmt.Errorf("no answer to %q: %w", question, explorerErrors.ErrInputExhausted)
		}
	}

	return utils.NormalizeInput(line), nil
}

// IsYesOrNo accepts the normalized answers yes and no
func IsYesOrNo(answer string) bool {
	return answer == yes || answer == no
}

// IsYes returns true for the normalized answer yes
func IsYes(answer string) bool {
	return answer == yes
}
