package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter reads interactive input line by line. It is injected into the
// command handlers so tests can script a conversation.
type Prompter struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewPrompter creates a prompter reading from in and echoing prompts to out
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// ReadLine prints the prompt on its own line and returns the next input line
// without the trailing newline. A non-empty prompt is optional; pass "" to
// read without prompting.
func (p *Prompter) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprintln(p.out, prompt)
	}

	line, err := p.reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadInt prints the prompt and reads one line as an integer. A blank or
// non-numeric line returns ok=false with no error; the caller decides whether
// that means "leave unchanged" or "invalid input". The error is only for
// input stream failures.
func (p *Prompter) ReadInt(prompt string) (int64, bool, error) {
	line, err := p.ReadLine(prompt)
	if err != nil {
		return 0, false, err
	}

	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return 0, false, nil
	}

	value, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return 0, false, nil
	}
	return value, true, nil
}
