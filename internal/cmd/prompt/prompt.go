// Package prompt reads line-oriented answers from an interactive user.
//
// Lines are read on a background goroutine so that a question waiting
// for input can be abandoned when the context is canceled, for example
// by Ctrl-C.
package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

type line struct {
	text string
	err  error
}

// Prompter writes questions to out and reads answers from in.
type Prompter struct {
	out      io.Writer
	lines    <-chan line
	stop     chan struct{}
	stopOnce sync.Once
	finished chan struct{}
}

// New starts reading lines from in. Call Close when no more questions
// will be asked.
func New(in io.Reader, out io.Writer) *Prompter {
	lines := make(chan line)
	stop := make(chan struct{})
	finished := make(chan struct{})

	go func() {
		defer close(finished)
		defer close(lines)

		send := func(l line) bool {
			select {
			case lines <- l:
				return true
			case <-stop:
				return false
			}
		}

		reader := bufio.NewReader(in)
		for {
			text, err := reader.ReadString('\n')
			if text != "" && !send(line{text: strings.TrimRight(text, "\r\n")}) {
				return
			}
			if err != nil {
				send(line{err: err})
				return
			}
		}
	}()

	return &Prompter{out: out, lines: lines, stop: stop, finished: finished}
}

// Close stops the background reader. A read already blocked on in
// returns only when in does.
func (p *Prompter) Close() {
	p.stopOnce.Do(func() { close(p.stop) })
}

// Ask prints question and waits for one line of input. It returns io.EOF
// once input is exhausted and the context error if ctx ends first.
func (p *Prompter) Ask(ctx context.Context, question string) (string, error) {
	if question != "" {
		if _, err := fmt.Fprint(p.out, question); err != nil {
			return "", err
		}
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-p.lines:
		if !ok {
			return "", io.EOF
		}
		if l.err != nil {
			return "", l.err
		}
		return l.text, nil
	}
}

// AskTrimmed is Ask with surrounding whitespace removed.
func (p *Prompter) AskTrimmed(ctx context.Context, question string) (string, error) {
	answer, err := p.Ask(ctx, question)
	return strings.TrimSpace(answer), err
}

// AskYesNo returns true for "y" or "yes" in any case. Anything else is no.
func (p *Prompter) AskYesNo(ctx context.Context, question string) (bool, error) {
	answer, err := p.AskTrimmed(ctx, question)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// AskInt reads a whole number for field.
func (p *Prompter) AskInt(ctx context.Context, question, field string) (int, error) {
	answer, err := p.AskTrimmed(ctx, question)
	if err != nil {
		return 0, err
	}
	return ParseInt(field, answer)
}

// AskFloat reads a number for field.
func (p *Prompter) AskFloat(ctx context.Context, question, field string) (float64, error) {
	answer, err := p.AskTrimmed(ctx, question)
	if err != nil {
		return 0, err
	}
	return ParseFloat(field, answer)
}
