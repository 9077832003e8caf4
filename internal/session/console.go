// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrInterrupted is returned by Console reads when an interrupt signal
// arrives while waiting for input.
var ErrInterrupted = errors.New("input interrupted")

const maxLineSize = 1 << 20

// Console reads user input line by line. Lines are fed through a channel by a
// reader goroutine so that a read can also observe interrupts.
type Console struct {
	lines      <-chan string
	interrupts <-chan os.Signal
	out        io.Writer
}

// NewConsole starts reading lines from in. interrupts may be nil.
func NewConsole(in io.Reader, out io.Writer, interrupts <-chan os.Signal) *Console {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
		for scanner.Scan() {
			lines <- strings.TrimSuffix(scanner.Text(), "\r")
		}
	}()
	return &Console{lines: lines, interrupts: interrupts, out: out}
}

// ReadLine waits for the next line. It returns io.EOF when input is exhausted
// and ErrInterrupted when an interrupt arrives first.
func (c *Console) ReadLine() (string, error) {
	select {
	case line, ok := <-c.lines:
		if !ok {
			return "", io.EOF
		}
		return line, nil
	case <-c.interrupts:
		return "", ErrInterrupted
	}
}

// Prompt prints prompt and returns the next line with surrounding whitespace
// removed.
func (c *Console) Prompt(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	line, err := c.ReadLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Confirm asks a y/n question. Only "y" (any case) confirms.
func (c *Console) Confirm(prompt string) (bool, error) {
	answer, err := c.Prompt(prompt)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "y"), nil
}

// Pause waits for Enter.
func (c *Console) Pause(prompt string) error {
	_, err := c.Prompt(prompt)
	return err
}
