package app

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// lineConsole adapts a reader/writer pair to the domain.Console contract.
// Lines are trimmed of their trailing newline on the way out and echoed
// with a peer tag on the way in.
type lineConsole struct {
	r *bufio.Reader
	w io.Writer
}

func newConsole(in io.Reader, out io.Writer) *lineConsole {
	return &lineConsole{r: bufio.NewReader(in), w: out}
}

func (c *lineConsole) ReadLine() (string, error) {
	line, err := c.r.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *lineConsole) WriteLine(s string) error {
	_, err := fmt.Fprintf(c.w, "[peer] %s\n", s)
	return err
}
