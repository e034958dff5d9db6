package dialogue

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// errInputClosed is returned by console reads once the input has ended.
var errInputClosed = errors.New("input closed")

// console reads one line per prompt and writes styled bot output.
type console struct {
	in  *bufio.Scanner
	out io.Writer
}

func newConsole(in io.Reader, out io.Writer) *console {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 4096), 1024*1024)
	return &console{in: sc, out: out}
}

// say writes text followed by a newline.
func (c *console) say(style lipgloss.Style, text string) {
	fmt.Fprintln(c.out, style.Render(text))
}

// blank writes an empty line.
func (c *console) blank() {
	fmt.Fprintln(c.out)
}

// ask writes the prompt and reads the answer.
func (c *console) ask(style lipgloss.Style, prompt string) (string, error) {
	c.say(style, prompt)
	return c.read()
}

// read returns the next line with surrounding whitespace removed.
func (c *console) read() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(c.in.Text()), nil
}
