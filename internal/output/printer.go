// Package output provides the console output layer for the morph CLI.
// A Printer renders semantically tagged text either styled (lipgloss) or
// plain, so command code never touches styling directly.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// SemanticType tags output with its meaning so styling stays consistent
// across commands.
type SemanticType string

const (
	// SemanticPlain is untagged text.
	SemanticPlain SemanticType = "plain"
	// SemanticInfo is informational text.
	SemanticInfo SemanticType = "info"
	// SemanticSuccess marks a completed operation.
	SemanticSuccess SemanticType = "success"
	// SemanticWarning marks a recoverable problem.
	SemanticWarning SemanticType = "warning"
	// SemanticError marks a failure.
	SemanticError SemanticType = "error"
	// SemanticLabel is a field name in key/value listings.
	SemanticLabel SemanticType = "label"
	// SemanticValue is a field value in key/value listings.
	SemanticValue SemanticType = "value"
	// SemanticHeading is a section heading.
	SemanticHeading SemanticType = "heading"
)

// Printer writes semantically tagged text to a writer.
type Printer struct {
	writer     io.Writer
	styled     bool
	silent     bool
	labelWidth int

	mu sync.Mutex
}

// NewPrinter creates a Printer writing to os.Stdout. Styling is on unless
// an option turns it off.
func NewPrinter(options ...Option) *Printer {
	p := &Printer{
		writer:     os.Stdout,
		styled:     true,
		labelWidth: 14,
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// Print outputs text without styling or newline.
func (p *Printer) Print(text string) {
	p.output(SemanticPlain, text, false)
}

// Printf outputs formatted text without styling.
func (p *Printer) Printf(format string, args ...interface{}) {
	p.output(SemanticPlain, fmt.Sprintf(format, args...), false)
}

// Println outputs text plus a newline.
func (p *Printer) Println(text string) {
	p.output(SemanticPlain, text, true)
}

// Info outputs an informational line.
func (p *Printer) Info(text string) {
	p.output(SemanticInfo, text, true)
}

// Success outputs a success line.
func (p *Printer) Success(text string) {
	p.output(SemanticSuccess, text, true)
}

// Warning outputs a warning line.
func (p *Printer) Warning(text string) {
	p.output(SemanticWarning, text, true)
}

// Error outputs an error line.
func (p *Printer) Error(text string) {
	p.output(SemanticError, text, true)
}

// Heading outputs a section heading.
func (p *Printer) Heading(text string) {
	p.output(SemanticHeading, text, true)
}

// Field outputs one aligned "label  value" line for summary listings.
func (p *Printer) Field(label, value string) {
	if p.silent {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	padded := label
	if len(padded) < p.labelWidth {
		padded += strings.Repeat(" ", p.labelWidth-len(padded))
	}
	if p.styled {
		padded = styleFor(SemanticLabel).Render(padded)
		value = styleFor(SemanticValue).Render(value)
	}
	_, _ = fmt.Fprintf(p.writer, "%s %s\n", padded, value)
}

func (p *Printer) output(semantic SemanticType, text string, addNewline bool) {
	if p.silent {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.styled {
		text = styleFor(semantic).Render(text)
	}
	if addNewline && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	_, _ = fmt.Fprint(p.writer, text)
}

// SetWriter redirects output, typically to a buffer in tests.
func (p *Printer) SetWriter(writer io.Writer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.writer = writer
}
