package output

import "io"

// Option configures a Printer.
type Option func(*Printer)

// WithWriter directs output to the given writer instead of os.Stdout.
func WithWriter(writer io.Writer) Option {
	return func(p *Printer) {
		if writer != nil {
			p.writer = writer
		}
	}
}

// PlainText disables all styling. Used for piped output and in tests.
func PlainText() Option {
	return func(p *Printer) {
		p.styled = false
	}
}

// Silent suppresses all output from the printer.
func Silent() Option {
	return func(p *Printer) {
		p.silent = true
	}
}

// WithLabelWidth sets the label column width used by Field.
func WithLabelWidth(width int) Option {
	return func(p *Printer) {
		if width > 0 {
			p.labelWidth = width
		}
	}
}
