package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(PlainText(), WithWriter(&buf))

	p.Print("a")
	p.Printf(" %d", 7)
	p.Println(" b")
	assert.Equal(t, "a 7 b\n", buf.String())
}

func TestSemanticLinesEndWithNewline(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(PlainText(), WithWriter(&buf))

	p.Info("i")
	p.Success("s")
	p.Warning("w")
	p.Error("e")
	p.Heading("h")
	assert.Equal(t, "i\ns\nw\ne\nh\n", buf.String())
}

func TestFieldAlignment(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(PlainText(), WithWriter(&buf), WithLabelWidth(8))

	p.Field("Format", "asc-1")
	p.Field("LongerLabel", "x")
	assert.Equal(t, "Format   asc-1\nLongerLabel x\n", buf.String())
}

func TestSilentPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(Silent(), WithWriter(&buf))

	p.Println("nope")
	p.Field("k", "v")
	assert.Empty(t, buf.String())
}

func TestSetWriterRedirects(t *testing.T) {
	var first, second bytes.Buffer
	p := NewPrinter(PlainText(), WithWriter(&first))
	p.Println("one")
	p.SetWriter(&second)
	p.Println("two")
	assert.Equal(t, "one\n", first.String())
	assert.Equal(t, "two\n", second.String())
}
