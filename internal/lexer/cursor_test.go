package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neuromorph/pkg/morphtypes"
)

func TestCursorSkipsTrivia(t *testing.T) {
	c := NewCursor("test.asc", "  ; header comment\n  (3)")
	tok, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, KindLParen, tok.Kind)
	assert.Equal(t, 2, tok.Line)

	next, ok := c.Peek()
	require.True(t, ok)
	assert.Equal(t, KindNumber, next.Kind)
}

func TestCursorAdvanceAndDone(t *testing.T) {
	c := NewCursor("test.asc", "( )")
	require.False(t, c.Done())
	require.NoError(t, c.Advance())
	tok, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, KindRParen, tok.Kind)

	require.NoError(t, c.Advance())
	assert.True(t, c.Done())

	err := c.Advance()
	require.Error(t, err)
	assert.True(t, morphtypes.IsRawData(err))
	assert.Contains(t, err.Error(), "end of input")
}

func TestCursorExpect(t *testing.T) {
	c := NewCursor("test.asc", "(")
	require.NoError(t, c.Expect(KindLParen, "a block"))

	err := c.Expect(KindRParen, "a block")
	require.Error(t, err)
	assert.True(t, morphtypes.IsRawData(err))
	assert.Contains(t, err.Error(), "a block")
	assert.Contains(t, err.Error(), "test.asc")
}

func TestCursorConsumeReturnsNewCurrent(t *testing.T) {
	c := NewCursor("test.asc", "(42)")
	tok, err := c.Consume(KindLParen, "a point record")
	require.NoError(t, err)
	assert.Equal(t, KindNumber, tok.Kind)
	assert.Equal(t, "42", tok.Lexeme)

	_, err = c.Consume(KindLParen, "a point record")
	require.Error(t, err)
}

func TestCursorConsumeUntil(t *testing.T) {
	c := NewCursor("test.asc", "1 2 | 3")
	require.NoError(t, c.ConsumeUntil(KindPipe))
	tok, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, "3", tok.Lexeme)
}

func TestCursorConsumeBalancedParens(t *testing.T) {
	t.Run("stops after matching close", func(t *testing.T) {
		// opening '(' already consumed by convention
		c := NewCursor("test.asc", "Color Red (nested (deep)) ) 42")
		require.NoError(t, c.ConsumeBalancedParens())
		tok, ok := c.Current()
		require.True(t, ok)
		assert.Equal(t, "42", tok.Lexeme)
	})

	t.Run("spine delimiters count toward depth", func(t *testing.T) {
		c := NewCursor("test.asc", "a <(1)> ) 42")
		require.NoError(t, c.ConsumeBalancedParens())
		tok, ok := c.Current()
		require.True(t, ok)
		assert.Equal(t, "42", tok.Lexeme)
	})

	t.Run("end of input is diagnosed with the open depth", func(t *testing.T) {
		c := NewCursor("test.asc", "3 0 0 1")
		err := c.ConsumeBalancedParens()
		require.Error(t, err)
		assert.True(t, morphtypes.IsRawData(err))
		assert.Contains(t, err.Error(), "unbalanced parentheses")
		assert.Contains(t, err.Error(), "depth 1")
	})

	t.Run("block closed by spine delimiter fails", func(t *testing.T) {
		c := NewCursor("test.asc", "a )>")
		err := c.ConsumeBalancedParens()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unbalanced parentheses")
	})
}

func TestCursorLineAfterExhaustion(t *testing.T) {
	c := NewCursor("test.asc", "(\n(\n42")
	for !c.Done() {
		require.NoError(t, c.Advance())
	}
	assert.Equal(t, 3, c.Line())
}
