package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelimiterFlags(t *testing.T) {
	var d Delimiter
	assert.False(t, d.isFormat())
	assert.False(t, d.isRaw())
	assert.False(t, d.isTriple())
	assert.False(t, d.isBytes())

	d.setFormat()
	d.setTriple()
	assert.True(t, d.isFormat())
	assert.True(t, d.isTriple())
	assert.False(t, d.isRaw())
	assert.False(t, d.isBytes())
}

func TestDelimiterEndCharacter(t *testing.T) {
	var d Delimiter
	assert.Equal(t, rune(0), d.endCharacter())

	d.setEndCharacter('"')
	assert.Equal(t, '"', d.endCharacter())

	var single Delimiter
	single.setEndCharacter('\'')
	assert.Equal(t, '\'', single.endCharacter())

	var back Delimiter
	back.setEndCharacter('`')
	assert.Equal(t, '`', back.endCharacter())
}

func TestDelimiterSetEndCharacterPanics(t *testing.T) {
	var d Delimiter
	require.Panics(t, func() { d.setEndCharacter('x') })
}

func TestDelimiterFitsInOneByte(t *testing.T) {
	// Every delimiter must serialize to exactly one byte.
	var d Delimiter
	d.setFormat()
	d.setRaw()
	d.setTriple()
	d.setBytes()
	d.setEndCharacter('"')
	packed := delimiterFlag(byte(d.flags))
	assert.Equal(t, d.flags, packed)
}
