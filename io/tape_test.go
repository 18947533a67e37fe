package io

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTape_Read(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	tape := &Tape{
		Input:  strings.NewReader("  12\n-7\t+3 x9\n"),
		Output: output,
		Prompt: "? ",
	}

	for _, expect := range []int64{12, -7, 3} {
		value, err := tape.Read()
		assert.NoError(err)
		assert.Equal(expect, value)
	}

	_, err := tape.Read()
	assert.ErrorIs(err, ErrNotNumber)

	_, err = tape.Read()
	assert.ErrorIs(err, ErrChannelEmpty)

	assert.Equal("? ? ? ? ? ", output.String())
}

func TestTape_ReadNoInput(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{}
	_, err := tape.Read()
	assert.ErrorIs(err, ErrChannelEmpty)
}

func TestTape_ReadNewInput(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: strings.NewReader("1")}
	value, err := tape.Read()
	assert.NoError(err)
	assert.Equal(int64(1), value)

	tape.SetInput(strings.NewReader("2"))
	value, err = tape.Read()
	assert.NoError(err)
	assert.Equal(int64(2), value)
}

// chunkReader is not comparable, so a Tape must never compare readers.
type chunkReader struct {
	chunks []string
	r      *strings.Reader
}

func (cr chunkReader) Read(p []byte) (int, error) {
	return cr.r.Read(p)
}

func TestTape_ReadUncomparableInput(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{}
	tape.SetInput(chunkReader{chunks: []string{"a"}, r: strings.NewReader("3 4")})

	for _, expect := range []int64{3, 4} {
		assert.NotPanics(func() {
			value, err := tape.Read()
			assert.NoError(err)
			assert.Equal(expect, value)
		})
	}

	tape.SetInput(chunkReader{r: strings.NewReader("5")})
	value, err := tape.Read()
	assert.NoError(err)
	assert.Equal(int64(5), value)
}

func TestTape_Write(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{}
	assert.NoError(tape.Write(1))

	output := &bytes.Buffer{}
	tape.Output = output
	assert.NoError(tape.Write(42))
	assert.NoError(tape.Write(-999999999))
	assert.NoError(tape.Write(0))

	assert.Equal("42\n-999999999\n0\n", output.String())
}

func TestTape_Rewind(t *testing.T) {
	assert := assert.New(t)

	input := strings.NewReader("5 6")
	tape := &Tape{Input: input}

	value, err := tape.Read()
	assert.NoError(err)
	assert.Equal(int64(5), value)

	_, err = input.Seek(0, 0)
	assert.NoError(err)
	tape.Rewind()

	value, err = tape.Read()
	assert.NoError(err)
	assert.Equal(int64(5), value)
}
