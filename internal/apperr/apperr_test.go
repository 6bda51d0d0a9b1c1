package apperr

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errTemplate = &Error{
	Message: "task %d does not exist",
}

func TestFmt(t *testing.T) {
	err := errTemplate.Fmt(3)

	assert.Equal(t, "task 3 does not exist", err.Error())
	assert.ErrorIs(t, err, errTemplate)
}

func TestWrap(t *testing.T) {
	plain := &Error{Message: "reading storage failed"}

	err := plain.Wrap(io.ErrUnexpectedEOF)

	assert.Equal(t, "reading storage failed: unexpected EOF", err.Error())
	assert.ErrorIs(t, err, plain)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.False(t, errors.Is(err, errTemplate))
}
