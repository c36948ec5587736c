package errors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/diceroll/internal/errors"
)

func TestParseError(t *testing.T) {
	err := errors.Parse(4, errors.ParseUnexpectedChar, "unexpected character '@' at position 4")

	assert.Equal(t, "parse error at position 4: unexpected character '@' at position 4", err.Error())
	assert.True(t, errors.IsParseError(err))

	pos, ok := errors.ParsePosition(err)
	assert.True(t, ok)
	assert.Equal(t, 4, pos)
}

func TestParsefFormats(t *testing.T) {
	err := errors.Parsef(2, errors.ParseMissingSides, "missing sides after 'd' at position %d", 2)
	assert.Equal(t, errors.ParseMissingSides, err.Kind)
	assert.Equal(t, "missing sides after 'd' at position 2", err.Message)
}

func TestParsePositionFalseForOtherErrors(t *testing.T) {
	_, ok := errors.ParsePosition(errors.InvalidArgument("not a parse error"))
	assert.False(t, ok)
}

func TestFieldError(t *testing.T) {
	err := errors.Validation("keep", "exceeds pool size")
	assert.Equal(t, "keep: exceeds pool size", err.Error())
	assert.True(t, errors.IsValidationField(err, "keep"))
	assert.False(t, errors.IsValidationField(err, "sides"))
}

func TestValidationfFormats(t *testing.T) {
	err := errors.Validationf("sides", "must be >= %d", 2)
	assert.Equal(t, "sides: must be >= 2", err.Message)
}
