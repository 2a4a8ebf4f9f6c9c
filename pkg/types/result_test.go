package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIssues(t *testing.T) {
	assert.True(t, Issues{}.Valid())
	assert.True(t, Issues(nil).Valid())

	iss := Issues{"Missing required property: name", "Missing required property: url"}
	assert.False(t, iss.Valid())
	assert.Equal(t, "Missing required property: name, Missing required property: url", iss.String())
}

func TestRowError(t *testing.T) {
	err := &RowError{Row: 3, Err: ErrInvalidRow}
	assert.Equal(t, "error processing row 3: row is not an object", err.Error())
	assert.True(t, errors.Is(err, ErrInvalidRow))
}
