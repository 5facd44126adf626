package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type cellRow struct {
	Cells []string `validate:"dive,playermark"`
}

func TestPlayerMarkValidation(t *testing.T) {
	v := GetValidator()

	assert.NoError(t, v.Struct(cellRow{Cells: []string{"", "X", "O"}}))
	assert.Error(t, v.Struct(cellRow{Cells: []string{"X", "x"}}))
	assert.Error(t, v.Struct(cellRow{Cells: []string{"Z"}}))
}
