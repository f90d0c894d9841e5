package validators

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsHHMM(t *testing.T) {
	for _, v := range []string{"00:00", "09:30", "23:59"} {
		assert.True(t, IsHHMM(v), v)
	}
	for _, v := range []string{"", "9:30", "24:00", "12:60", "12h30", "12:30:00"} {
		assert.False(t, IsHHMM(v), v)
	}
}

func TestIsISODate(t *testing.T) {
	assert.True(t, IsISODate("2024-02-29"))
	assert.False(t, IsISODate("2023-02-29"))
	assert.False(t, IsISODate("2024-1-01"))
	assert.False(t, IsISODate("01/01/2024"))
}

func TestRegisterOn(t *testing.T) {
	v := validator.New()
	require.NoError(t, RegisterOn(v))

	type payload struct {
		Date  string `validate:"required,isodate"`
		Start string `validate:"required,hhmm"`
	}

	assert.NoError(t, v.Struct(payload{Date: "2024-01-01", Start: "09:00"}))
	assert.Error(t, v.Struct(payload{Date: "2024-01-01", Start: "9h"}))
	assert.Error(t, v.Struct(payload{Date: "ontem", Start: "09:00"}))
}
