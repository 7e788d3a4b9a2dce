package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Error(t *testing.T) {
	err := New(KindEmptyInput, "sales table contains no rows")
	assert.Equal(t, "sales table contains no rows", err.Error())
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Kind
	}{
		{
			name:     "direct core error",
			err:      UnknownStore(42),
			expected: KindUnknownStore,
		},
		{
			name:     "wrapped core error",
			err:      fmt.Errorf("load table: %w", MissingColumn("Weekly_Sales")),
			expected: KindMissingColumn,
		},
		{
			name:     "plain error",
			err:      fmt.Errorf("disk on fire"),
			expected: Kind(""),
		},
		{
			name:     "nil error",
			err:      nil,
			expected: Kind(""),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, KindOf(tt.err))
		})
	}
}

func TestIsKind(t *testing.T) {
	err := fmt.Errorf("forecast: %w", InsufficientHistory(2, 4))
	assert.True(t, IsKind(err, KindInsufficientHistory))
	assert.False(t, IsKind(err, KindUnknownStore))
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil", nil, ExitOK},
		{"empty input", EmptyInput(), ExitEmptyInput},
		{"missing column", MissingColumn("Store"), ExitMissingColumn},
		{"unknown store", UnknownStore(7), ExitUnknownStore},
		{"insufficient history", InsufficientHistory(1, 4), ExitInsufficientHistory},
		{"invalid parameter", InvalidParameter("horizon", 0), ExitInvalidParameter},
		{"unclassified", fmt.Errorf("boom"), ExitUnclassified},
		{"wrapped", fmt.Errorf("run report: %w", EmptyInput()), ExitEmptyInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExitCode(tt.err))
		})
	}
}

func TestConstructors(t *testing.T) {
	t.Run("UnknownStore carries store id", func(t *testing.T) {
		err := UnknownStore(13)
		assert.Equal(t, KindUnknownStore, err.Kind)
		assert.Equal(t, 13, err.Details)
		assert.Contains(t, err.Message, "13")
	})

	t.Run("InsufficientHistory names both counts", func(t *testing.T) {
		err := InsufficientHistory(3, 4)
		assert.Contains(t, err.Message, "have 3")
		assert.Contains(t, err.Message, "need 4")
	})

	t.Run("InvalidParameter names the parameter", func(t *testing.T) {
		err := InvalidParameter("lead_time_weeks", -1.0)
		assert.Equal(t, "lead_time_weeks", err.Details)
		assert.Contains(t, err.Message, "lead_time_weeks")
	})
}
