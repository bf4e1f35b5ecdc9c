package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/worker"
)

var testRates = worker.RateProfile{
	Normal:   decimal.NewFromInt(20000),
	Overtime: decimal.NewFromInt(30000),
	Holiday:  decimal.NewFromInt(40000),
}

func TestCalculateWage(t *testing.T) {
	tests := []struct {
		name      string
		hours     float64
		isHoliday bool
		want      int64
	}{
		{"regular short day", 6, false, 120000},
		{"exactly the threshold", 8, false, 160000},
		{"overtime split", 10, false, 220000},
		{"zero hours", 0, false, 0},
		{"holiday pays flat rate for all hours", 10, true, 400000},
		{"holiday short day", 4, true, 160000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateWage(tt.hours, testRates, tt.isHoliday)
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.NewFromInt(tt.want)),
				"got %s, want %d", got, tt.want)
		})
	}
}

func TestCalculateWageFractionalHours(t *testing.T) {
	got, err := CalculateWage(8.5, testRates, false)
	require.NoError(t, err)
	// 8 * 20000 + 0.5 * 30000
	assert.True(t, got.Equal(decimal.NewFromInt(175000)), "got %s", got)
}

func TestCalculateWageNegativeHours(t *testing.T) {
	_, err := CalculateWage(-1, testRates, false)
	assert.ErrorIs(t, err, ErrInvalidHours)
}

func TestDescribeRate(t *testing.T) {
	t.Run("holiday", func(t *testing.T) {
		d := DescribeRate(testRates, true, 10)
		assert.True(t, d.Rate.Equal(testRates.Holiday))
	})

	t.Run("within threshold", func(t *testing.T) {
		d := DescribeRate(testRates, false, 7)
		assert.True(t, d.Rate.Equal(testRates.Normal))
	})

	t.Run("past threshold is blended", func(t *testing.T) {
		d := DescribeRate(testRates, false, 10)
		// 220000 / 10
		assert.True(t, d.Rate.Equal(decimal.NewFromInt(22000)), "got %s", d.Rate)
	})
}
