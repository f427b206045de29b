package calculations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRentAccountAddMonth(t *testing.T) {
	tests := []struct {
		name        string
		monthlyRent float64
		months      int
	}{
		{name: "zero rent", monthlyRent: 0, months: 24},
		{name: "round rent", monthlyRent: 1000, months: 7},
		{name: "fractional rent", monthlyRent: 1234.56, months: 181},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rent := NewRentAccount(tt.monthlyRent)
			for k := 0; k < tt.months; k++ {
				rent.AddMonth()
			}
			assert.Equal(t, float64(tt.months)*tt.monthlyRent, rent.TotalCost())

			rent.Reset()
			assert.Zero(t, rent.TotalCost())
		})
	}
}

func TestRentAccountAddYear(t *testing.T) {
	rent := NewRentAccount(1000)
	assert.Equal(t, 12000.0, rent.YearlyRent())

	rent.AddYear()
	assert.Equal(t, 12000.0, rent.TotalCost())

	for year := 2; year <= 15; year++ {
		rent.AddYear()
	}
	assert.Equal(t, 180000.0, rent.TotalCost())

	monthly := NewRentAccount(1000)
	for k := 0; k < 12*15; k++ {
		monthly.AddMonth()
	}
	assert.Equal(t, rent.TotalCost(), monthly.TotalCost())
}
