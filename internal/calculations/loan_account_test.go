package calculations

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmortizedPayment(t *testing.T) {
	tests := []struct {
		name        string
		loan        float64
		monthlyRate float64
		months      int
		want        float64
		wantError   bool
	}{
		{
			name:        "simple scenario",
			loan:        135000,
			monthlyRate: 0.037 / 12,
			months:      180,
			want:        978.40,
		},
		{
			name:        "extended scenario",
			loan:        120000,
			monthlyRate: 0.0244 / 12,
			months:      180,
			want:        796.76,
		},
		{
			name:        "zero rate is linear",
			loan:        120000,
			monthlyRate: 0,
			months:      120,
			want:        1000,
		},
		{
			name:        "zero months",
			loan:        120000,
			monthlyRate: 0.0244 / 12,
			months:      0,
			wantError:   true,
		},
		{
			name:        "rate too small to move the factor",
			loan:        120000,
			monthlyRate: 1e-18,
			months:      12,
			wantError:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AmortizedPayment(tt.loan, tt.monthlyRate, tt.months)
			if tt.wantError {
				require.ErrorIs(t, err, ErrInvalidParameter)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.01)
		})
	}
}

func TestNewLoanAccount(t *testing.T) {
	account, err := NewLoanAccount(SimpleScenario().Loan)
	require.NoError(t, err)

	assert.Equal(t, 180, account.Months())
	assert.Equal(t, 135000.0, account.Loan())
	assert.InDelta(t, 87.50, account.MonthlyTax(), 1e-9)
	assert.InDelta(t, 43.75, account.MonthlyInsurance(), 1e-9)
	assert.InDelta(t, 978.40, account.MonthlyMortgagePayment(), 0.01)
	assert.InDelta(t, 1109.65, account.MonthlyPayment(), 0.01)
	assert.Equal(t, account.Loan(), account.AmountOwed())
	assert.Equal(t, 15000.0, account.TotalCost())
	assert.Zero(t, account.MortgageCost())
	assert.False(t, account.HasSale())
	assert.Zero(t, account.AmountEarnedInSale())
}

func TestNewLoanAccountZeroYears(t *testing.T) {
	params := SimpleScenario().Loan
	params.Years = 0

	_, err := NewLoanAccount(params)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestLoanAccountFirstMonth(t *testing.T) {
	account, err := NewLoanAccount(ExtendedScenario().Loan)
	require.NoError(t, err)

	assert.Equal(t, 35000.0, account.TotalCost())

	account.StepMonth()

	want := 120000*(1+0.0244/12) - account.MonthlyMortgagePayment()
	assert.Equal(t, want, account.AmountOwed())
	assert.InDelta(t, 119447.24, account.AmountOwed(), 0.005)
	assert.Equal(t, account.MonthlyMortgagePayment(), account.MortgageCost())
	assert.InDelta(t, 35000+account.MonthlyPayment(), account.TotalCost(), 1e-9)
}

func TestLoanAccountFullTerm(t *testing.T) {
	for _, sc := range []Scenario{SimpleScenario(), ExtendedScenario()} {
		t.Run(sc.Name, func(t *testing.T) {
			account, err := NewLoanAccount(sc.Loan)
			require.NoError(t, err)

			upfront := sc.Loan.DownPayment + sc.Loan.ClosingCosts
			for n := 1; n <= account.Months(); n++ {
				account.StepMonth()

				assert.Equal(t, float64(n)*account.MonthlyMortgagePayment(), account.MortgageCost())
				assert.InDelta(t, sc.Loan.PurchasePrice, account.Equity()+account.AmountOwed(), 1e-9)
				assert.GreaterOrEqual(t, account.TotalCost(), upfront)
			}

			assert.InDelta(t, 0, account.AmountOwed(), 1e-6)
			assert.InDelta(t, sc.Loan.PurchasePrice, account.Equity(), 1e-6)
			assert.InDelta(t, account.Loan(), account.PaidForPrincipal(), 1e-6)
			assert.InDelta(t, account.MortgageCost()-account.Loan(), account.PaidForInterest(), 1e-6)
		})
	}
}

func TestLoanAccountStepCountControlsBalance(t *testing.T) {
	short, err := NewLoanAccount(SimpleScenario().Loan)
	require.NoError(t, err)
	long, err := NewLoanAccount(SimpleScenario().Loan)
	require.NoError(t, err)

	for n := 0; n < short.Months()-1; n++ {
		short.StepMonth()
	}
	for n := 0; n < long.Months()+1; n++ {
		long.StepMonth()
	}

	assert.Greater(t, short.AmountOwed(), 0.0)
	assert.Less(t, long.AmountOwed(), 0.0)
}

func TestLoanAccountZeroRate(t *testing.T) {
	params := SimpleScenario().Loan
	params.AnnualRate = 0

	account, err := NewLoanAccount(params)
	require.NoError(t, err)
	assert.InDelta(t, 750, account.MonthlyMortgagePayment(), 1e-9)

	for n := 0; n < account.Months(); n++ {
		account.StepMonth()
	}
	assert.InDelta(t, 0, account.AmountOwed(), 1e-6)
	assert.InDelta(t, 0, account.PaidForInterest(), 1e-6)
}

func TestLoanAccountSale(t *testing.T) {
	account, err := NewLoanAccount(ExtendedScenario().Loan)
	require.NoError(t, err)
	require.True(t, account.HasSale())

	for n := 0; n < 12; n++ {
		account.StepMonth()
	}

	earned := 150000 - account.AmountOwed() - 150000*0.06
	assert.InDelta(t, earned, account.AmountEarnedInSale(), 1e-9)

	assert.Zero(t, account.CostAfterSale())
	recorded := account.RecordCostAfterSale()
	assert.InDelta(t, account.TotalCost()-earned, recorded, 1e-9)

	// snapshot is not kept in sync
	account.StepMonth()
	assert.Equal(t, recorded, account.CostAfterSale())
}

func TestLoanAccountGettersAreIdempotent(t *testing.T) {
	account, err := NewLoanAccount(ExtendedScenario().Loan)
	require.NoError(t, err)
	for n := 0; n < 30; n++ {
		account.StepMonth()
	}

	getters := map[string]func() float64{
		"AmountOwed":         account.AmountOwed,
		"Equity":             account.Equity,
		"MortgageCost":       account.MortgageCost,
		"TotalCost":          account.TotalCost,
		"PaidForPrincipal":   account.PaidForPrincipal,
		"PaidForInterest":    account.PaidForInterest,
		"AmountEarnedInSale": account.AmountEarnedInSale,
	}
	for name, get := range getters {
		first := get()
		assert.Equal(t, first, get(), name)
		assert.False(t, math.IsNaN(first), name)
	}
}

func TestAmortizationSchedule(t *testing.T) {
	schedule, err := AmortizationSchedule(SimpleScenario().Loan)
	require.NoError(t, err)
	require.Len(t, schedule, 180)

	first := schedule[0]
	assert.Equal(t, 1, first.Month)
	assert.InDelta(t, 135000*0.037/12, first.Interest, 1e-9)
	assert.InDelta(t, first.Payment-first.Interest, first.PrincipalComponent, 1e-9)

	last := schedule[len(schedule)-1]
	assert.InDelta(t, 0, last.RemainingPrincipal, 1e-6)
	assert.InDelta(t, 135000, last.CumulativePrincipal, 1e-6)
	assert.InDelta(t, 180*first.Payment-135000, last.CumulativeInterest, 1e-6)

	_, err = AmortizationSchedule(LoanParams{PurchasePrice: 1000, AnnualRate: 0.05})
	assert.ErrorIs(t, err, ErrInvalidParameter)
}
