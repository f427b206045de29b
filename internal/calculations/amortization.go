package calculations

import (
	"math"

	"github.com/cloud-ru/homecost-go/internal/validators"
)

// ErrInvalidParameter возвращается, когда аннуитетный платеж не определен
var ErrInvalidParameter = validators.ErrInvalidParameter

// AmortizedPayment рассчитывает фиксированный ежемесячный платеж, который
// гасит кредит ровно за months периодов (проценты начисляются до платежа).
//
// Нулевая ставка обрабатывается отдельно: платеж равен loan / months.
func AmortizedPayment(loan, monthlyRate float64, months int) (float64, error) {
	if err := validators.CheckMonths(months); err != nil {
		return 0, err
	}
	if monthlyRate == 0 {
		return loan / float64(months), nil
	}

	x := math.Pow(1+monthlyRate, float64(months))
	if err := validators.CheckAmortizationFactor(x); err != nil {
		return 0, err
	}
	return loan * monthlyRate * x / (x - 1), nil
}

// AmortizationSchedule строит помесячный график погашения кредита.
// Записи не округляются, остаток в последнем месяце близок к нулю.
func AmortizationSchedule(params LoanParams) ([]ScheduleEntry, error) {
	account, err := NewLoanAccount(params)
	if err != nil {
		return nil, err
	}

	schedule := make([]ScheduleEntry, 0, account.Months())
	cumI := 0.0
	cumP := 0.0

	for m := 1; m <= account.Months(); m++ {
		interest := account.AmountOwed() * account.MonthlyRate()
		principalComponent := account.MonthlyMortgagePayment() - interest

		account.StepMonth()

		cumI += interest
		cumP += principalComponent

		schedule = append(schedule, ScheduleEntry{
			Month:               m,
			Payment:             account.MonthlyMortgagePayment(),
			Interest:            interest,
			PrincipalComponent:  principalComponent,
			RemainingPrincipal:  account.AmountOwed(),
			CumulativeInterest:  cumI,
			CumulativePrincipal: cumP,
		})
	}

	return schedule, nil
}
