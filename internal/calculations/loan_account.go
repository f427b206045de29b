package calculations

import "fmt"

// LoanAccount моделирует ипотеку с фиксированной ставкой и сопутствующие
// расходы на жилье (налог, страховка, HOA).
//
// Накопленные суммы хранятся как число оплаченных месяцев, умноженное на
// фиксированный платеж, поэтому MortgageCost после n месяцев равен n*платеж.
type LoanAccount struct {
	params LoanParams

	months      int
	monthlyRate float64
	loan        float64

	monthlyTax             float64
	monthlyInsurance       float64
	monthlyMortgagePayment float64
	monthlyPayment         float64

	amountOwed    float64
	monthsPaid    int
	costAfterSale float64
}

// NewLoanAccount создает счет ипотеки и рассчитывает фиксированные платежи
func NewLoanAccount(params LoanParams) (*LoanAccount, error) {
	months := 12 * params.Years
	monthlyRate := params.AnnualRate / 12
	loan := params.PurchasePrice - params.DownPayment

	payment, err := AmortizedPayment(loan, monthlyRate, months)
	if err != nil {
		return nil, fmt.Errorf("ошибка расчета ипотечного платежа: %w", err)
	}

	a := &LoanAccount{
		params:                 params,
		months:                 months,
		monthlyRate:            monthlyRate,
		loan:                   loan,
		monthlyTax:             params.PurchasePrice * params.AnnualTaxRate / 12,
		monthlyInsurance:       params.PurchasePrice * params.AnnualInsuranceRate / 12,
		monthlyMortgagePayment: payment,
		amountOwed:             loan,
	}
	a.monthlyPayment = a.monthlyMortgagePayment + a.monthlyTax + a.monthlyInsurance + params.MonthlyHOA

	return a, nil
}

// StepMonth начисляет проценты за месяц и вносит один платеж.
// Шаги после окончания срока допустимы и уводят остаток в минус.
func (a *LoanAccount) StepMonth() {
	a.amountOwed = a.amountOwed*(1+a.monthlyRate) - a.monthlyMortgagePayment
	a.monthsPaid++
}

func (a *LoanAccount) Params() LoanParams { return a.params }

func (a *LoanAccount) Months() int { return a.months }

func (a *LoanAccount) MonthlyRate() float64 { return a.monthlyRate }

func (a *LoanAccount) Loan() float64 { return a.loan }

func (a *LoanAccount) MonthlyTax() float64 { return a.monthlyTax }

func (a *LoanAccount) MonthlyInsurance() float64 { return a.monthlyInsurance }

func (a *LoanAccount) MonthlyMortgagePayment() float64 { return a.monthlyMortgagePayment }

// MonthlyPayment возвращает полный ежемесячный платеж: ипотека, налог, страховка и HOA
func (a *LoanAccount) MonthlyPayment() float64 { return a.monthlyPayment }

func (a *LoanAccount) AmountOwed() float64 { return a.amountOwed }

func (a *LoanAccount) MonthsPaid() int { return a.monthsPaid }

// MortgageCost возвращает сумму внесенных ипотечных платежей
func (a *LoanAccount) MortgageCost() float64 {
	return float64(a.monthsPaid) * a.monthlyMortgagePayment
}

// TotalCost возвращает все расходы покупателя: первоначальный взнос,
// расходы на оформление и все полные ежемесячные платежи
func (a *LoanAccount) TotalCost() float64 {
	return a.params.DownPayment + a.params.ClosingCosts + float64(a.monthsPaid)*a.monthlyPayment
}

// Equity возвращает долю владельца: цена покупки минус остаток долга
func (a *LoanAccount) Equity() float64 {
	return a.params.PurchasePrice - a.amountOwed
}

func (a *LoanAccount) PaidForPrincipal() float64 {
	return a.Equity() - a.params.DownPayment
}

func (a *LoanAccount) PaidForInterest() float64 {
	return a.MortgageCost() - a.PaidForPrincipal()
}

// HasSale сообщает, заданы ли параметры продажи
func (a *LoanAccount) HasSale() bool { return a.params.Sale != nil }

// AmountEarnedInSale возвращает выручку от продажи по фиксированной цене
// после погашения долга и комиссии риелтора. Без параметров продажи равна 0.
func (a *LoanAccount) AmountEarnedInSale() float64 {
	sale := a.params.Sale
	if sale == nil {
		return 0
	}
	return sale.SellingPrice - a.amountOwed - sale.SellingPrice*sale.SellingFeeRate
}

// RecordCostAfterSale фиксирует стоимость владения с учетом продажи на текущий момент
func (a *LoanAccount) RecordCostAfterSale() float64 {
	a.costAfterSale = a.TotalCost() - a.AmountEarnedInSale()
	return a.costAfterSale
}

// CostAfterSale возвращает последнее значение, зафиксированное RecordCostAfterSale.
// Автоматически не пересчитывается.
func (a *LoanAccount) CostAfterSale() float64 { return a.costAfterSale }

// Summary возвращает статические параметры ипотеки для стартового блока отчета
func (a *LoanAccount) Summary() MortgageSummary {
	return MortgageSummary{
		PurchasePrice:          a.params.PurchasePrice,
		DownPayment:            a.params.DownPayment,
		ClosingCosts:           a.params.ClosingCosts,
		Loan:                   a.loan,
		Years:                  a.params.Years,
		AnnualRate:             a.params.AnnualRate,
		AnnualTaxRate:          a.params.AnnualTaxRate,
		AnnualInsuranceRate:    a.params.AnnualInsuranceRate,
		MonthlyTax:             a.monthlyTax,
		MonthlyInsurance:       a.monthlyInsurance,
		MonthlyHOA:             a.params.MonthlyHOA,
		MonthlyMortgagePayment: a.monthlyMortgagePayment,
		MonthlyPayment:         a.monthlyPayment,
		Sale:                   a.params.Sale,
	}
}
