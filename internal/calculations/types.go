package calculations

// SaleParams описывает продажу жилья в конце каждого отчетного года
type SaleParams struct {
	SellingPrice   float64 `json:"selling_price" toml:"selling_price" yaml:"selling_price"`
	SellingFeeRate float64 `json:"selling_fee_rate" toml:"selling_fee_rate" yaml:"selling_fee_rate"`
}

// LoanParams содержит входные параметры ипотеки. Ставки задаются долями (0.037).
type LoanParams struct {
	Years               int         `json:"years" toml:"years" yaml:"years"`
	PurchasePrice       float64     `json:"purchase_price" toml:"purchase_price" yaml:"purchase_price"`
	DownPayment         float64     `json:"down_payment" toml:"down_payment" yaml:"down_payment"`
	ClosingCosts        float64     `json:"closing_costs,omitempty" toml:"closing_costs" yaml:"closing_costs"`
	AnnualRate          float64     `json:"annual_rate" toml:"annual_rate" yaml:"annual_rate"`
	AnnualTaxRate       float64     `json:"annual_tax_rate" toml:"annual_tax_rate" yaml:"annual_tax_rate"`
	AnnualInsuranceRate float64     `json:"annual_insurance_rate" toml:"annual_insurance_rate" yaml:"annual_insurance_rate"`
	MonthlyHOA          float64     `json:"monthly_hoa,omitempty" toml:"monthly_hoa" yaml:"monthly_hoa"`
	Sale                *SaleParams `json:"sale,omitempty" toml:"sale" yaml:"sale"`
}

// Scenario описывает один независимый расчет "купить или арендовать"
type Scenario struct {
	Name        string     `json:"name" toml:"name" yaml:"name"`
	Loan        LoanParams `json:"loan" toml:"loan" yaml:"loan"`
	MonthlyRent float64    `json:"monthly_rent" toml:"monthly_rent" yaml:"monthly_rent"`
	RentPass    bool       `json:"rent_pass" toml:"rent_pass" yaml:"rent_pass"`
}

// MortgageSummary представляет статические параметры ипотеки
type MortgageSummary struct {
	PurchasePrice          float64     `json:"purchase_price"`
	DownPayment            float64     `json:"down_payment"`
	ClosingCosts           float64     `json:"closing_costs"`
	Loan                   float64     `json:"loan"`
	Years                  int         `json:"years"`
	AnnualRate             float64     `json:"annual_rate"`
	AnnualTaxRate          float64     `json:"annual_tax_rate"`
	AnnualInsuranceRate    float64     `json:"annual_insurance_rate"`
	MonthlyTax             float64     `json:"monthly_tax"`
	MonthlyInsurance       float64     `json:"monthly_insurance"`
	MonthlyHOA             float64     `json:"monthly_hoa"`
	MonthlyMortgagePayment float64     `json:"monthly_mortgage_payment"`
	MonthlyPayment         float64     `json:"monthly_payment"`
	Sale                   *SaleParams `json:"sale,omitempty"`
}

// ScheduleEntry представляет одну запись в графике платежей
type ScheduleEntry struct {
	Month               int     `json:"month"`
	Payment             float64 `json:"payment"`
	Interest            float64 `json:"interest"`
	PrincipalComponent  float64 `json:"principal_component"`
	RemainingPrincipal  float64 `json:"remaining_principal"`
	CumulativeInterest  float64 `json:"cumulative_interest"`
	CumulativePrincipal float64 `json:"cumulative_principal"`
}

// RentYear представляет строку прохода только по аренде
type RentYear struct {
	Year      int     `json:"year"`
	TotalCost float64 `json:"total_cost"`
}

// YearSnapshot представляет состояние обоих счетов в конце года
type YearSnapshot struct {
	Year             int     `json:"year"`
	AmountOwed       float64 `json:"amount_owed"`
	Equity           float64 `json:"equity"`
	MortgageCost     float64 `json:"mortgage_cost"`
	TotalCost        float64 `json:"total_cost"`
	PaidForPrincipal float64 `json:"paid_for_principal"`
	PaidForInterest  float64 `json:"paid_for_interest"`
	RentTotalCost    float64 `json:"rent_total_cost"`
	HasSale          bool    `json:"has_sale"`
	CostAfterSale    float64 `json:"cost_after_sale,omitempty"`
	RentMinusBuy     float64 `json:"rent_minus_buy"`
}

// BuyCost возвращает стоимость покупки для сравнения с арендой:
// с учетом продажи, если она задана, иначе полные расходы
func (y YearSnapshot) BuyCost() float64 {
	if y.HasSale {
		return y.CostAfterSale
	}
	return y.TotalCost
}

// Comparison представляет итог сравнения на конец горизонта
type Comparison struct {
	Years          int     `json:"years"`
	BuyCost        float64 `json:"buy_cost"`
	RentCost       float64 `json:"rent_cost"`
	Difference     float64 `json:"difference"`
	Cheaper        string  `json:"cheaper"`
	Savings        float64 `json:"savings"`
	Recommendation string  `json:"recommendation"`
}

// Result представляет полный результат расчета сценария
type Result struct {
	Scenario   Scenario        `json:"scenario"`
	Summary    MortgageSummary `json:"summary"`
	RentYears  []RentYear      `json:"rent_years,omitempty"`
	Years      []YearSnapshot  `json:"years"`
	Comparison Comparison      `json:"comparison"`
	Schedule   []ScheduleEntry `json:"schedule,omitempty"`
}
