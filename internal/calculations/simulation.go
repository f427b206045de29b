package calculations

import "fmt"

// SimpleScenario возвращает базовый сценарий без расходов на оформление, HOA и продажи
func SimpleScenario() Scenario {
	return Scenario{
		Name: "simple",
		Loan: LoanParams{
			Years:               15,
			PurchasePrice:       150000,
			DownPayment:         15000,
			AnnualRate:          0.037,
			AnnualTaxRate:       0.007,
			AnnualInsuranceRate: 0.0035,
		},
		MonthlyRent: 1000,
		RentPass:    true,
	}
}

// ExtendedScenario возвращает сценарий с расходами на оформление, HOA и продажей
func ExtendedScenario() Scenario {
	return Scenario{
		Name: "extended",
		Loan: LoanParams{
			Years:               15,
			PurchasePrice:       150000,
			DownPayment:         30000,
			ClosingCosts:        5000,
			AnnualRate:          0.0244,
			AnnualTaxRate:       0.007,
			AnnualInsuranceRate: 0.0035,
			MonthlyHOA:          200,
			Sale: &SaleParams{
				SellingPrice:   150000,
				SellingFeeRate: 0.06,
			},
		},
		MonthlyRent: 1000,
	}
}

// Simulation проводит помесячный и погодовой расчет по двум счетам
type Simulation struct {
	scenario Scenario
	loan     *LoanAccount
	rent     *RentAccount
}

// NewSimulation создает счета ипотеки и аренды для сценария
func NewSimulation(sc Scenario) (*Simulation, error) {
	loan, err := NewLoanAccount(sc.Loan)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
	}
	return &Simulation{
		scenario: sc,
		loan:     loan,
		rent:     NewRentAccount(sc.MonthlyRent),
	}, nil
}

func (s *Simulation) Loan() *LoanAccount { return s.loan }

func (s *Simulation) Rent() *RentAccount { return s.rent }

// Years возвращает горизонт расчета, равный сроку кредита
func (s *Simulation) Years() int { return s.scenario.Loan.Years }

// RentPass накапливает только аренду и возвращает итог по годам
func (s *Simulation) RentPass() []RentYear {
	rows := make([]RentYear, 0, s.Years())
	for year := 1; year <= s.Years(); year++ {
		s.rent.AddYear()
		rows = append(rows, RentYear{Year: year, TotalCost: s.rent.TotalCost()})
	}
	return rows
}

// CombinedPass выполняет 12 шагов ипотеки и один год аренды за каждый год
func (s *Simulation) CombinedPass() []YearSnapshot {
	rows := make([]YearSnapshot, 0, s.Years())
	for year := 1; year <= s.Years(); year++ {
		s.rent.AddYear()
		for month := 1; month <= 12; month++ {
			s.loan.StepMonth()
		}

		snap := YearSnapshot{
			Year:             year,
			AmountOwed:       s.loan.AmountOwed(),
			Equity:           s.loan.Equity(),
			MortgageCost:     s.loan.MortgageCost(),
			TotalCost:        s.loan.TotalCost(),
			PaidForPrincipal: s.loan.PaidForPrincipal(),
			PaidForInterest:  s.loan.PaidForInterest(),
			RentTotalCost:    s.rent.TotalCost(),
			HasSale:          s.loan.HasSale(),
		}
		if snap.HasSale {
			snap.CostAfterSale = s.loan.RecordCostAfterSale()
		}
		snap.RentMinusBuy = snap.RentTotalCost - snap.BuyCost()

		rows = append(rows, snap)
	}
	return rows
}

// Run выполняет сценарий целиком: необязательный проход по аренде,
// сброс счета аренды и совместный проход
func Run(sc Scenario) (*Result, error) {
	sim, err := NewSimulation(sc)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Scenario: sc,
		Summary:  sim.Loan().Summary(),
	}

	if sc.RentPass {
		result.RentYears = sim.RentPass()
		sim.Rent().Reset()
	}
	result.Years = sim.CombinedPass()
	result.Comparison = Compare(result.Years)

	return result, nil
}
