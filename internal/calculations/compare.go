package calculations

const (
	CheaperBuy   = "buy"
	CheaperRent  = "rent"
	CheaperEqual = "equal"
)

// Compare сравнивает покупку и аренду по последнему году горизонта
func Compare(years []YearSnapshot) Comparison {
	if len(years) == 0 {
		return Comparison{Cheaper: CheaperEqual}
	}
	last := years[len(years)-1]

	buyCost := last.BuyCost()
	rentCost := last.RentTotalCost
	diff := rentCost - buyCost

	var cheaper, recommendation string
	var savings float64

	if diff > 0 {
		cheaper = CheaperBuy
		savings = diff
		recommendation = "Buying is cheaper over the horizon: renting costs more than owning."
	} else if diff < 0 {
		cheaper = CheaperRent
		savings = -diff
		recommendation = "Renting is cheaper over the horizon: owning costs more than paying rent."
	} else {
		cheaper = CheaperEqual
		recommendation = "Buying and renting cost the same over the horizon."
	}
	if last.HasSale {
		recommendation += " Buy cost assumes the home is sold at the fixed selling price."
	}

	return Comparison{
		Years:          last.Year,
		BuyCost:        buyCost,
		RentCost:       rentCost,
		Difference:     diff,
		Cheaper:        cheaper,
		Savings:        savings,
		Recommendation: recommendation,
	}
}
