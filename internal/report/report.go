// Package report renders simulation results as a line-oriented text report or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/cloud-ru/homecost-go/internal/calculations"
	"github.com/cloud-ru/homecost-go/pkg/utils"
)

var (
	colorBorder = lipgloss.Color("#282726")
	colorText   = lipgloss.Color("#FFFCF0")
	colorGreen  = lipgloss.Color("#879A39")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText).
			Align(lipgloss.Center)

	verdictStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorGreen)
)

var rule = strings.Repeat("-", 50)

// Money formats an amount with exactly two decimals, e.g. 1072.0287 -> "1072.03".
func Money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// Rate formats a fractional rate as a percentage, e.g. 0.037 -> "3.70%".
func Rate(r float64) string {
	return fmt.Sprintf("%.2f%%", utils.Percent(r))
}

// Renderer writes results to w. Styled output adds a lipgloss title box and
// colors the verdict; plain output is stable for piping and tests.
type Renderer struct {
	w      io.Writer
	styled bool
}

func NewRenderer(w io.Writer, styled bool) *Renderer {
	return &Renderer{w: w, styled: styled}
}

// Text writes the startup block, the optional rent-only lines, one line per
// simulated year and the final verdict.
func (r *Renderer) Text(res *calculations.Result) error {
	var b strings.Builder

	if r.styled {
		b.WriteString(renderTitle("Rent vs buy: " + res.Scenario.Name))
		b.WriteString("\n")
	}
	writeSummary(&b, res.Summary)

	for _, y := range res.RentYears {
		fmt.Fprintf(&b, "year %d, total rent cost: %s\n", y.Year, Money(y.TotalCost))
	}
	for _, y := range res.Years {
		b.WriteString(YearLine(y))
		b.WriteString("\n")
	}

	b.WriteString(rule)
	b.WriteString("\n")
	verdict := Verdict(res.Comparison)
	if r.styled {
		verdict = verdictStyle.Render(verdict)
	}
	b.WriteString(verdict)
	b.WriteString("\n")

	_, err := io.WriteString(r.w, b.String())
	return err
}

// YearLine formats one combined-pass snapshot. Sale columns appear only when
// the scenario has selling parameters.
func YearLine(y calculations.YearSnapshot) string {
	line := fmt.Sprintf("year %d, amount owed: %s, equity: %s, total mortgage cost: %s, total cost: %s, total rent cost: %s",
		y.Year, Money(y.AmountOwed), Money(y.Equity), Money(y.MortgageCost), Money(y.TotalCost), Money(y.RentTotalCost))
	if y.HasSale {
		line += fmt.Sprintf(", cost after sale: %s, rent minus buy: %s", Money(y.CostAfterSale), Money(y.RentMinusBuy))
	}
	return line
}

// Verdict summarizes the comparison in one sentence.
func Verdict(c calculations.Comparison) string {
	switch c.Cheaper {
	case calculations.CheaperBuy:
		return fmt.Sprintf("after %d years buying is cheaper by %s", c.Years, Money(c.Savings))
	case calculations.CheaperRent:
		return fmt.Sprintf("after %d years renting is cheaper by %s", c.Years, Money(c.Savings))
	default:
		return fmt.Sprintf("after %d years buying and renting cost the same", c.Years)
	}
}

func writeSummary(b *strings.Builder, s calculations.MortgageSummary) {
	b.WriteString(rule)
	b.WriteString("\n")
	fmt.Fprintf(b, "Purchase price: %s\n", Money(s.PurchasePrice))
	fmt.Fprintf(b, "Down payment: %s\n", Money(s.DownPayment))
	if s.ClosingCosts != 0 {
		fmt.Fprintf(b, "Closing costs: %s\n", Money(s.ClosingCosts))
	}
	fmt.Fprintf(b, "Loan: %s\n", Money(s.Loan))
	fmt.Fprintf(b, "Number of years: %d\n", s.Years)
	fmt.Fprintf(b, "Annual interest rate: %s\n", Rate(s.AnnualRate))
	fmt.Fprintf(b, "Monthly property tax: %s (%s annual)\n", Money(s.MonthlyTax), Rate(s.AnnualTaxRate))
	fmt.Fprintf(b, "Monthly insurance: %s (%s annual)\n", Money(s.MonthlyInsurance), Rate(s.AnnualInsuranceRate))
	if s.MonthlyHOA != 0 {
		fmt.Fprintf(b, "Monthly HOA: %s\n", Money(s.MonthlyHOA))
	}
	if s.Sale != nil {
		fmt.Fprintf(b, "Selling price: %s\n", Money(s.Sale.SellingPrice))
		fmt.Fprintf(b, "Realtor fee: %s\n", Rate(s.Sale.SellingFeeRate))
	}
	fmt.Fprintf(b, "Mortgage monthly payment: %s\n", Money(s.MonthlyMortgagePayment))
	fmt.Fprintf(b, "Total monthly payment: %s\n", Money(s.MonthlyPayment))
	b.WriteString(rule)
	b.WriteString("\n")
}

func renderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// JSON writes the result with every amount rounded to cents.
func (r *Renderer) JSON(res *calculations.Result) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(rounded(res))
}

func rounded(res *calculations.Result) *calculations.Result {
	out := *res

	s := res.Summary
	s.PurchasePrice = utils.Round2(s.PurchasePrice)
	s.DownPayment = utils.Round2(s.DownPayment)
	s.ClosingCosts = utils.Round2(s.ClosingCosts)
	s.Loan = utils.Round2(s.Loan)
	s.MonthlyTax = utils.Round2(s.MonthlyTax)
	s.MonthlyInsurance = utils.Round2(s.MonthlyInsurance)
	s.MonthlyHOA = utils.Round2(s.MonthlyHOA)
	s.MonthlyMortgagePayment = utils.Round2(s.MonthlyMortgagePayment)
	s.MonthlyPayment = utils.Round2(s.MonthlyPayment)
	out.Summary = s

	out.RentYears = make([]calculations.RentYear, len(res.RentYears))
	for i, y := range res.RentYears {
		out.RentYears[i] = calculations.RentYear{Year: y.Year, TotalCost: utils.Round2(y.TotalCost)}
	}

	out.Years = make([]calculations.YearSnapshot, len(res.Years))
	for i, y := range res.Years {
		y.AmountOwed = utils.Round2(y.AmountOwed)
		y.Equity = utils.Round2(y.Equity)
		y.MortgageCost = utils.Round2(y.MortgageCost)
		y.TotalCost = utils.Round2(y.TotalCost)
		y.PaidForPrincipal = utils.Round2(y.PaidForPrincipal)
		y.PaidForInterest = utils.Round2(y.PaidForInterest)
		y.RentTotalCost = utils.Round2(y.RentTotalCost)
		y.CostAfterSale = utils.Round2(y.CostAfterSale)
		y.RentMinusBuy = utils.Round2(y.RentMinusBuy)
		out.Years[i] = y
	}

	c := res.Comparison
	c.BuyCost = utils.Round2(c.BuyCost)
	c.RentCost = utils.Round2(c.RentCost)
	c.Difference = utils.Round2(c.Difference)
	c.Savings = utils.Round2(c.Savings)
	out.Comparison = c

	if res.Schedule != nil {
		out.Schedule = make([]calculations.ScheduleEntry, len(res.Schedule))
		for i, e := range res.Schedule {
			e.Payment = utils.Round2(e.Payment)
			e.Interest = utils.Round2(e.Interest)
			e.PrincipalComponent = utils.Round2(e.PrincipalComponent)
			e.RemainingPrincipal = utils.Round2(e.RemainingPrincipal)
			e.CumulativeInterest = utils.Round2(e.CumulativeInterest)
			e.CumulativePrincipal = utils.Round2(e.CumulativePrincipal)
			out.Schedule[i] = e
		}
	}

	return &out
}
