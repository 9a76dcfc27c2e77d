package emi

// YearSummary aggregates twelve installments of an amortization schedule.
type YearSummary struct {
	Year           int     `json:"year"`
	PrincipalPaid  float64 `json:"principal_paid"`
	InterestPaid   float64 `json:"interest_paid"`
	ClosingBalance float64 `json:"closing_balance"`
}

// Schedule walks the loan month by month and returns one summary per year.
// Each installment first covers the interest accrued on the outstanding
// balance; the remainder reduces the balance. The final installment absorbs
// floating-point drift so the last closing balance is exactly zero.
//
// Schedule has the same preconditions as Compute.
func Schedule(p LoanParameters) []YearSummary {
	result := p.Compute()
	rate := p.MonthlyRate()
	months := p.Months()

	summaries := make([]YearSummary, 0, p.TermYears)
	balance := p.Principal
	current := YearSummary{Year: 1}

	for m := 1; m <= months; m++ {
		interest := balance * rate
		principal := result.MonthlyInstallment - interest
		if m == months || principal > balance {
			principal = balance
		}
		balance -= principal

		current.InterestPaid += interest
		current.PrincipalPaid += principal

		if m%12 == 0 {
			current.ClosingBalance = balance
			summaries = append(summaries, current)
			current = YearSummary{Year: current.Year + 1}
		}
	}

	return summaries
}
