// Package emi computes equated monthly installments for fixed-rate,
// fixed-term loans under reducing-balance (annuity) amortization.
//
// All arithmetic is float64 and nothing is rounded here; rounding to
// currency units belongs to the presentation layer.
package emi

import (
	"errors"
	"fmt"
	"math"
)

// ErrPrecondition is the panic value wrapped when Compute is called with
// inputs outside its domain. Callers validate with LoanParameters.Validate.
var ErrPrecondition = errors.New("emi: precondition violated")

// LoanParameters is the input tuple of a loan.
type LoanParameters struct {
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	TermYears         int     `json:"term_years"`
}

// Result holds the derived amounts of a loan.
type Result struct {
	MonthlyInstallment float64 `json:"monthly_installment"`
	TotalPayable       float64 `json:"total_payable"`
	TotalInterest      float64 `json:"total_interest"`
}

// Validate reports whether p satisfies the preconditions of Compute.
func (p LoanParameters) Validate() error {
	switch {
	case math.IsNaN(p.Principal) || math.IsInf(p.Principal, 0):
		return fmt.Errorf("%w: principal must be finite", ErrPrecondition)
	case p.Principal < 0:
		return fmt.Errorf("%w: principal must not be negative", ErrPrecondition)
	case math.IsNaN(p.AnnualRatePercent) || math.IsInf(p.AnnualRatePercent, 0):
		return fmt.Errorf("%w: annual rate must be finite", ErrPrecondition)
	case p.AnnualRatePercent < 0:
		return fmt.Errorf("%w: annual rate must not be negative", ErrPrecondition)
	case p.TermYears <= 0:
		return fmt.Errorf("%w: term must be at least one year", ErrPrecondition)
	}
	return nil
}

// Months returns the number of monthly installments.
func (p LoanParameters) Months() int {
	return p.TermYears * 12
}

// MonthlyRate returns the periodic decimal rate.
func (p LoanParameters) MonthlyRate() float64 {
	return p.AnnualRatePercent / 100 / 12
}

// Compute returns the installment and totals for the loan. It panics with
// an error wrapping ErrPrecondition for a non-positive term, a negative
// principal or rate, or non-finite inputs.
func Compute(principal, annualRatePercent float64, termYears int) Result {
	return LoanParameters{
		Principal:         principal,
		AnnualRatePercent: annualRatePercent,
		TermYears:         termYears,
	}.Compute()
}

// Compute is the method form of the package-level Compute.
func (p LoanParameters) Compute() Result {
	if err := p.Validate(); err != nil {
		panic(err)
	}

	n := float64(p.Months())
	installment := installment(p.Principal, p.MonthlyRate(), n)
	totalPayable := installment * n

	return Result{
		MonthlyInstallment: installment,
		TotalPayable:       totalPayable,
		TotalInterest:      totalPayable - p.Principal,
	}
}

func installment(principal, monthlyRate, n float64) float64 {
	if principal == 0 {
		return 0
	}
	if monthlyRate == 0 {
		return principal / n
	}

	growth := math.Pow(1+monthlyRate, n)
	// A rate too small to register in float64 leaves growth at exactly 1.
	if growth-1 == 0 {
		return principal / n
	}
	return principal * monthlyRate * growth / (growth - 1)
}
