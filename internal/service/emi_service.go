package service

import (
	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/emi"
	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/models"
	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/money"
)

// EMIService computes loan instalments for the public calculator
type EMIService interface {
	Calculate(req *EMIRequest) (*EMIResponse, error)
}

type emiService struct{}

// NewEMIService creates a new EMI service
func NewEMIService() EMIService {
	return emiService{}
}

func (emiService) Calculate(req *EMIRequest) (*EMIResponse, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	params := emi.LoanParameters{
		Principal:         req.Principal,
		AnnualRatePercent: req.AnnualRatePercent,
		TermYears:         req.TermYears,
	}
	if err := params.Validate(); err != nil {
		return nil, models.ErrInvalidInput(err.Error())
	}

	result := params.Compute()
	resp := &EMIResponse{
		Result: emi.Result{
			MonthlyInstallment: money.Round(result.MonthlyInstallment, 2),
			TotalPayable:       money.Round(result.TotalPayable, 2),
			TotalInterest:      money.Round(result.TotalInterest, 2),
		},
		Labels: EMILabels{
			MonthlyInstallment: money.FormatINR(result.MonthlyInstallment),
			TotalPayable:       money.FormatINR(result.TotalPayable),
			TotalInterest:      money.FormatINR(result.TotalInterest),
		},
	}

	if req.IncludeSchedule {
		for _, y := range emi.Schedule(params) {
			resp.Schedule = append(resp.Schedule, emi.YearSummary{
				Year:           y.Year,
				PrincipalPaid:  money.Round(y.PrincipalPaid, 2),
				InterestPaid:   money.Round(y.InterestPaid, 2),
				ClosingBalance: money.Round(y.ClosingBalance, 2),
			})
		}
	}

	return resp, nil
}
