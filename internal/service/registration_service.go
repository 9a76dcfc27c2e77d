package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/listquery"
	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/metrics"
	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/models"
	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/repository"
)

// RegistrationService handles registration business logic
type RegistrationService interface {
	Submit(ctx context.Context, req *RegistrationRequest) (*models.Registration, error)
	List(ctx context.Context, params listquery.Params) (*models.ListResult[*models.Registration], error)
	GetByID(ctx context.Context, id int64) (*models.Registration, error)
	UpdateStatus(ctx context.Context, id int64, req *StatusRequest) (*models.Registration, error)
	Delete(ctx context.Context, id int64) error
}

type registrationService struct {
	repo     repository.RegistrationRepository
	notifier LeadNotifier
	logger   *slog.Logger
	now      func() time.Time
}

// NewRegistrationService creates a new registration service
func NewRegistrationService(repo repository.RegistrationRepository, notifier LeadNotifier, logger *slog.Logger) RegistrationService {
	return &registrationService{repo: repo, notifier: notifier, logger: logger, now: time.Now}
}

func (s *registrationService) Submit(ctx context.Context, req *RegistrationRequest) (*models.Registration, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	reg := &models.Registration{
		Reference: uuid.New(),
		Kind:      req.Kind,
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		City:      strings.TrimSpace(req.City),
		Source:    req.Source,
		Status:    models.LeadStatusNew,
	}
	if reg.Source == "" {
		reg.Source = models.SourceWebsite
	}

	if req.VisitDate != "" {
		date, _ := time.Parse(time.DateOnly, req.VisitDate)
		today := s.now().UTC().Truncate(24 * time.Hour)
		if date.Before(today) {
			return nil, models.ErrInvalidFields(map[string]string{"visit_date": "must not be in the past"})
		}
		reg.VisitDate = &date
	}

	if err := s.repo.Create(ctx, reg); err != nil {
		s.logger.Error("failed to create registration",
			slog.String("error", err.Error()),
			slog.String("kind", reg.Kind),
		)
		return nil, err
	}

	metrics.LeadsSubmitted.WithLabelValues(models.LeadTypeRegistration, reg.Source).Inc()
	s.logger.Info("registration submitted",
		slog.Int64("registration_id", reg.ID),
		slog.String("reference", reg.Reference.String()),
		slog.String("kind", reg.Kind),
	)

	visit := ""
	if reg.VisitDate != nil {
		visit = reg.VisitDate.Format(time.DateOnly)
	}
	subject := fmt.Sprintf("New %s registration from %s", strings.ReplaceAll(reg.Kind, "_", " "), reg.Name)
	body := leadBody("A new registration was submitted on the website.", [][2]string{
		{"Reference", reg.Reference.String()},
		{"Name", reg.Name},
		{"Phone", reg.Phone},
		{"Email", reg.Email},
		{"City", reg.City},
		{"Visit date", visit},
		{"Source", reg.Source},
	})
	s.notifier.Notify(ctx, models.LeadTypeRegistration, reg.ID, subject, body)

	return reg, nil
}

func (s *registrationService) List(ctx context.Context, params listquery.Params) (*models.ListResult[*models.Registration], error) {
	return listResult(ctx, listquery.Build(params, models.RegistrationResource), s.repo.List)
}

func (s *registrationService) GetByID(ctx context.Context, id int64) (*models.Registration, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *registrationService) UpdateStatus(ctx context.Context, id int64, req *StatusRequest) (*models.Registration, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	reg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := checkTransition(reg.Status, req.Status); err != nil {
		return nil, err
	}
	if reg.Status == req.Status {
		return reg, nil
	}

	if err := s.repo.UpdateStatus(ctx, id, req.Status); err != nil {
		return nil, err
	}

	s.logger.Info("registration status updated",
		slog.Int64("registration_id", id),
		slog.String("from", reg.Status),
		slog.String("to", req.Status),
	)
	reg.Status = req.Status
	reg.UpdatedAt = s.now().UTC()

	return reg, nil
}

func (s *registrationService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("registration deleted", slog.Int64("registration_id", id))
	return nil
}
