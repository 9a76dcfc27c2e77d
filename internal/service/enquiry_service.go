package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/listquery"
	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/metrics"
	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/models"
	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/repository"
)

// MaxExportRows caps a single enquiry export.
const MaxExportRows = 10000

// EnquiryService handles enquiry business logic
type EnquiryService interface {
	// Submit stores a public enquiry and notifies the sales team
	Submit(ctx context.Context, req *EnquiryRequest) (*models.Enquiry, error)

	List(ctx context.Context, params listquery.Params) (*models.ListResult[*models.Enquiry], error)
	GetByID(ctx context.Context, id int64) (*models.Enquiry, error)
	UpdateStatus(ctx context.Context, id int64, req *StatusRequest) (*models.Enquiry, error)
	Delete(ctx context.Context, id int64) error

	// Export renders the enquiries matching params as an XLSX workbook,
	// ignoring the page window.
	Export(ctx context.Context, params listquery.Params) (filename string, data []byte, err error)
}

type enquiryService struct {
	repo         repository.EnquiryRepository
	propertyRepo repository.PropertyRepository
	notifier     LeadNotifier
	logger       *slog.Logger
	now          func() time.Time
}

// NewEnquiryService creates a new enquiry service
func NewEnquiryService(
	repo repository.EnquiryRepository,
	propertyRepo repository.PropertyRepository,
	notifier LeadNotifier,
	logger *slog.Logger,
) EnquiryService {
	return &enquiryService{
		repo:         repo,
		propertyRepo: propertyRepo,
		notifier:     notifier,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *enquiryService) Submit(ctx context.Context, req *EnquiryRequest) (*models.Enquiry, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	enquiry := &models.Enquiry{
		Reference:  uuid.New(),
		Kind:       req.Kind,
		Name:       strings.TrimSpace(req.Name),
		Email:      strings.TrimSpace(req.Email),
		Phone:      strings.TrimSpace(req.Phone),
		Message:    strings.TrimSpace(req.Message),
		PropertyID: req.PropertyID,
		Source:     req.Source,
		Status:     models.LeadStatusNew,
	}

	var propertyName string
	if req.PropertyID != nil {
		p, err := s.propertyRepo.GetByID(ctx, *req.PropertyID)
		if errors.Is(err, models.ErrNotFound) || (err == nil && !p.Published) {
			return nil, models.ErrInvalidFields(map[string]string{"property_id": "does not exist"})
		}
		if err != nil {
			return nil, err
		}
		propertyName = p.Name
	}

	if enquiry.Kind == "" {
		enquiry.Kind = models.EnquiryKindGeneral
		if enquiry.PropertyID != nil {
			enquiry.Kind = models.EnquiryKindProperty
		}
	}
	if enquiry.Source == "" {
		enquiry.Source = models.SourceWebsite
	}

	if err := s.repo.Create(ctx, enquiry); err != nil {
		s.logger.Error("failed to create enquiry",
			slog.String("error", err.Error()),
			slog.String("kind", enquiry.Kind),
		)
		return nil, err
	}

	metrics.LeadsSubmitted.WithLabelValues(models.LeadTypeEnquiry, enquiry.Source).Inc()
	s.logger.Info("enquiry submitted",
		slog.Int64("enquiry_id", enquiry.ID),
		slog.String("reference", enquiry.Reference.String()),
		slog.String("kind", enquiry.Kind),
		slog.String("source", enquiry.Source),
	)

	subject := fmt.Sprintf("New %s enquiry from %s", strings.ReplaceAll(enquiry.Kind, "_", " "), enquiry.Name)
	body := leadBody("A new enquiry was submitted on the website.", [][2]string{
		{"Reference", enquiry.Reference.String()},
		{"Name", enquiry.Name},
		{"Phone", enquiry.Phone},
		{"Email", enquiry.Email},
		{"Property", propertyName},
		{"Source", enquiry.Source},
		{"Message", enquiry.Message},
	})
	s.notifier.Notify(ctx, models.LeadTypeEnquiry, enquiry.ID, subject, body)

	return enquiry, nil
}

func (s *enquiryService) List(ctx context.Context, params listquery.Params) (*models.ListResult[*models.Enquiry], error) {
	return listResult(ctx, listquery.Build(params, models.EnquiryResource), s.repo.List)
}

func (s *enquiryService) GetByID(ctx context.Context, id int64) (*models.Enquiry, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *enquiryService) UpdateStatus(ctx context.Context, id int64, req *StatusRequest) (*models.Enquiry, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	enquiry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := checkTransition(enquiry.Status, req.Status); err != nil {
		return nil, err
	}
	if enquiry.Status == req.Status {
		return enquiry, nil
	}

	if err := s.repo.UpdateStatus(ctx, id, req.Status); err != nil {
		return nil, err
	}

	s.logger.Info("enquiry status updated",
		slog.Int64("enquiry_id", id),
		slog.String("from", enquiry.Status),
		slog.String("to", req.Status),
	)
	enquiry.Status = req.Status
	enquiry.UpdatedAt = s.now().UTC()

	return enquiry, nil
}

func (s *enquiryService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("enquiry deleted", slog.Int64("enquiry_id", id))
	return nil
}

func (s *enquiryService) Export(ctx context.Context, params listquery.Params) (string, []byte, error) {
	d := listquery.Build(params, models.EnquiryResource).Unpaged(MaxExportRows)

	enquiries, total, err := s.repo.List(ctx, d)
	if err != nil {
		return "", nil, fmt.Errorf("failed to list enquiries for export: %w", err)
	}
	if total > int64(len(enquiries)) {
		s.logger.Warn("enquiry export truncated",
			slog.Int64("total", total),
			slog.Int("exported", len(enquiries)),
		)
	}

	xl := excelize.NewFile()
	defer func() { _ = xl.Close() }()

	sheet := "Enquiries"
	if err := xl.SetSheetName(xl.GetSheetName(0), sheet); err != nil {
		return "", nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	header := []string{"id", "reference", "kind", "name", "email", "phone", "message", "property_id", "source", "status", "created_at"}
	if err := xl.SetSheetRow(sheet, "A1", &header); err != nil {
		return "", nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i, e := range enquiries {
		propertyID := ""
		if e.PropertyID != nil {
			propertyID = strconv.FormatInt(*e.PropertyID, 10)
		}
		record := []string{
			strconv.FormatInt(e.ID, 10),
			e.Reference.String(),
			e.Kind,
			e.Name,
			e.Email,
			e.Phone,
			e.Message,
			propertyID,
			e.Source,
			e.Status,
			e.CreatedAt.UTC().Format(time.RFC3339),
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := xl.SetSheetRow(sheet, cell, &record); err != nil {
			return "", nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	buf, err := xl.WriteToBuffer()
	if err != nil {
		return "", nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	filename := fmt.Sprintf("enquiries-%s.xlsx", s.now().UTC().Format("20060102-150405"))
	s.logger.Info("enquiries exported", slog.Int("rows", len(enquiries)))

	return filename, buf.Bytes(), nil
}

// checkTransition rejects backwards lead status moves.
func checkTransition(from, to string) error {
	if !models.CanTransitionLead(from, to) {
		return models.ErrConflictWithMsg(fmt.Sprintf("cannot move lead from '%s' to '%s'", from, to))
	}
	return nil
}
