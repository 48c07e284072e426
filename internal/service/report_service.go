package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
	"isavralabel.com/sikus/internal/dto"
	"isavralabel.com/sikus/internal/model"
	"isavralabel.com/sikus/internal/repository"
	"isavralabel.com/sikus/pkg/apperror"
)

type ReportService interface {
	Submit(ctx context.Context, userID uuid.UUID, input dto.SubmitReportInput) (uuid.UUID, error)
	List(ctx context.Context, requesterID uuid.UUID, requesterRole model.Role, page, limit int) ([]dto.ReportItem, int64, error)
	UpdateStatus(ctx context.Context, requesterRole model.Role, reportID uuid.UUID, status model.ReportStatus) error
}

type reportService struct {
	repo      repository.ReportRepository
	sanitizer *bluemonday.Policy
}

func NewReportService(repo repository.ReportRepository) ReportService {
	return &reportService{
		repo: repo,
		// Narratives come from a rich-text editor; markup is scrubbed before
		// it ever reaches the store.
		sanitizer: bluemonday.UGCPolicy(),
	}
}

func (s *reportService) Submit(ctx context.Context, userID uuid.UUID, input dto.SubmitReportInput) (uuid.UUID, error) {
	narrative := s.sanitizer.Sanitize(input.UraianKejadian)
	if strings.TrimSpace(stripTags(narrative)) == "" {
		return uuid.Nil, apperror.Validation("Uraian kejadian wajib diisi")
	}

	report := &model.Report{
		UserID:           userID,
		UraianKejadian:   narrative,
		TindakLanjutPTPS: normalizeOptional(input.TindakLanjutPTPS),
		TindakLanjutKPPS: normalizeOptional(input.TindakLanjutKPPS),
		Status:           model.ReportTerkirim,
	}

	if err := s.repo.Create(ctx, report); err != nil {
		return uuid.Nil, err
	}

	return report.ID, nil
}

func (s *reportService) List(ctx context.Context, requesterID uuid.UUID, requesterRole model.Role, page, limit int) ([]dto.ReportItem, int64, error) {
	var ownerID *uuid.UUID
	if requesterRole != model.RoleAdmin {
		ownerID = &requesterID
	}

	offset := (page - 1) * limit
	reports, total, err := s.repo.FindAll(ctx, ownerID, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	items := make([]dto.ReportItem, 0, len(reports))
	for _, r := range reports {
		items = append(items, toReportItem(r))
	}

	return items, total, nil
}

func (s *reportService) UpdateStatus(ctx context.Context, requesterRole model.Role, reportID uuid.UUID, status model.ReportStatus) error {
	if requesterRole != model.RoleAdmin {
		return apperror.ErrForbidden
	}

	if !status.Valid() {
		return apperror.Validation("Status laporan tidak valid")
	}

	if _, err := s.repo.FindByID(ctx, reportID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.ErrNotFound
		}
		return err
	}

	return s.repo.UpdateStatus(ctx, reportID, status)
}

func toReportItem(r *model.Report) dto.ReportItem {
	return dto.ReportItem{
		ID:               r.ID,
		UserID:           r.UserID,
		UraianKejadian:   r.UraianKejadian,
		TindakLanjutPTPS: r.TindakLanjutPTPS,
		TindakLanjutKPPS: r.TindakLanjutKPPS,
		Status:           r.Status,
		CreatedAt:        r.CreatedAt,
		Nama:             r.User.Nama,
		NomorPTPS:        r.User.NomorPTPS,
		Kelurahan:        r.User.Kelurahan,
		Kecamatan:        r.User.Kecamatan,
	}
}

func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
