package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"isavralabel.com/sikus/internal/model"
)

type ReportRepository interface {
	Create(ctx context.Context, report *model.Report) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Report, error)
	// FindAll lists newest first. A non-nil ownerID restricts to that user's
	// reports; nil returns every report.
	FindAll(ctx context.Context, ownerID *uuid.UUID, offset, limit int) ([]*model.Report, int64, error)
	FindByCreatedRange(ctx context.Context, from, to *time.Time) ([]*model.Report, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.ReportStatus) error
	CountByStatus(ctx context.Context, ownerID *uuid.UUID, status model.ReportStatus) (int64, error)
	Count(ctx context.Context, ownerID *uuid.UUID) (int64, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(ctx context.Context, report *model.Report) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *reportRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Report, error) {
	var report model.Report
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("id = ?", id).
		First(&report).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *reportRepository) FindAll(ctx context.Context, ownerID *uuid.UUID, offset, limit int) ([]*model.Report, int64, error) {
	var reports []*model.Report
	var total int64

	query := r.db.WithContext(ctx).Model(&model.Report{})
	if ownerID != nil {
		query = query.Where("user_id = ?", ownerID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("User").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&reports).Error; err != nil {
		return nil, 0, err
	}

	return reports, total, nil
}

func (r *reportRepository) FindByCreatedRange(ctx context.Context, from, to *time.Time) ([]*model.Report, error) {
	var reports []*model.Report

	query := r.db.WithContext(ctx).Preload("User")
	if from != nil {
		query = query.Where("created_at >= ?", from)
	}
	if to != nil {
		query = query.Where("created_at < ?", to)
	}

	if err := query.Order("created_at DESC").Find(&reports).Error; err != nil {
		return nil, err
	}

	return reports, nil
}

func (r *reportRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.ReportStatus) error {
	return r.db.WithContext(ctx).
		Model(&model.Report{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *reportRepository) CountByStatus(ctx context.Context, ownerID *uuid.UUID, status model.ReportStatus) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&model.Report{}).
		Where("status = ?", status)
	if ownerID != nil {
		query = query.Where("user_id = ?", ownerID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *reportRepository) Count(ctx context.Context, ownerID *uuid.UUID) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&model.Report{})
	if ownerID != nil {
		query = query.Where("user_id = ?", ownerID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
