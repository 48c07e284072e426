package service

import (
	"context"

	"github.com/google/uuid"
	"isavralabel.com/sikus/internal/dto"
	"isavralabel.com/sikus/internal/model"
	"isavralabel.com/sikus/internal/repository"
)

type StatService interface {
	GetDashboardStats(ctx context.Context, requesterID uuid.UUID, requesterRole model.Role) (*dto.StatsResponse, error)
}

type statService struct {
	userRepo   repository.UserRepository
	reportRepo repository.ReportRepository
}

func NewStatService(userRepo repository.UserRepository, reportRepo repository.ReportRepository) StatService {
	return &statService{
		userRepo:   userRepo,
		reportRepo: reportRepo,
	}
}

func (s *statService) GetDashboardStats(ctx context.Context, requesterID uuid.UUID, requesterRole model.Role) (*dto.StatsResponse, error) {
	var ownerID *uuid.UUID
	if requesterRole != model.RoleAdmin {
		ownerID = &requesterID
	}

	total, err := s.reportRepo.Count(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	pending, err := s.reportRepo.CountByStatus(ctx, ownerID, model.ReportTerkirim)
	if err != nil {
		return nil, err
	}

	completed, err := s.reportRepo.CountByStatus(ctx, ownerID, model.ReportSelesai)
	if err != nil {
		return nil, err
	}

	stats := &dto.StatsResponse{
		TotalReports:     total,
		PendingReports:   pending,
		CompletedReports: completed,
	}

	if requesterRole == model.RoleAdmin {
		pendingUsers, err := s.userRepo.CountByStatus(ctx, model.StatusPending)
		if err != nil {
			return nil, err
		}
		stats.PendingUsers = pendingUsers
	}

	return stats, nil
}
