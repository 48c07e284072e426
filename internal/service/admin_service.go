package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"isavralabel.com/sikus/internal/dto"
	"isavralabel.com/sikus/internal/model"
	"isavralabel.com/sikus/internal/repository"
	"isavralabel.com/sikus/pkg/apperror"
)

type AdminService interface {
	ListUsers(ctx context.Context, page, limit int) ([]*model.User, int64, error)
	UpdateUserStatus(ctx context.Context, id uuid.UUID, status model.AccountStatus) error
	UpdateUser(ctx context.Context, id uuid.UUID, input dto.UpdateUserInput) error
	DeleteUser(ctx context.Context, id, requesterID uuid.UUID) error
}

type adminService struct {
	repo repository.UserRepository
}

func NewAdminService(repo repository.UserRepository) AdminService {
	return &adminService{repo: repo}
}

func (s *adminService) ListUsers(ctx context.Context, page, limit int) ([]*model.User, int64, error) {
	offset := (page - 1) * limit
	users, total, err := s.repo.FindAll(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	for _, u := range users {
		u.PasswordHash = ""
	}

	return users, total, nil
}

func (s *adminService) UpdateUserStatus(ctx context.Context, id uuid.UUID, status model.AccountStatus) error {
	if !status.Valid() {
		return apperror.Validation("Status user tidak valid")
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.ErrNotFound
		}
		return err
	}

	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *adminService) UpdateUser(ctx context.Context, id uuid.UUID, input dto.UpdateUserInput) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.ErrNotFound
		}
		return err
	}

	if !input.Role.Valid() {
		return apperror.Validation("Role tidak valid")
	}

	conflicts, err := s.repo.FindByEmailOrNomorPTPS(ctx, input.Email, input.NomorPTPS, &id)
	if err != nil {
		return err
	}
	if len(conflicts) > 0 {
		return apperror.Conflict("Email atau Nomor PTPS sudah digunakan oleh user lain")
	}

	user.Nama = input.Nama
	user.Alamat = input.Alamat
	user.Jabatan = input.Jabatan
	user.NomorPTPS = input.NomorPTPS
	user.Kelurahan = input.Kelurahan
	user.Kecamatan = input.Kecamatan
	user.NomorHP = input.NomorHP
	user.Email = input.Email
	user.Role = input.Role

	if input.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = string(hashedPassword)
	}

	if err := s.repo.Update(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperror.Conflict("Email atau Nomor PTPS sudah digunakan oleh user lain")
		}
		return err
	}

	return nil
}

func (s *adminService) DeleteUser(ctx context.Context, id, requesterID uuid.UUID) error {
	if id == requesterID {
		return apperror.Validation("Tidak dapat menghapus akun sendiri")
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.ErrNotFound
		}
		return err
	}

	return s.repo.Delete(ctx, id)
}
