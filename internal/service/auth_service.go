package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"isavralabel.com/sikus/internal/dto"
	"isavralabel.com/sikus/internal/model"
	"isavralabel.com/sikus/internal/repository"
	"isavralabel.com/sikus/internal/token"
	"isavralabel.com/sikus/pkg/apperror"
)

type AuthService interface {
	Register(ctx context.Context, input dto.RegisterInput) error
	Login(ctx context.Context, input dto.LoginInput) (*dto.LoginResponse, error)
	Me(ctx context.Context, userID uuid.UUID) (*dto.UserProjection, error)
}

type authService struct {
	repo   repository.UserRepository
	tokens *token.Service
}

func NewAuthService(repo repository.UserRepository, tokens *token.Service) AuthService {
	return &authService{
		repo:   repo,
		tokens: tokens,
	}
}

// One message for unknown email and wrong password; the status gate is the
// only distinguishable rejection.
func errInvalidCredentials() error {
	return apperror.New(http.StatusBadRequest, "Email atau password salah", apperror.ErrUnauthorized)
}

func (s *authService) Register(ctx context.Context, input dto.RegisterInput) error {
	existing, err := s.repo.FindByEmailOrNomorPTPS(ctx, input.Email, input.NomorPTPS, nil)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return apperror.Conflict("Email atau Nomor PTPS sudah terdaftar")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Nama:         input.Nama,
		Alamat:       input.Alamat,
		Jabatan:      input.Jabatan,
		NomorPTPS:    input.NomorPTPS,
		Kelurahan:    input.Kelurahan,
		Kecamatan:    input.Kecamatan,
		NomorHP:      input.NomorHP,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		Role:         model.RoleUser,
		Status:       model.StatusPending,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		// Two concurrent registrations can both pass the probe; the unique
		// index settles it.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperror.Conflict("Email atau Nomor PTPS sudah terdaftar")
		}
		return err
	}

	return nil
}

func (s *authService) Login(ctx context.Context, input dto.LoginInput) (*dto.LoginResponse, error) {
	user, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errInvalidCredentials()
		}
		return nil, err
	}

	// Approval is checked before the password is ever compared.
	if user.Status != model.StatusApproved {
		return nil, apperror.Validation("Akun Anda belum disetujui admin")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, errInvalidCredentials()
	}

	signed, _, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Message: "Login berhasil",
		Token:   signed,
		User:    dto.ProjectUser(user),
	}, nil
}

func (s *authService) Me(ctx context.Context, userID uuid.UUID) (*dto.UserProjection, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}

	projection := dto.ProjectUser(user)
	return &projection, nil
}
