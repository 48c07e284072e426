package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"isavralabel.com/sikus/internal/dto"
	"isavralabel.com/sikus/internal/model"
	"isavralabel.com/sikus/internal/repository"
	"isavralabel.com/sikus/pkg/apperror"
)

func TestDeleteUserRejectsSelf(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(repository.NewUserRepository(db))
	ctx := context.Background()

	admin := createUser(t, db, "admin@x.com", "A1", model.RoleAdmin, model.StatusApproved)

	err := svc.DeleteUser(ctx, admin.ID, admin.ID)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	var count int64
	require.NoError(t, db.Model(&model.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestDeleteUserRemovesExactlyOne(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(repository.NewUserRepository(db))
	ctx := context.Background()

	admin := createUser(t, db, "admin@x.com", "A1", model.RoleAdmin, model.StatusApproved)
	target := createUser(t, db, "a@x.com", "P1", model.RoleUser, model.StatusApproved)
	bystander := createUser(t, db, "b@x.com", "P2", model.RoleUser, model.StatusApproved)

	require.NoError(t, svc.DeleteUser(ctx, target.ID, admin.ID))

	var remaining []model.User
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 2)
	for _, u := range remaining {
		assert.NotEqual(t, target.ID, u.ID)
	}
	assert.NoError(t, db.First(&model.User{}, "id = ?", bystander.ID).Error)
}

func TestUpdateUserStatusBothDirections(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(repository.NewUserRepository(db))
	ctx := context.Background()

	user := createUser(t, db, "a@x.com", "P1", model.RoleUser, model.StatusPending)

	require.NoError(t, svc.UpdateUserStatus(ctx, user.ID, model.StatusApproved))
	var got model.User
	require.NoError(t, db.First(&got, "id = ?", user.ID).Error)
	assert.Equal(t, model.StatusApproved, got.Status)

	// Approval can be revoked.
	require.NoError(t, svc.UpdateUserStatus(ctx, user.ID, model.StatusPending))
	require.NoError(t, db.First(&got, "id = ?", user.ID).Error)
	assert.Equal(t, model.StatusPending, got.Status)

	err := svc.UpdateUserStatus(ctx, user.ID, model.AccountStatus("banned"))
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestUpdateUserUniquenessAgainstOthers(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(repository.NewUserRepository(db))
	ctx := context.Background()

	user := createUser(t, db, "a@x.com", "P1", model.RoleUser, model.StatusApproved)
	createUser(t, db, "b@x.com", "P2", model.RoleUser, model.StatusApproved)

	input := dto.UpdateUserInput{
		Nama:      "Budi",
		Alamat:    "Jl. Baru",
		Jabatan:   "PTPS",
		NomorPTPS: "P2", // taken by the other user
		Kelurahan: "Gambir",
		Kecamatan: "Gambir",
		NomorHP:   "0812",
		Email:     "a@x.com",
		Role:      model.RoleUser,
	}
	err := svc.UpdateUser(ctx, user.ID, input)
	assert.ErrorIs(t, err, apperror.ErrConflict)

	// Keeping one's own email/number is not a conflict.
	input.NomorPTPS = "P1"
	input.Role = model.RoleAdmin
	require.NoError(t, svc.UpdateUser(ctx, user.ID, input))

	var got model.User
	require.NoError(t, db.First(&got, "id = ?", user.ID).Error)
	assert.Equal(t, model.RoleAdmin, got.Role)
	assert.Equal(t, "Budi", got.Nama)
}

func TestListUsersPaginated(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(repository.NewUserRepository(db))
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		createUser(t, db, fmt.Sprintf("u%d@x.com", i), fmt.Sprintf("P%d", i), model.RoleUser, model.StatusPending)
	}

	users, total, err := svc.ListUsers(ctx, 2, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
	assert.Len(t, users, 2)
	for _, u := range users {
		assert.Empty(t, u.PasswordHash)
	}
}
