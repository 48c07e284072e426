package service

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"isavralabel.com/sikus/internal/model"
)

var testDBSeq atomic.Int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:svc%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Report{}))
	return db
}

func createUser(t *testing.T, db *gorm.DB, email, nomorPTPS string, role model.Role, status model.AccountStatus) *model.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &model.User{
		Nama:         "Petugas " + nomorPTPS,
		Alamat:       "Jl. Merdeka No. 1",
		Jabatan:      "PTPS",
		NomorPTPS:    nomorPTPS,
		Kelurahan:    "Gambir",
		Kecamatan:    "Gambir",
		NomorHP:      "081200000000",
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Status:       status,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}
