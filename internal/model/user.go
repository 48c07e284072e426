package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

type AccountStatus string

const (
	StatusPending  AccountStatus = "pending"
	StatusApproved AccountStatus = "approved"
)

func (s AccountStatus) Valid() bool {
	return s == StatusPending || s == StatusApproved
}

type User struct {
	ID           uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	Nama         string        `gorm:"size:100;not null" json:"nama"`
	Alamat       string        `gorm:"type:text" json:"alamat"`
	Jabatan      string        `gorm:"size:100" json:"jabatan"`
	NomorPTPS    string        `gorm:"size:50;uniqueIndex;not null" json:"nomor_ptps"`
	Kelurahan    string        `gorm:"size:100" json:"kelurahan"`
	Kecamatan    string        `gorm:"size:100" json:"kecamatan"`
	NomorHP      string        `gorm:"size:30" json:"nomor_hp"`
	Email        string        `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string        `gorm:"size:255;not null" json:"-"`
	Role         Role          `gorm:"size:20;not null;default:user" json:"role"`
	Status       AccountStatus `gorm:"size:20;not null;default:pending" json:"status"`
	CreatedAt    time.Time     `gorm:"autoCreateTime" json:"created_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
