package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReportStatus string

const (
	ReportTerkirim ReportStatus = "Terkirim"
	ReportDiterima ReportStatus = "Diterima"
	ReportDiproses ReportStatus = "Diproses"
	ReportSelesai  ReportStatus = "Selesai"
)

func (s ReportStatus) Valid() bool {
	switch s {
	case ReportTerkirim, ReportDiterima, ReportDiproses, ReportSelesai:
		return true
	}
	return false
}

type Report struct {
	ID               uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID           uuid.UUID    `gorm:"type:uuid;not null;index" json:"user_id"`
	User             User         `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	UraianKejadian   string       `gorm:"type:text;not null" json:"uraian_kejadian"`
	TindakLanjutPTPS *string      `gorm:"type:text" json:"tindak_lanjut_ptps,omitempty"`
	TindakLanjutKPPS *string      `gorm:"type:text" json:"tindak_lanjut_kpps,omitempty"`
	Status           ReportStatus `gorm:"size:20;not null;default:Terkirim" json:"status"`
	CreatedAt        time.Time    `gorm:"autoCreateTime" json:"created_at"`
}

func (r *Report) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
