package dto

import (
	"time"

	"github.com/google/uuid"
	"isavralabel.com/sikus/internal/model"
)

type SubmitReportInput struct {
	UraianKejadian   string  `json:"uraian_kejadian" binding:"required"`
	TindakLanjutPTPS *string `json:"tindak_lanjut_ptps"`
	TindakLanjutKPPS *string `json:"tindak_lanjut_kpps"`
}

type UpdateReportStatusInput struct {
	Status model.ReportStatus `json:"status" binding:"required"`
}

// ReportItem is a report row joined with its reporter's identity fields.
type ReportItem struct {
	ID               uuid.UUID          `json:"id"`
	UserID           uuid.UUID          `json:"user_id"`
	UraianKejadian   string             `json:"uraian_kejadian"`
	TindakLanjutPTPS *string            `json:"tindak_lanjut_ptps"`
	TindakLanjutKPPS *string            `json:"tindak_lanjut_kpps"`
	Status           model.ReportStatus `json:"status"`
	CreatedAt        time.Time          `json:"created_at"`
	Nama             string             `json:"nama"`
	NomorPTPS        string             `json:"nomor_ptps"`
	Kelurahan        string             `json:"kelurahan"`
	Kecamatan        string             `json:"kecamatan"`
}

type ListQuery struct {
	Page  int `form:"page,default=1" binding:"min=1"`
	Limit int `form:"limit,default=10" binding:"min=1,max=100"`
}

type ExportQuery struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}
