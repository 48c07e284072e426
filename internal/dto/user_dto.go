package dto

import "isavralabel.com/sikus/internal/model"

type UpdateUserStatusInput struct {
	Status model.AccountStatus `json:"status" binding:"required"`
}

type UpdateUserInput struct {
	Nama      string     `json:"nama" binding:"required,max=100"`
	Alamat    string     `json:"alamat" binding:"required"`
	Jabatan   string     `json:"jabatan" binding:"required,max=100"`
	NomorPTPS string     `json:"nomor_ptps" binding:"required,max=50"`
	Kelurahan string     `json:"kelurahan" binding:"required,max=100"`
	Kecamatan string     `json:"kecamatan" binding:"required,max=100"`
	NomorHP   string     `json:"nomor_hp" binding:"required,max=30"`
	Email     string     `json:"email" binding:"required,email,max=100"`
	Role      model.Role `json:"role" binding:"required"`
	Password  string     `json:"password"`
}

// StatsResponse backs the dashboard cards.
type StatsResponse struct {
	TotalReports     int64 `json:"total_reports"`
	PendingReports   int64 `json:"pending_reports"`
	CompletedReports int64 `json:"completed_reports"`
	PendingUsers     int64 `json:"pending_users,omitempty"`
}
