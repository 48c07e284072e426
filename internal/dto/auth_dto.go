package dto

import (
	"github.com/google/uuid"
	"isavralabel.com/sikus/internal/model"
)

type RegisterInput struct {
	Nama      string `json:"nama" binding:"required,max=100"`
	Alamat    string `json:"alamat" binding:"required"`
	Jabatan   string `json:"jabatan" binding:"required,max=100"`
	NomorPTPS string `json:"nomor_ptps" binding:"required,max=50"`
	Kelurahan string `json:"kelurahan" binding:"required,max=100"`
	Kecamatan string `json:"kecamatan" binding:"required,max=100"`
	NomorHP   string `json:"nomor_hp" binding:"required,max=30"`
	Email     string `json:"email" binding:"required,email,max=100"`
	Password  string `json:"password" binding:"required,min=6"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserProjection is the public view of an account; it never carries the hash.
type UserProjection struct {
	ID    uuid.UUID  `json:"id"`
	Email string     `json:"email"`
	Role  model.Role `json:"role"`
	Nama  string     `json:"nama"`
}

type LoginResponse struct {
	Message string         `json:"message"`
	Token   string         `json:"token"`
	User    UserProjection `json:"user"`
}

func ProjectUser(u *model.User) UserProjection {
	return UserProjection{
		ID:    u.ID,
		Email: u.Email,
		Role:  u.Role,
		Nama:  u.Nama,
	}
}
