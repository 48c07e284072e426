package bootstrap

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"isavralabel.com/sikus/internal/model"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Report{},
	)
}

// SeedAdminUser creates a development admin account. Never called outside
// APP_ENV=development.
func SeedAdminUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.User{}).
		Where("email = ?", "admin@sikus.local").
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("Admin user already exists, skipping seed")
		return nil
	}

	password := "admin123"
	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	adminUser := model.User{
		Nama:         "Administrator",
		Alamat:       "-",
		Jabatan:      "Admin",
		NomorPTPS:    "ADM-001",
		Kelurahan:    "-",
		Kecamatan:    "-",
		NomorHP:      "-",
		Email:        "admin@sikus.local",
		PasswordHash: string(hashedPasswordBytes),
		Role:         model.RoleAdmin,
		Status:       model.StatusApproved,
	}

	if err := db.Create(&adminUser).Error; err != nil {
		return err
	}

	log.Println("Admin user seeded successfully")
	log.Println("   Email: admin@sikus.local")
	log.Println("   Password: admin123")

	return nil
}
