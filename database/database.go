package database

import (
	"staffdesk/models"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the backing Postgres store and prepares the schema. The
// returned handle is passed into the stores by the caller; there is no
// package-level connection.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	if err := Setup(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Setup migrates the schema and seeds the default admin. Split out from
// Connect so tests can run it against an in-memory database.
func Setup(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Employee{},
		&models.AttendanceRecord{},
		&models.Task{},
		&models.LeaveRequest{},
	)
	if err != nil {
		return err
	}

	return seedDefaultAdmin(db)
}

func seedDefaultAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Employee{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.Employee{
		EmployeeID: "ADMIN001",
		Name:       "Administrator",
		Password:   string(hashedPassword),
		Role:       models.RoleAdmin,
	}

	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	logrus.WithField("employee_id", admin.EmployeeID).
		Info("Default admin account created (password: admin123)")
	return nil
}
