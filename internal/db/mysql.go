package db

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"bragboard/internal/model"
)

const bcryptCost = 10

// NewMySQL returns a connected GORM DB instance.
func NewMySQL(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	return db, nil
}

// allModels lists every table owned by this service, dependents first so
// that Reset can drop them in FK-safe order.
func allModels() []interface{} {
	return []interface{}{
		&model.ShoutoutRecipient{},
		&model.Shoutout{},
		&model.Notification{},
		&model.Token{},
		&model.Employee{},
		&model.User{},
	}
}

// Reset drops all tables. Dev convenience behind RESET_DB only.
func Reset(db *gorm.DB) error {
	for _, m := range allModels() {
		if err := db.Migrator().DropTable(m); err != nil {
			return fmt.Errorf("drop table %T: %w", m, err)
		}
	}
	return nil
}

// Migrate creates or updates the schema for all models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Employee{},
		&model.Token{},
		&model.Notification{},
		&model.Shoutout{},
		&model.ShoutoutRecipient{},
	)
}

// SeedAdmin creates the admin account unless a user with that email already
// exists. Returns true when a new admin row was inserted.
func SeedAdmin(ctx context.Context, db *gorm.DB, email, name, password string) (bool, error) {
	var existing model.User
	err := db.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, fmt.Errorf("check admin existence: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return false, fmt.Errorf("hash admin password: %w", err)
	}

	admin := &model.User{
		Email:    email,
		FullName: name,
		Password: string(hash),
		Role:     model.RoleAdmin,
	}
	if err := db.WithContext(ctx).Create(admin).Error; err != nil {
		return false, fmt.Errorf("create admin: %w", err)
	}
	return true, nil
}
