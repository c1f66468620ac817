package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/KevCav575/crm-simple/models"
)

// openTestDB gives each test its own in-memory database. cache=shared keeps
// every pooled connection on the same database.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, models.Migrate(db))
	return db
}

func createUser(t *testing.T, db *gorm.DB, email string) uint {
	t.Helper()
	user := models.User{Name: "Test User", Email: email, Password: "hash"}
	require.NoError(t, db.Create(&user).Error)
	return user.ID
}

func createCustomer(t *testing.T, db *gorm.DB, userID uint, name string) models.Customer {
	t.Helper()
	repo := &CustomerRepository{DB: db}
	customer, err := repo.Create(userID, models.CustomerRequest{
		Name:    name,
		Company: name + " Inc",
		Email:   strings.ToLower(name) + "@example.com",
	})
	require.NoError(t, err)
	return *customer
}

func strPtr(s string) *string { return &s }

func uintPtr(v uint) *uint { return &v }

func floatPtr(v float64) *float64 { return &v }
