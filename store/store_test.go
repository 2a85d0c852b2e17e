package store

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"github.com/tripleAay/FarmApp-backend/models"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Product{},
		&models.Cart{},
		&models.CartLine{},
		&models.Order{},
		&models.OrderLine{},
	))
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, id, name string, price float64, farmerID string) {
	t.Helper()
	require.NoError(t, db.Create(&models.Product{
		ID:        id,
		Name:      name,
		Price:     price,
		Thumbnail: "/uploads/" + id + ".jpg",
		FarmerID:  farmerID,
		Stock:     20,
	}).Error)
}
