package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"foodapi/database"
	"foodapi/models"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.OpenSQLite(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func seedShop(t *testing.T, db *gorm.DB, rate float64) models.Shop {
	t.Helper()
	shop := models.Shop{Name: "Noodle House", Type: 1, Rate: rate, IsActive: true}
	require.NoError(t, db.Create(&shop).Error)
	return shop
}

func seedDish(t *testing.T, db *gorm.DB, shopID uint, rate float64) models.Dish {
	t.Helper()
	dish := models.Dish{ShopID: shopID, Name: "Beef Noodles", Price: 2800, Rate: rate}
	require.NoError(t, db.Create(&dish).Error)
	return dish
}

func seedComments(t *testing.T, db *gorm.DB, dishID uint, rates ...float64) {
	t.Helper()
	for i, rate := range rates {
		c := models.Comment{
			UserID:     uint(i + 1),
			UserName:   fmt.Sprintf("user-%d", i+1),
			UserAvatar: "https://example.com/a.png",
			DishID:     dishID,
			Comment:    "ok",
			Rate:       rate,
		}
		require.NoError(t, db.Create(&c).Error)
	}
}

func reloadDish(t *testing.T, db *gorm.DB, id uint) models.Dish {
	t.Helper()
	var dish models.Dish
	require.NoError(t, db.First(&dish, id).Error)
	return dish
}

func reloadShop(t *testing.T, db *gorm.DB, id uint) models.Shop {
	t.Helper()
	var shop models.Shop
	require.NoError(t, db.First(&shop, id).Error)
	return shop
}

func countComments(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.Comment{}).Count(&n).Error)
	return n
}

type fakeModerator struct {
	passed bool
	err    error
	calls  int
	texts  []string
}

func (f *fakeModerator) CheckText(_ context.Context, content string) (bool, error) {
	f.calls++
	f.texts = append(f.texts, content)
	return f.passed, f.err
}
