package scheduler

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"canteen/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDb(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.ShopCart{},
		&models.Menu{},
		&models.History{},
		&models.OrderItem{},
		&models.Sale{},
	))
	return db
}

func TestClearShopCartEmptiesAllCarts(t *testing.T) {
	db := testDb(t)
	tasks := NewTasks(db)

	for i, userID := range []uint{1, 1, 2} {
		cart := models.ShopCart{
			UserID: userID, Name: fmt.Sprintf("dish-%d", i), Unit: "bowl",
			Weight: 1, Price: 500, TotalPrice: 500,
		}
		require.NoError(t, db.Create(&cart).Error)
	}

	tasks.ClearShopCart()

	var count int64
	db.Model(&models.ShopCart{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestAddHistoryMenuIsIdempotent(t *testing.T) {
	db := testDb(t)
	tasks := NewTasks(db)

	menuA := models.Menu{Name: "braised pork", Category: "main", Unit: "plate", Price: 1500}
	menuB := models.Menu{Name: "egg soup", Category: "soup", Unit: "bowl", Price: 300}
	require.NoError(t, db.Create(&menuA).Error)
	require.NoError(t, db.Create(&menuB).Error)

	tasks.AddHistoryMenu()
	tasks.AddHistoryMenu()

	var histories []models.History
	require.NoError(t, db.Find(&histories).Error)
	require.Len(t, histories, 1)

	today := time.Now().Format("2006-01-02")
	assert.Equal(t, fmt.Sprintf("%s~%s", today, today), histories[0].TimeRange)

	ids := strings.Split(histories[0].MenuIDs, ",")
	assert.ElementsMatch(t, []string{
		fmt.Sprintf("%d", menuA.ID),
		fmt.Sprintf("%d", menuB.ID),
	}, ids)
}

func TestAddMonthSaleTotalsLastMonthOnly(t *testing.T) {
	db := testDb(t)
	tasks := NewTasks(db)

	now := time.Now()
	lastMonth := time.Date(now.Year(), now.Month(), 1, 12, 0, 0, 0, now.Location()).AddDate(0, -1, 0)

	inRange := []int64{1200, 800}
	for i, price := range inRange {
		item := models.OrderItem{OrderID: uint(i + 1), Name: "dish", Unit: "plate", Weight: 1, Price: price, TotalPrice: price}
		require.NoError(t, db.Create(&item).Error)
		require.NoError(t, db.Model(&item).Update("created_at", lastMonth.AddDate(0, 0, i)).Error)
	}

	// This month's item stays out of the rollup
	current := models.OrderItem{OrderID: 3, Name: "dish", Unit: "plate", Weight: 1, Price: 9999, TotalPrice: 9999}
	require.NoError(t, db.Create(&current).Error)

	tasks.AddMonthSale()

	var sale models.Sale
	require.NoError(t, db.First(&sale).Error)
	assert.Equal(t, lastMonth.Format("2006-01"), sale.Month)
	assert.EqualValues(t, 2000, sale.TotalPrice)
}
