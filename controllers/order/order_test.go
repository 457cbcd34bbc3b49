package orderController

import (
	"fmt"
	"testing"
	"time"

	"canteen/models"
	"canteen/timeconfig"
	"canteen/timewindow"

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
		&models.User{},
		&models.ShopCart{},
		&models.OrderForm{},
		&models.OrderItem{},
		&models.TimeConfig{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()
	user := models.User{Username: username, Password: "x", Name: "Test " + username}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedCart(t *testing.T, db *gorm.DB, userID uint, prices ...int64) {
	t.Helper()
	for i, price := range prices {
		cart := models.ShopCart{
			UserID: userID, Name: fmt.Sprintf("dish-%d", i), Unit: "plate",
			Weight: 1, Price: price, TotalPrice: price,
		}
		require.NoError(t, db.Create(&cart).Error)
	}
}

// 08:30 local on a fixed date, inside the first orderable period with
// the default 09:00:00 / 11:30:00 configuration
var orderableNow = time.Date(2025, 6, 10, 8, 30, 0, 0, time.Local)

func TestSubmitOrderHappyPath(t *testing.T) {
	db := testDb(t)
	store := timeconfig.NewStore(db)
	user := seedUser(t, db, "alice")
	seedCart(t, db, user.ID, 1200, 800)

	orderID, failMsg := submitOrder(db, store, orderableNow, user)
	require.Empty(t, failMsg)
	require.NotZero(t, orderID)

	var order models.OrderForm
	require.NoError(t, db.First(&order, orderID).Error)
	assert.Equal(t, user.ID, order.UserID)
	assert.EqualValues(t, 2000, order.OrderPrice)
	assert.True(t, order.OrderTime.Equal(orderableNow))

	var items []models.OrderItem
	require.NoError(t, db.Where("order_id = ?", orderID).Find(&items).Error)
	assert.Len(t, items, 2)

	// Cart is consumed by a successful submission
	var cartCount int64
	db.Model(&models.ShopCart{}).Where("user_id = ?", user.ID).Count(&cartCount)
	assert.EqualValues(t, 0, cartCount)
}

func TestSubmitOrderRejectsSecondInSameWindow(t *testing.T) {
	db := testDb(t)
	store := timeconfig.NewStore(db)
	user := seedUser(t, db, "bob")

	seedCart(t, db, user.ID, 500)
	orderID, failMsg := submitOrder(db, store, orderableNow, user)
	require.Empty(t, failMsg)
	require.NotZero(t, orderID)

	// Refill the cart and try again a few minutes later, same window
	seedCart(t, db, user.ID, 700)
	secondID, failMsg := submitOrder(db, store, orderableNow.Add(5*time.Minute), user)
	assert.Zero(t, secondID)
	assert.Contains(t, failMsg, "one order")

	var orderCount int64
	db.Model(&models.OrderForm{}).Where("user_id = ?", user.ID).Count(&orderCount)
	assert.EqualValues(t, 1, orderCount)
}

func TestSubmitOrderAllowedInNextWindow(t *testing.T) {
	db := testDb(t)
	store := timeconfig.NewStore(db)
	user := seedUser(t, db, "carol")

	seedCart(t, db, user.ID, 500)
	_, failMsg := submitOrder(db, store, orderableNow, user)
	require.Empty(t, failMsg)

	// After meal start the next window is live, so ordering reopens
	nextWindowNow := time.Date(2025, 6, 10, 13, 0, 0, 0, time.Local)
	seedCart(t, db, user.ID, 900)
	orderID, failMsg := submitOrder(db, store, nextWindowNow, user)
	assert.Empty(t, failMsg)
	assert.NotZero(t, orderID)
}

func TestSubmitOrderRejectedDuringDelivery(t *testing.T) {
	db := testDb(t)
	store := timeconfig.NewStore(db)
	user := seedUser(t, db, "dave")
	seedCart(t, db, user.ID, 500)

	deliveryNow := time.Date(2025, 6, 10, 10, 0, 0, 0, time.Local)
	orderID, failMsg := submitOrder(db, store, deliveryNow, user)
	assert.Zero(t, orderID)
	assert.Contains(t, failMsg, "delivery period")

	// The cart is untouched by a rejected submission
	var cartCount int64
	db.Model(&models.ShopCart{}).Where("user_id = ?", user.ID).Count(&cartCount)
	assert.EqualValues(t, 1, cartCount)
}

func TestSubmitOrderRejectsEmptyCart(t *testing.T) {
	db := testDb(t)
	store := timeconfig.NewStore(db)
	user := seedUser(t, db, "erin")

	orderID, failMsg := submitOrder(db, store, orderableNow, user)
	assert.Zero(t, orderID)
	assert.Contains(t, failMsg, "empty")
}

func TestHasOrderedInWindow(t *testing.T) {
	db := testDb(t)
	user := seedUser(t, db, "frank")

	window := timewindow.TodayMenuWindow(orderableNow,
		timewindow.MustParseTimeOfDay(timewindow.DefaultOrderDeadline),
		timewindow.MustParseTimeOfDay(timewindow.DefaultMealStartTime))

	ordered, err := hasOrderedInWindow(db, user.ID, window)
	require.NoError(t, err)
	assert.False(t, ordered)

	order := models.OrderForm{UserID: user.ID, Name: user.Name, OrderPrice: 100, OrderTime: orderableNow}
	require.NoError(t, db.Create(&order).Error)

	ordered, err = hasOrderedInWindow(db, user.ID, window)
	require.NoError(t, err)
	assert.True(t, ordered)

	// An order from a prior window does not count
	old := models.OrderForm{UserID: user.ID, Name: user.Name, OrderPrice: 100,
		OrderTime: orderableNow.AddDate(0, 0, -2)}
	require.NoError(t, db.Create(&old).Error)

	other, err := hasOrderedInWindow(db, 999, window)
	require.NoError(t, err)
	assert.False(t, other)
}
