package menuController

import (
	"fmt"
	"testing"
	"time"

	"canteen/models"
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
	require.NoError(t, db.AutoMigrate(&models.Menu{}))
	return db
}

func seedMenuAt(t *testing.T, db *gorm.DB, name string, createdAt time.Time) models.Menu {
	t.Helper()
	menu := models.Menu{Name: name, Category: "main", Unit: "plate", Price: 1000}
	menu.CreatedAt = createdAt
	require.NoError(t, db.Create(&menu).Error)
	return menu
}

func TestWindowQueryFiltersByCreatedAt(t *testing.T) {
	db := testDb(t)

	deadline := timewindow.MustParseTimeOfDay(timewindow.DefaultOrderDeadline)
	mealStart := timewindow.MustParseTimeOfDay(timewindow.DefaultMealStartTime)

	now := time.Date(2025, 6, 10, 8, 0, 0, 0, time.Local)
	today := timewindow.TodayMenuWindow(now, deadline, mealStart)
	tomorrow := timewindow.TomorrowMenuWindow(now, deadline, mealStart)

	inToday := seedMenuAt(t, db, "braised pork", today.Start)
	seedMenuAt(t, db, "egg soup", today.Start.Add(time.Hour))
	inTomorrow := seedMenuAt(t, db, "fried rice", tomorrow.Start)
	seedMenuAt(t, db, "stale dish", today.Start.AddDate(0, 0, -3))

	var todayMenus []models.Menu
	require.NoError(t, windowQuery(db, today).Find(&todayMenus).Error)
	require.Len(t, todayMenus, 2)
	todayIDs := []uint{todayMenus[0].ID, todayMenus[1].ID}
	assert.Contains(t, todayIDs, inToday.ID)

	var tomorrowMenus []models.Menu
	require.NoError(t, windowQuery(db, tomorrow).Find(&tomorrowMenus).Error)
	require.Len(t, tomorrowMenus, 1)
	assert.Equal(t, inTomorrow.ID, tomorrowMenus[0].ID)

	// The window end is exclusive, so a row at the boundary belongs to
	// the next window only
	boundary := seedMenuAt(t, db, "boundary dish", today.End)
	var again []models.Menu
	require.NoError(t, windowQuery(db, today).Find(&again).Error)
	assert.Len(t, again, 2)
	assert.NotContains(t, []uint{again[0].ID, again[1].ID}, boundary.ID)
}

func TestWindowQueryNameFilter(t *testing.T) {
	db := testDb(t)

	deadline := timewindow.MustParseTimeOfDay(timewindow.DefaultOrderDeadline)
	mealStart := timewindow.MustParseTimeOfDay(timewindow.DefaultMealStartTime)
	now := time.Date(2025, 6, 10, 8, 0, 0, 0, time.Local)
	today := timewindow.TodayMenuWindow(now, deadline, mealStart)

	seedMenuAt(t, db, "braised pork", today.Start)
	seedMenuAt(t, db, "egg soup", today.Start)

	var count int64
	windowQuery(db, today).Where("name = ?", "egg soup").Count(&count)
	assert.EqualValues(t, 1, count)
}
