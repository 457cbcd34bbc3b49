package timeconfig

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
	require.NoError(t, db.AutoMigrate(&models.TimeConfig{}))
	return db
}

func TestCurrentSynthesizesDefaults(t *testing.T) {
	store := NewStore(testDb(t))

	config := store.Current()
	assert.Equal(t, timewindow.DefaultOrderDeadline, config.OrderDeadline)
	assert.Equal(t, timewindow.DefaultMealStartTime, config.MealStartTime)
	assert.NotZero(t, config.ID)

	// The default row is persisted, not re-created on every read
	store.Current()
	var count int64
	store.Db.Model(&models.TimeConfig{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestCurrentServesDefaultsOnReadError(t *testing.T) {
	db := testDb(t)
	store := NewStore(db)

	// Break reads without producing a not-found
	require.NoError(t, db.Migrator().DropTable(&models.TimeConfig{}))

	config := store.Current()
	assert.Equal(t, timewindow.DefaultOrderDeadline, config.OrderDeadline)
	assert.Equal(t, timewindow.DefaultMealStartTime, config.MealStartTime)
	assert.Zero(t, config.ID)

	// No default row was written while reads were failing
	require.NoError(t, db.AutoMigrate(&models.TimeConfig{}))
	var count int64
	db.Model(&models.TimeConfig{}).Count(&count)
	assert.EqualValues(t, 0, count)

	// Once reads work again the not-found path synthesizes exactly one row
	store.Current()
	store.Current()
	db.Model(&models.TimeConfig{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestUpdateRequiresBothFields(t *testing.T) {
	store := NewStore(testDb(t))

	err := store.Update(&models.TimeConfig{OrderDeadline: "08:00:00"})
	assert.ErrorIs(t, err, ErrMissingField)

	err = store.Update(&models.TimeConfig{MealStartTime: "12:00:00"})
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestUpdateRejectsMalformedTimes(t *testing.T) {
	store := NewStore(testDb(t))
	before := store.Current()

	err := store.Update(&models.TimeConfig{OrderDeadline: "25:00:00", MealStartTime: "12:00:00"})
	assert.ErrorIs(t, err, timewindow.ErrInvalidTimeFormat)

	err = store.Update(&models.TimeConfig{OrderDeadline: "08:00:00", MealStartTime: "12:61:00"})
	assert.ErrorIs(t, err, timewindow.ErrInvalidTimeFormat)

	// Prior configuration survives failed updates
	after := store.Current()
	assert.Equal(t, before.OrderDeadline, after.OrderDeadline)
	assert.Equal(t, before.MealStartTime, after.MealStartTime)
}

func TestUpdateReplacesCurrentRow(t *testing.T) {
	store := NewStore(testDb(t))
	before := store.Current()

	err := store.Update(&models.TimeConfig{OrderDeadline: "8:15:00", MealStartTime: "12:00:00"})
	require.NoError(t, err)

	after := store.Current()
	assert.Equal(t, before.ID, after.ID)
	assert.Equal(t, "8:15:00", after.OrderDeadline)
	assert.Equal(t, "12:00:00", after.MealStartTime)
	assert.False(t, after.UpdateTime.IsZero())

	assert.Equal(t, timewindow.TimeOfDay{Hour: 8, Minute: 15}, store.Deadline())
	assert.Equal(t, timewindow.TimeOfDay{Hour: 12}, store.MealStart())
}

func TestCronDerivation(t *testing.T) {
	store := NewStore(testDb(t))

	assert.Equal(t, "0 0 9 * * *", store.OrderDeadlineCron())
	assert.Equal(t, "0 30 11 * * *", store.MealStartTimeCron())

	require.NoError(t, store.Update(&models.TimeConfig{
		OrderDeadline: "7:45:30",
		MealStartTime: "13:05:00",
	}))
	assert.Equal(t, "30 45 7 * * *", store.OrderDeadlineCron())
	assert.Equal(t, "0 5 13 * * *", store.MealStartTimeCron())
}

func TestMalformedStoredValuesFallBack(t *testing.T) {
	store := NewStore(testDb(t))
	current := store.Current()

	// Corrupt the stored row behind the store's back
	current.OrderDeadline = "nonsense"
	current.MealStartTime = "99:99:99"
	current.UpdateTime = time.Now()
	require.NoError(t, store.Db.Save(&current).Error)

	assert.Equal(t, timewindow.MustParseTimeOfDay(timewindow.DefaultOrderDeadline), store.Deadline())
	assert.Equal(t, timewindow.MustParseTimeOfDay(timewindow.DefaultMealStartTime), store.MealStart())
	assert.Equal(t, "0 0 9 * * *", store.OrderDeadlineCron())
	assert.Equal(t, "0 30 11 * * *", store.MealStartTimeCron())
}
