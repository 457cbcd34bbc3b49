package scheduler

import (
	"fmt"
	"strings"
	"time"

	"canteen/models"

	"gorm.io/gorm"
)

// Tasks holds the scheduled job bodies. They run on whatever goroutine
// the trigger fires, outside the registry lock.
type Tasks struct {
	Db *gorm.DB
}

func NewTasks(db *gorm.DB) *Tasks {
	return &Tasks{Db: db}
}

// ClearShopCart empties every user's cart when the order deadline hits
func (t *Tasks) ClearShopCart() {
	result := t.Db.Where("1 = 1").Delete(&models.ShopCart{})
	if result.Error != nil {
		logScheduler("clear carts failed: %v", result.Error)
		return
	}
	logScheduler("order deadline reached, cleared %d cart rows", result.RowsAffected)
}

// AddHistoryMenu archives the ids of every menu offered today. The
// computed time-range string is checked first so a second invocation for
// the same window (scheduled trigger plus manual re-trigger) is a no-op.
func (t *Tasks) AddHistoryMenu() {
	now := time.Now()
	dayBegin := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayBegin.AddDate(0, 0, 1)
	timeRange := fmt.Sprintf("%s~%s", dayBegin.Format("2006-01-02"), dayEnd.Add(-time.Second).Format("2006-01-02"))

	var existing int64
	if err := t.Db.Model(&models.History{}).Where("time_range = ?", timeRange).Count(&existing).Error; err != nil {
		logScheduler("history rollup lookup failed: %v", err)
		return
	}
	if existing > 0 {
		logScheduler("history rollup for %s already recorded, skipping", timeRange)
		return
	}

	var menus []models.Menu
	if err := t.Db.Where("created_at >= ? AND created_at < ?", dayBegin, dayEnd).Find(&menus).Error; err != nil {
		logScheduler("history rollup menu query failed: %v", err)
		return
	}

	ids := make([]string, 0, len(menus))
	for _, m := range menus {
		ids = append(ids, fmt.Sprintf("%d", m.ID))
	}

	history := models.History{
		TimeRange: timeRange,
		MenuIDs:   strings.Join(ids, ","),
	}
	if err := t.Db.Create(&history).Error; err != nil {
		logScheduler("history rollup insert failed: %v", err)
		return
	}
	logScheduler("collected history menu for %s (%d dishes)", timeRange, len(menus))
}

// AddMonthSale totals last month's order items into one sale row.
// Runs on the first of each month.
func (t *Tasks) AddMonthSale() {
	now := time.Now()
	monthBegin := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -1, 0)
	monthEnd := monthBegin.AddDate(0, 1, 0)
	month := monthBegin.Format("2006-01")

	var total int64
	err := t.Db.Model(&models.OrderItem{}).
		Where("created_at >= ? AND created_at < ?", monthBegin, monthEnd).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&total).Error
	if err != nil {
		logScheduler("month sale totalling failed: %v", err)
		return
	}

	sale := models.Sale{Month: month, TotalPrice: total}
	if err := t.Db.Create(&sale).Error; err != nil {
		logScheduler("month sale insert failed: %v", err)
		return
	}
	logScheduler("generated sale record for %s, total=%d", month, total)
}
