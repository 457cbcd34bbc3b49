package timeconfig

import (
	"errors"
	"fmt"
	"log"
	"time"

	"canteen/models"
	"canteen/timewindow"

	"gorm.io/gorm"
)

// ErrMissingField is returned by Update when a required time field is absent
var ErrMissingField = errors.New("orderDeadline and mealStartTime are required")

// Fallback cron rules used when a stored time string is malformed.
// Scheduling degrades to the defaults instead of failing the caller.
const (
	defaultClearCartCron   = "0 0 9 * * *"
	defaultHistoryMenuCron = "0 30 11 * * *"
)

// Store is the single source of truth for the two configured times.
type Store struct {
	Db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{Db: db}
}

// Current returns the latest configuration row. When no row exists yet a
// default row is persisted and returned, so callers never see "not found".
// Any other read error serves the defaults without persisting, so a
// transient outage cannot pile up duplicate default rows.
func (s *Store) Current() models.TimeConfig {
	var config models.TimeConfig
	err := s.Db.Order("id DESC").First(&config).Error
	if err == nil {
		return config
	}

	config = models.TimeConfig{
		OrderDeadline: timewindow.DefaultOrderDeadline,
		MealStartTime: timewindow.DefaultMealStartTime,
		UpdateTime:    time.Now(),
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[TIME-CONFIG] read failed, serving defaults: %v", err)
		return config
	}
	if createErr := s.Db.Create(&config).Error; createErr != nil {
		log.Printf("[TIME-CONFIG] failed to persist default config: %v", createErr)
	}
	return config
}

// Update validates and persists a new configuration, stamping UpdateTime.
// The prior row is left untouched on a validation failure.
func (s *Store) Update(newConfig *models.TimeConfig) error {
	if newConfig.OrderDeadline == "" || newConfig.MealStartTime == "" {
		return ErrMissingField
	}
	if _, err := timewindow.ParseTimeOfDay(newConfig.OrderDeadline); err != nil {
		return err
	}
	if _, err := timewindow.ParseTimeOfDay(newConfig.MealStartTime); err != nil {
		return err
	}

	current := s.Current()
	newConfig.ID = current.ID
	newConfig.UpdateTime = time.Now()
	return s.Db.Save(newConfig).Error
}

// Deadline returns the configured order deadline, falling back to the
// default when the stored string is malformed.
func (s *Store) Deadline() timewindow.TimeOfDay {
	config := s.Current()
	tod, err := timewindow.ParseTimeOfDay(config.OrderDeadline)
	if err != nil {
		log.Printf("[TIME-CONFIG] bad orderDeadline %q, using default: %v", config.OrderDeadline, err)
		return timewindow.MustParseTimeOfDay(timewindow.DefaultOrderDeadline)
	}
	return tod
}

// MealStart returns the configured meal start time, falling back to the
// default when the stored string is malformed.
func (s *Store) MealStart() timewindow.TimeOfDay {
	config := s.Current()
	tod, err := timewindow.ParseTimeOfDay(config.MealStartTime)
	if err != nil {
		log.Printf("[TIME-CONFIG] bad mealStartTime %q, using default: %v", config.MealStartTime, err)
		return timewindow.MustParseTimeOfDay(timewindow.DefaultMealStartTime)
	}
	return tod
}

// OrderDeadlineCron derives the daily "run at orderDeadline" cron rule
// (six fields, seconds first). A malformed stored value falls back to
// the default rule rather than failing the scheduler.
func (s *Store) OrderDeadlineCron() string {
	config := s.Current()
	tod, err := timewindow.ParseTimeOfDay(config.OrderDeadline)
	if err != nil {
		log.Printf("[TIME-CONFIG] bad orderDeadline %q, using default cron %s", config.OrderDeadline, defaultClearCartCron)
		return defaultClearCartCron
	}
	return dailyCron(tod)
}

// MealStartTimeCron derives the daily "run at mealStartTime" cron rule.
func (s *Store) MealStartTimeCron() string {
	config := s.Current()
	tod, err := timewindow.ParseTimeOfDay(config.MealStartTime)
	if err != nil {
		log.Printf("[TIME-CONFIG] bad mealStartTime %q, using default cron %s", config.MealStartTime, defaultHistoryMenuCron)
		return defaultHistoryMenuCron
	}
	return dailyCron(tod)
}

func dailyCron(tod timewindow.TimeOfDay) string {
	return fmt.Sprintf("%d %d %d * * *", tod.Second, tod.Minute, tod.Hour)
}
