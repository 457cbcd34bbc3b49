package scheduler

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"canteen/timeconfig"

	"github.com/robfig/cron/v3"
)

// Job names
const (
	TaskClearShopCart  = "clearShopCart"
	TaskAddHistoryMenu = "addHistoryMenu"
	TaskAddMonthSale   = "addMonthSale"
	taskSelfCheck      = "refreshConfig"
)

// Monthly sale rollup: first of month at 00:00:00
const monthSaleCron = "0 0 0 1 * *"

// Six-field expressions with a leading seconds column, matching the
// rules derived by timeconfig.Store
var cronParser = cron.NewParser(
	cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow,
)

func logScheduler(format string, args ...interface{}) {
	log.Printf("[SCHEDULER %s] %s", time.Now().Format(time.RFC3339), fmt.Sprintf(format, args...))
}

// DynamicScheduler maintains live recurring triggers for named jobs and
// supports hot-swapping a job's schedule. The registry is guarded by a
// single mutex; the cancel-old/install-new swap is one critical section,
// so concurrent refreshes for the same name can never strand a job
// unscheduled or leave two live triggers.
type DynamicScheduler struct {
	cron *cron.Cron

	mu      sync.Mutex
	entries map[string]cron.EntryID
	exprs   map[string]string
}

func New(loc *time.Location) *DynamicScheduler {
	return &DynamicScheduler{
		cron:    cron.New(cron.WithParser(cronParser), cron.WithLocation(loc)),
		entries: make(map[string]cron.EntryID),
		exprs:   make(map[string]string),
	}
}

// Start begins trigger processing in its own goroutine
func (s *DynamicScheduler) Start() {
	s.cron.Start()
}

// Stop stops trigger processing without interrupting running jobs
func (s *DynamicScheduler) Stop() {
	s.cron.Stop()
}

// RegisterFixed installs a trigger with a fixed, never-recomputed
// schedule, cancelling any prior trigger under that name. A running
// execution of the old trigger is not interrupted.
func (s *DynamicScheduler) RegisterFixed(name, expr string, action func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.swap(name, expr, action)
}

// RefreshDynamic recomputes the cron rule via supply and swaps the
// job's trigger. A blank or unparseable rule leaves the previous
// trigger active and reports an error: a bad refresh must never leave
// a job unscheduled.
func (s *DynamicScheduler) RefreshDynamic(name string, supply func() string, action func()) error {
	expr := supply()
	if expr == "" {
		return fmt.Errorf("task %s: empty cron expression, refresh skipped", name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.swap(name, expr, action)
}

// swap cancels the old trigger and installs the new one. Callers hold
// s.mu. The expression is validated before the old entry is removed.
func (s *DynamicScheduler) swap(name, expr string, action func()) error {
	if _, err := cronParser.Parse(expr); err != nil {
		return fmt.Errorf("task %s: invalid cron %q: %w", name, expr, err)
	}

	if oldID, ok := s.entries[name]; ok {
		s.cron.Remove(oldID)
	}

	id, err := s.cron.AddFunc(expr, action)
	if err != nil {
		// Unreachable after the parse check above, but never leave the
		// stale handle in the registry
		delete(s.entries, name)
		delete(s.exprs, name)
		return fmt.Errorf("task %s: register failed: %w", name, err)
	}

	s.entries[name] = id
	s.exprs[name] = expr
	logScheduler("task %s registered, cron=%s", name, expr)
	return nil
}

// ActiveExpr returns the cron rule currently registered for a job name
func (s *DynamicScheduler) ActiveExpr(name string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	expr, ok := s.exprs[name]
	return expr, ok
}

// ActiveCount reports how many live cron entries exist for a job name.
// The registry holds at most one; this checks the cron engine agrees.
func (s *DynamicScheduler) ActiveCount(name string) int {
	s.mu.Lock()
	id, ok := s.entries[name]
	s.mu.Unlock()
	if !ok {
		return 0
	}
	count := 0
	for _, entry := range s.cron.Entries() {
		if entry.ID == id {
			count++
		}
	}
	return count
}

// RefreshAll re-reads the live configuration and re-registers both
// dynamic jobs. One job's failure does not prevent the other's refresh;
// errors are joined for the caller.
func (s *DynamicScheduler) RefreshAll(store *timeconfig.Store, tasks *Tasks) error {
	clearErr := s.RefreshDynamic(TaskClearShopCart, store.OrderDeadlineCron, tasks.ClearShopCart)
	if clearErr != nil {
		logScheduler("refresh %s failed: %v", TaskClearShopCart, clearErr)
	}
	historyErr := s.RefreshDynamic(TaskAddHistoryMenu, store.MealStartTimeCron, tasks.AddHistoryMenu)
	if historyErr != nil {
		logScheduler("refresh %s failed: %v", TaskAddHistoryMenu, historyErr)
	}
	return errors.Join(clearErr, historyErr)
}

// InitAll registers the fixed monthly job, the two dynamic jobs and the
// minute self-check, then starts the scheduler. The self-check simply
// calls RefreshAll every minute: re-registering an unchanged schedule is
// cheap and idempotent in effect, and diffing would only add missed-
// update bugs.
func (s *DynamicScheduler) InitAll(store *timeconfig.Store, tasks *Tasks) error {
	if err := s.RegisterFixed(TaskAddMonthSale, monthSaleCron, tasks.AddMonthSale); err != nil {
		return err
	}
	if err := s.RefreshAll(store, tasks); err != nil {
		logScheduler("initial dynamic refresh incomplete: %v", err)
	}
	if err := s.RegisterFixed(taskSelfCheck, "0 * * * * *", func() {
		if err := s.RefreshAll(store, tasks); err != nil {
			logScheduler("periodic refresh incomplete: %v", err)
		}
	}); err != nil {
		return err
	}

	s.Start()
	logScheduler("all scheduled tasks initialized")
	return nil
}
