package middleware

import (
	"fmt"
	"log"
	"time"

	"canteen/timeconfig"
	"canteen/timewindow"

	"github.com/gofiber/fiber/v2"
)

const timestampLayout = "2006-01-02 15:04:05"

// OrderWindowGuard gates order-submission requests. During the delivery
// period (today's deadline through today's meal start, boundaries
// included) the request is rejected with the orderable windows spelled
// out. This is defense in depth: the submit handler re-checks inside
// its transaction. now is injected so the guard is testable against
// fixed instants.
func OrderWindowGuard(store *timeconfig.Store, now func() time.Time) fiber.Handler {
	if now == nil {
		now = time.Now
	}
	return func(c *fiber.Ctx) error {
		current := now()
		deadline := store.Deadline()
		mealStart := store.MealStart()

		delivery := timewindow.DeliveryPeriod(current, deadline, mealStart)
		if !delivery.ContainsInclusive(current) {
			return c.Next()
		}

		first, second := timewindow.OrderablePeriods(current, deadline, mealStart)
		msg := fmt.Sprintf(
			"Ordering is closed during the delivery period (%s ~ %s). Orderable windows: %s ~ %s or %s ~ %s",
			delivery.Start.Format(timestampLayout), delivery.End.Format(timestampLayout),
			first.Start.Format(timestampLayout), first.End.Format(timestampLayout),
			second.Start.Format(timestampLayout), second.End.Format(timestampLayout),
		)
		log.Printf("[ORDER-GUARD] rejected request at %s, delivery period %s ~ %s",
			current.Format(timestampLayout),
			delivery.Start.Format(timestampLayout),
			delivery.End.Format(timestampLayout))
		return JsonResponse(c, fiber.StatusForbidden, false, msg, nil)
	}
}
