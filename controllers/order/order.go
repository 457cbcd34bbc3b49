package orderController

import (
	"errors"
	"log"
	"time"

	"canteen/database"
	"canteen/middleware"
	"canteen/models"
	"canteen/timeconfig"
	"canteen/timewindow"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var (
	errDuplicateOrder = errors.New("order already submitted in this window")
	errEmptyCart      = errors.New("cart is empty")
)

// hasOrderedInWindow reports whether the user already submitted an
// order inside the given menu window.
func hasOrderedInWindow(db *gorm.DB, userID uint, window timewindow.Window) (bool, error) {
	var count int64
	err := db.Model(&models.OrderForm{}).
		Where("user_id = ?", userID).
		Where("order_time >= ? AND order_time < ?", window.Start, window.End).
		Count(&count).Error
	return count > 0, err
}

// submitOrder runs the full submission inside one transaction: the
// delivery-period check is repeated here because the route guard and
// this transaction are not atomic with each other.
func submitOrder(db *gorm.DB, store *timeconfig.Store, now time.Time, user models.User) (uint, string) {
	deadline := store.Deadline()
	mealStart := store.MealStart()

	delivery := timewindow.DeliveryPeriod(now, deadline, mealStart)
	if delivery.ContainsInclusive(now) {
		return 0, "Ordering is closed during the delivery period!"
	}

	window := timewindow.TodayMenuWindow(now, deadline, mealStart)

	var orderID uint
	err := db.Transaction(func(tx *gorm.DB) error {
		ordered, err := hasOrderedInWindow(tx, user.ID, window)
		if err != nil {
			return err
		}
		if ordered {
			return errDuplicateOrder
		}

		var cart []models.ShopCart
		if err := tx.Where("user_id = ?", user.ID).Find(&cart).Error; err != nil {
			return err
		}
		if len(cart) == 0 {
			return errEmptyCart
		}

		var total int64
		for _, item := range cart {
			total += item.TotalPrice
		}

		order := models.OrderForm{
			UserID:     user.ID,
			Name:       user.Name,
			Telephone:  user.Telephone,
			Department: user.Department,
			OrderPrice: total,
			OrderTime:  now,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, item := range cart {
			orderItem := models.OrderItem{
				OrderID:    order.ID,
				Name:       item.Name,
				Unit:       item.Unit,
				Weight:     item.Weight,
				Price:      item.Price,
				TotalPrice: item.TotalPrice,
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("user_id = ?", user.ID).Delete(&models.ShopCart{}).Error; err != nil {
			return err
		}

		orderID = order.ID
		return nil
	})

	switch err {
	case nil:
		return orderID, ""
	case errDuplicateOrder:
		return 0, "Only one order may be submitted per menu window; cancel the existing order first!"
	case errEmptyCart:
		return 0, "Cart is empty, nothing to order!"
	default:
		log.Printf("order submit failed for user %d: %v", user.ID, err)
		return 0, "Failed to submit order!"
	}
}

// Submit turns the current user's cart into an order
func Submit(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(uint)

	db := database.Database.Db
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	store := timeconfig.NewStore(db)
	orderID, failMsg := submitOrder(db, store, time.Now(), user)
	if failMsg != "" {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, failMsg, nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Order submitted successfully.", fiber.Map{
		"orderId": orderID,
	})
}

// Cancel withdraws the current user's order for the live menu window.
// Only permitted while ordering is still open, so a withdrawn slot can
// be re-used before the deadline.
func Cancel(c *fiber.Ctx) error {
	orderID, err := c.ParamsInt("orderId")
	if err != nil || orderID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid order id!", nil)
	}

	userID, _ := c.Locals("userId").(uint)
	db := database.Database.Db
	store := timeconfig.NewStore(db)
	now := time.Now()
	deadline := store.Deadline()
	mealStart := store.MealStart()

	if !timewindow.CanOrderNow(now, deadline, mealStart) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Orders can only be cancelled while ordering is open!", nil)
	}

	window := timewindow.TodayMenuWindow(now, deadline, mealStart)
	var order models.OrderForm
	if err := db.Where("id = ? AND user_id = ?", orderID, userID).First(&order).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Order not found!", nil)
	}
	if !window.Contains(order.OrderTime) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Only the current window's order can be cancelled!", nil)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
	if err != nil {
		log.Printf("order cancel failed for user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to cancel order!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Order cancelled.", nil)
}

// MyOrders lists the current user's orders with their items
func MyOrders(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(uint)
	db := database.Database.Db

	var orders []models.OrderForm
	if err := db.Where("user_id = ?", userID).Order("order_time DESC").Find(&orders).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch orders!", nil)
	}

	type orderWithItems struct {
		models.OrderForm
		Items []models.OrderItem `json:"items"`
	}

	result := make([]orderWithItems, 0, len(orders))
	for _, o := range orders {
		var items []models.OrderItem
		db.Where("order_id = ?", o.ID).Find(&items)
		result = append(result, orderWithItems{OrderForm: o, Items: items})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Orders fetched.", result)
}

// Page lists all orders for a day (manager only)
func Page(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	day := c.Query("date") // yyyy-MM-dd, defaults to today

	db := database.Database.Db
	query := db.Model(&models.OrderForm{})

	base := time.Now()
	if day != "" {
		parsed, err := time.ParseInLocation("2006-01-02", day, time.Local)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid date, expected yyyy-MM-dd!", nil)
		}
		base = parsed
	}
	dayBegin := time.Date(base.Year(), base.Month(), base.Day(), 0, 0, 0, 0, time.Local)
	query = query.Where("order_time >= ? AND order_time < ?", dayBegin, dayBegin.AddDate(0, 0, 1))

	var total int64
	query.Count(&total)

	var orders []models.OrderForm
	if err := query.Order("order_time DESC").Offset((page - 1) * limit).Limit(limit).Find(&orders).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch orders!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Orders fetched.", fiber.Map{
		"records": orders,
		"total":   total,
	})
}
