package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/canteen-app/canteen-backend/models"
	"github.com/canteen-app/canteen-backend/utils"
)

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

// CreateOrder places an order for the caller. Each submitted item carries a
// snapshot of meal name and unit price; the order total is the exact decimal
// sum of price times quantity. Order and items commit in one transaction.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	username := c.GetString("username")
	if username == "" {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	type itemReq struct {
		MealID   uint            `json:"mealId"`
		MealName string          `json:"mealName" binding:"required"`
		Quantity int             `json:"quantity" binding:"required,gt=0"`
		Price    decimal.Decimal `json:"price"`
	}
	var body struct {
		Items []itemReq `json:"items" binding:"required,min=1,dive"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order := models.Order{
		Username:  username,
		OrderDate: time.Now(),
		Status:    "Pending",
	}

	total := decimal.Zero
	for _, item := range body.Items {
		order.Items = append(order.Items, models.OrderItem{
			MealID:   item.MealID,
			MealName: item.MealName,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	order.TotalAmount = total

	if err := oc.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&order).Error
	}); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Order #%d created by %s, total=%s", order.ID, username, order.TotalAmount)

	c.JSON(http.StatusOK, order)
}

// GetOrderHistory lists the caller's own orders with their items.
func (oc *OrderController) GetOrderHistory(c *gin.Context) {
	username := c.GetString("username")

	var orders []models.Order
	if err := oc.DB.Preload("Items").Where("username = ?", username).Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetAllOrders lists every order. Admin only (enforced in the router group).
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	var orders []models.Order
	if err := oc.DB.Preload("Items").Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// UpdateOrderStatus sets the status verbatim from the raw request body.
// Admin only. The total is deliberately not recomputed here.
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	idStr := c.Param("order_id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}

	raw, err := c.GetRawData()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	// Accept both a bare string body and a JSON-quoted one.
	newStatus := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	if newStatus == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("status must not be empty"))
		return
	}

	var order models.Order
	if err := oc.DB.Preload("Items").First(&order, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}

	order.Status = newStatus
	if err := oc.DB.Save(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// DeleteOrder removes a single order owned by the caller. There is no admin
// override on this path: only the owner may delete.
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	username := c.GetString("username")
	idStr := c.Param("order_id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}

	var order models.Order
	if err := oc.DB.First(&order, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}

	if order.Username != username {
		utils.RespondError(c, http.StatusForbidden, errors.New("you do not own this order"))
		return
	}

	if err := oc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	}); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order deleted", gin.H{"order_id": order.ID})
}

// ClearOrderHistory deletes every order owned by the caller. Deleting zero
// rows is not an error.
func (oc *OrderController) ClearOrderHistory(c *gin.Context) {
	username := c.GetString("username")

	if err := oc.DB.Transaction(func(tx *gorm.DB) error {
		var ids []uint
		if err := tx.Model(&models.Order{}).Where("username = ?", username).Pluck("id", &ids).Error; err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}
		if err := tx.Where("order_id IN ?", ids).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Where("username = ?", username).Delete(&models.Order{}).Error
	}); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order history cleared", nil)
}
