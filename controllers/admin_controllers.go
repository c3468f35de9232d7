package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/canteen-app/canteen-backend/models"
	"github.com/canteen-app/canteen-backend/utils"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

type TopSellingItem struct {
	MealName      string `json:"mealName"`
	TotalQuantity int64  `json:"totalQuantity"`
}

type DashboardStats struct {
	TotalOrders     int64            `json:"totalOrders"`
	TotalRevenue    decimal.Decimal  `json:"totalRevenue"`
	TotalUsers      int64            `json:"totalUsers"`
	RecentOrders    []models.Order   `json:"recentOrders"`
	TopSellingItems []TopSellingItem `json:"topSellingItems"`
}

type SalesByDay struct {
	Date  string          `json:"date"`
	Total decimal.Decimal `json:"total"`
}

type SalesByCategory struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

type UserActivity struct {
	Username string `json:"username"`
	Orders   int64  `json:"orders"`
}

type ReportDetails struct {
	SalesByDay      []SalesByDay      `json:"salesByDay"`
	SalesByCategory []SalesByCategory `json:"salesByCategory"`
	UserActivity    []UserActivity    `json:"userActivity"`
	TopSellingItems []TopSellingItem  `json:"topSellingItems"`
}

func (ac *AdminController) topSellingItems(limit int) ([]TopSellingItem, error) {
	items := []TopSellingItem{}
	err := ac.DB.Model(&models.OrderItem{}).
		Select("meal_name, SUM(quantity) AS total_quantity").
		Group("meal_name").
		Order("total_quantity DESC").
		Limit(limit).
		Scan(&items).Error
	return items, err
}

// GetDashboardStats returns the headline numbers for the admin dashboard.
func (ac *AdminController) GetDashboardStats(c *gin.Context) {
	var stats DashboardStats

	if err := ac.DB.Model(&models.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := ac.DB.Model(&models.Staff{}).Count(&stats.TotalUsers).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var revenue decimal.Decimal
	row := ac.DB.Model(&models.Order{}).Select("COALESCE(SUM(total_amount), 0)").Row()
	if err := row.Scan(&revenue); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	stats.TotalRevenue = revenue

	stats.RecentOrders = []models.Order{}
	if err := ac.DB.Preload("Items").
		Order("order_date DESC").
		Limit(5).
		Find(&stats.RecentOrders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	topItems, err := ac.topSellingItems(5)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	stats.TopSellingItems = topItems

	c.JSON(http.StatusOK, stats)
}

// GetDetailedReports returns the sales report aggregations: revenue per day
// over the last week, revenue per meal category, and the most active users.
func (ac *AdminController) GetDetailedReports(c *gin.Context) {
	var report ReportDetails

	sevenDaysAgo := time.Now().AddDate(0, 0, -7)

	report.SalesByDay = []SalesByDay{}
	if err := ac.DB.Model(&models.Order{}).
		Select("DATE(order_date) AS date, SUM(total_amount) AS total").
		Where("order_date >= ?", sevenDaysAgo).
		Group("DATE(order_date)").
		Order("date DESC").
		Scan(&report.SalesByDay).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	report.SalesByCategory = []SalesByCategory{}
	if err := ac.DB.Model(&models.OrderItem{}).
		Select("meals.category AS category, SUM(order_items.price * order_items.quantity) AS total").
		Joins("JOIN meals ON meals.id = order_items.meal_id").
		Group("meals.category").
		Scan(&report.SalesByCategory).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	report.UserActivity = []UserActivity{}
	if err := ac.DB.Model(&models.Order{}).
		Select("username, COUNT(id) AS orders").
		Group("username").
		Order("orders DESC").
		Limit(5).
		Scan(&report.UserActivity).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	topItems, err := ac.topSellingItems(5)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	report.TopSellingItems = topItems

	c.JSON(http.StatusOK, report)
}
