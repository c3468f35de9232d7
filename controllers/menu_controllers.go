package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/canteen-app/canteen-backend/models"
	"github.com/canteen-app/canteen-backend/utils"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

type mealRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	ImageURL    string          `json:"imageUrl"`
	Available   bool            `json:"available"`
}

// GetAllMeals is the public menu listing.
func (mc *MenuController) GetAllMeals(c *gin.Context) {
	var meals []models.Meal
	if err := mc.DB.Find(&meals).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, meals)
}

// CreateMeal adds a meal to the menu. Admin only.
func (mc *MenuController) CreateMeal(c *gin.Context) {
	var req mealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	meal := models.Meal{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Available:   req.Available,
	}
	if err := mc.DB.Create(&meal).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, meal)
}

// UpdateMeal replaces the mutable fields of a meal. Admin only.
func (mc *MenuController) UpdateMeal(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("meal_id"))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("meal not found"))
		return
	}

	var meal models.Meal
	if err := mc.DB.First(&meal, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("meal not found"))
		return
	}

	var req mealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	meal.Name = req.Name
	meal.Description = req.Description
	meal.Price = req.Price
	meal.Category = req.Category
	meal.ImageURL = req.ImageURL
	meal.Available = req.Available

	if err := mc.DB.Save(&meal).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, meal)
}

// DeleteMeal removes a meal from the menu. Admin only. Existing order items
// keep their snapshots, so history is unaffected.
func (mc *MenuController) DeleteMeal(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("meal_id"))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("meal not found"))
		return
	}

	var meal models.Meal
	if err := mc.DB.First(&meal, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("meal not found"))
		return
	}

	if err := mc.DB.Delete(&meal).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.Status(http.StatusNoContent)
}
