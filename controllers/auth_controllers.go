package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/canteen-app/canteen-backend/models"
	"github.com/canteen-app/canteen-backend/utils"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// LoginResponse is the identity summary returned on successful login.
type LoginResponse struct {
	Username   string      `json:"username"`
	Name       string      `json:"name"`
	Role       models.Role `json:"role"`
	Department string      `json:"department"`
	StaffID    string      `json:"staffId"`
	Token      string      `json:"token"`
}

// Login verifies credentials and issues a token. Unknown username and wrong
// password produce the identical response, so callers cannot enumerate users.
func (ac *AuthController) Login(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var staff models.Staff
	if err := ac.DB.Where("username = ?", input.Username).First(&staff).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid username or password"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(staff.Password), []byte(input.Password)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid username or password"))
		return
	}

	token, err := utils.GenerateToken(staff.Username)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Login successful for %s (role=%s)", staff.Username, staff.Role)

	c.JSON(http.StatusOK, LoginResponse{
		Username:   staff.Username,
		Name:       staff.Name,
		Role:       staff.Role,
		Department: staff.Department,
		StaffID:    staff.StaffID,
		Token:      token,
	})
}

// GetMe returns the caller's staff record.
func (ac *AuthController) GetMe(c *gin.Context) {
	staffInterface, exists := c.Get("staff")
	if !exists {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}
	c.JSON(http.StatusOK, staffInterface.(models.Staff))
}

// UpdateMe is the self-service profile update. Only name and department are
// mutable here; username, password, role and staff id stay as provisioned.
func (ac *AuthController) UpdateMe(c *gin.Context) {
	staffInterface, exists := c.Get("staff")
	if !exists {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}
	staff := staffInterface.(models.Staff)

	var input struct {
		Name       *string `json:"name"`
		Department *string `json:"department"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if input.Name != nil {
		staff.Name = *input.Name
	}
	if input.Department != nil {
		staff.Department = *input.Department
	}

	if err := ac.DB.Save(&staff).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, staff)
}
