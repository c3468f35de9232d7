package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/canteen-app/canteen-backend/models"
	"github.com/canteen-app/canteen-backend/utils"
)

type FeedbackController struct {
	DB *gorm.DB
}

func NewFeedbackController(db *gorm.DB) *FeedbackController {
	return &FeedbackController{DB: db}
}

// SubmitFeedback records a rating and comment stamped with the caller's
// username and the submission time.
func (fc *FeedbackController) SubmitFeedback(c *gin.Context) {
	username := c.GetString("username")
	if username == "" {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	var input struct {
		Rating   int    `json:"rating" binding:"required,gte=1,lte=5"`
		Comments string `json:"comments"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	feedback := models.Feedback{
		Username:       username,
		Rating:         input.Rating,
		Comments:       input.Comments,
		SubmissionDate: time.Now(),
	}
	if err := fc.DB.Create(&feedback).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Feedback submitted", nil)
}

// GetAllFeedback lists submissions, newest first. Admin only.
func (fc *FeedbackController) GetAllFeedback(c *gin.Context) {
	var feedback []models.Feedback
	if err := fc.DB.Order("submission_date DESC").Find(&feedback).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, feedback)
}
