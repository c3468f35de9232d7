package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/canteen-app/canteen-backend/models"
)

func TestSubmitFeedback(t *testing.T) {
	db := setupTestDB(t)
	createStaff(t, db, "user", "user123", models.RoleUser)
	r := setupRouter(db)

	w := doRequest(t, r, "POST", "/api/feedback", map[string]interface{}{
		"rating":   4,
		"comments": "The jollof was great",
	}, tokenFor(t, "user"))
	assert.Equal(t, http.StatusOK, w.Code)

	var stored models.Feedback
	assert.NoError(t, db.First(&stored).Error)
	assert.Equal(t, "user", stored.Username)
	assert.Equal(t, 4, stored.Rating)
	assert.Equal(t, "The jollof was great", stored.Comments)
	assert.False(t, stored.SubmissionDate.IsZero())
}

func TestSubmitFeedbackRequiresTokenAndValidRating(t *testing.T) {
	db := setupTestDB(t)
	createStaff(t, db, "user", "user123", models.RoleUser)
	r := setupRouter(db)

	w := doRequest(t, r, "POST", "/api/feedback", map[string]interface{}{"rating": 4}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(t, r, "POST", "/api/feedback", map[string]interface{}{"rating": 9}, tokenFor(t, "user"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListFeedbackIsAdminOnly(t *testing.T) {
	db := setupTestDB(t)
	createStaff(t, db, "user", "user123", models.RoleUser)
	createStaff(t, db, "admin", "admin123", models.RoleAdmin)
	r := setupRouter(db)

	doRequest(t, r, "POST", "/api/feedback", map[string]interface{}{
		"rating": 5, "comments": "first",
	}, tokenFor(t, "user"))
	doRequest(t, r, "POST", "/api/feedback", map[string]interface{}{
		"rating": 2, "comments": "second",
	}, tokenFor(t, "user"))

	w := doRequest(t, r, "GET", "/api/feedback", nil, tokenFor(t, "user"))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(t, r, "GET", "/api/feedback", nil, tokenFor(t, "admin"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, parseJSONList(t, w), 2)
}
