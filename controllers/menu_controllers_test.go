package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/canteen-app/canteen-backend/database"
	"github.com/canteen-app/canteen-backend/models"
)

func TestPublicMenuListing(t *testing.T) {
	db := setupTestDB(t)
	assert.NoError(t, database.Seed(db))
	r := setupRouter(db)

	// No token needed for the menu.
	w := doRequest(t, r, "GET", "/api/menu", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	meals := parseJSONList(t, w)
	assert.Len(t, meals, 9)

	first := meals[0].(map[string]interface{})
	assert.Equal(t, "Jollof Rice with Chicken", first["name"])
	assert.Equal(t, "1500", first["price"])
	assert.Equal(t, "lunch", first["category"])
	assert.Equal(t, true, first["available"])
}

func TestMenuMutationsAreAdminOnly(t *testing.T) {
	db := setupTestDB(t)
	createStaff(t, db, "user", "user123", models.RoleUser)
	r := setupRouter(db)

	meal := map[string]interface{}{
		"name":      "Akara",
		"price":     300,
		"category":  "breakfast",
		"available": true,
	}

	w := doRequest(t, r, "POST", "/api/menu", meal, tokenFor(t, "user"))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(t, r, "POST", "/api/menu", meal, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMealCRUD(t *testing.T) {
	db := setupTestDB(t)
	createStaff(t, db, "admin", "admin123", models.RoleAdmin)
	r := setupRouter(db)
	token := tokenFor(t, "admin")

	w := doRequest(t, r, "POST", "/api/menu", map[string]interface{}{
		"name":        "Akara",
		"description": "Fried bean cakes",
		"price":       300,
		"category":    "breakfast",
		"imageUrl":    "images/akara.jpg",
		"available":   true,
	}, token)
	assert.Equal(t, http.StatusOK, w.Code)
	created := parseJSON(t, w)
	mealID := int(created["id"].(float64))
	assert.Equal(t, "300", created["price"])

	w = doRequest(t, r, "PUT", fmt.Sprintf("/api/menu/%d", mealID), map[string]interface{}{
		"name":        "Akara Special",
		"description": "Fried bean cakes with pepper sauce",
		"price":       400,
		"category":    "breakfast",
		"imageUrl":    "images/akara.jpg",
		"available":   false,
	}, token)
	assert.Equal(t, http.StatusOK, w.Code)
	updated := parseJSON(t, w)
	assert.Equal(t, "Akara Special", updated["name"])
	assert.Equal(t, "400", updated["price"])
	assert.Equal(t, false, updated["available"])

	w = doRequest(t, r, "PUT", "/api/menu/99999", map[string]interface{}{"name": "Ghost"}, token)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, r, "DELETE", fmt.Sprintf("/api/menu/%d", mealID), nil, token)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, r, "DELETE", fmt.Sprintf("/api/menu/%d", mealID), nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
