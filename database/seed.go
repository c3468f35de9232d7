package database

import (
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/canteen-app/canteen-backend/models"
	"github.com/canteen-app/canteen-backend/utils"
)

// Seed inserts the default staff accounts and menu when absent. Safe to run
// on every startup: each record is checked individually before insert.
func Seed(db *gorm.DB) error {
	if err := seedStaff(db); err != nil {
		return err
	}
	return seedMeals(db)
}

func seedStaff(db *gorm.DB) error {
	defaults := []struct {
		username   string
		password   string
		name       string
		role       models.Role
		department string
		staffID    string
	}{
		{"admin", "admin123", "Admin User", models.RoleAdmin, "IT", "UB001"},
		{"user", "user123", "Regular User", models.RoleUser, "Operations", "USR001"},
	}

	for _, d := range defaults {
		var count int64
		if err := db.Model(&models.Staff{}).Where("username = ?", d.username).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(d.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		staff := models.Staff{
			Username:   d.username,
			Password:   string(hashed),
			Name:       d.name,
			Role:       d.role,
			Department: d.department,
			StaffID:    d.staffID,
		}
		if err := db.Create(&staff).Error; err != nil {
			return err
		}
		utils.InfoLogger.Printf("Seeded staff account %q (role=%s)", d.username, d.role)
	}
	return nil
}

func seedMeals(db *gorm.DB) error {
	defaults := []models.Meal{
		newMeal("Jollof Rice with Chicken", "Spicy Nigerian jollof rice served with grilled chicken and vegetables", "1500", "lunch", "images/jollof-rice-and-chicken.jpg"),
		newMeal("Yam Porridge", "Delicious yam porridge cooked with vegetables and spices", "1200", "breakfast", "images/yam-porridge.jpg"),
		newMeal("Spaghetti", "Classic spaghetti pasta served with tomato sauce and beef", "1100", "lunch", "images/spaghetti.jpg"),
		newMeal("Pepper Soup", "Traditional Nigerian pepper soup with goat meat or fish", "1300", "dinner", "images/pepper-soup.jpg"),
		newMeal("Moin Moin & Eko", "Steamed bean pudding served with solidified corn meal", "800", "breakfast", "images/moin-moin-and-eko.jpg"),
		newMeal("Fried Rice & Fish", "Nigerian fried rice served with fried fish and coleslaw", "1500", "lunch", "images/fried-rice-and-fish.jpg"),
		newMeal("Pounded Yam & Egusi", "Smooth pounded yam served with melon seed soup and meat", "1700", "dinner", "images/pounded-yam-and-egusi.jpg"),
		newMeal("Meat Pie", "Baked pastry filled with seasoned minced meat and vegetables", "500", "snacks", "images/meat-pie.jpg"),
		newMeal("Fruit Salad", "Fresh tropical fruits mixed with yogurt", "800", "snacks", "images/fruit-salad.jpg"),
	}

	for _, meal := range defaults {
		var count int64
		if err := db.Model(&models.Meal{}).Where("name = ?", meal.Name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&meal).Error; err != nil {
			return err
		}
	}
	return nil
}

func newMeal(name, description, price, category, imageURL string) models.Meal {
	return models.Meal{
		Name:        name,
		Description: description,
		Price:       decimal.RequireFromString(price),
		Category:    category,
		ImageURL:    imageURL,
		Available:   true,
	}
}
