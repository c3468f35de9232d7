package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens the relational store. With DB_NAME set a MySQL connection is
// built from the DB_* variables; otherwise a local SQLite file is used so the
// service runs without external infrastructure.
func InitDB() (*gorm.DB, error) {
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = "canteen.db"
		}
		return gorm.Open(sqlite.Open(path), &gorm.Config{})
	}

	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASS")
	host := os.Getenv("DB_HOST")
	if host == "" {
		host = "127.0.0.1"
	}
	port := os.Getenv("DB_PORT")
	if port == "" {
		port = "3306"
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName)
	return gorm.Open(mysql.Open(dsn), &gorm.Config{})
}
