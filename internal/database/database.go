package database

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Connect opens the process-wide GORM connection. The DSN comes from
// DATABASE_URL, or is composed from the discrete DB_* variables. A
// missing connection string is a startup error, not a request error.
func Connect() *gorm.DB {
	dsn := os.Getenv("DATABASE_URL")

	if dsn == "" {
		user := os.Getenv("DB_USER")
		password := os.Getenv("DB_PASSWORD")
		dbName := os.Getenv("DB_NAME")
		host := os.Getenv("DB_HOST")
		port := os.Getenv("DB_PORT")
		sslmode := os.Getenv("DB_SSLMODE")

		if host == "" {
			log.Fatal("DATABASE_URL is not set and no DB_* variables are present")
		}

		dsn = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			host, user, password, dbName, port, sslmode,
		)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt: true,
	})

	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	DB = db

	return db
}
