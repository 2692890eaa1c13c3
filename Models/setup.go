package Models

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDataBase() {

	err := godotenv.Load(".env")

	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	DbHost := os.Getenv("DB_HOST")
	DbUser := os.Getenv("DB_USER")
	DbPassword := os.Getenv("DB_PASSWORD")
	DbName := os.Getenv("DB_NAME")
	DbPort := os.Getenv("DB_PORT")

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable", DbHost, DbUser, DbPassword, DbName, DbPort)
	// TranslateError maps unique constraint breaches onto gorm.ErrDuplicatedKey.
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})

	if err != nil {
		fmt.Println("Cannot connect to database ")
		log.Fatal("connection error:", err)
	} else {
		fmt.Println("We are connected to the database ")
	}

	DB.AutoMigrate(&User{})
	DB.AutoMigrate(&Patient{})
	DB.AutoMigrate(&Doctor{})
	DB.AutoMigrate(&Appointment{})
	DB.AutoMigrate(&Bill{})

	SeedAdminUser()
}

// SeedAdminUser creates the default admin account on first boot.
func SeedAdminUser() {
	var count int64
	if err := DB.Model(&User{}).Where("username = ?", "admin").Count(&count).Error; err != nil {
		log.Println("failed to check for admin user:", err)
		return
	}
	if count > 0 {
		return
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	admin := User{Username: "admin", Password: password, Role: "admin"}
	if _, err := admin.SaveUser(); err != nil {
		log.Println("failed to seed admin user:", err)
		return
	}
	log.Println("Seeded default admin user")
}
