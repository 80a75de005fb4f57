package main

import (
	"fmt"
	"os"

	"glamour-salon-backend/config"
	"glamour-salon-backend/models"
	"glamour-salon-backend/routes"
	"glamour-salon-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found")
	}
	config.InitLogger()
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Staff{},
		&models.Cart{},
		&models.CartItem{},
		&models.UserFavourite{},
		&models.Appointment{},
		&models.Payment{},
		&models.SavedPaymentMethod{},
		&models.Feedback{},
		&models.Contact{},
	)

	// One active appointment per user, date and time. AutoMigrate cannot
	// express a partial index, so it is created here.
	config.DB.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_active_slot
		ON appointments (user_id, date, time)
		WHERE status IN ('pending', 'confirmed')`)
}

func main() {
	housekeeping := services.NewHousekeepingService(config.DB)
	housekeeping.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
