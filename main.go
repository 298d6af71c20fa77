package main

import (
	"log"
	"net/http"
	"os"

	"hotelhub/config"
	"hotelhub/controllers"
	"hotelhub/jobs"
	"hotelhub/routes"
	"hotelhub/services"
	"hotelhub/services/notification"

	"github.com/gin-gonic/gin"
)

func main() {
	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	controllers.Init(m)

	bookingService := services.NewBookingService(services.BookingServiceOptions{
		DB:       config.DB,
		Redis:    config.RedisClient,
		Notifier: notification.NewMelodyService(m),
	})
	userService := services.NewUserService(services.UserServiceOptions{DB: config.DB})
	jobs.SetStaleBookingCanceler(bookingService)
	jobs.SetResetTokenCleaner(userService)

	if err := jobs.InitCronJobs(c); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
