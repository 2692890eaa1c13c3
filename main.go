package main

import (
	"os"

	"HospitalMS/Controllers"
	"HospitalMS/CronJobs"
	"HospitalMS/Models"
	"HospitalMS/Routes"
	"HospitalMS/Session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	Models.ConnectDataBase()
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"}, // Replace with your frontend URL
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	},
	))

	sessions := Session.NewManager(Models.DB)
	Controllers.Sessions = sessions

	Routes.ConfigRoutes(router, sessions)

	summaryService := CronJobs.NewDailySummary(Models.DB)
	scheduler := summaryService.StartSummaryCron()
	_ = scheduler

	port := os.Getenv("PORT")
	if port == "" {
		port = "3005"
	}
	router.Run(":" + port)
}
