package Controllers

import (
	"net/http"

	"HospitalMS/Reports"

	"github.com/gin-gonic/gin"
)

func PatientAnalytics(c *gin.Context) {
	session := getSession(c)
	patients := session.PatientRecords()
	c.JSON(http.StatusOK, gin.H{
		"age_distribution":    Reports.AgeDistribution(patients),
		"gender_distribution": Reports.GenderDistribution(patients),
	})
}

func FinancialReports(c *gin.Context) {
	session := getSession(c)
	bills := session.BillRecords()
	c.JSON(http.StatusOK, gin.H{
		"monthly_revenue":     Reports.MonthlyRevenue(bills),
		"status_distribution": Reports.BillStatusDistribution(bills),
	})
}

func AppointmentReports(c *gin.Context) {
	session := getSession(c)
	appointments := session.AppointmentRecords()
	c.JSON(http.StatusOK, gin.H{
		"status_distribution": Reports.AppointmentStatusDistribution(appointments),
		"daily_appointments":  Reports.DailyAppointments(appointments),
	})
}
