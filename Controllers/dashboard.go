package Controllers

import (
	"net/http"
	"time"

	"HospitalMS/Reports"

	"github.com/gin-gonic/gin"
)

// Dashboard renders the landing view: KPI row, the ten most recent
// appointments with resolved names, and the two landing charts.
func Dashboard(c *gin.Context) {
	session := getSession(c)
	now := time.Now()

	patients := session.PatientRecords()
	bills := session.BillRecords()
	summary := Reports.Dashboard(patients, session.DoctorRecords(), session.AppointmentRecords(), bills, now)

	c.JSON(http.StatusOK, gin.H{
		"summary":             summary,
		"recent_appointments": session.RecentAppointments(10),
		"gender_distribution": Reports.GenderDistribution(patients),
		"revenue_trend":       Reports.RevenueTrend(bills, now),
	})
}
