package Routes

import (
	"HospitalMS/Controllers"
	"HospitalMS/Middleware"
	"HospitalMS/SSE"
	"HospitalMS/Session"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

func ConfigRoutes(router *gin.Engine, sessions *Session.Manager) {
	// Gzip Compression
	router.Use(gzip.Gzip(gzip.BestSpeed))

	// Public routes
	public := router.Group("/api")
	{
		public.POST("/login", Controllers.Login)
		public.POST("/register", Controllers.Register)
	}

	// Authorized routes
	authorized := router.Group("/api/protected")
	authorized.Use(Middleware.JwtAuthMiddleware())
	authorized.Use(Middleware.WithSession(sessions))
	{
		// User-related routes
		authorized.GET("/user", Controllers.CurrentUser)
		authorized.POST("/logout", Controllers.Logout)
		authorized.POST("/ReloadRecords", Controllers.ReloadRecords)

		// Patient-related routes
		authorized.GET("/FetchPatients", Controllers.FetchPatients)
		authorized.POST("/CreatePatient", Controllers.CreatePatient)
		authorized.POST("/SearchPatients", Controllers.SearchPatients)

		// Doctor-related routes
		authorized.GET("/FetchDoctors", Controllers.FetchDoctors)
		authorized.POST("/CreateDoctor", Controllers.CreateDoctor)

		// Appointment-related routes
		authorized.GET("/FetchAppointments", Controllers.FetchAppointments)
		authorized.POST("/ScheduleAppointment", Controllers.ScheduleAppointment)
		authorized.POST("/UpdateAppointmentStatus", Controllers.UpdateAppointmentStatus)

		// Billing-related routes
		authorized.GET("/FetchBills", Controllers.FetchBills)
		authorized.POST("/GenerateBill", Controllers.GenerateBill)
		authorized.POST("/UpdateBillStatus", Controllers.UpdateBillStatus)

		// Dashboard and report routes
		authorized.GET("/Dashboard", Controllers.Dashboard)
		authorized.GET("/Reports/Patients", Controllers.PatientAnalytics)
		authorized.GET("/Reports/Financial", Controllers.FinancialReports)
		authorized.GET("/Reports/Appointments", Controllers.AppointmentReports)

		// Export-related routes
		authorized.POST("/ExportBillsExcel", Controllers.ExportBillsExcel)

		// SSE (Server-Sent Events) route
		authorized.GET("/RequestSSE", SSE.RequestSSE)
	}
}
