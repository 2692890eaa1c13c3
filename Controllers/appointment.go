package Controllers

import (
	"net/http"

	"HospitalMS/Models"
	"HospitalMS/SSE"

	"github.com/gin-gonic/gin"
)

func ScheduleAppointment(c *gin.Context) {
	var input struct {
		PatientID uint   `json:"patient_id"`
		DoctorID  uint   `json:"doctor_id"`
		Date      string `json:"date"`
		Time      string `json:"time"`
		Reason    string `json:"reason"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	appointment := Models.Appointment{
		PatientID: input.PatientID,
		DoctorID:  input.DoctorID,
		Date:      input.Date,
		Time:      input.Time,
		Reason:    input.Reason,
	}

	session := getSession(c)
	id, err := session.ScheduleAppointment(&appointment)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	SSE.Broadcaster.Broadcast("appointments")
	c.JSON(http.StatusOK, gin.H{"message": "Appointment scheduled successfully", "id": id})
}

func FetchAppointments(c *gin.Context) {
	session := getSession(c)
	c.JSON(http.StatusOK, session.AppointmentViews())
}

func UpdateAppointmentStatus(c *gin.Context) {
	var input struct {
		ID     uint   `json:"id" binding:"required"`
		Status string `json:"status" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	session := getSession(c)
	if err := session.UpdateAppointmentStatus(input.ID, input.Status); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	SSE.Broadcaster.Broadcast("appointments")
	c.JSON(http.StatusOK, gin.H{"message": "Appointment status updated successfully"})
}
