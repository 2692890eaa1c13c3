package Controllers

import (
	"net/http"

	"HospitalMS/Models"
	"HospitalMS/SSE"

	"github.com/gin-gonic/gin"
)

func CreateDoctor(c *gin.Context) {
	var input struct {
		Name           string  `json:"name"`
		Specialization string  `json:"specialization"`
		Phone          string  `json:"phone"`
		Email          string  `json:"email"`
		Schedule       string  `json:"schedule"`
		Fee            float64 `json:"fee"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	doctor := Models.Doctor{
		Name:           input.Name,
		Specialization: input.Specialization,
		Phone:          input.Phone,
		Email:          input.Email,
		Schedule:       input.Schedule,
		Fee:            input.Fee,
	}

	session := getSession(c)
	id, err := session.CreateDoctor(&doctor)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	SSE.Broadcaster.Broadcast("doctors")
	c.JSON(http.StatusOK, gin.H{"message": "Doctor added successfully", "id": id})
}

func FetchDoctors(c *gin.Context) {
	session := getSession(c)
	c.JSON(http.StatusOK, session.DoctorRecords())
}
