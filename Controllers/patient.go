package Controllers

import (
	"net/http"

	"HospitalMS/Models"
	"HospitalMS/SSE"

	"github.com/gin-gonic/gin"
)

func CreatePatient(c *gin.Context) {
	var input struct {
		Name           string `json:"name"`
		Age            int    `json:"age"`
		Gender         string `json:"gender"`
		Address        string `json:"address"`
		Phone          string `json:"phone"`
		Email          string `json:"email"`
		BloodGroup     string `json:"blood_group"`
		MedicalHistory string `json:"medical_history"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	patient := Models.Patient{
		Name:           input.Name,
		Age:            input.Age,
		Gender:         input.Gender,
		Address:        input.Address,
		Phone:          input.Phone,
		Email:          input.Email,
		BloodGroup:     input.BloodGroup,
		MedicalHistory: input.MedicalHistory,
	}

	session := getSession(c)
	id, err := session.CreatePatient(&patient)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	SSE.Broadcaster.Broadcast("patients")
	c.JSON(http.StatusOK, gin.H{"message": "Patient added successfully", "id": id})
}

func FetchPatients(c *gin.Context) {
	session := getSession(c)
	c.JSON(http.StatusOK, session.PatientRecords())
}

func SearchPatients(c *gin.Context) {
	var input struct {
		By    string `json:"by"`
		Query string `json:"query" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	session := getSession(c)
	c.JSON(http.StatusOK, session.SearchPatients(input.By, input.Query))
}
