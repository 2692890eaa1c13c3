package Models

import (
	"gorm.io/gorm"
)

var Genders = []string{"Male", "Female", "Other"}

var BloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

type Patient struct {
	gorm.Model
	Name           string `json:"name"`
	Age            int    `json:"age"`
	Gender         string `json:"gender"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	BloodGroup     string `json:"blood_group"`
	MedicalHistory string `json:"medical_history"`
}

func (patient *Patient) Validate() error {
	if patient.Name == "" {
		return Invalid("name", "is required")
	}
	if patient.Age < 0 || patient.Age > 120 {
		return Invalid("age", "must be between 0 and 120")
	}
	if !oneOf(Genders, patient.Gender) {
		return Invalid("gender", "must be Male, Female or Other")
	}
	if patient.Phone == "" {
		return Invalid("phone", "is required")
	}
	if !ValidPhone(patient.Phone) {
		return Invalid("phone", "must be 10 to 15 digits")
	}
	if patient.Email != "" && !ValidEmail(patient.Email) {
		return Invalid("email", "is not a valid email address")
	}
	if patient.BloodGroup != "" && !oneOf(BloodGroups, patient.BloodGroup) {
		return Invalid("blood_group", "is not a recognised blood group")
	}
	return nil
}
