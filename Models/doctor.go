package Models

import (
	"gorm.io/gorm"
)

type Doctor struct {
	gorm.Model
	Name           string  `json:"name"`
	Specialization string  `json:"specialization"`
	Phone          string  `json:"phone"`
	Email          string  `json:"email"`
	Schedule       string  `json:"schedule"`
	Fee            float64 `json:"fee"`
}

func (doctor *Doctor) Validate() error {
	if doctor.Name == "" {
		return Invalid("name", "is required")
	}
	if doctor.Specialization == "" {
		return Invalid("specialization", "is required")
	}
	if doctor.Phone == "" {
		return Invalid("phone", "is required")
	}
	if !ValidPhone(doctor.Phone) {
		return Invalid("phone", "must be 10 to 15 digits")
	}
	if doctor.Email != "" && !ValidEmail(doctor.Email) {
		return Invalid("email", "is not a valid email address")
	}
	if doctor.Schedule == "" {
		return Invalid("schedule", "is required")
	}
	if doctor.Fee < 0 {
		return Invalid("fee", "must not be negative")
	}
	return nil
}
