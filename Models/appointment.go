package Models

import (
	"time"

	"gorm.io/gorm"
)

const (
	AppointmentScheduled = "Scheduled"
	AppointmentCompleted = "Completed"
	AppointmentCancelled = "Cancelled"
)

var AppointmentStatuses = []string{AppointmentScheduled, AppointmentCompleted, AppointmentCancelled}

// DateLayout is the wire format for all appointment and bill dates.
const DateLayout = "2006-01-02"

const TimeLayout = "15:04"

type Appointment struct {
	gorm.Model
	PatientID uint   `json:"patient_id"`
	DoctorID  uint   `json:"doctor_id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Reason    string `json:"reason"`
	Status    string `json:"status"`
}

func ValidAppointmentStatus(status string) bool {
	return oneOf(AppointmentStatuses, status)
}

func (appointment *Appointment) Validate() error {
	if appointment.PatientID == 0 {
		return Invalid("patient_id", "is required")
	}
	if appointment.DoctorID == 0 {
		return Invalid("doctor_id", "is required")
	}
	if _, err := time.Parse(DateLayout, appointment.Date); err != nil {
		return Invalid("date", "must be in YYYY-MM-DD format")
	}
	if _, err := time.Parse(TimeLayout, appointment.Time); err != nil {
		return Invalid("time", "must be in HH:MM format")
	}
	if appointment.Reason == "" {
		return Invalid("reason", "is required")
	}
	if !ValidAppointmentStatus(appointment.Status) {
		return Invalid("status", "must be Scheduled, Completed or Cancelled")
	}
	return nil
}
