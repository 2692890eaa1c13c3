package Models

import (
	"time"

	"gorm.io/gorm"
)

const (
	BillPending = "Pending"
	BillPaid    = "Paid"
)

var BillStatuses = []string{BillPending, BillPaid}

type Bill struct {
	gorm.Model
	Reference    string  `json:"reference"`
	PatientID    uint    `json:"patient_id"`
	DoctorFee    float64 `json:"doctor_fee"`
	MedicineFee  float64 `json:"medicine_fee"`
	RoomCharge   float64 `json:"room_charge"`
	OtherCharges float64 `json:"other_charges"`
	TotalAmount  float64 `json:"total_amount"`
	Date         string  `json:"date"`
	Status       string  `json:"status"`
}

func ValidBillStatus(status string) bool {
	return oneOf(BillStatuses, status)
}

func (bill *Bill) Validate() error {
	if bill.PatientID == 0 {
		return Invalid("patient_id", "is required")
	}
	if bill.DoctorFee < 0 {
		return Invalid("doctor_fee", "must not be negative")
	}
	if bill.MedicineFee < 0 {
		return Invalid("medicine_fee", "must not be negative")
	}
	if bill.RoomCharge < 0 {
		return Invalid("room_charge", "must not be negative")
	}
	if bill.OtherCharges < 0 {
		return Invalid("other_charges", "must not be negative")
	}
	if _, err := time.Parse(DateLayout, bill.Date); err != nil {
		return Invalid("date", "must be in YYYY-MM-DD format")
	}
	if !ValidBillStatus(bill.Status) {
		return Invalid("status", "must be Pending or Paid")
	}
	return nil
}
