package Controllers

import (
	"net/http"

	"HospitalMS/Models"
	"HospitalMS/SSE"

	"github.com/gin-gonic/gin"
)

func GenerateBill(c *gin.Context) {
	var input struct {
		PatientID    uint    `json:"patient_id"`
		DoctorFee    float64 `json:"doctor_fee"`
		MedicineFee  float64 `json:"medicine_fee"`
		RoomCharge   float64 `json:"room_charge"`
		OtherCharges float64 `json:"other_charges"`
		Date         string  `json:"date"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	bill := Models.Bill{
		PatientID:    input.PatientID,
		DoctorFee:    input.DoctorFee,
		MedicineFee:  input.MedicineFee,
		RoomCharge:   input.RoomCharge,
		OtherCharges: input.OtherCharges,
		Date:         input.Date,
	}

	session := getSession(c)
	id, err := session.GenerateBill(&bill)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	SSE.Broadcaster.Broadcast("bills")
	c.JSON(http.StatusOK, gin.H{"message": "Bill generated successfully", "id": id, "total_amount": bill.TotalAmount})
}

func FetchBills(c *gin.Context) {
	session := getSession(c)
	c.JSON(http.StatusOK, session.BillViews())
}

func UpdateBillStatus(c *gin.Context) {
	var input struct {
		ID     uint   `json:"id" binding:"required"`
		Status string `json:"status" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	session := getSession(c)
	if err := session.UpdateBillStatus(input.ID, input.Status); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	SSE.Broadcaster.Broadcast("bills")
	c.JSON(http.StatusOK, gin.H{"message": "Payment status updated successfully"})
}
