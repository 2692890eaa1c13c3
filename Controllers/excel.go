package Controllers

import (
	"fmt"
	"log"
	"net/http"

	"HospitalMS/Reports"
	"HospitalMS/Session"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/gin-gonic/gin"
)

// ExportBillsExcel writes the bill table, optionally limited to a date
// range, to an xlsx file and serves it.
func ExportBillsExcel(c *gin.Context) {
	var input struct {
		DateFrom string `json:"date_from"`
		DateTo   string `json:"date_to"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session := getSession(c)
	bills := session.BillViews()

	if input.DateFrom != "" && input.DateTo != "" {
		filtered := make([]Session.BillView, 0, len(bills))
		for _, bill := range bills {
			if bill.Date >= input.DateFrom && bill.Date <= input.DateTo {
				filtered = append(filtered, bill)
			}
		}
		bills = filtered
	}

	headers := map[string]string{
		"A1": "Reference",
		"B1": "Patient",
		"C1": "Doctor Fee",
		"D1": "Medicine Fee",
		"E1": "Room Charge",
		"F1": "Other Charges",
		"G1": "Total Amount",
		"H1": "Date",
		"I1": "Status",
	}
	file := excelize.NewFile()
	sheet := "Bills"
	file.NewSheet(sheet)
	file.DeleteSheet("Sheet1")
	for k, v := range headers {
		file.SetCellValue(sheet, k, v)
	}

	for i := 0; i < len(bills); i++ {
		appendRowBill(sheet, file, i, bills)
	}
	var filename string = "./Bills.xlsx"
	if err := file.SaveAs(filename); err != nil {
		log.Println(err)
	}
	c.File(filename)
}

func appendRowBill(sheet string, file *excelize.File, index int, rows []Session.BillView) *excelize.File {
	rowCount := index + 2
	file.SetCellValue(sheet, fmt.Sprintf("A%v", rowCount), rows[index].Reference)
	file.SetCellValue(sheet, fmt.Sprintf("B%v", rowCount), rows[index].Patient)
	file.SetCellValue(sheet, fmt.Sprintf("C%v", rowCount), Reports.RoundCurrency(rows[index].DoctorFee))
	file.SetCellValue(sheet, fmt.Sprintf("D%v", rowCount), Reports.RoundCurrency(rows[index].MedicineFee))
	file.SetCellValue(sheet, fmt.Sprintf("E%v", rowCount), Reports.RoundCurrency(rows[index].RoomCharge))
	file.SetCellValue(sheet, fmt.Sprintf("F%v", rowCount), Reports.RoundCurrency(rows[index].OtherCharges))
	file.SetCellValue(sheet, fmt.Sprintf("G%v", rowCount), Reports.RoundCurrency(rows[index].TotalAmount))
	file.SetCellValue(sheet, fmt.Sprintf("H%v", rowCount), rows[index].Date)
	file.SetCellValue(sheet, fmt.Sprintf("I%v", rowCount), rows[index].Status)
	return file
}
