package Reports

import (
	"fmt"
	"math"
	"sort"
	"time"

	"HospitalMS/Models"
)

// Summary holds the dashboard KPI row.
type Summary struct {
	TotalPatients      int     `json:"total_patients"`
	TotalDoctors       int     `json:"total_doctors"`
	TodaysAppointments int     `json:"todays_appointments"`
	TotalRevenue       float64 `json:"total_revenue"`
}

// Dashboard computes the headline figures: total record counts, the number
// of appointments dated today, and revenue collected from paid bills.
func Dashboard(patients []Models.Patient, doctors []Models.Doctor, appointments []Models.Appointment, bills []Models.Bill, now time.Time) Summary {
	today := now.Format(Models.DateLayout)

	summary := Summary{
		TotalPatients: len(patients),
		TotalDoctors:  len(doctors),
	}
	for _, appointment := range appointments {
		if appointment.Date == today {
			summary.TodaysAppointments++
		}
	}
	for _, bill := range bills {
		if bill.Status == Models.BillPaid {
			summary.TotalRevenue += bill.TotalAmount
		}
	}
	return summary
}

// GenderDistribution counts patients per observed gender value. Categories
// are whatever the data contains, not a predefined enumeration.
func GenderDistribution(patients []Models.Patient) map[string]int {
	counts := map[string]int{}
	for _, patient := range patients {
		counts[patient.Gender]++
	}
	return counts
}

func AppointmentStatusDistribution(appointments []Models.Appointment) map[string]int {
	counts := map[string]int{}
	for _, appointment := range appointments {
		counts[appointment.Status]++
	}
	return counts
}

func BillStatusDistribution(bills []Models.Bill) map[string]int {
	counts := map[string]int{}
	for _, bill := range bills {
		counts[bill.Status]++
	}
	return counts
}

type DateTotal struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

// RevenueTrend sums bill totals per date over the trailing seven days of
// now. Bills with unparseable dates are skipped.
func RevenueTrend(bills []Models.Bill, now time.Time) []DateTotal {
	cutoff := now.AddDate(0, 0, -7)

	totals := map[string]float64{}
	for _, bill := range bills {
		day, err := time.Parse(Models.DateLayout, bill.Date)
		if err != nil {
			continue
		}
		if day.Before(cutoff) {
			continue
		}
		totals[bill.Date] += bill.TotalAmount
	}

	trend := make([]DateTotal, 0, len(totals))
	for date, total := range totals {
		trend = append(trend, DateTotal{Date: date, Total: total})
	}
	sort.Slice(trend, func(i, j int) bool { return trend[i].Date < trend[j].Date })
	return trend
}

type MonthTotal struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

// MonthlyRevenue groups bills by calendar month (YYYY-MM) and sums the
// totals per bucket.
func MonthlyRevenue(bills []Models.Bill) []MonthTotal {
	totals := map[string]float64{}
	for _, bill := range bills {
		day, err := time.Parse(Models.DateLayout, bill.Date)
		if err != nil {
			continue
		}
		totals[day.Format("2006-01")] += bill.TotalAmount
	}

	months := make([]MonthTotal, 0, len(totals))
	for month, total := range totals {
		months = append(months, MonthTotal{Month: month, Total: total})
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Month < months[j].Month })
	return months
}

type DateCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// DailyAppointments counts appointments per date.
func DailyAppointments(appointments []Models.Appointment) []DateCount {
	counts := map[string]int{}
	for _, appointment := range appointments {
		counts[appointment.Date]++
	}

	days := make([]DateCount, 0, len(counts))
	for date, count := range counts {
		days = append(days, DateCount{Date: date, Count: count})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days
}

const ageBins = 10

type AgeBucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// AgeDistribution buckets patient ages into ten equal-width bins spanning
// the observed minimum and maximum.
func AgeDistribution(patients []Models.Patient) []AgeBucket {
	if len(patients) == 0 {
		return []AgeBucket{}
	}

	min, max := patients[0].Age, patients[0].Age
	for _, patient := range patients {
		if patient.Age < min {
			min = patient.Age
		}
		if patient.Age > max {
			max = patient.Age
		}
	}

	if min == max {
		return []AgeBucket{{Label: fmt.Sprintf("%d", min), Count: len(patients)}}
	}

	width := float64(max-min) / float64(ageBins)
	buckets := make([]AgeBucket, ageBins)
	for i := range buckets {
		lo := float64(min) + width*float64(i)
		buckets[i].Label = fmt.Sprintf("%.0f-%.0f", lo, lo+width)
	}
	for _, patient := range patients {
		index := int(float64(patient.Age-min) / width)
		if index >= ageBins {
			index = ageBins - 1
		}
		buckets[index].Count++
	}
	return buckets
}

// RoundCurrency rounds a currency amount to two decimal places for display.
// Aggregation itself accumulates unrounded.
func RoundCurrency(val float64) float64 {
	return math.Round(val*100) / 100
}
