package CronJobs

import (
	"fmt"
	"log"
	"time"

	"HospitalMS/Models"
	"HospitalMS/Reports"
	"HospitalMS/Session"

	"github.com/go-co-op/gocron"
	"gorm.io/gorm"
)

// DailySummary logs a morning digest of the day's schedule and the
// outstanding billing balance.
type DailySummary struct {
	DB *gorm.DB
}

// NewDailySummary creates a new daily summary service
func NewDailySummary(db *gorm.DB) *DailySummary {
	return &DailySummary{
		DB: db,
	}
}

// StartSummaryCron starts the cron job that logs the daily digest
func (ds *DailySummary) StartSummaryCron() *gocron.Scheduler {
	scheduler := gocron.NewScheduler(time.Local)

	scheduler.Every(1).Day().At("07:00").Do(func() {
		if err := ds.LogSummary(); err != nil {
			log.Printf("Error logging daily summary: %v", err)
		}
	})

	scheduler.StartAsync()
	log.Println("Daily summary cron job started")

	return scheduler
}

func (ds *DailySummary) LogSummary() error {
	session := Session.NewSession(ds.DB)
	if err := session.LoadAll(); err != nil {
		return fmt.Errorf("failed to load records: %w", err)
	}

	summary := Reports.Dashboard(session.Patients, session.Doctors, session.Appointments, session.Bills, time.Now())
	statuses := Reports.BillStatusDistribution(session.Bills)

	log.Printf("Daily summary: %d appointments today, %d bills pending, %.2f collected to date",
		summary.TodaysAppointments,
		statuses[Models.BillPending],
		summary.TotalRevenue,
	)
	return nil
}
