package Session

import (
	"strconv"

	"HospitalMS/Models"
)

// UnknownName is rendered when a referenced record cannot be found. Records
// are never deleted, so a miss is a data anomaly, not an expected state; the
// display layer must still get something printable.
const UnknownName = "Unknown"

func ResolvePatientName(patients []Models.Patient, id uint) string {
	for i := range patients {
		if patients[i].ID == id {
			return patients[i].Name
		}
	}
	return UnknownName
}

func ResolveDoctorName(doctors []Models.Doctor, id uint) string {
	for i := range doctors {
		if doctors[i].ID == id {
			return doctors[i].Name
		}
	}
	return UnknownName
}

// AppointmentView is an appointment row decorated with the referenced
// patient and doctor names, ready for tabular rendering.
type AppointmentView struct {
	ID      uint   `json:"id"`
	Patient string `json:"patient"`
	Doctor  string `json:"doctor"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Reason  string `json:"reason"`
	Status  string `json:"status"`
}

type BillView struct {
	ID           uint    `json:"id"`
	Reference    string  `json:"reference"`
	Patient      string  `json:"patient"`
	DoctorFee    float64 `json:"doctor_fee"`
	MedicineFee  float64 `json:"medicine_fee"`
	RoomCharge   float64 `json:"room_charge"`
	OtherCharges float64 `json:"other_charges"`
	TotalAmount  float64 `json:"total_amount"`
	Date         string  `json:"date"`
	Status       string  `json:"status"`
}

func (s *Session) AppointmentViews() []AppointmentView {
	s.mu.Lock()
	defer s.mu.Unlock()

	views := make([]AppointmentView, 0, len(s.Appointments))
	for _, appointment := range s.Appointments {
		views = append(views, AppointmentView{
			ID:      appointment.ID,
			Patient: ResolvePatientName(s.Patients, appointment.PatientID),
			Doctor:  ResolveDoctorName(s.Doctors, appointment.DoctorID),
			Date:    appointment.Date,
			Time:    appointment.Time,
			Reason:  appointment.Reason,
			Status:  appointment.Status,
		})
	}
	return views
}

// RecentAppointments returns the last n appointment views in sequence order.
func (s *Session) RecentAppointments(n int) []AppointmentView {
	views := s.AppointmentViews()
	if len(views) > n {
		views = views[len(views)-n:]
	}
	return views
}

func (s *Session) BillViews() []BillView {
	s.mu.Lock()
	defer s.mu.Unlock()

	views := make([]BillView, 0, len(s.Bills))
	for _, bill := range s.Bills {
		views = append(views, BillView{
			ID:           bill.ID,
			Reference:    bill.Reference,
			Patient:      ResolvePatientName(s.Patients, bill.PatientID),
			DoctorFee:    bill.DoctorFee,
			MedicineFee:  bill.MedicineFee,
			RoomCharge:   bill.RoomCharge,
			OtherCharges: bill.OtherCharges,
			TotalAmount:  bill.TotalAmount,
			Date:         bill.Date,
			Status:       bill.Status,
		})
	}
	return views
}

func idString(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
