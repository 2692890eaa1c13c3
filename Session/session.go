package Session

import (
	"strings"
	"sync"

	"HospitalMS/Models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Session owns one user's working copies of the record tables. The store is
// written first on every mutation and the in-memory sequence is only patched
// once the store has accepted the write, so the two never diverge. The
// sequences are never re-read from the store after LoadAll except through an
// explicit reload.
type Session struct {
	DB *gorm.DB
	mu sync.Mutex

	Patients     []Models.Patient
	Doctors      []Models.Doctor
	Appointments []Models.Appointment
	Bills        []Models.Bill
}

func NewSession(db *gorm.DB) *Session {
	return &Session{DB: db}
}

// LoadAll replaces the in-memory sequences with a full read of every table
// in id order, which is the order the store assigned the rows.
func (s *Session) LoadAll() error {
	var patients []Models.Patient
	if err := s.DB.Order("id").Find(&patients).Error; err != nil {
		return err
	}
	var doctors []Models.Doctor
	if err := s.DB.Order("id").Find(&doctors).Error; err != nil {
		return err
	}
	var appointments []Models.Appointment
	if err := s.DB.Order("id").Find(&appointments).Error; err != nil {
		return err
	}
	var bills []Models.Bill
	if err := s.DB.Order("id").Find(&bills).Error; err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.Patients = patients
	s.Doctors = doctors
	s.Appointments = appointments
	s.Bills = bills
	return nil
}

func (s *Session) CreatePatient(patient *Models.Patient) (uint, error) {
	if err := patient.Validate(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.DB.Create(patient).Error; err != nil {
		return 0, err
	}
	s.Patients = append(s.Patients, *patient)
	return patient.ID, nil
}

func (s *Session) CreateDoctor(doctor *Models.Doctor) (uint, error) {
	if err := doctor.Validate(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.DB.Create(doctor).Error; err != nil {
		return 0, err
	}
	s.Doctors = append(s.Doctors, *doctor)
	return doctor.ID, nil
}

func (s *Session) ScheduleAppointment(appointment *Models.Appointment) (uint, error) {
	if appointment.Status == "" {
		appointment.Status = Models.AppointmentScheduled
	}
	if err := appointment.Validate(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.DB.Create(appointment).Error; err != nil {
		return 0, err
	}
	s.Appointments = append(s.Appointments, *appointment)
	return appointment.ID, nil
}

// GenerateBill computes the total from the four charge fields once, at
// creation. Charges are immutable afterwards, so the total is never
// recomputed.
func (s *Session) GenerateBill(bill *Models.Bill) (uint, error) {
	if bill.Status == "" {
		bill.Status = Models.BillPending
	}
	bill.TotalAmount = bill.DoctorFee + bill.MedicineFee + bill.RoomCharge + bill.OtherCharges
	if bill.Reference == "" {
		bill.Reference = "B-" + uuid.NewString()
	}
	if err := bill.Validate(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.DB.Create(bill).Error; err != nil {
		return 0, err
	}
	s.Bills = append(s.Bills, *bill)
	return bill.ID, nil
}

// UpdateAppointmentStatus writes the new status to the store, then patches
// the first matching in-memory record. An id that matches no row is a
// silent no-op on both sides.
func (s *Session) UpdateAppointmentStatus(id uint, status string) error {
	if !Models.ValidAppointmentStatus(status) {
		return Models.Invalid("status", "must be Scheduled, Completed or Cancelled")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.DB.Model(&Models.Appointment{}).Where("id = ?", id).Update("status", status).Error; err != nil {
		return err
	}
	for i := range s.Appointments {
		if s.Appointments[i].ID == id {
			s.Appointments[i].Status = status
			break
		}
	}
	return nil
}

// UpdateBillStatus is the payment-status counterpart of
// UpdateAppointmentStatus. Only the status ever changes on a stored bill.
func (s *Session) UpdateBillStatus(id uint, status string) error {
	if !Models.ValidBillStatus(status) {
		return Models.Invalid("status", "must be Pending or Paid")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.DB.Model(&Models.Bill{}).Where("id = ?", id).Update("status", status).Error; err != nil {
		return err
	}
	for i := range s.Bills {
		if s.Bills[i].ID == id {
			s.Bills[i].Status = status
			break
		}
	}
	return nil
}

// PatientRecords returns a snapshot of the patient sequence. Handlers must
// read through the snapshot accessors; a concurrent create may reallocate
// the live slice mid-scan.
func (s *Session) PatientRecords() []Models.Patient {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Models.Patient(nil), s.Patients...)
}

func (s *Session) DoctorRecords() []Models.Doctor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Models.Doctor(nil), s.Doctors...)
}

func (s *Session) AppointmentRecords() []Models.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Models.Appointment(nil), s.Appointments...)
}

func (s *Session) BillRecords() []Models.Bill {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Models.Bill(nil), s.Bills...)
}

// SearchPatients filters the in-memory sequence by name substring, phone
// substring or exact id.
func (s *Session) SearchPatients(by string, query string) []Models.Patient {
	s.mu.Lock()
	defer s.mu.Unlock()

	results := []Models.Patient{}
	for _, patient := range s.Patients {
		switch by {
		case "phone":
			if strings.Contains(patient.Phone, query) {
				results = append(results, patient)
			}
		case "id":
			if query == idString(patient.ID) {
				results = append(results, patient)
			}
		default:
			if strings.Contains(strings.ToLower(patient.Name), strings.ToLower(query)) {
				results = append(results, patient)
			}
		}
	}
	return results
}
