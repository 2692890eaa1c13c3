package Session

import (
	"fmt"
	"testing"

	"HospitalMS/Models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Models.Patient{}, &Models.Doctor{}, &Models.Appointment{}, &Models.Bill{}))
	return db
}

func testPatient(name string) *Models.Patient {
	return &Models.Patient{
		Name:   name,
		Age:    40,
		Gender: "Male",
		Phone:  "+14155551234",
	}
}

func TestCreatePatientAssignsID(t *testing.T) {
	session := NewSession(setupTestDB(t))
	require.NoError(t, session.LoadAll())

	first, err := session.CreatePatient(testPatient("John Doe"))
	require.NoError(t, err)
	second, err := session.CreatePatient(testPatient("Jane Roe"))
	require.NoError(t, err)

	assert.NotZero(t, first)
	assert.NotEqual(t, first, second)

	// The new records are resolvable from the in-memory sequence at once.
	assert.Equal(t, "John Doe", ResolvePatientName(session.Patients, first))
	assert.Equal(t, "Jane Roe", ResolvePatientName(session.Patients, second))
}

func TestCreatePatientValidationWritesNothing(t *testing.T) {
	db := setupTestDB(t)
	session := NewSession(db)
	require.NoError(t, session.LoadAll())

	invalid := testPatient("Bad Phone")
	invalid.Phone = "123"
	_, err := session.CreatePatient(invalid)
	require.Error(t, err)

	var validationErr *Models.ValidationError
	assert.ErrorAs(t, err, &validationErr)

	assert.Empty(t, session.Patients)
	var count int64
	db.Model(&Models.Patient{}).Count(&count)
	assert.Zero(t, count)
}

func TestLoadAllIdempotent(t *testing.T) {
	db := setupTestDB(t)

	writer := NewSession(db)
	require.NoError(t, writer.LoadAll())
	_, err := writer.CreatePatient(testPatient("John Doe"))
	require.NoError(t, err)
	_, err = writer.CreateDoctor(&Models.Doctor{
		Name:           "Gregory House",
		Specialization: "Diagnostics",
		Phone:          "+14155551234",
		Schedule:       "Mon-Fri 9AM-5PM",
		Fee:            150,
	})
	require.NoError(t, err)

	reader := NewSession(db)
	require.NoError(t, reader.LoadAll())
	firstPatients := reader.Patients
	firstDoctors := reader.Doctors

	require.NoError(t, reader.LoadAll())
	assert.Equal(t, firstPatients, reader.Patients)
	assert.Equal(t, firstDoctors, reader.Doctors)

	// A reader session sees the same rows the writer session holds.
	require.Len(t, reader.Patients, len(writer.Patients))
	for i := range writer.Patients {
		assert.Equal(t, writer.Patients[i].ID, reader.Patients[i].ID)
		assert.Equal(t, writer.Patients[i].Name, reader.Patients[i].Name)
	}
}

func TestLoadAllPreservesStoreOrder(t *testing.T) {
	db := setupTestDB(t)

	writer := NewSession(db)
	require.NoError(t, writer.LoadAll())
	names := []string{"First", "Second", "Third"}
	for _, name := range names {
		_, err := writer.CreatePatient(testPatient(name))
		require.NoError(t, err)
	}

	reader := NewSession(db)
	require.NoError(t, reader.LoadAll())
	require.Len(t, reader.Patients, len(names))
	for i, name := range names {
		assert.Equal(t, name, reader.Patients[i].Name)
	}
}

func TestGenerateBillComputesTotal(t *testing.T) {
	db := setupTestDB(t)
	session := NewSession(db)
	require.NoError(t, session.LoadAll())

	patientID, err := session.CreatePatient(testPatient("John Doe"))
	require.NoError(t, err)

	bill := &Models.Bill{
		PatientID:    patientID,
		DoctorFee:    100,
		MedicineFee:  25.5,
		RoomCharge:   200,
		OtherCharges: 4.5,
		Date:         "2024-05-01",
	}
	id, err := session.GenerateBill(bill)
	require.NoError(t, err)

	assert.Equal(t, 330.0, bill.TotalAmount)
	assert.Equal(t, Models.BillPending, bill.Status)
	assert.NotEmpty(t, bill.Reference)

	// Status changes never touch the stored total.
	require.NoError(t, session.UpdateBillStatus(id, Models.BillPaid))

	var stored Models.Bill
	require.NoError(t, db.First(&stored, id).Error)
	assert.Equal(t, 330.0, stored.TotalAmount)
	assert.Equal(t, stored.DoctorFee+stored.MedicineFee+stored.RoomCharge+stored.OtherCharges, stored.TotalAmount)
	assert.Equal(t, Models.BillPaid, stored.Status)
	assert.Equal(t, Models.BillPaid, session.Bills[0].Status)
}

func scheduleTestAppointment(t *testing.T, session *Session, patientID, doctorID uint) uint {
	t.Helper()
	id, err := session.ScheduleAppointment(&Models.Appointment{
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      "2024-05-01",
		Time:      "10:00",
		Reason:    "Checkup",
	})
	require.NoError(t, err)
	return id
}

func TestUpdateAppointmentStatus(t *testing.T) {
	db := setupTestDB(t)
	session := NewSession(db)
	require.NoError(t, session.LoadAll())

	patientID, err := session.CreatePatient(testPatient("John Doe"))
	require.NoError(t, err)
	id := scheduleTestAppointment(t, session, patientID, 1)

	assert.Equal(t, Models.AppointmentScheduled, session.Appointments[0].Status)

	require.NoError(t, session.UpdateAppointmentStatus(id, Models.AppointmentCompleted))
	assert.Equal(t, Models.AppointmentCompleted, session.Appointments[0].Status)

	var stored Models.Appointment
	require.NoError(t, db.First(&stored, id).Error)
	assert.Equal(t, Models.AppointmentCompleted, stored.Status)
}

func TestUpdateStatusMissingIDIsNoOp(t *testing.T) {
	db := setupTestDB(t)
	session := NewSession(db)
	require.NoError(t, session.LoadAll())

	patientID, err := session.CreatePatient(testPatient("John Doe"))
	require.NoError(t, err)
	id := scheduleTestAppointment(t, session, patientID, 1)

	require.NoError(t, session.UpdateAppointmentStatus(id+100, Models.AppointmentCancelled))

	assert.Equal(t, Models.AppointmentScheduled, session.Appointments[0].Status)
	var stored Models.Appointment
	require.NoError(t, db.First(&stored, id).Error)
	assert.Equal(t, Models.AppointmentScheduled, stored.Status)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	session := NewSession(setupTestDB(t))
	require.NoError(t, session.LoadAll())

	err := session.UpdateAppointmentStatus(1, "Postponed")
	require.Error(t, err)
	var validationErr *Models.ValidationError
	assert.ErrorAs(t, err, &validationErr)

	assert.Error(t, session.UpdateBillStatus(1, "Overdue"))
}

func TestSnapshotAccessorsCopy(t *testing.T) {
	session := NewSession(setupTestDB(t))
	require.NoError(t, session.LoadAll())

	_, err := session.CreatePatient(testPatient("John Doe"))
	require.NoError(t, err)

	snapshot := session.PatientRecords()
	require.Len(t, snapshot, 1)

	// Later creates must not show up in an already-taken snapshot.
	_, err = session.CreatePatient(testPatient("Jane Roe"))
	require.NoError(t, err)
	assert.Len(t, snapshot, 1)
	assert.Len(t, session.PatientRecords(), 2)
}

// Two requests bearing the same token share one session, so reads through
// the snapshot accessors must be safe against a concurrent create
// reallocating the live slice.
func TestConcurrentReadsDuringCreates(t *testing.T) {
	session := NewSession(setupTestDB(t))
	require.NoError(t, session.LoadAll())

	const writes = 50
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < writes; i++ {
			if _, err := session.CreatePatient(testPatient(fmt.Sprintf("Patient %d", i))); err != nil {
				t.Error(err)
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			require.Len(t, session.PatientRecords(), writes)
			return
		default:
			for _, patient := range session.PatientRecords() {
				assert.NotEmpty(t, patient.Name)
			}
		}
	}
}

func TestSearchPatients(t *testing.T) {
	session := NewSession(setupTestDB(t))
	require.NoError(t, session.LoadAll())

	id, err := session.CreatePatient(testPatient("John Doe"))
	require.NoError(t, err)
	jane := testPatient("Jane Roe")
	jane.Phone = "+442071234567"
	_, err = session.CreatePatient(jane)
	require.NoError(t, err)

	byName := session.SearchPatients("name", "john")
	require.Len(t, byName, 1)
	assert.Equal(t, "John Doe", byName[0].Name)

	byPhone := session.SearchPatients("phone", "4420")
	require.Len(t, byPhone, 1)
	assert.Equal(t, "Jane Roe", byPhone[0].Name)

	byID := session.SearchPatients("id", fmt.Sprintf("%d", id))
	require.Len(t, byID, 1)
	assert.Equal(t, "John Doe", byID[0].Name)

	assert.Empty(t, session.SearchPatients("name", "nobody"))
}
