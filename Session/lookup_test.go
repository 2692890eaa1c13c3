package Session

import (
	"testing"

	"HospitalMS/Models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestResolveNameDefaultsToUnknown(t *testing.T) {
	assert.Equal(t, UnknownName, ResolvePatientName(nil, 1))
	assert.Equal(t, UnknownName, ResolvePatientName([]Models.Patient{}, 42))
	assert.Equal(t, UnknownName, ResolveDoctorName([]Models.Doctor{}, 7))
}

func TestResolveNameFirstMatch(t *testing.T) {
	patients := []Models.Patient{
		{Model: gorm.Model{ID: 1}, Name: "John Doe"},
		{Model: gorm.Model{ID: 2}, Name: "Jane Roe"},
	}
	assert.Equal(t, "Jane Roe", ResolvePatientName(patients, 2))
	assert.Equal(t, UnknownName, ResolvePatientName(patients, 3))
}

func TestAppointmentViewsJoinNames(t *testing.T) {
	session := NewSession(setupTestDB(t))
	require.NoError(t, session.LoadAll())

	patientID, err := session.CreatePatient(testPatient("John Doe"))
	require.NoError(t, err)
	doctorID, err := session.CreateDoctor(&Models.Doctor{
		Name:           "Gregory House",
		Specialization: "Diagnostics",
		Phone:          "+14155551234",
		Schedule:       "Mon-Fri 9AM-5PM",
		Fee:            150,
	})
	require.NoError(t, err)

	scheduleTestAppointment(t, session, patientID, doctorID)
	// Dangling doctor reference degrades to the sentinel, not an error.
	scheduleTestAppointment(t, session, patientID, doctorID+50)

	views := session.AppointmentViews()
	require.Len(t, views, 2)
	assert.Equal(t, "John Doe", views[0].Patient)
	assert.Equal(t, "Gregory House", views[0].Doctor)
	assert.Equal(t, UnknownName, views[1].Doctor)
}

func TestBillViewsJoinPatient(t *testing.T) {
	session := NewSession(setupTestDB(t))
	require.NoError(t, session.LoadAll())

	patientID, err := session.CreatePatient(testPatient("John Doe"))
	require.NoError(t, err)

	_, err = session.GenerateBill(&Models.Bill{
		PatientID: patientID,
		DoctorFee: 100,
		Date:      "2024-05-01",
	})
	require.NoError(t, err)

	views := session.BillViews()
	require.Len(t, views, 1)
	assert.Equal(t, "John Doe", views[0].Patient)
	assert.Equal(t, 100.0, views[0].TotalAmount)
}

func TestRecentAppointmentsKeepsLast(t *testing.T) {
	session := NewSession(setupTestDB(t))
	require.NoError(t, session.LoadAll())

	patientID, err := session.CreatePatient(testPatient("John Doe"))
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		scheduleTestAppointment(t, session, patientID, 1)
	}

	recent := session.RecentAppointments(3)
	require.Len(t, recent, 3)
	all := session.AppointmentViews()
	assert.Equal(t, all[len(all)-3:], recent)

	assert.Len(t, session.RecentAppointments(10), 5)
}
