package usecase

import (
	"time"

	"medical-clinic-api/internal/domain/entity"

	"gorm.io/gorm"
)

// newTestDB builds a gorm handle that is never dialed. The usecases only
// thread it through to the mocked repositories.
func newTestDB() *gorm.DB {
	db := &gorm.DB{Config: &gorm.Config{}}
	db.Statement = &gorm.Statement{DB: db}
	return db
}

type mockVisitRepository struct {
	createdVisit *entity.Visit
	createErr    error
	nextVisitID  int64

	findByIDVisit *entity.Visit
	findByIDErr   error

	deleteCalled bool
	deleteErr    error

	overlapExists bool
	overlapErr    error
	overlapStart  time.Time
	overlapEnd    time.Time

	assignedVisitID   int64
	assignedPatientID int64
	assignRows        int64
	assignErr         error

	filteredVisits []entity.Visit
	filteredTotal  int64
	filteredErr    error
	capturedFilter *entity.VisitFilter
	capturedNow    time.Time
	capturedPage   int
	capturedSize   int

	byDoctorVisits  []entity.Visit
	byDoctorTotal   int64
	byPatientVisits []entity.Visit
	byPatientTotal  int64

	detachedDoctorID  int64
	detachedPatientID int64
}

func (m *mockVisitRepository) Create(db *gorm.DB, visit *entity.Visit) error {
	if m.createErr != nil {
		return m.createErr
	}
	visit.ID = m.nextVisitID
	m.createdVisit = visit
	return nil
}

func (m *mockVisitRepository) FindByID(db *gorm.DB, id int64) (*entity.Visit, error) {
	return m.findByIDVisit, m.findByIDErr
}

func (m *mockVisitRepository) Delete(db *gorm.DB, id int64) error {
	m.deleteCalled = true
	return m.deleteErr
}

func (m *mockVisitRepository) ExistsOverlapping(db *gorm.DB, doctorID int64, startTime, endTime time.Time) (bool, error) {
	m.overlapStart = startTime
	m.overlapEnd = endTime
	return m.overlapExists, m.overlapErr
}

func (m *mockVisitRepository) AssignPatient(db *gorm.DB, visitID, patientID int64) (int64, error) {
	m.assignedVisitID = visitID
	m.assignedPatientID = patientID
	return m.assignRows, m.assignErr
}

func (m *mockVisitRepository) FindAllFiltered(db *gorm.DB, filter *entity.VisitFilter, now time.Time, page, size int) ([]entity.Visit, int64, error) {
	m.capturedFilter = filter
	m.capturedNow = now
	m.capturedPage = page
	m.capturedSize = size
	return m.filteredVisits, m.filteredTotal, m.filteredErr
}

func (m *mockVisitRepository) FindAllByDoctorID(db *gorm.DB, doctorID int64, page, size int) ([]entity.Visit, int64, error) {
	return m.byDoctorVisits, m.byDoctorTotal, nil
}

func (m *mockVisitRepository) FindAllByPatientID(db *gorm.DB, patientID int64, page, size int) ([]entity.Visit, int64, error) {
	return m.byPatientVisits, m.byPatientTotal, nil
}

func (m *mockVisitRepository) DetachDoctor(db *gorm.DB, doctorID int64) error {
	m.detachedDoctorID = doctorID
	return nil
}

func (m *mockVisitRepository) DetachPatient(db *gorm.DB, patientID int64) error {
	m.detachedPatientID = patientID
	return nil
}

type mockDoctorRepository struct {
	findByIDDoctor    *entity.Doctor
	findByIDErr       error
	findByEmailDoctor *entity.Doctor
	findByEmailErr    error
	emailExists       bool
	emailExistsErr    error
	createErr         error
	nextDoctorID      int64
	createdDoctor     *entity.Doctor
	updatedDoctor     *entity.Doctor
	updateErr         error
	deletedID         int64
	deleteErr         error
	allDoctors        []entity.Doctor
	allTotal          int64
}

func (m *mockDoctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	if m.createErr != nil {
		return m.createErr
	}
	doctor.ID = m.nextDoctorID
	m.createdDoctor = doctor
	return nil
}

func (m *mockDoctorRepository) FindByID(db *gorm.DB, id int64) (*entity.Doctor, error) {
	return m.findByIDDoctor, m.findByIDErr
}

func (m *mockDoctorRepository) FindByEmail(db *gorm.DB, email string) (*entity.Doctor, error) {
	return m.findByEmailDoctor, m.findByEmailErr
}

func (m *mockDoctorRepository) ExistsByEmail(db *gorm.DB, email string) (bool, error) {
	return m.emailExists, m.emailExistsErr
}

func (m *mockDoctorRepository) FindAll(db *gorm.DB, page, size int) ([]entity.Doctor, int64, error) {
	return m.allDoctors, m.allTotal, nil
}

func (m *mockDoctorRepository) Update(db *gorm.DB, doctor *entity.Doctor) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updatedDoctor = doctor
	return nil
}

func (m *mockDoctorRepository) Delete(db *gorm.DB, id int64) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deletedID = id
	return nil
}

type mockPatientRepository struct {
	findByIDPatient    *entity.Patient
	findByIDErr        error
	findByEmailPatient *entity.Patient
	findByEmailErr     error
	emailExists        bool
	emailExistsErr     error
	createErr          error
	nextPatientID      int64
	createdPatient     *entity.Patient
	updatedPatient     *entity.Patient
	updateErr          error
	deletedID          int64
	deleteErr          error
	allPatients        []entity.Patient
	allTotal           int64
}

func (m *mockPatientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	if m.createErr != nil {
		return m.createErr
	}
	patient.ID = m.nextPatientID
	m.createdPatient = patient
	return nil
}

func (m *mockPatientRepository) FindByID(db *gorm.DB, id int64) (*entity.Patient, error) {
	return m.findByIDPatient, m.findByIDErr
}

func (m *mockPatientRepository) FindByEmail(db *gorm.DB, email string) (*entity.Patient, error) {
	return m.findByEmailPatient, m.findByEmailErr
}

func (m *mockPatientRepository) ExistsByEmail(db *gorm.DB, email string) (bool, error) {
	return m.emailExists, m.emailExistsErr
}

func (m *mockPatientRepository) FindAll(db *gorm.DB, page, size int) ([]entity.Patient, int64, error) {
	return m.allPatients, m.allTotal, nil
}

func (m *mockPatientRepository) Update(db *gorm.DB, patient *entity.Patient) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updatedPatient = patient
	return nil
}

func (m *mockPatientRepository) Delete(db *gorm.DB, id int64) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deletedID = id
	return nil
}

type mockFacilityRepository struct {
	findByIDFacility *entity.Facility
	findByIDErr      error
	nameExists       bool
	nameExistsErr    error
	createErr        error
	nextFacilityID   int64
	createdFacility  *entity.Facility
	updateErr        error
	deletedID        int64
	allFacilities    []entity.Facility
	allTotal         int64
}

func (m *mockFacilityRepository) Create(db *gorm.DB, facility *entity.Facility) error {
	if m.createErr != nil {
		return m.createErr
	}
	facility.ID = m.nextFacilityID
	m.createdFacility = facility
	return nil
}

func (m *mockFacilityRepository) FindByID(db *gorm.DB, id int64) (*entity.Facility, error) {
	return m.findByIDFacility, m.findByIDErr
}

func (m *mockFacilityRepository) ExistsByName(db *gorm.DB, name string) (bool, error) {
	return m.nameExists, m.nameExistsErr
}

func (m *mockFacilityRepository) FindAll(db *gorm.DB, page, size int) ([]entity.Facility, int64, error) {
	return m.allFacilities, m.allTotal, nil
}

func (m *mockFacilityRepository) Update(db *gorm.DB, facility *entity.Facility) error {
	return m.updateErr
}

func (m *mockFacilityRepository) Delete(db *gorm.DB, id int64) error {
	m.deletedID = id
	return nil
}
