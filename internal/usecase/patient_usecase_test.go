package usecase

import (
	"context"
	"testing"

	"medical-clinic-api/internal/delivery/dto"
	"medical-clinic-api/internal/domain/entity"
	"medical-clinic-api/pkg/apperror"
	"medical-clinic-api/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type patientTestDeps struct {
	usecase     PatientUsecase
	patientRepo *mockPatientRepository
	visitRepo   *mockVisitRepository
}

func newPatientTestDeps() *patientTestDeps {
	patientRepo := &mockPatientRepository{}
	visitRepo := &mockVisitRepository{}
	uc := NewPatientUsecase(newTestDB(), newTestLogger(), clock.Fixed(testNow), patientRepo, visitRepo)
	return &patientTestDeps{
		usecase:     uc,
		patientRepo: patientRepo,
		visitRepo:   visitRepo,
	}
}

func upsertPatientRequest() *dto.UpsertPatientRequest {
	return &dto.UpsertPatientRequest{
		Email:       "anna.nowak@mail.test",
		IDCardNo:    "ABC123456",
		FirstName:   "Anna",
		LastName:    "Nowak",
		PhoneNumber: "+48123456789",
	}
}

func TestCreatePatient_Success(t *testing.T) {
	deps := newPatientTestDeps()
	deps.patientRepo.nextPatientID = 3

	resp, err := deps.usecase.CreatePatient(context.Background(), upsertPatientRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.ID)
	assert.Equal(t, "anna.nowak@mail.test", resp.Email)
	assert.Equal(t, "ABC123456", resp.IDCardNo)
}

func TestCreatePatient_DuplicateEmail(t *testing.T) {
	deps := newPatientTestDeps()
	deps.patientRepo.emailExists = true

	resp, err := deps.usecase.CreatePatient(context.Background(), upsertPatientRequest())

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrPatientAlreadyExists)
	assert.Equal(t, "Patient with email: anna.nowak@mail.test already exists.", apperror.Detail(err))
}

func TestGetPatientByEmail_NotFound(t *testing.T) {
	deps := newPatientTestDeps()

	resp, err := deps.usecase.GetPatientByEmail(context.Background(), "nobody@mail.test")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestDeletePatient_DetachesVisitsFirst(t *testing.T) {
	deps := newPatientTestDeps()
	deps.patientRepo.findByEmailPatient = &entity.Patient{ID: 3, Email: "anna.nowak@mail.test"}

	err := deps.usecase.DeletePatient(context.Background(), "anna.nowak@mail.test")

	require.NoError(t, err)
	assert.Equal(t, int64(3), deps.visitRepo.detachedPatientID)
	assert.Equal(t, int64(3), deps.patientRepo.deletedID)
}

func TestDeletePatient_NotFound(t *testing.T) {
	deps := newPatientTestDeps()

	err := deps.usecase.DeletePatient(context.Background(), "nobody@mail.test")

	assert.ErrorIs(t, err, ErrPatientNotFound)
	assert.Zero(t, deps.visitRepo.detachedPatientID)
}
