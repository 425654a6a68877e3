package usecase

import (
	"context"
	"testing"
	"time"

	"medical-clinic-api/internal/delivery/dto"
	"medical-clinic-api/internal/domain/entity"
	"medical-clinic-api/internal/domain/repository"
	"medical-clinic-api/internal/service"
	"medical-clinic-api/pkg/apperror"
	"medical-clinic-api/pkg/clock"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doctorTestDeps struct {
	usecase    DoctorUsecase
	doctorRepo *mockDoctorRepository
	visitRepo  *mockVisitRepository
}

// newDoctorTestDeps wires the usecase over an unreachable Redis endpoint.
// Cache failures are treated as misses, so the usecase must behave exactly
// as if the cache were empty.
func newDoctorTestDeps() *doctorTestDeps {
	doctorRepo := &mockDoctorRepository{}
	visitRepo := &mockVisitRepository{}
	log := newTestLogger()
	cache := service.NewDoctorCache(redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}), log, time.Minute)
	uc := NewDoctorUsecase(newTestDB(), log, clock.Fixed(testNow), doctorRepo, visitRepo, cache)
	return &doctorTestDeps{
		usecase:    uc,
		doctorRepo: doctorRepo,
		visitRepo:  visitRepo,
	}
}

func upsertDoctorRequest() *dto.UpsertDoctorRequest {
	return &dto.UpsertDoctorRequest{
		Email:          "john.kowalski@clinic.test",
		FirstName:      "John",
		LastName:       "Kowalski",
		Specialization: "Surgeon",
	}
}

func TestCreateDoctor_Success(t *testing.T) {
	deps := newDoctorTestDeps()
	deps.doctorRepo.nextDoctorID = 5

	resp, err := deps.usecase.CreateDoctor(context.Background(), upsertDoctorRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.ID)
	assert.Equal(t, "john.kowalski@clinic.test", resp.Email)
	assert.Equal(t, "Surgeon", resp.Specialization)
}

func TestCreateDoctor_DuplicateEmail(t *testing.T) {
	deps := newDoctorTestDeps()
	deps.doctorRepo.emailExists = true

	resp, err := deps.usecase.CreateDoctor(context.Background(), upsertDoctorRequest())

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrDoctorAlreadyExists)
	assert.Equal(t, "Doctor with email: john.kowalski@clinic.test already exists.", apperror.Detail(err))
	assert.Nil(t, deps.doctorRepo.createdDoctor)
}

func TestCreateDoctor_LostUniqueRace(t *testing.T) {
	deps := newDoctorTestDeps()
	deps.doctorRepo.createErr = repository.ErrConflict

	resp, err := deps.usecase.CreateDoctor(context.Background(), upsertDoctorRequest())

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrDoctorAlreadyExists)
}

func TestGetDoctorByEmail_NotFound(t *testing.T) {
	deps := newDoctorTestDeps()

	resp, err := deps.usecase.GetDoctorByEmail(context.Background(), "nobody@clinic.test")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrDoctorNotFound)
	assert.Equal(t, "Doctor with email: nobody@clinic.test does not exist.", apperror.Detail(err))
}

func TestGetDoctorByEmail_CacheUnreachableFallsThrough(t *testing.T) {
	deps := newDoctorTestDeps()
	deps.doctorRepo.findByEmailDoctor = &entity.Doctor{ID: 5, Email: "john.kowalski@clinic.test", Specialization: "Surgeon"}

	resp, err := deps.usecase.GetDoctorByEmail(context.Background(), "john.kowalski@clinic.test")

	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.ID)
	assert.Equal(t, "Surgeon", resp.Specialization)
}

func TestEditDoctor_EmailCollision(t *testing.T) {
	deps := newDoctorTestDeps()
	deps.doctorRepo.findByEmailDoctor = &entity.Doctor{ID: 5, Email: "john.kowalski@clinic.test"}
	deps.doctorRepo.emailExists = true

	req := upsertDoctorRequest()
	req.Email = "taken@clinic.test"
	resp, err := deps.usecase.EditDoctor(context.Background(), "john.kowalski@clinic.test", req)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrDoctorAlreadyExists)
	assert.Nil(t, deps.doctorRepo.updatedDoctor)
}

func TestEditDoctor_Success(t *testing.T) {
	deps := newDoctorTestDeps()
	deps.doctorRepo.findByEmailDoctor = &entity.Doctor{ID: 5, Email: "john.kowalski@clinic.test", Specialization: "Surgeon"}

	req := upsertDoctorRequest()
	req.Specialization = "Oncologist"
	resp, err := deps.usecase.EditDoctor(context.Background(), "john.kowalski@clinic.test", req)

	require.NoError(t, err)
	assert.Equal(t, "Oncologist", resp.Specialization)
	require.NotNil(t, deps.doctorRepo.updatedDoctor)
	assert.Equal(t, "Oncologist", deps.doctorRepo.updatedDoctor.Specialization)
}

func TestDeleteDoctor_DetachesVisitsFirst(t *testing.T) {
	deps := newDoctorTestDeps()
	deps.doctorRepo.findByEmailDoctor = &entity.Doctor{ID: 5, Email: "john.kowalski@clinic.test"}

	err := deps.usecase.DeleteDoctor(context.Background(), "john.kowalski@clinic.test")

	require.NoError(t, err)
	assert.Equal(t, int64(5), deps.visitRepo.detachedDoctorID)
	assert.Equal(t, int64(5), deps.doctorRepo.deletedID)
}

func TestDeleteDoctor_NotFound(t *testing.T) {
	deps := newDoctorTestDeps()

	err := deps.usecase.DeleteDoctor(context.Background(), "nobody@clinic.test")

	assert.ErrorIs(t, err, ErrDoctorNotFound)
	assert.Zero(t, deps.visitRepo.detachedDoctorID)
}
