package usecase

import (
	"context"
	"errors"
	"fmt"

	"medical-clinic-api/internal/converter"
	"medical-clinic-api/internal/delivery/dto"
	"medical-clinic-api/internal/domain/entity"
	"medical-clinic-api/internal/domain/repository"
	"medical-clinic-api/pkg/apperror"
	"medical-clinic-api/pkg/clock"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidVisitData       = errors.New("invalid visit data")
	ErrVisitInPast            = errors.New("visit cannot be set in the past")
	ErrInvalidTimeRange       = errors.New("visit end time must be later than start time")
	ErrInvalidTimeGranularity = errors.New("visit times must align to a quarter-hour")
	ErrSlotConflict           = errors.New("visit slot already taken")
	ErrVisitNotFound          = errors.New("visit not found")
	ErrVisitUnavailable       = errors.New("visit is not available")
)

type VisitUsecase interface {
	CreateVisit(ctx context.Context, req *dto.CreateVisitRequest) (*dto.VisitResponse, error)
	GetVisits(ctx context.Context, filter *entity.VisitFilter, page, size int) (*dto.VisitPageResponse, error)
	GetVisitsByDoctor(ctx context.Context, doctorID int64, page, size int) (*dto.VisitPageResponse, error)
	GetVisitsByPatient(ctx context.Context, patientID int64, page, size int) (*dto.VisitPageResponse, error)
	RegisterPatient(ctx context.Context, visitID, patientID int64) error
	DeleteVisit(ctx context.Context, visitID int64) error
}

type visitUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	clk         clock.Clock
	visitRepo   repository.VisitRepository
	doctorRepo  repository.DoctorRepository
	patientRepo repository.PatientRepository
}

func NewVisitUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	clk clock.Clock,
	visitRepo repository.VisitRepository,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
) VisitUsecase {
	return &visitUsecase{
		db:          db,
		log:         log,
		clk:         clk,
		visitRepo:   visitRepo,
		doctorRepo:  doctorRepo,
		patientRepo: patientRepo,
	}
}

// CreateVisit validates a proposed slot and persists it as an open visit.
//
// Checks run in a fixed order, first failure wins:
// 1. doctor id, start and end time present
// 2. doctor exists
// 3. start time not in the past
// 4. end time strictly after start time
// 5. both times on a quarter-hour boundary
// 6. no inclusive overlap with the doctor's existing visits
//
// The overlap check is advisory: the visits_no_overlap exclusion constraint
// is the authoritative guard, so a race lost between check and insert comes
// back from the store as a conflict, not as corrupt data.
func (u *visitUsecase) CreateVisit(ctx context.Context, req *dto.CreateVisitRequest) (*dto.VisitResponse, error) {
	now := u.clk.Now()

	if req == nil || req.DoctorID == nil || req.StartTime == nil || req.EndTime == nil {
		return nil, apperror.New(ErrInvalidVisitData, "There cannot be nulls in visit data.", now)
	}

	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), *req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", *req.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, apperror.New(ErrDoctorNotFound, fmt.Sprintf("Doctor with id: %d does not exist.", *req.DoctorID), now)
	}

	startTime := *req.StartTime
	endTime := *req.EndTime

	if startTime.Before(now) {
		return nil, apperror.New(ErrVisitInPast, "The visit cannot be set in the past.", now)
	}
	if !endTime.After(startTime) {
		return nil, apperror.New(ErrInvalidTimeRange, "The visit end date has to be later than start date.", now)
	}
	if startTime.Minute()%15 != 0 || endTime.Minute()%15 != 0 {
		return nil, apperror.New(ErrInvalidTimeGranularity, "The visit time must be set to a full quarter-hour increment e.g. 13:15.", now)
	}

	overlaps, err := u.visitRepo.ExistsOverlapping(u.db.WithContext(ctx), doctor.ID, startTime, endTime)
	if err != nil {
		u.log.Warnf("Failed overlap check for doctor %d: %+v", doctor.ID, err)
		return nil, err
	}
	if overlaps {
		return nil, apperror.New(ErrSlotConflict, "There is a visit already scheduled at that time.", now)
	}

	visit := &entity.Visit{
		StartTime: startTime,
		EndTime:   endTime,
		DoctorID:  &doctor.ID,
	}
	if err := u.visitRepo.Create(u.db.WithContext(ctx), visit); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			// Lost the check-then-act race, the store constraint decided.
			return nil, apperror.New(ErrSlotConflict, "There is a visit already scheduled at that time.", u.clk.Now())
		}
		u.log.Warnf("Failed to create visit for doctor %d: %+v", doctor.ID, err)
		return nil, err
	}

	u.log.Infof("Visit created: id=%d, doctor=%d, start=%s", visit.ID, doctor.ID, visit.StartTime)
	visit.Doctor = doctor
	return converter.VisitToResponse(visit), nil
}

// GetVisits runs a dynamic filtered query. The filter object itself is
// required, an entirely empty filter is fine and matches every visit.
func (u *visitUsecase) GetVisits(ctx context.Context, filter *entity.VisitFilter, page, size int) (*dto.VisitPageResponse, error) {
	now := u.clk.Now()

	if filter == nil {
		return nil, apperror.New(ErrInvalidVisitData, "Filter for visit is null.", now)
	}
	if filter.StartTime != nil && filter.EndTime != nil && filter.StartTime.After(*filter.EndTime) {
		return nil, apperror.New(ErrInvalidTimeRange, "The filter start time cannot be later than the filter end time.", now)
	}

	visits, total, err := u.visitRepo.FindAllFiltered(u.db.WithContext(ctx), filter, now, page, size)
	if err != nil {
		u.log.Warnf("Failed to query visits: %+v", err)
		return nil, err
	}

	return converter.VisitsToPageResponse(visits, total, page, size), nil
}

func (u *visitUsecase) GetVisitsByDoctor(ctx context.Context, doctorID int64, page, size int) (*dto.VisitPageResponse, error) {
	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, apperror.New(ErrDoctorNotFound, fmt.Sprintf("Doctor with id: %d does not exist.", doctorID), u.clk.Now())
	}

	visits, total, err := u.visitRepo.FindAllByDoctorID(u.db.WithContext(ctx), doctorID, page, size)
	if err != nil {
		u.log.Warnf("Failed to find visits for doctor %d: %+v", doctorID, err)
		return nil, err
	}
	return converter.VisitsToPageResponse(visits, total, page, size), nil
}

func (u *visitUsecase) GetVisitsByPatient(ctx context.Context, patientID int64, page, size int) (*dto.VisitPageResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, apperror.New(ErrPatientNotFound, fmt.Sprintf("Patient with id: %d does not exist.", patientID), u.clk.Now())
	}

	visits, total, err := u.visitRepo.FindAllByPatientID(u.db.WithContext(ctx), patientID, page, size)
	if err != nil {
		u.log.Warnf("Failed to find visits for patient %d: %+v", patientID, err)
		return nil, err
	}
	return converter.VisitsToPageResponse(visits, total, page, size), nil
}

// RegisterPatient claims an open slot for a patient. A visit can only move
// from open to booked, there is no unbooking. The conditional update in the
// store is the safety net for concurrent claims: whoever loses the race sees
// zero affected rows.
func (u *visitUsecase) RegisterPatient(ctx context.Context, visitID, patientID int64) error {
	now := u.clk.Now()

	visit, err := u.visitRepo.FindByID(u.db.WithContext(ctx), visitID)
	if err != nil {
		u.log.Warnf("Failed to find visit %d: %+v", visitID, err)
		return err
	}
	if visit == nil {
		return apperror.New(ErrVisitNotFound, fmt.Sprintf("Visit with id: %d does not exist.", visitID), now)
	}

	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", patientID, err)
		return err
	}
	if patient == nil {
		return apperror.New(ErrPatientNotFound, fmt.Sprintf("Patient with id: %d does not exist.", patientID), now)
	}

	if visit.IsPast(now) {
		return apperror.New(ErrVisitUnavailable, "Patient cannot register to the past visits.", now)
	}
	if !visit.IsOpen() {
		return apperror.New(ErrVisitUnavailable, "Patient is already registered to that visit.", now)
	}

	affected, err := u.visitRepo.AssignPatient(u.db.WithContext(ctx), visitID, patientID)
	if err != nil {
		u.log.Warnf("Failed to assign patient %d to visit %d: %+v", patientID, visitID, err)
		return err
	}
	if affected == 0 {
		// A concurrent claim won between our read and the write.
		return apperror.New(ErrVisitUnavailable, "Patient is already registered to that visit.", u.clk.Now())
	}

	u.log.Infof("Visit claimed: id=%d, patient=%d", visitID, patientID)
	return nil
}

// DeleteVisit removes a visit unconditionally, claimed or not.
func (u *visitUsecase) DeleteVisit(ctx context.Context, visitID int64) error {
	visit, err := u.visitRepo.FindByID(u.db.WithContext(ctx), visitID)
	if err != nil {
		u.log.Warnf("Failed to find visit %d: %+v", visitID, err)
		return err
	}
	if visit == nil {
		return apperror.New(ErrVisitNotFound, fmt.Sprintf("Visit with id: %d does not exist.", visitID), u.clk.Now())
	}

	if err := u.visitRepo.Delete(u.db.WithContext(ctx), visitID); err != nil {
		u.log.Warnf("Failed to delete visit %d: %+v", visitID, err)
		return err
	}

	u.log.Infof("Visit deleted: id=%d", visitID)
	return nil
}
