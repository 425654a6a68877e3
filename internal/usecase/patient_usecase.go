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
	ErrPatientNotFound      = errors.New("patient not found")
	ErrPatientAlreadyExists = errors.New("patient already exists")
)

type PatientUsecase interface {
	CreatePatient(ctx context.Context, req *dto.UpsertPatientRequest) (*dto.PatientResponse, error)
	GetPatients(ctx context.Context, page, size int) (*dto.PatientPageResponse, error)
	GetPatientByEmail(ctx context.Context, email string) (*dto.PatientResponse, error)
	EditPatient(ctx context.Context, email string, req *dto.UpsertPatientRequest) (*dto.PatientResponse, error)
	DeletePatient(ctx context.Context, email string) error
}

type patientUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	clk         clock.Clock
	patientRepo repository.PatientRepository
	visitRepo   repository.VisitRepository
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	clk clock.Clock,
	patientRepo repository.PatientRepository,
	visitRepo repository.VisitRepository,
) PatientUsecase {
	return &patientUsecase{
		db:          db,
		log:         log,
		clk:         clk,
		patientRepo: patientRepo,
		visitRepo:   visitRepo,
	}
}

func (u *patientUsecase) CreatePatient(ctx context.Context, req *dto.UpsertPatientRequest) (*dto.PatientResponse, error) {
	exists, err := u.patientRepo.ExistsByEmail(u.db.WithContext(ctx), req.Email)
	if err != nil {
		u.log.Warnf("Failed email availability check for %s: %+v", req.Email, err)
		return nil, err
	}
	if exists {
		return nil, apperror.New(ErrPatientAlreadyExists, fmt.Sprintf("Patient with email: %s already exists.", req.Email), u.clk.Now())
	}

	patient := &entity.Patient{
		Email:       req.Email,
		IDCardNo:    req.IDCardNo,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
	}
	if err := u.patientRepo.Create(u.db.WithContext(ctx), patient); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, apperror.New(ErrPatientAlreadyExists, fmt.Sprintf("Patient with email: %s already exists.", req.Email), u.clk.Now())
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	u.log.Infof("Patient created: id=%d, email=%s", patient.ID, patient.Email)
	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetPatients(ctx context.Context, page, size int) (*dto.PatientPageResponse, error) {
	patients, total, err := u.patientRepo.FindAll(u.db.WithContext(ctx), page, size)
	if err != nil {
		u.log.Warnf("Failed to find patients: %+v", err)
		return nil, err
	}
	return converter.PatientsToPageResponse(patients, total, page, size), nil
}

func (u *patientUsecase) GetPatientByEmail(ctx context.Context, email string) (*dto.PatientResponse, error) {
	patient, err := u.getPatientWithEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) EditPatient(ctx context.Context, email string, req *dto.UpsertPatientRequest) (*dto.PatientResponse, error) {
	patient, err := u.getPatientWithEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if req.Email != patient.Email {
		exists, err := u.patientRepo.ExistsByEmail(u.db.WithContext(ctx), req.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperror.New(ErrPatientAlreadyExists, fmt.Sprintf("Patient with email: %s already exists.", req.Email), u.clk.Now())
		}
	}

	patient.Email = req.Email
	patient.IDCardNo = req.IDCardNo
	patient.FirstName = req.FirstName
	patient.LastName = req.LastName
	patient.PhoneNumber = req.PhoneNumber

	if err := u.patientRepo.Update(u.db.WithContext(ctx), patient); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, apperror.New(ErrPatientAlreadyExists, fmt.Sprintf("Patient with email: %s already exists.", req.Email), u.clk.Now())
		}
		u.log.Warnf("Failed to update patient %d: %+v", patient.ID, err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

// DeletePatient detaches the patient from their visits first, reopening the
// claimed future slots, then removes the record.
func (u *patientUsecase) DeletePatient(ctx context.Context, email string) error {
	patient, err := u.getPatientWithEmail(ctx, email)
	if err != nil {
		return err
	}

	if err := u.visitRepo.DetachPatient(u.db.WithContext(ctx), patient.ID); err != nil {
		u.log.Warnf("Failed to detach patient %d from visits: %+v", patient.ID, err)
		return err
	}
	if err := u.patientRepo.Delete(u.db.WithContext(ctx), patient.ID); err != nil {
		u.log.Warnf("Failed to delete patient %d: %+v", patient.ID, err)
		return err
	}

	u.log.Infof("Patient deleted: id=%d, email=%s", patient.ID, email)
	return nil
}

func (u *patientUsecase) getPatientWithEmail(ctx context.Context, email string) (*entity.Patient, error) {
	patient, err := u.patientRepo.FindByEmail(u.db.WithContext(ctx), email)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", email, err)
		return nil, err
	}
	if patient == nil {
		return nil, apperror.New(ErrPatientNotFound, fmt.Sprintf("Patient with email: %s does not exist.", email), u.clk.Now())
	}
	return patient, nil
}
