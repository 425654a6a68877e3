package usecase

import (
	"context"
	"errors"
	"fmt"

	"medical-clinic-api/internal/converter"
	"medical-clinic-api/internal/delivery/dto"
	"medical-clinic-api/internal/domain/entity"
	"medical-clinic-api/internal/domain/repository"
	"medical-clinic-api/internal/service"
	"medical-clinic-api/pkg/apperror"
	"medical-clinic-api/pkg/clock"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrDoctorAlreadyExists = errors.New("doctor already exists")
)

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, req *dto.UpsertDoctorRequest) (*dto.DoctorResponse, error)
	GetDoctors(ctx context.Context, page, size int) (*dto.DoctorPageResponse, error)
	GetDoctorByEmail(ctx context.Context, email string) (*dto.DoctorResponse, error)
	EditDoctor(ctx context.Context, email string, req *dto.UpsertDoctorRequest) (*dto.DoctorResponse, error)
	DeleteDoctor(ctx context.Context, email string) error
}

type doctorUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	clk         clock.Clock
	doctorRepo  repository.DoctorRepository
	visitRepo   repository.VisitRepository
	doctorCache *service.DoctorCache
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	clk clock.Clock,
	doctorRepo repository.DoctorRepository,
	visitRepo repository.VisitRepository,
	doctorCache *service.DoctorCache,
) DoctorUsecase {
	return &doctorUsecase{
		db:          db,
		log:         log,
		clk:         clk,
		doctorRepo:  doctorRepo,
		visitRepo:   visitRepo,
		doctorCache: doctorCache,
	}
}

func (u *doctorUsecase) CreateDoctor(ctx context.Context, req *dto.UpsertDoctorRequest) (*dto.DoctorResponse, error) {
	exists, err := u.doctorRepo.ExistsByEmail(u.db.WithContext(ctx), req.Email)
	if err != nil {
		u.log.Warnf("Failed email availability check for %s: %+v", req.Email, err)
		return nil, err
	}
	if exists {
		return nil, apperror.New(ErrDoctorAlreadyExists, fmt.Sprintf("Doctor with email: %s already exists.", req.Email), u.clk.Now())
	}

	doctor := &entity.Doctor{
		Email:          req.Email,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Specialization: req.Specialization,
	}
	if err := u.doctorRepo.Create(u.db.WithContext(ctx), doctor); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, apperror.New(ErrDoctorAlreadyExists, fmt.Sprintf("Doctor with email: %s already exists.", req.Email), u.clk.Now())
		}
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	u.log.Infof("Doctor created: id=%d, email=%s", doctor.ID, doctor.Email)
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetDoctors(ctx context.Context, page, size int) (*dto.DoctorPageResponse, error) {
	doctors, total, err := u.doctorRepo.FindAll(u.db.WithContext(ctx), page, size)
	if err != nil {
		u.log.Warnf("Failed to find doctors: %+v", err)
		return nil, err
	}
	return converter.DoctorsToPageResponse(doctors, total, page, size), nil
}

func (u *doctorUsecase) GetDoctorByEmail(ctx context.Context, email string) (*dto.DoctorResponse, error) {
	if cached := u.doctorCache.Get(ctx, email); cached != nil {
		return cached, nil
	}

	doctor, err := u.getDoctorWithEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	response := converter.DoctorToResponse(doctor)
	u.doctorCache.Set(ctx, response)
	return response, nil
}

func (u *doctorUsecase) EditDoctor(ctx context.Context, email string, req *dto.UpsertDoctorRequest) (*dto.DoctorResponse, error) {
	doctor, err := u.getDoctorWithEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if req.Email != doctor.Email {
		exists, err := u.doctorRepo.ExistsByEmail(u.db.WithContext(ctx), req.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperror.New(ErrDoctorAlreadyExists, fmt.Sprintf("Doctor with email: %s already exists.", req.Email), u.clk.Now())
		}
	}

	doctor.Email = req.Email
	doctor.FirstName = req.FirstName
	doctor.LastName = req.LastName
	doctor.Specialization = req.Specialization

	if err := u.doctorRepo.Update(u.db.WithContext(ctx), doctor); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, apperror.New(ErrDoctorAlreadyExists, fmt.Sprintf("Doctor with email: %s already exists.", req.Email), u.clk.Now())
		}
		u.log.Warnf("Failed to update doctor %d: %+v", doctor.ID, err)
		return nil, err
	}

	u.doctorCache.Invalidate(ctx, email, req.Email)
	return converter.DoctorToResponse(doctor), nil
}

// DeleteDoctor detaches the doctor from their visits before removing the
// record, so claimed visit history survives with a null doctor reference.
func (u *doctorUsecase) DeleteDoctor(ctx context.Context, email string) error {
	doctor, err := u.getDoctorWithEmail(ctx, email)
	if err != nil {
		return err
	}

	if err := u.visitRepo.DetachDoctor(u.db.WithContext(ctx), doctor.ID); err != nil {
		u.log.Warnf("Failed to detach doctor %d from visits: %+v", doctor.ID, err)
		return err
	}
	if err := u.doctorRepo.Delete(u.db.WithContext(ctx), doctor.ID); err != nil {
		u.log.Warnf("Failed to delete doctor %d: %+v", doctor.ID, err)
		return err
	}

	u.doctorCache.Invalidate(ctx, email)
	u.log.Infof("Doctor deleted: id=%d, email=%s", doctor.ID, email)
	return nil
}

func (u *doctorUsecase) getDoctorWithEmail(ctx context.Context, email string) (*entity.Doctor, error) {
	doctor, err := u.doctorRepo.FindByEmail(u.db.WithContext(ctx), email)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", email, err)
		return nil, err
	}
	if doctor == nil {
		return nil, apperror.New(ErrDoctorNotFound, fmt.Sprintf("Doctor with email: %s does not exist.", email), u.clk.Now())
	}
	return doctor, nil
}
