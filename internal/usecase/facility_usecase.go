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
	ErrFacilityNotFound      = errors.New("facility not found")
	ErrFacilityAlreadyExists = errors.New("facility already exists")
)

type FacilityUsecase interface {
	CreateFacility(ctx context.Context, req *dto.UpsertFacilityRequest) (*dto.FacilityResponse, error)
	GetFacilities(ctx context.Context, page, size int) (*dto.FacilityPageResponse, error)
	GetFacility(ctx context.Context, id int64) (*dto.FacilityResponse, error)
	EditFacility(ctx context.Context, id int64, req *dto.UpsertFacilityRequest) (*dto.FacilityResponse, error)
	DeleteFacility(ctx context.Context, id int64) error
}

type facilityUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	clk          clock.Clock
	facilityRepo repository.FacilityRepository
}

func NewFacilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	clk clock.Clock,
	facilityRepo repository.FacilityRepository,
) FacilityUsecase {
	return &facilityUsecase{
		db:           db,
		log:          log,
		clk:          clk,
		facilityRepo: facilityRepo,
	}
}

func (u *facilityUsecase) CreateFacility(ctx context.Context, req *dto.UpsertFacilityRequest) (*dto.FacilityResponse, error) {
	exists, err := u.facilityRepo.ExistsByName(u.db.WithContext(ctx), req.Name)
	if err != nil {
		u.log.Warnf("Failed name availability check for %s: %+v", req.Name, err)
		return nil, err
	}
	if exists {
		return nil, apperror.New(ErrFacilityAlreadyExists, fmt.Sprintf("Facility with name: %s already exists.", req.Name), u.clk.Now())
	}

	facility := &entity.Facility{
		Name:           req.Name,
		City:           req.City,
		ZipCode:        req.ZipCode,
		Street:         req.Street,
		BuildingNumber: req.BuildingNumber,
	}
	if err := u.facilityRepo.Create(u.db.WithContext(ctx), facility); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, apperror.New(ErrFacilityAlreadyExists, fmt.Sprintf("Facility with name: %s already exists.", req.Name), u.clk.Now())
		}
		u.log.Warnf("Failed to create facility: %+v", err)
		return nil, err
	}

	u.log.Infof("Facility created: id=%d, name=%s", facility.ID, facility.Name)
	return converter.FacilityToResponse(facility), nil
}

func (u *facilityUsecase) GetFacilities(ctx context.Context, page, size int) (*dto.FacilityPageResponse, error) {
	facilities, total, err := u.facilityRepo.FindAll(u.db.WithContext(ctx), page, size)
	if err != nil {
		u.log.Warnf("Failed to find facilities: %+v", err)
		return nil, err
	}
	return converter.FacilitiesToPageResponse(facilities, total, page, size), nil
}

func (u *facilityUsecase) GetFacility(ctx context.Context, id int64) (*dto.FacilityResponse, error) {
	facility, err := u.getFacilityWithID(ctx, id)
	if err != nil {
		return nil, err
	}
	return converter.FacilityToResponse(facility), nil
}

func (u *facilityUsecase) EditFacility(ctx context.Context, id int64, req *dto.UpsertFacilityRequest) (*dto.FacilityResponse, error) {
	facility, err := u.getFacilityWithID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != facility.Name {
		exists, err := u.facilityRepo.ExistsByName(u.db.WithContext(ctx), req.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperror.New(ErrFacilityAlreadyExists, fmt.Sprintf("Facility with name: %s already exists.", req.Name), u.clk.Now())
		}
	}

	facility.Name = req.Name
	facility.City = req.City
	facility.ZipCode = req.ZipCode
	facility.Street = req.Street
	facility.BuildingNumber = req.BuildingNumber

	if err := u.facilityRepo.Update(u.db.WithContext(ctx), facility); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, apperror.New(ErrFacilityAlreadyExists, fmt.Sprintf("Facility with name: %s already exists.", req.Name), u.clk.Now())
		}
		u.log.Warnf("Failed to update facility %d: %+v", id, err)
		return nil, err
	}

	return converter.FacilityToResponse(facility), nil
}

func (u *facilityUsecase) DeleteFacility(ctx context.Context, id int64) error {
	facility, err := u.getFacilityWithID(ctx, id)
	if err != nil {
		return err
	}

	if err := u.facilityRepo.Delete(u.db.WithContext(ctx), facility.ID); err != nil {
		u.log.Warnf("Failed to delete facility %d: %+v", id, err)
		return err
	}

	u.log.Infof("Facility deleted: id=%d", id)
	return nil
}

func (u *facilityUsecase) getFacilityWithID(ctx context.Context, id int64) (*entity.Facility, error) {
	facility, err := u.facilityRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find facility %d: %+v", id, err)
		return nil, err
	}
	if facility == nil {
		return nil, apperror.New(ErrFacilityNotFound, fmt.Sprintf("Facility with id: %d does not exist.", id), u.clk.Now())
	}
	return facility, nil
}
