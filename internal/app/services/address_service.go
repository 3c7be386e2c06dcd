package services

import (
	"context"
	"time"

	"github.com/campushq/studentms/internal/app/models"
	"github.com/campushq/studentms/internal/app/models/dto"
	"github.com/campushq/studentms/internal/pkg/apperrors"
)

// DefaultCountry is used when an address is created without a country
const DefaultCountry = "USA"

// AddressService manages student addresses. It maintains the invariant that
// a student has at most one primary address: any write that marks an address
// primary demotes the student's other addresses in the same transaction.
type AddressService interface {
	Create(ctx context.Context, req dto.CreateAddressRequest) (*models.Address, error)
	GetByID(ctx context.Context, id int64) (*models.Address, error)
	GetAll(ctx context.Context) ([]*models.Address, error)
	GetByStudent(ctx context.Context, studentID int64) ([]*models.Address, error)
	GetByStudentAndType(ctx context.Context, studentID int64, addressType string) ([]*models.Address, error)
	GetPrimaryByStudent(ctx context.Context, studentID int64) (*models.Address, error)
	GetByCity(ctx context.Context, city string) ([]*models.Address, error)
	GetByState(ctx context.Context, state string) ([]*models.Address, error)
	Update(ctx context.Context, id int64, req dto.UpdateAddressRequest) (*models.Address, error)
	SetPrimary(ctx context.Context, id, studentID int64) (*models.Address, error)
	Delete(ctx context.Context, id int64) error
	DeleteAllByStudent(ctx context.Context, studentID int64) (int64, error)
}

type addressService struct {
	addressRepo AddressRepository
	studentRepo StudentRepository
	txManager   TxManager
}

// NewAddressService creates a new address service
func NewAddressService(addressRepo AddressRepository, studentRepo StudentRepository, txManager TxManager) AddressService {
	return &addressService{
		addressRepo: addressRepo,
		studentRepo: studentRepo,
		txManager:   txManager,
	}
}

func (s *addressService) Create(ctx context.Context, req dto.CreateAddressRequest) (*models.Address, error) {
	if _, err := s.studentRepo.GetByID(ctx, req.StudentID); err != nil {
		return nil, err
	}

	addressType := models.AddressType(req.Type)
	if !addressType.Valid() {
		return nil, apperrors.NewInvalidArgumentError("unknown address type: " + req.Type)
	}

	if req.Country == "" {
		req.Country = DefaultCountry
	}

	now := time.Now()
	address := &models.Address{
		StudentID:     req.StudentID,
		Type:          addressType,
		StreetAddress: req.StreetAddress,
		City:          req.City,
		State:         req.State,
		PostalCode:    req.PostalCode,
		Country:       req.Country,
		IsPrimary:     req.IsPrimary,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	// The sweep runs before the insert so the partial unique index on
	// primary addresses never sees two at once.
	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		if address.IsPrimary {
			if err := s.addressRepo.ClearPrimaryForStudent(ctx, address.StudentID, 0); err != nil {
				return err
			}
		}
		return s.addressRepo.Create(ctx, address)
	})
	if err != nil {
		return nil, err
	}

	return address, nil
}

func (s *addressService) GetByID(ctx context.Context, id int64) (*models.Address, error) {
	return s.addressRepo.GetByID(ctx, id)
}

func (s *addressService) GetAll(ctx context.Context) ([]*models.Address, error) {
	return s.addressRepo.GetAll(ctx)
}

func (s *addressService) GetByStudent(ctx context.Context, studentID int64) ([]*models.Address, error) {
	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		return nil, err
	}
	return s.addressRepo.GetByStudent(ctx, studentID)
}

func (s *addressService) GetByStudentAndType(ctx context.Context, studentID int64, addressType string) ([]*models.Address, error) {
	parsed := models.AddressType(addressType)
	if !parsed.Valid() {
		return nil, apperrors.NewInvalidArgumentError("unknown address type: " + addressType)
	}
	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		return nil, err
	}
	return s.addressRepo.GetByStudentAndType(ctx, studentID, parsed)
}

func (s *addressService) GetPrimaryByStudent(ctx context.Context, studentID int64) (*models.Address, error) {
	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		return nil, err
	}
	return s.addressRepo.GetPrimaryByStudent(ctx, studentID)
}

func (s *addressService) GetByCity(ctx context.Context, city string) ([]*models.Address, error) {
	return s.addressRepo.GetByCity(ctx, city)
}

func (s *addressService) GetByState(ctx context.Context, state string) ([]*models.Address, error) {
	return s.addressRepo.GetByState(ctx, state)
}

func (s *addressService) Update(ctx context.Context, id int64, req dto.UpdateAddressRequest) (*models.Address, error) {
	address, err := s.addressRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	addressType := models.AddressType(req.Type)
	if !addressType.Valid() {
		return nil, apperrors.NewInvalidArgumentError("unknown address type: " + req.Type)
	}

	address.Type = addressType
	address.StreetAddress = req.StreetAddress
	address.City = req.City
	address.State = req.State
	address.PostalCode = req.PostalCode
	address.Country = req.Country
	address.IsPrimary = req.IsPrimary
	address.UpdatedAt = time.Now()

	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		if address.IsPrimary {
			if err := s.addressRepo.ClearPrimaryForStudent(ctx, address.StudentID, address.ID); err != nil {
				return err
			}
		}
		return s.addressRepo.Update(ctx, address)
	})
	if err != nil {
		return nil, err
	}

	return address, nil
}

// SetPrimary promotes the address to the student's primary address. The
// caller must identify the owning student; a mismatch is rejected rather
// than silently re-homing the address.
func (s *addressService) SetPrimary(ctx context.Context, id, studentID int64) (*models.Address, error) {
	address, err := s.addressRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if address.StudentID != studentID {
		return nil, apperrors.ErrAddressOwnerMismatch
	}

	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.addressRepo.ClearPrimaryForStudent(ctx, studentID, id); err != nil {
			return err
		}
		return s.addressRepo.UpdatePrimaryFlag(ctx, id, true)
	})
	if err != nil {
		return nil, err
	}

	address.IsPrimary = true
	return address, nil
}

func (s *addressService) Delete(ctx context.Context, id int64) error {
	return s.addressRepo.Delete(ctx, id)
}

func (s *addressService) DeleteAllByStudent(ctx context.Context, studentID int64) (int64, error) {
	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		return 0, err
	}
	return s.addressRepo.DeleteAllByStudent(ctx, studentID)
}
