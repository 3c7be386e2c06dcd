package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/campushq/studentms/internal/app/models"
	"github.com/campushq/studentms/internal/app/models/dto"
	"github.com/campushq/studentms/internal/pkg/apperrors"
	"github.com/campushq/studentms/internal/pkg/helpers"
)

// FeeService manages student fees and payments. Payment status is derived
// from the paid amount: Pending at zero, Partial in between, Paid when the
// fee is exactly covered.
type FeeService interface {
	Create(ctx context.Context, req dto.CreateFeeRequest) (*models.Fee, error)
	GetByID(ctx context.Context, id int64) (*models.Fee, error)
	GetAll(ctx context.Context) ([]*models.Fee, error)
	GetByStudent(ctx context.Context, studentID int64) ([]*models.Fee, error)
	GetBySemester(ctx context.Context, semester string) ([]*models.Fee, error)
	GetByStudentAndSemester(ctx context.Context, studentID int64, semester string) ([]*models.Fee, error)
	GetByStatus(ctx context.Context, status string) ([]*models.Fee, error)
	GetPendingByStudent(ctx context.Context, studentID int64) ([]*models.Fee, error)
	GetOverdue(ctx context.Context) ([]*models.Fee, error)
	GetStudentFeeSummary(ctx context.Context, studentID int64) (*dto.FeeSummaryResponse, error)
	Update(ctx context.Context, id int64, req dto.UpdateFeeRequest) (*models.Fee, error)
	UpdatePaymentStatus(ctx context.Context, id int64, status string) (*models.Fee, error)
	MakePayment(ctx context.Context, id int64, req dto.MakePaymentRequest) (*models.Fee, error)
	MakeFullPayment(ctx context.Context, id int64, req dto.MakeFullPaymentRequest) (*models.Fee, error)
	Delete(ctx context.Context, id int64) error
	DeleteAllByStudent(ctx context.Context, studentID int64) (int64, error)
}

type feeService struct {
	feeRepo     FeeRepository
	studentRepo StudentRepository
}

// NewFeeService creates a new fee service
func NewFeeService(feeRepo FeeRepository, studentRepo StudentRepository) FeeService {
	return &feeService{
		feeRepo:     feeRepo,
		studentRepo: studentRepo,
	}
}

func (s *feeService) Create(ctx context.Context, req dto.CreateFeeRequest) (*models.Fee, error) {
	if _, err := s.studentRepo.GetByID(ctx, req.StudentID); err != nil {
		return nil, err
	}

	now := time.Now()
	fee := &models.Fee{
		StudentID:     req.StudentID,
		Semester:      req.Semester,
		FeeType:       models.FeeType(req.FeeType),
		Amount:        req.Amount,
		PaidAmount:    0,
		DueDate:       req.DueDate,
		PaymentStatus: models.PaymentStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.feeRepo.Create(ctx, fee); err != nil {
		return nil, err
	}

	return fee, nil
}

func (s *feeService) GetByID(ctx context.Context, id int64) (*models.Fee, error) {
	return s.feeRepo.GetByID(ctx, id)
}

func (s *feeService) GetAll(ctx context.Context) ([]*models.Fee, error) {
	return s.feeRepo.GetAll(ctx)
}

func (s *feeService) GetByStudent(ctx context.Context, studentID int64) ([]*models.Fee, error) {
	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		return nil, err
	}
	return s.feeRepo.GetByStudent(ctx, studentID)
}

func (s *feeService) GetBySemester(ctx context.Context, semester string) ([]*models.Fee, error) {
	return s.feeRepo.GetBySemester(ctx, semester)
}

func (s *feeService) GetByStudentAndSemester(ctx context.Context, studentID int64, semester string) ([]*models.Fee, error) {
	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		return nil, err
	}
	return s.feeRepo.GetByStudentAndSemester(ctx, studentID, semester)
}

func (s *feeService) GetByStatus(ctx context.Context, status string) ([]*models.Fee, error) {
	parsed := models.PaymentStatus(status)
	if !parsed.Valid() {
		return nil, apperrors.NewInvalidArgumentError("unknown payment status: " + status)
	}
	return s.feeRepo.GetByStatus(ctx, parsed)
}

func (s *feeService) GetPendingByStudent(ctx context.Context, studentID int64) ([]*models.Fee, error) {
	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		return nil, err
	}
	return s.feeRepo.GetPendingByStudent(ctx, studentID)
}

func (s *feeService) GetOverdue(ctx context.Context) ([]*models.Fee, error) {
	return s.feeRepo.GetOverdue(ctx, helpers.Today())
}

func (s *feeService) GetStudentFeeSummary(ctx context.Context, studentID int64) (*dto.FeeSummaryResponse, error) {
	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		return nil, err
	}

	total, err := s.feeRepo.SumAmountByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	paid, err := s.feeRepo.SumPaidByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	outstanding, err := s.feeRepo.SumOutstandingByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	pendingCount, err := s.feeRepo.CountPendingByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	return &dto.FeeSummaryResponse{
		StudentID:          studentID,
		TotalFees:          total,
		TotalPaid:          paid,
		OutstandingBalance: outstanding,
		PendingFeeCount:    pendingCount,
	}, nil
}

// Update overwrites the fee record as given. The payment status is taken
// from the request, so an administrative correction may move a fee out of
// Paid again.
func (s *feeService) Update(ctx context.Context, id int64, req dto.UpdateFeeRequest) (*models.Fee, error) {
	fee, err := s.feeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.PaidAmount > req.Amount {
		return nil, apperrors.NewInvalidArgumentError("paid amount cannot exceed the fee amount")
	}

	if _, err := s.studentRepo.GetByID(ctx, req.StudentID); err != nil {
		return nil, err
	}

	var method *models.PaymentMethod
	if req.PaymentMethod != nil {
		parsed, ok := models.ParsePaymentMethod(*req.PaymentMethod)
		if !ok {
			return nil, apperrors.ErrUnknownPaymentMethod
		}
		method = &parsed
	}

	fee.Semester = req.Semester
	fee.FeeType = models.FeeType(req.FeeType)
	fee.Amount = req.Amount
	fee.PaidAmount = req.PaidAmount
	fee.DueDate = req.DueDate
	fee.PaymentDate = req.PaymentDate
	fee.PaymentStatus = models.PaymentStatus(req.PaymentStatus)
	fee.PaymentMethod = method
	fee.TransactionID = req.TransactionID
	fee.UpdatedAt = time.Now()

	if err := s.feeRepo.Update(ctx, fee); err != nil {
		return nil, err
	}

	return fee, nil
}

func (s *feeService) UpdatePaymentStatus(ctx context.Context, id int64, status string) (*models.Fee, error) {
	fee, err := s.feeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	parsed := models.PaymentStatus(status)
	if !parsed.Valid() {
		return nil, apperrors.NewInvalidArgumentError("unknown payment status: " + status)
	}

	fee.PaymentStatus = parsed
	fee.UpdatedAt = time.Now()

	if err := s.feeRepo.Update(ctx, fee); err != nil {
		return nil, err
	}

	return fee, nil
}

// MakePayment records a payment against the fee. The amount must be
// positive and must not exceed the outstanding balance; the resulting
// status follows from the new paid amount.
func (s *feeService) MakePayment(ctx context.Context, id int64, req dto.MakePaymentRequest) (*models.Fee, error) {
	fee, err := s.feeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if fee.PaymentStatus == models.PaymentStatusPaid {
		return nil, apperrors.ErrFeeAlreadyPaid
	}

	if req.Amount <= 0 {
		return nil, apperrors.ErrInvalidPaymentAmount
	}

	if req.Amount > fee.Outstanding() {
		return nil, apperrors.ErrPaymentExceedsAmount
	}

	method, ok := models.ParsePaymentMethod(req.PaymentMethod)
	if !ok {
		return nil, apperrors.ErrUnknownPaymentMethod
	}

	transactionID := req.TransactionID
	if transactionID == "" {
		transactionID = uuid.NewString()
	}

	now := time.Now()
	fee.PaidAmount += req.Amount
	fee.PaymentStatus = fee.DeriveStatus()
	fee.PaymentDate = &now
	fee.PaymentMethod = &method
	fee.TransactionID = &transactionID
	fee.UpdatedAt = now

	if err := s.feeRepo.Update(ctx, fee); err != nil {
		return nil, err
	}

	return fee, nil
}

// MakeFullPayment settles whatever balance remains on the fee.
func (s *feeService) MakeFullPayment(ctx context.Context, id int64, req dto.MakeFullPaymentRequest) (*models.Fee, error) {
	fee, err := s.feeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if fee.PaymentStatus == models.PaymentStatusPaid || fee.Outstanding() <= 0 {
		return nil, apperrors.ErrFeeAlreadyPaid
	}

	return s.MakePayment(ctx, id, dto.MakePaymentRequest{
		Amount:        fee.Outstanding(),
		PaymentMethod: req.PaymentMethod,
		TransactionID: req.TransactionID,
	})
}

func (s *feeService) Delete(ctx context.Context, id int64) error {
	return s.feeRepo.Delete(ctx, id)
}

func (s *feeService) DeleteAllByStudent(ctx context.Context, studentID int64) (int64, error) {
	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		return 0, err
	}
	return s.feeRepo.DeleteAllByStudent(ctx, studentID)
}
