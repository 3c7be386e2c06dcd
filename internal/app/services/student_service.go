package services

import (
	"context"
	"time"

	"github.com/campushq/studentms/internal/app/models"
	"github.com/campushq/studentms/internal/app/models/dto"
	"github.com/campushq/studentms/internal/pkg/apperrors"
)

// StudentService manages student records
type StudentService interface {
	Create(ctx context.Context, req dto.CreateStudentRequest) (*models.Student, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByStudentNumber(ctx context.Context, studentNumber string) (*models.Student, error)
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
	GetByDepartment(ctx context.Context, departmentID int64) ([]*models.Student, error)
	GetByStatus(ctx context.Context, status string) ([]*models.Student, error)
	Search(ctx context.Context, keyword string) ([]*models.Student, error)
	Filter(ctx context.Context, filter dto.StudentFilter) ([]*models.Student, error)
	GetWithMinGPA(ctx context.Context, minGPA float64) ([]*models.Student, error)
	Update(ctx context.Context, id int64, req dto.UpdateStudentRequest) (*models.Student, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	Activate(ctx context.Context, id int64) error
	Deactivate(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

type studentService struct {
	studentRepo    StudentRepository
	departmentRepo DepartmentRepository
	addressRepo    AddressRepository
	enrollmentRepo EnrollmentRepository
	feeRepo        FeeRepository
	txManager      TxManager
}

// NewStudentService creates a new student service
func NewStudentService(
	studentRepo StudentRepository,
	departmentRepo DepartmentRepository,
	addressRepo AddressRepository,
	enrollmentRepo EnrollmentRepository,
	feeRepo FeeRepository,
	txManager TxManager,
) StudentService {
	return &studentService{
		studentRepo:    studentRepo,
		departmentRepo: departmentRepo,
		addressRepo:    addressRepo,
		enrollmentRepo: enrollmentRepo,
		feeRepo:        feeRepo,
		txManager:      txManager,
	}
}

func (s *studentService) Create(ctx context.Context, req dto.CreateStudentRequest) (*models.Student, error) {
	exists, err := s.studentRepo.ExistsByStudentNumber(ctx, req.StudentNumber, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrStudentNumberExists
	}

	exists, err = s.studentRepo.ExistsByEmail(ctx, req.Email, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrStudentEmailExists
	}

	department, err := s.departmentRepo.GetByID(ctx, req.DepartmentID)
	if err != nil {
		return nil, err
	}

	status := models.StudentStatus(req.Status)
	if req.Status == "" {
		status = models.StudentStatusActive
	}

	now := time.Now()
	enrollmentDate := req.EnrollmentDate
	if enrollmentDate == nil {
		today := now
		enrollmentDate = &today
	}

	student := &models.Student{
		StudentNumber:  req.StudentNumber,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		DateOfBirth:    req.DateOfBirth,
		Gender:         req.Gender,
		DepartmentID:   department.ID,
		EnrollmentDate: enrollmentDate,
		Status:         status,
		GPA:            req.GPA,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	student.Department = department
	return student, nil
}

func (s *studentService) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.attachDepartment(ctx, student)
	return student, nil
}

func (s *studentService) GetByStudentNumber(ctx context.Context, studentNumber string) (*models.Student, error) {
	student, err := s.studentRepo.GetByStudentNumber(ctx, studentNumber)
	if err != nil {
		return nil, err
	}

	s.attachDepartment(ctx, student)
	return student, nil
}

func (s *studentService) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	student, err := s.studentRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	s.attachDepartment(ctx, student)
	return student, nil
}

func (s *studentService) GetAll(ctx context.Context) ([]*models.Student, error) {
	return s.studentRepo.GetAll(ctx)
}

func (s *studentService) GetByDepartment(ctx context.Context, departmentID int64) ([]*models.Student, error) {
	if _, err := s.departmentRepo.GetByID(ctx, departmentID); err != nil {
		return nil, err
	}
	return s.studentRepo.GetByDepartment(ctx, departmentID)
}

func (s *studentService) GetByStatus(ctx context.Context, status string) ([]*models.Student, error) {
	parsed := models.StudentStatus(status)
	if !parsed.Valid() {
		return nil, apperrors.NewInvalidArgumentError("unknown student status: " + status)
	}
	return s.studentRepo.GetByStatus(ctx, parsed)
}

func (s *studentService) Search(ctx context.Context, keyword string) ([]*models.Student, error) {
	return s.studentRepo.Search(ctx, keyword)
}

func (s *studentService) Filter(ctx context.Context, filter dto.StudentFilter) ([]*models.Student, error) {
	if filter.Status != nil && !models.StudentStatus(*filter.Status).Valid() {
		return nil, apperrors.NewInvalidArgumentError("unknown student status: " + *filter.Status)
	}
	return s.studentRepo.Filter(ctx, filter)
}

func (s *studentService) GetWithMinGPA(ctx context.Context, minGPA float64) ([]*models.Student, error) {
	return s.studentRepo.GetWithMinGPA(ctx, minGPA)
}

func (s *studentService) Update(ctx context.Context, id int64, req dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	exists, err := s.studentRepo.ExistsByStudentNumber(ctx, req.StudentNumber, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrStudentNumberExists
	}

	exists, err = s.studentRepo.ExistsByEmail(ctx, req.Email, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrStudentEmailExists
	}

	department, err := s.departmentRepo.GetByID(ctx, req.DepartmentID)
	if err != nil {
		return nil, err
	}

	student.StudentNumber = req.StudentNumber
	student.FirstName = req.FirstName
	student.LastName = req.LastName
	student.Email = req.Email
	student.Phone = req.Phone
	student.DateOfBirth = req.DateOfBirth
	student.Gender = req.Gender
	student.DepartmentID = department.ID
	student.EnrollmentDate = req.EnrollmentDate
	student.Status = models.StudentStatus(req.Status)
	student.GPA = req.GPA
	student.UpdatedAt = time.Now()

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}

	student.Department = department
	return student, nil
}

func (s *studentService) UpdateStatus(ctx context.Context, id int64, status string) error {
	parsed := models.StudentStatus(status)
	if !parsed.Valid() {
		return apperrors.NewInvalidArgumentError("unknown student status: " + status)
	}
	return s.studentRepo.UpdateStatus(ctx, id, parsed)
}

func (s *studentService) Activate(ctx context.Context, id int64) error {
	return s.studentRepo.UpdateStatus(ctx, id, models.StudentStatusActive)
}

func (s *studentService) Deactivate(ctx context.Context, id int64) error {
	return s.studentRepo.UpdateStatus(ctx, id, models.StudentStatusInactive)
}

// Delete removes a student together with the addresses, enrollments, and
// fees that hang off the record, in a single transaction.
func (s *studentService) Delete(ctx context.Context, id int64) error {
	if _, err := s.studentRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.addressRepo.DeleteAllByStudent(ctx, id); err != nil {
			return err
		}
		if _, err := s.enrollmentRepo.DeleteAllByStudent(ctx, id); err != nil {
			return err
		}
		if _, err := s.feeRepo.DeleteAllByStudent(ctx, id); err != nil {
			return err
		}
		return s.studentRepo.Delete(ctx, id)
	})
}

func (s *studentService) attachDepartment(ctx context.Context, student *models.Student) {
	department, err := s.departmentRepo.GetByID(ctx, student.DepartmentID)
	if err == nil {
		student.Department = department
	}
}
