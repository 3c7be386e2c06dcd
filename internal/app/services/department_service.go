package services

import (
	"context"
	"time"

	"github.com/campushq/studentms/internal/app/models"
	"github.com/campushq/studentms/internal/app/models/dto"
	"github.com/campushq/studentms/internal/pkg/apperrors"
)

// DepartmentService manages academic departments
type DepartmentService interface {
	Create(ctx context.Context, req dto.CreateDepartmentRequest) (*models.Department, error)
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	GetByCode(ctx context.Context, code string) (*models.Department, error)
	GetAll(ctx context.Context) ([]*models.Department, error)
	Update(ctx context.Context, id int64, req dto.UpdateDepartmentRequest) (*models.Department, error)
	Delete(ctx context.Context, id int64) error
}

type departmentService struct {
	departmentRepo DepartmentRepository
	studentRepo    StudentRepository
	courseRepo     CourseRepository
}

// NewDepartmentService creates a new department service
func NewDepartmentService(departmentRepo DepartmentRepository, studentRepo StudentRepository, courseRepo CourseRepository) DepartmentService {
	return &departmentService{
		departmentRepo: departmentRepo,
		studentRepo:    studentRepo,
		courseRepo:     courseRepo,
	}
}

func (s *departmentService) Create(ctx context.Context, req dto.CreateDepartmentRequest) (*models.Department, error) {
	exists, err := s.departmentRepo.ExistsByCode(ctx, req.Code, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrDepartmentCodeExists
	}

	now := time.Now()
	department := &models.Department{
		Code:             req.Code,
		Name:             req.Name,
		HeadOfDepartment: req.HeadOfDepartment,
		Email:            req.Email,
		Phone:            req.Phone,
		Building:         req.Building,
		EstablishedYear:  req.EstablishedYear,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.departmentRepo.Create(ctx, department); err != nil {
		return nil, err
	}

	return department, nil
}

func (s *departmentService) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	return s.departmentRepo.GetByID(ctx, id)
}

func (s *departmentService) GetByCode(ctx context.Context, code string) (*models.Department, error) {
	return s.departmentRepo.GetByCode(ctx, code)
}

func (s *departmentService) GetAll(ctx context.Context) ([]*models.Department, error) {
	return s.departmentRepo.GetAll(ctx)
}

func (s *departmentService) Update(ctx context.Context, id int64, req dto.UpdateDepartmentRequest) (*models.Department, error) {
	department, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	exists, err := s.departmentRepo.ExistsByCode(ctx, req.Code, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrDepartmentCodeExists
	}

	department.Code = req.Code
	department.Name = req.Name
	department.HeadOfDepartment = req.HeadOfDepartment
	department.Email = req.Email
	department.Phone = req.Phone
	department.Building = req.Building
	department.EstablishedYear = req.EstablishedYear
	department.UpdatedAt = time.Now()

	if err := s.departmentRepo.Update(ctx, department); err != nil {
		return nil, err
	}

	return department, nil
}

// Delete removes a department. It refuses while students or courses still
// reference the department; students are checked before courses.
func (s *departmentService) Delete(ctx context.Context, id int64) error {
	if _, err := s.departmentRepo.GetByID(ctx, id); err != nil {
		return err
	}

	studentCount, err := s.studentRepo.CountByDepartment(ctx, id)
	if err != nil {
		return err
	}
	if studentCount > 0 {
		return apperrors.ErrDepartmentHasStudents
	}

	courseCount, err := s.courseRepo.CountByDepartment(ctx, id)
	if err != nil {
		return err
	}
	if courseCount > 0 {
		return apperrors.ErrDepartmentHasCourses
	}

	return s.departmentRepo.Delete(ctx, id)
}
