package services

import (
	"context"
	"time"

	"github.com/campushq/studentms/internal/app/models"
	"github.com/campushq/studentms/internal/app/models/dto"
	"github.com/campushq/studentms/internal/pkg/apperrors"
)

// DefaultMaxStudents is the course capacity used when none is given
const DefaultMaxStudents = 50

// CourseService manages the course catalog
type CourseService interface {
	Create(ctx context.Context, req dto.CreateCourseRequest) (*models.Course, error)
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetByCode(ctx context.Context, code string) (*models.Course, error)
	GetAll(ctx context.Context) ([]*models.Course, error)
	GetByDepartment(ctx context.Context, departmentID int64) ([]*models.Course, error)
	GetActive(ctx context.Context) ([]*models.Course, error)
	GetBySemester(ctx context.Context, semester string) ([]*models.Course, error)
	SearchByName(ctx context.Context, keyword string) ([]*models.Course, error)
	GetWithAvailableSeats(ctx context.Context) ([]*models.Course, error)
	GetAvailableSeats(ctx context.Context, id int64) (int64, error)
	Update(ctx context.Context, id int64, req dto.UpdateCourseRequest) (*models.Course, error)
	Activate(ctx context.Context, id int64) error
	Deactivate(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

type courseService struct {
	courseRepo     CourseRepository
	departmentRepo DepartmentRepository
	enrollmentRepo EnrollmentRepository
}

// NewCourseService creates a new course service
func NewCourseService(courseRepo CourseRepository, departmentRepo DepartmentRepository, enrollmentRepo EnrollmentRepository) CourseService {
	return &courseService{
		courseRepo:     courseRepo,
		departmentRepo: departmentRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

func (s *courseService) Create(ctx context.Context, req dto.CreateCourseRequest) (*models.Course, error) {
	exists, err := s.courseRepo.ExistsByCode(ctx, req.Code, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrCourseCodeExists
	}

	department, err := s.departmentRepo.GetByID(ctx, req.DepartmentID)
	if err != nil {
		return nil, err
	}

	maxStudents := DefaultMaxStudents
	if req.MaxStudents != nil {
		maxStudents = *req.MaxStudents
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := time.Now()
	course := &models.Course{
		Code:           req.Code,
		Name:           req.Name,
		Description:    req.Description,
		Credits:        req.Credits,
		DepartmentID:   department.ID,
		InstructorName: req.InstructorName,
		MaxStudents:    maxStudents,
		Semester:       req.Semester,
		IsActive:       isActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}

	course.Department = department
	return course, nil
}

func (s *courseService) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if department, derr := s.departmentRepo.GetByID(ctx, course.DepartmentID); derr == nil {
		course.Department = department
	}
	return course, nil
}

func (s *courseService) GetByCode(ctx context.Context, code string) (*models.Course, error) {
	return s.courseRepo.GetByCode(ctx, code)
}

func (s *courseService) GetAll(ctx context.Context) ([]*models.Course, error) {
	return s.courseRepo.GetAll(ctx)
}

func (s *courseService) GetByDepartment(ctx context.Context, departmentID int64) ([]*models.Course, error) {
	if _, err := s.departmentRepo.GetByID(ctx, departmentID); err != nil {
		return nil, err
	}
	return s.courseRepo.GetByDepartment(ctx, departmentID)
}

func (s *courseService) GetActive(ctx context.Context) ([]*models.Course, error) {
	return s.courseRepo.GetActive(ctx)
}

func (s *courseService) GetBySemester(ctx context.Context, semester string) ([]*models.Course, error) {
	return s.courseRepo.GetBySemester(ctx, semester)
}

func (s *courseService) SearchByName(ctx context.Context, keyword string) ([]*models.Course, error) {
	return s.courseRepo.SearchByName(ctx, keyword)
}

func (s *courseService) GetWithAvailableSeats(ctx context.Context) ([]*models.Course, error) {
	return s.courseRepo.GetWithAvailableSeats(ctx)
}

// GetAvailableSeats returns the number of free seats in a course. The count
// never goes below zero even if enrollments exceed a lowered capacity.
func (s *courseService) GetAvailableSeats(ctx context.Context, id int64) (int64, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}

	enrolled, err := s.enrollmentRepo.CountActiveByCourse(ctx, id)
	if err != nil {
		return 0, err
	}

	seats := int64(course.MaxStudents) - enrolled
	if seats < 0 {
		seats = 0
	}
	return seats, nil
}

func (s *courseService) Update(ctx context.Context, id int64, req dto.UpdateCourseRequest) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	exists, err := s.courseRepo.ExistsByCode(ctx, req.Code, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrCourseCodeExists
	}

	department, err := s.departmentRepo.GetByID(ctx, req.DepartmentID)
	if err != nil {
		return nil, err
	}

	course.Code = req.Code
	course.Name = req.Name
	course.Description = req.Description
	course.Credits = req.Credits
	course.DepartmentID = department.ID
	course.InstructorName = req.InstructorName
	course.MaxStudents = req.MaxStudents
	course.Semester = req.Semester
	course.IsActive = req.IsActive
	course.UpdatedAt = time.Now()

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, err
	}

	course.Department = department
	return course, nil
}

func (s *courseService) Activate(ctx context.Context, id int64) error {
	return s.courseRepo.SetActive(ctx, id, true)
}

func (s *courseService) Deactivate(ctx context.Context, id int64) error {
	return s.courseRepo.SetActive(ctx, id, false)
}

// Delete removes a course. It refuses while any enrollment, regardless of
// status, still references the course.
func (s *courseService) Delete(ctx context.Context, id int64) error {
	if _, err := s.courseRepo.GetByID(ctx, id); err != nil {
		return err
	}

	count, err := s.enrollmentRepo.CountByCourse(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperrors.ErrCourseHasEnrollments
	}

	return s.courseRepo.Delete(ctx, id)
}
