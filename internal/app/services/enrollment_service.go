package services

import (
	"context"
	"time"

	"github.com/campushq/studentms/internal/app/models"
	"github.com/campushq/studentms/internal/app/models/dto"
	"github.com/campushq/studentms/internal/pkg/apperrors"
)

// EnrollmentService manages course enrollments. Seat accounting runs inside
// a transaction that locks the course row, so two concurrent enrollments
// into the last seat cannot both succeed.
type EnrollmentService interface {
	Create(ctx context.Context, req dto.CreateEnrollmentRequest) (*models.Enrollment, error)
	GetByID(ctx context.Context, id int64) (*models.Enrollment, error)
	GetAll(ctx context.Context) ([]*models.Enrollment, error)
	GetByStudent(ctx context.Context, studentID int64) ([]*models.Enrollment, error)
	GetByCourse(ctx context.Context, courseID int64) ([]*models.Enrollment, error)
	GetByStatus(ctx context.Context, status string) ([]*models.Enrollment, error)
	GetCompletedByStudent(ctx context.Context, studentID int64) ([]*models.Enrollment, error)
	Update(ctx context.Context, id int64, req dto.UpdateEnrollmentRequest) (*models.Enrollment, error)
	UpdateGrade(ctx context.Context, id int64, req dto.UpdateGradeRequest) (*models.Enrollment, error)
	UpdateAttendance(ctx context.Context, id int64, attendance float64) (*models.Enrollment, error)
	Withdraw(ctx context.Context, id int64) (*models.Enrollment, error)
	CanEnroll(ctx context.Context, studentID, courseID int64) (bool, error)
	CalculateStudentGPA(ctx context.Context, studentID int64) (float64, error)
	Delete(ctx context.Context, id int64) error
	DeleteAllByStudent(ctx context.Context, studentID int64) (int64, error)
}

type enrollmentService struct {
	enrollmentRepo EnrollmentRepository
	studentRepo    StudentRepository
	courseRepo     CourseRepository
	txManager      TxManager
}

// NewEnrollmentService creates a new enrollment service
func NewEnrollmentService(
	enrollmentRepo EnrollmentRepository,
	studentRepo StudentRepository,
	courseRepo CourseRepository,
	txManager TxManager,
) EnrollmentService {
	return &enrollmentService{
		enrollmentRepo: enrollmentRepo,
		studentRepo:    studentRepo,
		courseRepo:     courseRepo,
		txManager:      txManager,
	}
}

func (s *enrollmentService) Create(ctx context.Context, req dto.CreateEnrollmentRequest) (*models.Enrollment, error) {
	student, err := s.studentRepo.GetByID(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}

	if _, err := s.courseRepo.GetByID(ctx, req.CourseID); err != nil {
		return nil, err
	}

	status := models.EnrollmentStatus(req.Status)
	if req.Status == "" {
		status = models.EnrollmentStatusEnrolled
	}

	now := time.Now()
	enrollmentDate := now
	if req.EnrollmentDate != nil {
		enrollmentDate = *req.EnrollmentDate
	}

	enrollment := &models.Enrollment{
		StudentID:      student.ID,
		CourseID:       req.CourseID,
		EnrollmentDate: enrollmentDate,
		Status:         status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		// Lock the course row so concurrent enrollments serialize on the
		// capacity check. The unique (student_id, course_id) index catches
		// duplicate races the existence check misses.
		course, err := s.courseRepo.GetByIDForUpdate(ctx, req.CourseID)
		if err != nil {
			return err
		}

		exists, err := s.enrollmentRepo.ExistsByStudentAndCourse(ctx, req.StudentID, req.CourseID)
		if err != nil {
			return err
		}
		if exists {
			return apperrors.ErrAlreadyEnrolled
		}

		enrolled, err := s.enrollmentRepo.CountActiveByCourse(ctx, req.CourseID)
		if err != nil {
			return err
		}
		if enrolled >= int64(course.MaxStudents) {
			return apperrors.ErrCourseFull
		}

		return s.enrollmentRepo.Create(ctx, enrollment)
	})
	if err != nil {
		return nil, err
	}

	return enrollment, nil
}

func (s *enrollmentService) GetByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	enrollment, err := s.enrollmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if student, serr := s.studentRepo.GetByID(ctx, enrollment.StudentID); serr == nil {
		enrollment.Student = student
	}
	if course, cerr := s.courseRepo.GetByID(ctx, enrollment.CourseID); cerr == nil {
		enrollment.Course = course
	}
	return enrollment, nil
}

func (s *enrollmentService) GetAll(ctx context.Context) ([]*models.Enrollment, error) {
	return s.enrollmentRepo.GetAll(ctx)
}

func (s *enrollmentService) GetByStudent(ctx context.Context, studentID int64) ([]*models.Enrollment, error) {
	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		return nil, err
	}
	return s.enrollmentRepo.GetByStudent(ctx, studentID)
}

func (s *enrollmentService) GetByCourse(ctx context.Context, courseID int64) ([]*models.Enrollment, error) {
	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		return nil, err
	}
	return s.enrollmentRepo.GetByCourse(ctx, courseID)
}

func (s *enrollmentService) GetByStatus(ctx context.Context, status string) ([]*models.Enrollment, error) {
	parsed := models.EnrollmentStatus(status)
	if !parsed.Valid() {
		return nil, apperrors.NewInvalidArgumentError("unknown enrollment status: " + status)
	}
	return s.enrollmentRepo.GetByStatus(ctx, parsed)
}

func (s *enrollmentService) GetCompletedByStudent(ctx context.Context, studentID int64) ([]*models.Enrollment, error) {
	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		return nil, err
	}
	return s.enrollmentRepo.GetCompletedByStudent(ctx, studentID)
}

func (s *enrollmentService) Update(ctx context.Context, id int64, req dto.UpdateEnrollmentRequest) (*models.Enrollment, error) {
	enrollment, err := s.enrollmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Grade != nil {
		enrollment.Grade = req.Grade
	}
	if req.GradePoints != nil {
		enrollment.GradePoints = req.GradePoints
	}
	if req.AttendancePercentage != nil {
		enrollment.AttendancePercentage = *req.AttendancePercentage
	}
	if req.Status != nil {
		parsed := models.EnrollmentStatus(*req.Status)
		if !parsed.Valid() {
			return nil, apperrors.NewInvalidArgumentError("unknown enrollment status: " + *req.Status)
		}
		enrollment.Status = parsed
	}
	enrollment.UpdatedAt = time.Now()

	if err := s.enrollmentRepo.Update(ctx, enrollment); err != nil {
		return nil, err
	}

	return enrollment, nil
}

// UpdateGrade records the final grade and marks the enrollment completed.
func (s *enrollmentService) UpdateGrade(ctx context.Context, id int64, req dto.UpdateGradeRequest) (*models.Enrollment, error) {
	enrollment, err := s.enrollmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	enrollment.Grade = &req.Grade
	enrollment.GradePoints = req.GradePoints
	enrollment.Status = models.EnrollmentStatusCompleted
	enrollment.UpdatedAt = time.Now()

	if err := s.enrollmentRepo.Update(ctx, enrollment); err != nil {
		return nil, err
	}

	return enrollment, nil
}

// UpdateAttendance overwrites the attendance percentage as given.
func (s *enrollmentService) UpdateAttendance(ctx context.Context, id int64, attendance float64) (*models.Enrollment, error) {
	enrollment, err := s.enrollmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	enrollment.AttendancePercentage = attendance
	enrollment.UpdatedAt = time.Now()

	if err := s.enrollmentRepo.Update(ctx, enrollment); err != nil {
		return nil, err
	}

	return enrollment, nil
}

func (s *enrollmentService) Withdraw(ctx context.Context, id int64) (*models.Enrollment, error) {
	enrollment, err := s.enrollmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	enrollment.Status = models.EnrollmentStatusWithdrawn
	enrollment.UpdatedAt = time.Now()

	if err := s.enrollmentRepo.Update(ctx, enrollment); err != nil {
		return nil, err
	}

	return enrollment, nil
}

// CanEnroll reports whether an enrollment attempt would succeed right now:
// the course is active, the student has no enrollment record for it, and a
// seat is free. The answer is advisory; Create re-checks under a lock.
func (s *enrollmentService) CanEnroll(ctx context.Context, studentID, courseID int64) (bool, error) {
	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		return false, err
	}

	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return false, err
	}

	if !course.IsActive {
		return false, nil
	}

	exists, err := s.enrollmentRepo.ExistsByStudentAndCourse(ctx, studentID, courseID)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	enrolled, err := s.enrollmentRepo.CountActiveByCourse(ctx, courseID)
	if err != nil {
		return false, err
	}

	return enrolled < int64(course.MaxStudents), nil
}

// CalculateStudentGPA averages the grade points over the student's graded
// enrollments. A student with no graded enrollment has a GPA of 0.0.
func (s *enrollmentService) CalculateStudentGPA(ctx context.Context, studentID int64) (float64, error) {
	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		return 0, err
	}

	avg, ok, err := s.enrollmentRepo.AverageGradePoints(ctx, studentID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0.0, nil
	}

	return avg, nil
}

func (s *enrollmentService) Delete(ctx context.Context, id int64) error {
	return s.enrollmentRepo.Delete(ctx, id)
}

func (s *enrollmentService) DeleteAllByStudent(ctx context.Context, studentID int64) (int64, error) {
	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		return 0, err
	}
	return s.enrollmentRepo.DeleteAllByStudent(ctx, studentID)
}
