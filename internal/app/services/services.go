package services

import (
	"context"
	"time"

	"github.com/campushq/studentms/internal/app/models"
	"github.com/campushq/studentms/internal/app/models/dto"
	"github.com/campushq/studentms/internal/app/repositories"
)

// The services depend on narrow repository interfaces rather than the pgx
// implementations so the business rules can be tested against in-memory
// fakes. The concrete types in the repositories package satisfy them.

// TxManager opens a transaction and binds it to the context passed to fn.
type TxManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// DepartmentRepository is the persistence surface the services need for
// departments.
type DepartmentRepository interface {
	Create(ctx context.Context, department *models.Department) error
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	GetByCode(ctx context.Context, code string) (*models.Department, error)
	GetAll(ctx context.Context) ([]*models.Department, error)
	ExistsByCode(ctx context.Context, code string, excludeID int64) (bool, error)
	Update(ctx context.Context, department *models.Department) error
	Delete(ctx context.Context, id int64) error
}

// StudentRepository is the persistence surface the services need for
// students.
type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByStudentNumber(ctx context.Context, studentNumber string) (*models.Student, error)
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
	GetByDepartment(ctx context.Context, departmentID int64) ([]*models.Student, error)
	GetByStatus(ctx context.Context, status models.StudentStatus) ([]*models.Student, error)
	Search(ctx context.Context, keyword string) ([]*models.Student, error)
	Filter(ctx context.Context, filter dto.StudentFilter) ([]*models.Student, error)
	GetWithMinGPA(ctx context.Context, minGPA float64) ([]*models.Student, error)
	ExistsByStudentNumber(ctx context.Context, studentNumber string, excludeID int64) (bool, error)
	ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error)
	CountByDepartment(ctx context.Context, departmentID int64) (int64, error)
	Update(ctx context.Context, student *models.Student) error
	UpdateStatus(ctx context.Context, id int64, status models.StudentStatus) error
	Delete(ctx context.Context, id int64) error
}

// AddressRepository is the persistence surface the services need for
// addresses.
type AddressRepository interface {
	Create(ctx context.Context, address *models.Address) error
	GetByID(ctx context.Context, id int64) (*models.Address, error)
	GetAll(ctx context.Context) ([]*models.Address, error)
	GetByStudent(ctx context.Context, studentID int64) ([]*models.Address, error)
	GetByStudentAndType(ctx context.Context, studentID int64, addressType models.AddressType) ([]*models.Address, error)
	GetPrimaryByStudent(ctx context.Context, studentID int64) (*models.Address, error)
	GetByCity(ctx context.Context, city string) ([]*models.Address, error)
	GetByState(ctx context.Context, state string) ([]*models.Address, error)
	Update(ctx context.Context, address *models.Address) error
	UpdatePrimaryFlag(ctx context.Context, id int64, isPrimary bool) error
	ClearPrimaryForStudent(ctx context.Context, studentID, keepID int64) error
	Delete(ctx context.Context, id int64) error
	DeleteAllByStudent(ctx context.Context, studentID int64) (int64, error)
}

// CourseRepository is the persistence surface the services need for courses.
type CourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*models.Course, error)
	GetByCode(ctx context.Context, code string) (*models.Course, error)
	GetAll(ctx context.Context) ([]*models.Course, error)
	GetByDepartment(ctx context.Context, departmentID int64) ([]*models.Course, error)
	GetActive(ctx context.Context) ([]*models.Course, error)
	GetBySemester(ctx context.Context, semester string) ([]*models.Course, error)
	SearchByName(ctx context.Context, keyword string) ([]*models.Course, error)
	GetWithAvailableSeats(ctx context.Context) ([]*models.Course, error)
	ExistsByCode(ctx context.Context, code string, excludeID int64) (bool, error)
	CountByDepartment(ctx context.Context, departmentID int64) (int64, error)
	Update(ctx context.Context, course *models.Course) error
	SetActive(ctx context.Context, id int64, active bool) error
	Delete(ctx context.Context, id int64) error
}

// EnrollmentRepository is the persistence surface the services need for
// enrollments.
type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *models.Enrollment) error
	GetByID(ctx context.Context, id int64) (*models.Enrollment, error)
	GetAll(ctx context.Context) ([]*models.Enrollment, error)
	GetByStudent(ctx context.Context, studentID int64) ([]*models.Enrollment, error)
	GetByCourse(ctx context.Context, courseID int64) ([]*models.Enrollment, error)
	GetByStatus(ctx context.Context, status models.EnrollmentStatus) ([]*models.Enrollment, error)
	GetCompletedByStudent(ctx context.Context, studentID int64) ([]*models.Enrollment, error)
	ExistsByStudentAndCourse(ctx context.Context, studentID, courseID int64) (bool, error)
	CountActiveByCourse(ctx context.Context, courseID int64) (int64, error)
	CountByCourse(ctx context.Context, courseID int64) (int64, error)
	AverageGradePoints(ctx context.Context, studentID int64) (float64, bool, error)
	Update(ctx context.Context, enrollment *models.Enrollment) error
	Delete(ctx context.Context, id int64) error
	DeleteAllByStudent(ctx context.Context, studentID int64) (int64, error)
}

// FeeRepository is the persistence surface the services need for fees.
type FeeRepository interface {
	Create(ctx context.Context, fee *models.Fee) error
	GetByID(ctx context.Context, id int64) (*models.Fee, error)
	GetAll(ctx context.Context) ([]*models.Fee, error)
	GetByStudent(ctx context.Context, studentID int64) ([]*models.Fee, error)
	GetBySemester(ctx context.Context, semester string) ([]*models.Fee, error)
	GetByStudentAndSemester(ctx context.Context, studentID int64, semester string) ([]*models.Fee, error)
	GetByStatus(ctx context.Context, status models.PaymentStatus) ([]*models.Fee, error)
	GetPendingByStudent(ctx context.Context, studentID int64) ([]*models.Fee, error)
	GetOverdue(ctx context.Context, asOf time.Time) ([]*models.Fee, error)
	SumAmountByStudent(ctx context.Context, studentID int64) (float64, error)
	SumPaidByStudent(ctx context.Context, studentID int64) (float64, error)
	SumOutstandingByStudent(ctx context.Context, studentID int64) (float64, error)
	CountPendingByStudent(ctx context.Context, studentID int64) (int64, error)
	Update(ctx context.Context, fee *models.Fee) error
	Delete(ctx context.Context, id int64) error
	DeleteAllByStudent(ctx context.Context, studentID int64) (int64, error)
}

// Services holds all the service instances
type Services struct {
	DepartmentService DepartmentService
	StudentService    StudentService
	AddressService    AddressService
	CourseService     CourseService
	EnrollmentService EnrollmentService
	FeeService        FeeService
}

// NewServices wires the services to the concrete repositories
func NewServices(repos *repositories.Repositories) *Services {
	return &Services{
		DepartmentService: NewDepartmentService(
			repos.DepartmentRepository,
			repos.StudentRepository,
			repos.CourseRepository,
		),
		StudentService: NewStudentService(
			repos.StudentRepository,
			repos.DepartmentRepository,
			repos.AddressRepository,
			repos.EnrollmentRepository,
			repos.FeeRepository,
			repos.TxManager,
		),
		AddressService: NewAddressService(
			repos.AddressRepository,
			repos.StudentRepository,
			repos.TxManager,
		),
		CourseService: NewCourseService(
			repos.CourseRepository,
			repos.DepartmentRepository,
			repos.EnrollmentRepository,
		),
		EnrollmentService: NewEnrollmentService(
			repos.EnrollmentRepository,
			repos.StudentRepository,
			repos.CourseRepository,
			repos.TxManager,
		),
		FeeService: NewFeeService(
			repos.FeeRepository,
			repos.StudentRepository,
		),
	}
}
