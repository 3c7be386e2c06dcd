package services_test

import (
	"context"
	"strings"
	"time"

	"github.com/campushq/studentms/internal/app/models"
	"github.com/campushq/studentms/internal/app/models/dto"
	"github.com/campushq/studentms/internal/pkg/apperrors"
)

// In-memory fakes for the repository interfaces. They return copies of the
// stored records so a mutation only persists through an explicit Update,
// mirroring how the pgx repositories behave.

type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type fakeDepartmentRepo struct {
	seq   int64
	items map[int64]*models.Department
}

func newFakeDepartmentRepo() *fakeDepartmentRepo {
	return &fakeDepartmentRepo{items: map[int64]*models.Department{}}
}

func (r *fakeDepartmentRepo) add(d *models.Department) *models.Department {
	r.seq++
	d.ID = r.seq
	clone := *d
	r.items[d.ID] = &clone
	return d
}

func (r *fakeDepartmentRepo) Create(_ context.Context, department *models.Department) error {
	for _, d := range r.items {
		if d.Code == department.Code {
			return apperrors.ErrDepartmentCodeExists
		}
	}
	r.add(department)
	return nil
}

func (r *fakeDepartmentRepo) GetByID(_ context.Context, id int64) (*models.Department, error) {
	d, ok := r.items[id]
	if !ok {
		return nil, apperrors.ErrDepartmentNotFound
	}
	clone := *d
	return &clone, nil
}

func (r *fakeDepartmentRepo) GetByCode(_ context.Context, code string) (*models.Department, error) {
	for _, d := range r.items {
		if d.Code == code {
			clone := *d
			return &clone, nil
		}
	}
	return nil, apperrors.ErrDepartmentNotFound
}

func (r *fakeDepartmentRepo) GetAll(_ context.Context) ([]*models.Department, error) {
	out := make([]*models.Department, 0, len(r.items))
	for _, d := range r.items {
		clone := *d
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fakeDepartmentRepo) ExistsByCode(_ context.Context, code string, excludeID int64) (bool, error) {
	for _, d := range r.items {
		if d.Code == code && d.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeDepartmentRepo) Update(_ context.Context, department *models.Department) error {
	if _, ok := r.items[department.ID]; !ok {
		return apperrors.ErrDepartmentNotFound
	}
	clone := *department
	r.items[department.ID] = &clone
	return nil
}

func (r *fakeDepartmentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.items[id]; !ok {
		return apperrors.ErrDepartmentNotFound
	}
	delete(r.items, id)
	return nil
}

type fakeStudentRepo struct {
	seq   int64
	items map[int64]*models.Student
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{items: map[int64]*models.Student{}}
}

func (r *fakeStudentRepo) add(s *models.Student) *models.Student {
	r.seq++
	s.ID = r.seq
	clone := *s
	r.items[s.ID] = &clone
	return s
}

func (r *fakeStudentRepo) Create(_ context.Context, student *models.Student) error {
	for _, s := range r.items {
		if s.StudentNumber == student.StudentNumber {
			return apperrors.ErrStudentNumberExists
		}
		if s.Email == student.Email {
			return apperrors.ErrStudentEmailExists
		}
	}
	r.add(student)
	return nil
}

func (r *fakeStudentRepo) GetByID(_ context.Context, id int64) (*models.Student, error) {
	s, ok := r.items[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *fakeStudentRepo) GetByStudentNumber(_ context.Context, studentNumber string) (*models.Student, error) {
	for _, s := range r.items {
		if s.StudentNumber == studentNumber {
			clone := *s
			return &clone, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (r *fakeStudentRepo) GetByEmail(_ context.Context, email string) (*models.Student, error) {
	for _, s := range r.items {
		if s.Email == email {
			clone := *s
			return &clone, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (r *fakeStudentRepo) GetAll(_ context.Context) ([]*models.Student, error) {
	out := make([]*models.Student, 0, len(r.items))
	for _, s := range r.items {
		clone := *s
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fakeStudentRepo) GetByDepartment(_ context.Context, departmentID int64) ([]*models.Student, error) {
	var out []*models.Student
	for _, s := range r.items {
		if s.DepartmentID == departmentID {
			clone := *s
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeStudentRepo) GetByStatus(_ context.Context, status models.StudentStatus) ([]*models.Student, error) {
	var out []*models.Student
	for _, s := range r.items {
		if s.Status == status {
			clone := *s
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeStudentRepo) Search(_ context.Context, keyword string) ([]*models.Student, error) {
	kw := strings.ToLower(keyword)
	var out []*models.Student
	for _, s := range r.items {
		haystack := strings.ToLower(s.FirstName + " " + s.LastName + " " + s.StudentNumber + " " + s.Email)
		if strings.Contains(haystack, kw) {
			clone := *s
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeStudentRepo) Filter(_ context.Context, filter dto.StudentFilter) ([]*models.Student, error) {
	var out []*models.Student
	for _, s := range r.items {
		if filter.Status != nil && string(s.Status) != *filter.Status {
			continue
		}
		if filter.DepartmentID != nil && s.DepartmentID != *filter.DepartmentID {
			continue
		}
		if filter.MinGPA != nil && s.GPA < *filter.MinGPA {
			continue
		}
		clone := *s
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fakeStudentRepo) GetWithMinGPA(_ context.Context, minGPA float64) ([]*models.Student, error) {
	var out []*models.Student
	for _, s := range r.items {
		if s.GPA >= minGPA {
			clone := *s
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeStudentRepo) ExistsByStudentNumber(_ context.Context, studentNumber string, excludeID int64) (bool, error) {
	for _, s := range r.items {
		if s.StudentNumber == studentNumber && s.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeStudentRepo) ExistsByEmail(_ context.Context, email string, excludeID int64) (bool, error) {
	for _, s := range r.items {
		if s.Email == email && s.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeStudentRepo) CountByDepartment(_ context.Context, departmentID int64) (int64, error) {
	var count int64
	for _, s := range r.items {
		if s.DepartmentID == departmentID {
			count++
		}
	}
	return count, nil
}

func (r *fakeStudentRepo) Update(_ context.Context, student *models.Student) error {
	if _, ok := r.items[student.ID]; !ok {
		return apperrors.ErrStudentNotFound
	}
	clone := *student
	r.items[student.ID] = &clone
	return nil
}

func (r *fakeStudentRepo) UpdateStatus(_ context.Context, id int64, status models.StudentStatus) error {
	s, ok := r.items[id]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	s.Status = status
	return nil
}

func (r *fakeStudentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.items[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(r.items, id)
	return nil
}

type fakeAddressRepo struct {
	seq   int64
	items map[int64]*models.Address
}

func newFakeAddressRepo() *fakeAddressRepo {
	return &fakeAddressRepo{items: map[int64]*models.Address{}}
}

func (r *fakeAddressRepo) add(a *models.Address) *models.Address {
	r.seq++
	a.ID = r.seq
	clone := *a
	r.items[a.ID] = &clone
	return a
}

// hasOtherPrimary mimics the partial unique index on primary addresses.
func (r *fakeAddressRepo) hasOtherPrimary(studentID, excludeID int64) bool {
	for _, a := range r.items {
		if a.StudentID == studentID && a.IsPrimary && a.ID != excludeID {
			return true
		}
	}
	return false
}

func (r *fakeAddressRepo) Create(_ context.Context, address *models.Address) error {
	if address.IsPrimary && r.hasOtherPrimary(address.StudentID, 0) {
		return apperrors.NewConflictError("student already has a primary address")
	}
	r.add(address)
	return nil
}

func (r *fakeAddressRepo) GetByID(_ context.Context, id int64) (*models.Address, error) {
	a, ok := r.items[id]
	if !ok {
		return nil, apperrors.ErrAddressNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *fakeAddressRepo) GetAll(_ context.Context) ([]*models.Address, error) {
	out := make([]*models.Address, 0, len(r.items))
	for _, a := range r.items {
		clone := *a
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fakeAddressRepo) GetByStudent(_ context.Context, studentID int64) ([]*models.Address, error) {
	var out []*models.Address
	for _, a := range r.items {
		if a.StudentID == studentID {
			clone := *a
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeAddressRepo) GetByStudentAndType(_ context.Context, studentID int64, addressType models.AddressType) ([]*models.Address, error) {
	var out []*models.Address
	for _, a := range r.items {
		if a.StudentID == studentID && a.Type == addressType {
			clone := *a
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeAddressRepo) GetPrimaryByStudent(_ context.Context, studentID int64) (*models.Address, error) {
	for _, a := range r.items {
		if a.StudentID == studentID && a.IsPrimary {
			clone := *a
			return &clone, nil
		}
	}
	return nil, apperrors.ErrNoPrimaryAddress
}

func (r *fakeAddressRepo) GetByCity(_ context.Context, city string) ([]*models.Address, error) {
	var out []*models.Address
	for _, a := range r.items {
		if a.City != nil && strings.EqualFold(*a.City, city) {
			clone := *a
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeAddressRepo) GetByState(_ context.Context, state string) ([]*models.Address, error) {
	var out []*models.Address
	for _, a := range r.items {
		if a.State != nil && strings.EqualFold(*a.State, state) {
			clone := *a
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeAddressRepo) Update(_ context.Context, address *models.Address) error {
	if _, ok := r.items[address.ID]; !ok {
		return apperrors.ErrAddressNotFound
	}
	if address.IsPrimary && r.hasOtherPrimary(address.StudentID, address.ID) {
		return apperrors.NewConflictError("student already has a primary address")
	}
	clone := *address
	r.items[address.ID] = &clone
	return nil
}

func (r *fakeAddressRepo) UpdatePrimaryFlag(_ context.Context, id int64, isPrimary bool) error {
	a, ok := r.items[id]
	if !ok {
		return apperrors.ErrAddressNotFound
	}
	if isPrimary && r.hasOtherPrimary(a.StudentID, id) {
		return apperrors.NewConflictError("student already has a primary address")
	}
	a.IsPrimary = isPrimary
	return nil
}

func (r *fakeAddressRepo) ClearPrimaryForStudent(_ context.Context, studentID, keepID int64) error {
	for _, a := range r.items {
		if a.StudentID == studentID && a.ID != keepID {
			a.IsPrimary = false
		}
	}
	return nil
}

func (r *fakeAddressRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.items[id]; !ok {
		return apperrors.ErrAddressNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeAddressRepo) DeleteAllByStudent(_ context.Context, studentID int64) (int64, error) {
	var count int64
	for id, a := range r.items {
		if a.StudentID == studentID {
			delete(r.items, id)
			count++
		}
	}
	return count, nil
}

type fakeCourseRepo struct {
	seq       int64
	items     map[int64]*models.Course
	lockCalls int
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{items: map[int64]*models.Course{}}
}

func (r *fakeCourseRepo) add(c *models.Course) *models.Course {
	r.seq++
	c.ID = r.seq
	clone := *c
	r.items[c.ID] = &clone
	return c
}

func (r *fakeCourseRepo) Create(_ context.Context, course *models.Course) error {
	for _, c := range r.items {
		if c.Code == course.Code {
			return apperrors.ErrCourseCodeExists
		}
	}
	r.add(course)
	return nil
}

func (r *fakeCourseRepo) GetByID(_ context.Context, id int64) (*models.Course, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *fakeCourseRepo) GetByIDForUpdate(ctx context.Context, id int64) (*models.Course, error) {
	r.lockCalls++
	return r.GetByID(ctx, id)
}

func (r *fakeCourseRepo) GetByCode(_ context.Context, code string) (*models.Course, error) {
	for _, c := range r.items {
		if c.Code == code {
			clone := *c
			return &clone, nil
		}
	}
	return nil, apperrors.ErrCourseNotFound
}

func (r *fakeCourseRepo) GetAll(_ context.Context) ([]*models.Course, error) {
	out := make([]*models.Course, 0, len(r.items))
	for _, c := range r.items {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fakeCourseRepo) GetByDepartment(_ context.Context, departmentID int64) ([]*models.Course, error) {
	var out []*models.Course
	for _, c := range r.items {
		if c.DepartmentID == departmentID {
			clone := *c
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeCourseRepo) GetActive(_ context.Context) ([]*models.Course, error) {
	var out []*models.Course
	for _, c := range r.items {
		if c.IsActive {
			clone := *c
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeCourseRepo) GetBySemester(_ context.Context, semester string) ([]*models.Course, error) {
	var out []*models.Course
	for _, c := range r.items {
		if c.Semester != nil && *c.Semester == semester {
			clone := *c
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeCourseRepo) SearchByName(_ context.Context, keyword string) ([]*models.Course, error) {
	kw := strings.ToLower(keyword)
	var out []*models.Course
	for _, c := range r.items {
		if strings.Contains(strings.ToLower(c.Name), kw) {
			clone := *c
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeCourseRepo) GetWithAvailableSeats(ctx context.Context) ([]*models.Course, error) {
	return r.GetActive(ctx)
}

func (r *fakeCourseRepo) ExistsByCode(_ context.Context, code string, excludeID int64) (bool, error) {
	for _, c := range r.items {
		if c.Code == code && c.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCourseRepo) CountByDepartment(_ context.Context, departmentID int64) (int64, error) {
	var count int64
	for _, c := range r.items {
		if c.DepartmentID == departmentID {
			count++
		}
	}
	return count, nil
}

func (r *fakeCourseRepo) Update(_ context.Context, course *models.Course) error {
	if _, ok := r.items[course.ID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	clone := *course
	r.items[course.ID] = &clone
	return nil
}

func (r *fakeCourseRepo) SetActive(_ context.Context, id int64, active bool) error {
	c, ok := r.items[id]
	if !ok {
		return apperrors.ErrCourseNotFound
	}
	c.IsActive = active
	return nil
}

func (r *fakeCourseRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.items[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(r.items, id)
	return nil
}

type fakeEnrollmentRepo struct {
	seq   int64
	items map[int64]*models.Enrollment
}

func newFakeEnrollmentRepo() *fakeEnrollmentRepo {
	return &fakeEnrollmentRepo{items: map[int64]*models.Enrollment{}}
}

func (r *fakeEnrollmentRepo) add(e *models.Enrollment) *models.Enrollment {
	r.seq++
	e.ID = r.seq
	clone := *e
	r.items[e.ID] = &clone
	return e
}

func (r *fakeEnrollmentRepo) Create(_ context.Context, enrollment *models.Enrollment) error {
	for _, e := range r.items {
		if e.StudentID == enrollment.StudentID && e.CourseID == enrollment.CourseID {
			return apperrors.ErrAlreadyEnrolled
		}
	}
	r.add(enrollment)
	return nil
}

func (r *fakeEnrollmentRepo) GetByID(_ context.Context, id int64) (*models.Enrollment, error) {
	e, ok := r.items[id]
	if !ok {
		return nil, apperrors.ErrEnrollmentNotFound
	}
	clone := *e
	return &clone, nil
}

func (r *fakeEnrollmentRepo) GetAll(_ context.Context) ([]*models.Enrollment, error) {
	out := make([]*models.Enrollment, 0, len(r.items))
	for _, e := range r.items {
		clone := *e
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fakeEnrollmentRepo) GetByStudent(_ context.Context, studentID int64) ([]*models.Enrollment, error) {
	var out []*models.Enrollment
	for _, e := range r.items {
		if e.StudentID == studentID {
			clone := *e
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeEnrollmentRepo) GetByCourse(_ context.Context, courseID int64) ([]*models.Enrollment, error) {
	var out []*models.Enrollment
	for _, e := range r.items {
		if e.CourseID == courseID {
			clone := *e
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeEnrollmentRepo) GetByStatus(_ context.Context, status models.EnrollmentStatus) ([]*models.Enrollment, error) {
	var out []*models.Enrollment
	for _, e := range r.items {
		if e.Status == status {
			clone := *e
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeEnrollmentRepo) GetCompletedByStudent(_ context.Context, studentID int64) ([]*models.Enrollment, error) {
	var out []*models.Enrollment
	for _, e := range r.items {
		if e.StudentID == studentID && e.Status == models.EnrollmentStatusCompleted {
			clone := *e
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeEnrollmentRepo) ExistsByStudentAndCourse(_ context.Context, studentID, courseID int64) (bool, error) {
	for _, e := range r.items {
		if e.StudentID == studentID && e.CourseID == courseID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeEnrollmentRepo) CountActiveByCourse(_ context.Context, courseID int64) (int64, error) {
	var count int64
	for _, e := range r.items {
		if e.CourseID == courseID && e.Status == models.EnrollmentStatusEnrolled {
			count++
		}
	}
	return count, nil
}

func (r *fakeEnrollmentRepo) CountByCourse(_ context.Context, courseID int64) (int64, error) {
	var count int64
	for _, e := range r.items {
		if e.CourseID == courseID {
			count++
		}
	}
	return count, nil
}

func (r *fakeEnrollmentRepo) AverageGradePoints(_ context.Context, studentID int64) (float64, bool, error) {
	var sum float64
	var n int
	for _, e := range r.items {
		if e.StudentID == studentID && e.GradePoints != nil {
			sum += *e.GradePoints
			n++
		}
	}
	if n == 0 {
		return 0, false, nil
	}
	return sum / float64(n), true, nil
}

func (r *fakeEnrollmentRepo) Update(_ context.Context, enrollment *models.Enrollment) error {
	if _, ok := r.items[enrollment.ID]; !ok {
		return apperrors.ErrEnrollmentNotFound
	}
	clone := *enrollment
	r.items[enrollment.ID] = &clone
	return nil
}

func (r *fakeEnrollmentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.items[id]; !ok {
		return apperrors.ErrEnrollmentNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeEnrollmentRepo) DeleteAllByStudent(_ context.Context, studentID int64) (int64, error) {
	var count int64
	for id, e := range r.items {
		if e.StudentID == studentID {
			delete(r.items, id)
			count++
		}
	}
	return count, nil
}

type fakeFeeRepo struct {
	seq   int64
	items map[int64]*models.Fee
}

func newFakeFeeRepo() *fakeFeeRepo {
	return &fakeFeeRepo{items: map[int64]*models.Fee{}}
}

func (r *fakeFeeRepo) add(f *models.Fee) *models.Fee {
	r.seq++
	f.ID = r.seq
	clone := *f
	r.items[f.ID] = &clone
	return f
}

func (r *fakeFeeRepo) Create(_ context.Context, fee *models.Fee) error {
	r.add(fee)
	return nil
}

func (r *fakeFeeRepo) GetByID(_ context.Context, id int64) (*models.Fee, error) {
	f, ok := r.items[id]
	if !ok {
		return nil, apperrors.ErrFeeNotFound
	}
	clone := *f
	return &clone, nil
}

func (r *fakeFeeRepo) GetAll(_ context.Context) ([]*models.Fee, error) {
	out := make([]*models.Fee, 0, len(r.items))
	for _, f := range r.items {
		clone := *f
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fakeFeeRepo) GetByStudent(_ context.Context, studentID int64) ([]*models.Fee, error) {
	var out []*models.Fee
	for _, f := range r.items {
		if f.StudentID == studentID {
			clone := *f
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeFeeRepo) GetBySemester(_ context.Context, semester string) ([]*models.Fee, error) {
	var out []*models.Fee
	for _, f := range r.items {
		if f.Semester == semester {
			clone := *f
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeFeeRepo) GetByStudentAndSemester(_ context.Context, studentID int64, semester string) ([]*models.Fee, error) {
	var out []*models.Fee
	for _, f := range r.items {
		if f.StudentID == studentID && f.Semester == semester {
			clone := *f
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeFeeRepo) GetByStatus(_ context.Context, status models.PaymentStatus) ([]*models.Fee, error) {
	var out []*models.Fee
	for _, f := range r.items {
		if f.PaymentStatus == status {
			clone := *f
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeFeeRepo) GetPendingByStudent(_ context.Context, studentID int64) ([]*models.Fee, error) {
	var out []*models.Fee
	for _, f := range r.items {
		if f.StudentID == studentID && f.PaymentStatus == models.PaymentStatusPending {
			clone := *f
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeFeeRepo) GetOverdue(_ context.Context, asOf time.Time) ([]*models.Fee, error) {
	var out []*models.Fee
	for _, f := range r.items {
		if f.DueDate.Before(asOf) && f.PaymentStatus != models.PaymentStatusPaid {
			clone := *f
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeFeeRepo) SumAmountByStudent(_ context.Context, studentID int64) (float64, error) {
	var sum float64
	for _, f := range r.items {
		if f.StudentID == studentID {
			sum += f.Amount
		}
	}
	return sum, nil
}

func (r *fakeFeeRepo) SumPaidByStudent(_ context.Context, studentID int64) (float64, error) {
	var sum float64
	for _, f := range r.items {
		if f.StudentID == studentID {
			sum += f.PaidAmount
		}
	}
	return sum, nil
}

func (r *fakeFeeRepo) SumOutstandingByStudent(_ context.Context, studentID int64) (float64, error) {
	var sum float64
	for _, f := range r.items {
		if f.StudentID == studentID && f.PaymentStatus != models.PaymentStatusPaid {
			sum += f.Amount - f.PaidAmount
		}
	}
	return sum, nil
}

func (r *fakeFeeRepo) CountPendingByStudent(_ context.Context, studentID int64) (int64, error) {
	var count int64
	for _, f := range r.items {
		if f.StudentID == studentID && f.PaymentStatus == models.PaymentStatusPending {
			count++
		}
	}
	return count, nil
}

func (r *fakeFeeRepo) Update(_ context.Context, fee *models.Fee) error {
	if _, ok := r.items[fee.ID]; !ok {
		return apperrors.ErrFeeNotFound
	}
	clone := *fee
	r.items[fee.ID] = &clone
	return nil
}

func (r *fakeFeeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.items[id]; !ok {
		return apperrors.ErrFeeNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeFeeRepo) DeleteAllByStudent(_ context.Context, studentID int64) (int64, error) {
	var count int64
	for id, f := range r.items {
		if f.StudentID == studentID {
			delete(r.items, id)
			count++
		}
	}
	return count, nil
}
