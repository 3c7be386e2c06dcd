package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/studentms/internal/app/models"
	"github.com/campushq/studentms/internal/app/models/dto"
	"github.com/campushq/studentms/internal/app/services"
	"github.com/campushq/studentms/internal/pkg/apperrors"
)

type studentFixture struct {
	service     services.StudentService
	students    *fakeStudentRepo
	departments *fakeDepartmentRepo
	addresses   *fakeAddressRepo
	enrollments *fakeEnrollmentRepo
	fees        *fakeFeeRepo
	tx          *fakeTxManager
	department  *models.Department
}

func newStudentFixture() *studentFixture {
	f := &studentFixture{
		students:    newFakeStudentRepo(),
		departments: newFakeDepartmentRepo(),
		addresses:   newFakeAddressRepo(),
		enrollments: newFakeEnrollmentRepo(),
		fees:        newFakeFeeRepo(),
		tx:          &fakeTxManager{},
	}
	f.service = services.NewStudentService(f.students, f.departments, f.addresses, f.enrollments, f.fees, f.tx)
	f.department = f.departments.add(&models.Department{Code: "CSE", Name: "Computer Science"})
	return f
}

func (f *studentFixture) createRequest(number, email string) dto.CreateStudentRequest {
	return dto.CreateStudentRequest{
		StudentNumber: number,
		FirstName:     "Test",
		LastName:      "Student",
		Email:         email,
		DepartmentID:  f.department.ID,
	}
}

func TestStudentService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("applies defaults and attaches the department", func(t *testing.T) {
		f := newStudentFixture()

		student, err := f.service.Create(ctx, f.createRequest("S2025001", "one@campus.edu"))
		require.NoError(t, err)

		assert.NotZero(t, student.ID)
		assert.Equal(t, models.StudentStatusActive, student.Status)
		require.NotNil(t, student.EnrollmentDate)
		assert.WithinDuration(t, time.Now(), *student.EnrollmentDate, time.Minute)
		require.NotNil(t, student.Department)
		assert.Equal(t, "CSE", student.Department.Code)
	})

	t.Run("rejects a duplicate student number", func(t *testing.T) {
		f := newStudentFixture()
		_, err := f.service.Create(ctx, f.createRequest("S2025001", "one@campus.edu"))
		require.NoError(t, err)

		_, err = f.service.Create(ctx, f.createRequest("S2025001", "two@campus.edu"))
		assert.ErrorIs(t, err, apperrors.ErrStudentNumberExists)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		f := newStudentFixture()
		_, err := f.service.Create(ctx, f.createRequest("S2025001", "one@campus.edu"))
		require.NoError(t, err)

		_, err = f.service.Create(ctx, f.createRequest("S2025002", "one@campus.edu"))
		assert.ErrorIs(t, err, apperrors.ErrStudentEmailExists)
	})

	t.Run("rejects an unknown department", func(t *testing.T) {
		f := newStudentFixture()
		req := f.createRequest("S2025001", "one@campus.edu")
		req.DepartmentID = 99

		_, err := f.service.Create(ctx, req)
		assert.ErrorIs(t, err, apperrors.ErrDepartmentNotFound)
	})
}

func TestStudentService_Update(t *testing.T) {
	ctx := context.Background()
	f := newStudentFixture()

	first, err := f.service.Create(ctx, f.createRequest("S2025001", "one@campus.edu"))
	require.NoError(t, err)
	_, err = f.service.Create(ctx, f.createRequest("S2025002", "two@campus.edu"))
	require.NoError(t, err)

	t.Run("keeping the own identifiers is not a conflict", func(t *testing.T) {
		updated, err := f.service.Update(ctx, first.ID, dto.UpdateStudentRequest{
			StudentNumber: "S2025001",
			FirstName:     "Renamed",
			LastName:      "Student",
			Email:         "one@campus.edu",
			DepartmentID:  f.department.ID,
			Status:        "Active",
		})
		require.NoError(t, err)
		assert.Equal(t, "Renamed", updated.FirstName)
	})

	t.Run("taking another student's number is", func(t *testing.T) {
		_, err := f.service.Update(ctx, first.ID, dto.UpdateStudentRequest{
			StudentNumber: "S2025002",
			FirstName:     "Test",
			LastName:      "Student",
			Email:         "one@campus.edu",
			DepartmentID:  f.department.ID,
			Status:        "Active",
		})
		assert.ErrorIs(t, err, apperrors.ErrStudentNumberExists)
	})

	t.Run("taking another student's email is", func(t *testing.T) {
		_, err := f.service.Update(ctx, first.ID, dto.UpdateStudentRequest{
			StudentNumber: "S2025001",
			FirstName:     "Test",
			LastName:      "Student",
			Email:         "two@campus.edu",
			DepartmentID:  f.department.ID,
			Status:        "Active",
		})
		assert.ErrorIs(t, err, apperrors.ErrStudentEmailExists)
	})
}

func TestStudentService_StatusTransitions(t *testing.T) {
	ctx := context.Background()
	f := newStudentFixture()

	student, err := f.service.Create(ctx, f.createRequest("S2025001", "one@campus.edu"))
	require.NoError(t, err)

	require.NoError(t, f.service.Deactivate(ctx, student.ID))
	stored, err := f.students.GetByID(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StudentStatusInactive, stored.Status)

	require.NoError(t, f.service.Activate(ctx, student.ID))
	stored, err = f.students.GetByID(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StudentStatusActive, stored.Status)

	require.NoError(t, f.service.UpdateStatus(ctx, student.ID, "Graduated"))
	stored, err = f.students.GetByID(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StudentStatusGraduated, stored.Status)

	err = f.service.UpdateStatus(ctx, student.ID, "Expelled")
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
}

func TestStudentService_Delete(t *testing.T) {
	ctx := context.Background()
	f := newStudentFixture()

	student, err := f.service.Create(ctx, f.createRequest("S2025001", "one@campus.edu"))
	require.NoError(t, err)

	f.addresses.add(&models.Address{StudentID: student.ID, Type: models.AddressTypePermanent, Country: "India", IsPrimary: true})
	f.enrollments.add(&models.Enrollment{StudentID: student.ID, CourseID: 1, Status: models.EnrollmentStatusEnrolled})
	f.fees.add(&models.Fee{StudentID: student.ID, Semester: "2025-FALL", FeeType: models.FeeTypeTuition, Amount: 1000, DueDate: time.Now(), PaymentStatus: models.PaymentStatusPending})

	require.NoError(t, f.service.Delete(ctx, student.ID))
	assert.Equal(t, 1, f.tx.calls)

	_, err = f.students.GetByID(ctx, student.ID)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)

	addresses, err := f.addresses.GetByStudent(ctx, student.ID)
	require.NoError(t, err)
	assert.Empty(t, addresses)

	enrollments, err := f.enrollments.GetByStudent(ctx, student.ID)
	require.NoError(t, err)
	assert.Empty(t, enrollments)

	fees, err := f.fees.GetByStudent(ctx, student.ID)
	require.NoError(t, err)
	assert.Empty(t, fees)
}

func TestStudentService_Filter(t *testing.T) {
	ctx := context.Background()
	f := newStudentFixture()

	f.students.add(&models.Student{
		StudentNumber: "S2025001", Email: "one@campus.edu", DepartmentID: f.department.ID,
		Status: models.StudentStatusActive, GPA: 3.8,
	})
	f.students.add(&models.Student{
		StudentNumber: "S2025002", Email: "two@campus.edu", DepartmentID: f.department.ID,
		Status: models.StudentStatusInactive, GPA: 2.1,
	})

	status := "Active"
	minGPA := 3.0
	list, err := f.service.Filter(ctx, dto.StudentFilter{Status: &status, MinGPA: &minGPA})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "S2025001", list[0].StudentNumber)

	bad := "Expelled"
	_, err = f.service.Filter(ctx, dto.StudentFilter{Status: &bad})
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
}

func TestStudentService_Search(t *testing.T) {
	ctx := context.Background()
	f := newStudentFixture()

	f.students.add(&models.Student{
		StudentNumber: "S2025001", FirstName: "Priya", LastName: "Sharma",
		Email: "priya@campus.edu", DepartmentID: f.department.ID, Status: models.StudentStatusActive,
	})
	f.students.add(&models.Student{
		StudentNumber: "S2025002", FirstName: "Arjun", LastName: "Patel",
		Email: "arjun@campus.edu", DepartmentID: f.department.ID, Status: models.StudentStatusActive,
	})

	list, err := f.service.Search(ctx, "priya")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Priya", list[0].FirstName)
}
