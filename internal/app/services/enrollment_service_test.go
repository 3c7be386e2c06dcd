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

type enrollmentFixture struct {
	service     services.EnrollmentService
	enrollments *fakeEnrollmentRepo
	students    *fakeStudentRepo
	courses     *fakeCourseRepo
	tx          *fakeTxManager
}

func newEnrollmentFixture() *enrollmentFixture {
	f := &enrollmentFixture{
		enrollments: newFakeEnrollmentRepo(),
		students:    newFakeStudentRepo(),
		courses:     newFakeCourseRepo(),
		tx:          &fakeTxManager{},
	}
	f.service = services.NewEnrollmentService(f.enrollments, f.students, f.courses, f.tx)
	return f
}

func (f *enrollmentFixture) addStudent(number string) *models.Student {
	return f.students.add(&models.Student{
		StudentNumber: number,
		FirstName:     "Test",
		LastName:      "Student",
		Email:         number + "@campus.edu",
		DepartmentID:  1,
		Status:        models.StudentStatusActive,
	})
}

func (f *enrollmentFixture) addCourse(code string, maxStudents int, active bool) *models.Course {
	return f.courses.add(&models.Course{
		Code:         code,
		Name:         "Course " + code,
		Credits:      3,
		DepartmentID: 1,
		MaxStudents:  maxStudents,
		IsActive:     active,
	})
}

func TestEnrollmentService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("enrolls a student into an open course", func(t *testing.T) {
		f := newEnrollmentFixture()
		student := f.addStudent("S2025001")
		course := f.addCourse("CS101", 30, true)

		enrollment, err := f.service.Create(ctx, dto.CreateEnrollmentRequest{
			StudentID: student.ID,
			CourseID:  course.ID,
		})
		require.NoError(t, err)

		assert.NotZero(t, enrollment.ID)
		assert.Equal(t, models.EnrollmentStatusEnrolled, enrollment.Status)
		assert.False(t, enrollment.EnrollmentDate.IsZero())
		assert.Equal(t, 1, f.tx.calls)
		assert.Equal(t, 1, f.courses.lockCalls)
	})

	t.Run("rejects a duplicate enrollment", func(t *testing.T) {
		f := newEnrollmentFixture()
		student := f.addStudent("S2025001")
		course := f.addCourse("CS101", 30, true)

		req := dto.CreateEnrollmentRequest{StudentID: student.ID, CourseID: course.ID}
		_, err := f.service.Create(ctx, req)
		require.NoError(t, err)

		_, err = f.service.Create(ctx, req)
		assert.ErrorIs(t, err, apperrors.ErrAlreadyEnrolled)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
	})

	t.Run("still counts a withdrawn student as enrolled once for duplicates", func(t *testing.T) {
		f := newEnrollmentFixture()
		student := f.addStudent("S2025001")
		course := f.addCourse("CS101", 30, true)

		f.enrollments.add(&models.Enrollment{
			StudentID:      student.ID,
			CourseID:       course.ID,
			EnrollmentDate: time.Now(),
			Status:         models.EnrollmentStatusWithdrawn,
		})

		_, err := f.service.Create(ctx, dto.CreateEnrollmentRequest{StudentID: student.ID, CourseID: course.ID})
		assert.ErrorIs(t, err, apperrors.ErrAlreadyEnrolled)
	})

	t.Run("rejects enrollment into a full course", func(t *testing.T) {
		f := newEnrollmentFixture()
		first := f.addStudent("S2025001")
		second := f.addStudent("S2025002")
		course := f.addCourse("CS101", 1, true)

		_, err := f.service.Create(ctx, dto.CreateEnrollmentRequest{StudentID: first.ID, CourseID: course.ID})
		require.NoError(t, err)

		_, err = f.service.Create(ctx, dto.CreateEnrollmentRequest{StudentID: second.ID, CourseID: course.ID})
		assert.ErrorIs(t, err, apperrors.ErrCourseFull)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
	})

	t.Run("withdrawn enrollments do not hold a seat", func(t *testing.T) {
		f := newEnrollmentFixture()
		former := f.addStudent("S2025001")
		student := f.addStudent("S2025002")
		course := f.addCourse("CS101", 1, true)

		f.enrollments.add(&models.Enrollment{
			StudentID:      former.ID,
			CourseID:       course.ID,
			EnrollmentDate: time.Now(),
			Status:         models.EnrollmentStatusWithdrawn,
		})

		_, err := f.service.Create(ctx, dto.CreateEnrollmentRequest{StudentID: student.ID, CourseID: course.ID})
		assert.NoError(t, err)
	})

	t.Run("unknown student", func(t *testing.T) {
		f := newEnrollmentFixture()
		course := f.addCourse("CS101", 30, true)

		_, err := f.service.Create(ctx, dto.CreateEnrollmentRequest{StudentID: 99, CourseID: course.ID})
		assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	})

	t.Run("unknown course", func(t *testing.T) {
		f := newEnrollmentFixture()
		student := f.addStudent("S2025001")

		_, err := f.service.Create(ctx, dto.CreateEnrollmentRequest{StudentID: student.ID, CourseID: 99})
		assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
	})
}

func TestEnrollmentService_UpdateGrade(t *testing.T) {
	ctx := context.Background()
	f := newEnrollmentFixture()
	student := f.addStudent("S2025001")
	course := f.addCourse("CS101", 30, true)

	enrollment, err := f.service.Create(ctx, dto.CreateEnrollmentRequest{StudentID: student.ID, CourseID: course.ID})
	require.NoError(t, err)

	points := 3.7
	updated, err := f.service.UpdateGrade(ctx, enrollment.ID, dto.UpdateGradeRequest{Grade: "A-", GradePoints: &points})
	require.NoError(t, err)

	assert.Equal(t, "A-", *updated.Grade)
	assert.Equal(t, 3.7, *updated.GradePoints)
	assert.Equal(t, models.EnrollmentStatusCompleted, updated.Status)

	stored, err := f.enrollments.GetByID(ctx, enrollment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EnrollmentStatusCompleted, stored.Status)
}

func TestEnrollmentService_UpdateAttendance(t *testing.T) {
	ctx := context.Background()
	f := newEnrollmentFixture()
	student := f.addStudent("S2025001")
	course := f.addCourse("CS101", 30, true)

	enrollment, err := f.service.Create(ctx, dto.CreateEnrollmentRequest{StudentID: student.ID, CourseID: course.ID})
	require.NoError(t, err)

	updated, err := f.service.UpdateAttendance(ctx, enrollment.ID, 87.5)
	require.NoError(t, err)
	assert.Equal(t, 87.5, updated.AttendancePercentage)
	assert.Equal(t, models.EnrollmentStatusEnrolled, updated.Status)
}

func TestEnrollmentService_Withdraw(t *testing.T) {
	ctx := context.Background()
	f := newEnrollmentFixture()
	student := f.addStudent("S2025001")
	course := f.addCourse("CS101", 1, true)

	enrollment, err := f.service.Create(ctx, dto.CreateEnrollmentRequest{StudentID: student.ID, CourseID: course.ID})
	require.NoError(t, err)

	withdrawn, err := f.service.Withdraw(ctx, enrollment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EnrollmentStatusWithdrawn, withdrawn.Status)

	// The seat is free again.
	seats, err := f.enrollments.CountActiveByCourse(ctx, course.ID)
	require.NoError(t, err)
	assert.Zero(t, seats)
}

func TestEnrollmentService_CanEnroll(t *testing.T) {
	ctx := context.Background()

	t.Run("open course", func(t *testing.T) {
		f := newEnrollmentFixture()
		student := f.addStudent("S2025001")
		course := f.addCourse("CS101", 30, true)

		ok, err := f.service.CanEnroll(ctx, student.ID, course.ID)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("inactive course", func(t *testing.T) {
		f := newEnrollmentFixture()
		student := f.addStudent("S2025001")
		course := f.addCourse("CS101", 30, false)

		ok, err := f.service.CanEnroll(ctx, student.ID, course.ID)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("already enrolled", func(t *testing.T) {
		f := newEnrollmentFixture()
		student := f.addStudent("S2025001")
		course := f.addCourse("CS101", 30, true)

		_, err := f.service.Create(ctx, dto.CreateEnrollmentRequest{StudentID: student.ID, CourseID: course.ID})
		require.NoError(t, err)

		ok, err := f.service.CanEnroll(ctx, student.ID, course.ID)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("full course", func(t *testing.T) {
		f := newEnrollmentFixture()
		first := f.addStudent("S2025001")
		second := f.addStudent("S2025002")
		course := f.addCourse("CS101", 1, true)

		_, err := f.service.Create(ctx, dto.CreateEnrollmentRequest{StudentID: first.ID, CourseID: course.ID})
		require.NoError(t, err)

		ok, err := f.service.CanEnroll(ctx, second.ID, course.ID)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestEnrollmentService_CalculateStudentGPA(t *testing.T) {
	ctx := context.Background()
	f := newEnrollmentFixture()
	student := f.addStudent("S2025001")

	t.Run("no graded enrollments", func(t *testing.T) {
		gpa, err := f.service.CalculateStudentGPA(ctx, student.ID)
		require.NoError(t, err)
		assert.Equal(t, 0.0, gpa)
	})

	t.Run("averages graded enrollments", func(t *testing.T) {
		four := 4.0
		three := 3.0
		f.enrollments.add(&models.Enrollment{
			StudentID: student.ID, CourseID: 1, Status: models.EnrollmentStatusCompleted, GradePoints: &four,
		})
		f.enrollments.add(&models.Enrollment{
			StudentID: student.ID, CourseID: 2, Status: models.EnrollmentStatusCompleted, GradePoints: &three,
		})
		// Still enrolled, no grade yet. Must not count.
		f.enrollments.add(&models.Enrollment{
			StudentID: student.ID, CourseID: 3, Status: models.EnrollmentStatusEnrolled,
		})

		gpa, err := f.service.CalculateStudentGPA(ctx, student.ID)
		require.NoError(t, err)
		assert.InDelta(t, 3.5, gpa, 0.0001)
	})

	t.Run("counts grade points on active enrollments", func(t *testing.T) {
		active := f.enrollments.add(&models.Enrollment{
			StudentID: student.ID, CourseID: 4, Status: models.EnrollmentStatusEnrolled,
		})

		two := 2.0
		updated, err := f.service.Update(ctx, active.ID, dto.UpdateEnrollmentRequest{GradePoints: &two})
		require.NoError(t, err)
		assert.Equal(t, models.EnrollmentStatusEnrolled, updated.Status)

		gpa, err := f.service.CalculateStudentGPA(ctx, student.ID)
		require.NoError(t, err)
		assert.InDelta(t, 3.0, gpa, 0.0001)
	})

	t.Run("unknown student", func(t *testing.T) {
		_, err := f.service.CalculateStudentGPA(ctx, 99)
		assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	})
}

func TestEnrollmentService_GetByStatus(t *testing.T) {
	ctx := context.Background()
	f := newEnrollmentFixture()

	_, err := f.service.GetByStatus(ctx, "Finished")
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)

	list, err := f.service.GetByStatus(ctx, "Enrolled")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestEnrollmentService_Update(t *testing.T) {
	ctx := context.Background()
	f := newEnrollmentFixture()
	student := f.addStudent("S2025001")
	course := f.addCourse("CS101", 30, true)

	enrollment, err := f.service.Create(ctx, dto.CreateEnrollmentRequest{StudentID: student.ID, CourseID: course.ID})
	require.NoError(t, err)

	t.Run("partial update leaves other fields alone", func(t *testing.T) {
		attendance := 92.0
		updated, err := f.service.Update(ctx, enrollment.ID, dto.UpdateEnrollmentRequest{
			AttendancePercentage: &attendance,
		})
		require.NoError(t, err)
		assert.Equal(t, 92.0, updated.AttendancePercentage)
		assert.Equal(t, models.EnrollmentStatusEnrolled, updated.Status)
		assert.Nil(t, updated.Grade)
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		bad := "Paused"
		_, err := f.service.Update(ctx, enrollment.ID, dto.UpdateEnrollmentRequest{Status: &bad})
		assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
	})
}
