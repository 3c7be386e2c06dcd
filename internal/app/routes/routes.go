package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushq/studentms/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	departmentController *controllers.DepartmentController,
	studentController *controllers.StudentController,
	addressController *controllers.AddressController,
	courseController *controllers.CourseController,
	enrollmentController *controllers.EnrollmentController,
	feeController *controllers.FeeController,
) {
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	api := router.Group("/api")

	departments := api.Group("/departments")
	{
		departments.POST("", departmentController.CreateDepartment)
		departments.GET("", departmentController.GetAllDepartments)
		departments.GET("/:id", departmentController.GetDepartmentByID)
		departments.GET("/code/:code", departmentController.GetDepartmentByCode)
		departments.PUT("/:id", departmentController.UpdateDepartment)
		departments.DELETE("/:id", departmentController.DeleteDepartment)
	}

	students := api.Group("/students")
	{
		students.POST("", studentController.CreateStudent)
		students.GET("", studentController.GetAllStudents)
		students.GET("/search", studentController.SearchStudents)
		students.GET("/:id", studentController.GetStudentByID)
		students.GET("/number/:studentNumber", studentController.GetStudentByNumber)
		students.GET("/email/:email", studentController.GetStudentByEmail)
		students.GET("/department/:departmentId", studentController.GetStudentsByDepartment)
		students.GET("/status/:status", studentController.GetStudentsByStatus)
		students.PUT("/:id", studentController.UpdateStudent)
		students.PATCH("/:id/status", studentController.UpdateStudentStatus)
		students.POST("/:id/activate", studentController.ActivateStudent)
		students.POST("/:id/deactivate", studentController.DeactivateStudent)
		students.DELETE("/:id", studentController.DeleteStudent)
	}

	addresses := api.Group("/addresses")
	{
		addresses.POST("", addressController.CreateAddress)
		addresses.GET("", addressController.GetAllAddresses)
		addresses.GET("/:id", addressController.GetAddressByID)
		addresses.GET("/student/:studentId", addressController.GetAddressesByStudent)
		addresses.GET("/student/:studentId/primary", addressController.GetPrimaryAddress)
		addresses.PUT("/:id", addressController.UpdateAddress)
		addresses.PATCH("/:id/primary", addressController.SetPrimaryAddress)
		addresses.DELETE("/:id", addressController.DeleteAddress)
		addresses.DELETE("/student/:studentId", addressController.DeleteStudentAddresses)
	}

	courses := api.Group("/courses")
	{
		courses.POST("", courseController.CreateCourse)
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/:id", courseController.GetCourseByID)
		courses.GET("/code/:code", courseController.GetCourseByCode)
		courses.GET("/department/:departmentId", courseController.GetCoursesByDepartment)
		courses.GET("/:id/seats", courseController.GetAvailableSeats)
		courses.PUT("/:id", courseController.UpdateCourse)
		courses.POST("/:id/activate", courseController.ActivateCourse)
		courses.POST("/:id/deactivate", courseController.DeactivateCourse)
		courses.DELETE("/:id", courseController.DeleteCourse)
	}

	enrollments := api.Group("/enrollments")
	{
		enrollments.POST("", enrollmentController.CreateEnrollment)
		enrollments.GET("", enrollmentController.GetAllEnrollments)
		enrollments.GET("/:id", enrollmentController.GetEnrollmentByID)
		enrollments.GET("/student/:studentId", enrollmentController.GetEnrollmentsByStudent)
		enrollments.GET("/student/:studentId/gpa", enrollmentController.GetStudentGPA)
		enrollments.GET("/course/:courseId", enrollmentController.GetEnrollmentsByCourse)
		enrollments.GET("/can-enroll/:studentId/:courseId", enrollmentController.CanEnroll)
		enrollments.PUT("/:id", enrollmentController.UpdateEnrollment)
		enrollments.PATCH("/:id/grade", enrollmentController.UpdateGrade)
		enrollments.PATCH("/:id/attendance", enrollmentController.UpdateAttendance)
		enrollments.POST("/:id/withdraw", enrollmentController.WithdrawEnrollment)
		enrollments.DELETE("/:id", enrollmentController.DeleteEnrollment)
		enrollments.DELETE("/student/:studentId", enrollmentController.DeleteStudentEnrollments)
	}

	fees := api.Group("/fees")
	{
		fees.POST("", feeController.CreateFee)
		fees.GET("", feeController.GetAllFees)
		fees.GET("/:id", feeController.GetFeeByID)
		fees.GET("/student/:studentId", feeController.GetFeesByStudent)
		fees.GET("/student/:studentId/summary", feeController.GetStudentFeeSummary)
		fees.PUT("/:id", feeController.UpdateFee)
		fees.PATCH("/:id/status", feeController.UpdatePaymentStatus)
		fees.POST("/:id/payments", feeController.MakePayment)
		fees.POST("/:id/payments/full", feeController.MakeFullPayment)
		fees.DELETE("/:id", feeController.DeleteFee)
		fees.DELETE("/student/:studentId", feeController.DeleteStudentFees)
	}
}
