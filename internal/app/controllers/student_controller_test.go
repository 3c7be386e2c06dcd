package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/studentms/internal/app/controllers"
	"github.com/campushq/studentms/internal/app/models"
	"github.com/campushq/studentms/internal/app/models/dto"
	"github.com/campushq/studentms/internal/pkg/apperrors"
)

// stubStudentService scripts the search path; the rest answer not found
type stubStudentService struct {
	searchFn func(ctx context.Context, keyword string) ([]*models.Student, error)
}

func (s *stubStudentService) Create(context.Context, dto.CreateStudentRequest) (*models.Student, error) {
	return nil, apperrors.ErrStudentNotFound
}
func (s *stubStudentService) GetByID(context.Context, int64) (*models.Student, error) {
	return nil, apperrors.ErrStudentNotFound
}
func (s *stubStudentService) GetByStudentNumber(context.Context, string) (*models.Student, error) {
	return nil, apperrors.ErrStudentNotFound
}
func (s *stubStudentService) GetByEmail(context.Context, string) (*models.Student, error) {
	return nil, apperrors.ErrStudentNotFound
}
func (s *stubStudentService) GetAll(context.Context) ([]*models.Student, error) { return nil, nil }
func (s *stubStudentService) GetByDepartment(context.Context, int64) ([]*models.Student, error) {
	return nil, nil
}
func (s *stubStudentService) GetByStatus(context.Context, string) ([]*models.Student, error) {
	return nil, nil
}

func (s *stubStudentService) Search(ctx context.Context, keyword string) ([]*models.Student, error) {
	return s.searchFn(ctx, keyword)
}

func (s *stubStudentService) Filter(context.Context, dto.StudentFilter) ([]*models.Student, error) {
	return nil, nil
}
func (s *stubStudentService) GetWithMinGPA(context.Context, float64) ([]*models.Student, error) {
	return nil, nil
}
func (s *stubStudentService) Update(context.Context, int64, dto.UpdateStudentRequest) (*models.Student, error) {
	return nil, apperrors.ErrStudentNotFound
}
func (s *stubStudentService) UpdateStatus(context.Context, int64, string) error {
	return apperrors.ErrStudentNotFound
}
func (s *stubStudentService) Activate(context.Context, int64) error {
	return apperrors.ErrStudentNotFound
}
func (s *stubStudentService) Deactivate(context.Context, int64) error {
	return apperrors.ErrStudentNotFound
}
func (s *stubStudentService) Delete(context.Context, int64) error {
	return apperrors.ErrStudentNotFound
}

func newStudentRouter(stub *stubStudentService) *gin.Engine {
	controller := controllers.NewStudentController(stub)
	router := gin.New()
	router.GET("/api/students/search", controller.SearchStudents)
	return router
}

func getPath(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestStudentController_SearchStudents(t *testing.T) {
	match := &models.Student{ID: 3, StudentNumber: "S2025003", FirstName: "Priya", LastName: "Nair"}

	newStub := func(captured *string) *stubStudentService {
		return &stubStudentService{
			searchFn: func(_ context.Context, keyword string) ([]*models.Student, error) {
				*captured = keyword
				return []*models.Student{match}, nil
			},
		}
	}

	t.Run("searches by the keyword parameter", func(t *testing.T) {
		var captured string
		router := newStudentRouter(newStub(&captured))

		w := getPath(t, router, "/api/students/search?keyword=priya")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "priya", captured)

		var response struct {
			Data []models.Student `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response.Data, 1)
		assert.Equal(t, "S2025003", response.Data[0].StudentNumber)
	})

	t.Run("accepts q as an alias", func(t *testing.T) {
		var captured string
		router := newStudentRouter(newStub(&captured))

		w := getPath(t, router, "/api/students/search?q=nair")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "nair", captured)
	})

	t.Run("empty keyword lists all students", func(t *testing.T) {
		var captured string
		router := newStudentRouter(newStub(&captured))

		w := getPath(t, router, "/api/students/search")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "", captured)
	})
}
