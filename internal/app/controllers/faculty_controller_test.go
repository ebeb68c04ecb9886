package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilokeshmewari/college-project/internal/app/models"
	"github.com/ilokeshmewari/college-project/internal/app/models/dto"
	"github.com/ilokeshmewari/college-project/internal/pkg/apperrors"
)

type stubFacultyService struct {
	createErr  error
	deleteErr  error
	lastReq    *dto.CreateFacultyRequest
	lastImage  *multipart.FileHeader
	listResult []*models.Faculty
}

func (s *stubFacultyService) CreateFaculty(_ context.Context, req *dto.CreateFacultyRequest, image *multipart.FileHeader) (*models.Faculty, error) {
	s.lastReq = req
	s.lastImage = image
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &models.Faculty{ID: 1, Name: req.Name, CreatedAt: time.Now()}, nil
}

func (s *stubFacultyService) GetFacultyByID(_ context.Context, id int64) (*models.Faculty, error) {
	for _, f := range s.listResult {
		if f.ID == id {
			return f, nil
		}
	}
	return nil, apperrors.ErrFacultyNotFound
}

func (s *stubFacultyService) ListFaculty(_ context.Context, page, size int) ([]*models.Faculty, dto.PaginationInfo, error) {
	return s.listResult, dto.PaginationInfo{CurrentPage: page, PageSize: size, TotalItems: int64(len(s.listResult)), TotalPages: 1}, nil
}

func (s *stubFacultyService) DeleteFaculty(_ context.Context, id int64) error {
	return s.deleteErr
}

func newFacultyTestRouter(svc *stubFacultyService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewFacultyController(svc, zerolog.Nop())

	router := gin.New()
	router.GET("/faculty", controller.ListFaculty)
	router.GET("/faculty/:id", controller.GetFaculty)
	router.POST("/faculty", controller.CreateFaculty)
	router.DELETE("/faculty/:id", controller.DeleteFaculty)
	return router
}

func multipartBody(t *testing.T, fields map[string]string, imageName string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if imageName != "" {
		part, err := writer.CreateFormFile("image", imageName)
		require.NoError(t, err)
		_, err = part.Write([]byte("fake image bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func TestCreateFacultyFromMultipartForm(t *testing.T) {
	svc := &stubFacultyService{}
	router := newFacultyTestRouter(svc)

	body, contentType := multipartBody(t, map[string]string{
		"name":       "Dr. Mehta",
		"department": "Physics",
	}, "mehta.jpg")

	req := httptest.NewRequest("POST", "/faculty", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, svc.lastReq)
	assert.Equal(t, "Dr. Mehta", svc.lastReq.Name)
	assert.Equal(t, "Physics", svc.lastReq.Department)
	require.NotNil(t, svc.lastImage)
	assert.Equal(t, "mehta.jpg", svc.lastImage.Filename)
}

func TestCreateFacultyWithoutImagePart(t *testing.T) {
	svc := &stubFacultyService{}
	router := newFacultyTestRouter(svc)

	body, contentType := multipartBody(t, map[string]string{"name": "Dr. Mehta"}, "")

	req := httptest.NewRequest("POST", "/faculty", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Nil(t, svc.lastImage)
}

func TestCreateFacultyRequiresName(t *testing.T) {
	svc := &stubFacultyService{}
	router := newFacultyTestRouter(svc)

	body, contentType := multipartBody(t, map[string]string{"department": "Physics"}, "")

	req := httptest.NewRequest("POST", "/faculty", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, svc.lastReq)
}

func TestCreateFacultyUploadFailure(t *testing.T) {
	svc := &stubFacultyService{createErr: apperrors.ErrImageUploadFailed}
	router := newFacultyTestRouter(svc)

	body, contentType := multipartBody(t, map[string]string{"name": "Dr. Mehta"}, "mehta.jpg")

	req := httptest.NewRequest("POST", "/faculty", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "SRV_002")
}

func TestListFacultyReturnsPage(t *testing.T) {
	svc := &stubFacultyService{
		listResult: []*models.Faculty{
			{ID: 1, Name: "Anand", CreatedAt: time.Now()},
			{ID: 2, Name: "Mehta", CreatedAt: time.Now()},
		},
	}
	router := newFacultyTestRouter(svc)

	req := httptest.NewRequest("GET", "/faculty?page=1&size=10", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data       []dto.FacultyResponse `json:"data"`
		Pagination *dto.PaginationInfo   `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "Anand", resp.Data[0].Name)
	assert.Equal(t, int64(2), resp.Pagination.TotalItems)
}

func TestGetFaculty(t *testing.T) {
	svc := &stubFacultyService{
		listResult: []*models.Faculty{{ID: 5, Name: "Dr. Mehta", CreatedAt: time.Now()}},
	}
	router := newFacultyTestRouter(svc)

	req := httptest.NewRequest("GET", "/faculty/5", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest("GET", "/faculty/99", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	req = httptest.NewRequest("GET", "/faculty/abc", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteFaculty(t *testing.T) {
	svc := &stubFacultyService{}
	router := newFacultyTestRouter(svc)

	req := httptest.NewRequest("DELETE", "/faculty/5", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	svc.deleteErr = apperrors.ErrFacultyNotFound
	req = httptest.NewRequest("DELETE", "/faculty/99", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
