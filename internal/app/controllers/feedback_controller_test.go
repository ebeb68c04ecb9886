package controllers

import (
	"bytes"
	"context"
	"encoding/json"
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
	"github.com/ilokeshmewari/college-project/internal/middleware"
	"github.com/ilokeshmewari/college-project/internal/pkg/apperrors"
)

// stubFeedbackService records the arguments of the last call and returns
// canned results.
type stubFeedbackService struct {
	submitErr    error
	lastEmail    string
	lastReq      *dto.SubmitFeedbackRequest
	listFeedback []*models.Feedback
	listErr      error
}

func (s *stubFeedbackService) SubmitFeedback(_ context.Context, userEmail string, req *dto.SubmitFeedbackRequest) (*models.Feedback, error) {
	s.lastEmail = userEmail
	s.lastReq = req
	if s.submitErr != nil {
		return nil, s.submitErr
	}
	return &models.Feedback{
		ID:          1,
		FacultyID:   req.FacultyID,
		FacultyName: "Dr. Sharma",
		UserEmail:   userEmail,
		Rating:      req.Rating,
		CreatedAt:   time.Now(),
	}, nil
}

func (s *stubFeedbackService) ListByFaculty(_ context.Context, facultyID int64, page, size int) ([]*models.Feedback, dto.PaginationInfo, error) {
	if s.listErr != nil {
		return nil, dto.PaginationInfo{}, s.listErr
	}
	return s.listFeedback, dto.PaginationInfo{CurrentPage: page, PageSize: size, TotalItems: int64(len(s.listFeedback)), TotalPages: 1}, nil
}

// sessionFor injects the context values the auth middleware would set
func sessionFor(userID int64, email string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserIDKey, userID)
		c.Set(middleware.ContextEmailKey, email)
		c.Next()
	}
}

func newFeedbackTestRouter(svc *stubFeedbackService, session gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewFeedbackController(svc, zerolog.Nop())

	router := gin.New()
	group := router.Group("")
	if session != nil {
		group.Use(session)
	}
	group.POST("/feedback", controller.SubmitFeedback)
	group.GET("/faculty/:id/feedback", controller.ListFacultyFeedback)
	return router
}

func jsonBody(t *testing.T, payload interface{}) *bytes.Reader {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	return bytes.NewReader(body)
}

func postJSON(router *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSubmitFeedbackUsesSessionEmail(t *testing.T) {
	svc := &stubFeedbackService{}
	router := newFeedbackTestRouter(svc, sessionFor(7, "Student@College.EDU"))

	rec := postJSON(router, "/feedback", dto.SubmitFeedbackRequest{FacultyID: 3, Rating: 4})

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Student@College.EDU", svc.lastEmail)
	assert.Equal(t, int64(3), svc.lastReq.FacultyID)
}

func TestSubmitFeedbackWithoutSession(t *testing.T) {
	svc := &stubFeedbackService{}
	router := newFeedbackTestRouter(svc, nil)

	rec := postJSON(router, "/feedback", dto.SubmitFeedbackRequest{FacultyID: 3, Rating: 4})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, svc.lastReq)
}

func TestSubmitFeedbackErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"no faculty selected", apperrors.ErrNoFacultySelected, http.StatusBadRequest},
		{"faculty missing", apperrors.ErrFacultyNotFound, http.StatusNotFound},
		{"storage broken", apperrors.ErrImageUploadFailed, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubFeedbackService{submitErr: tt.serviceErr}
			router := newFeedbackTestRouter(svc, sessionFor(7, "student@college.edu"))

			rec := postJSON(router, "/feedback", dto.SubmitFeedbackRequest{FacultyID: 3, Rating: 4})
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestSubmitFeedbackRejectsMalformedBody(t *testing.T) {
	svc := &stubFeedbackService{}
	router := newFeedbackTestRouter(svc, sessionFor(7, "student@college.edu"))

	req := httptest.NewRequest("POST", "/feedback", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListFacultyFeedback(t *testing.T) {
	svc := &stubFeedbackService{
		listFeedback: []*models.Feedback{
			{ID: 2, FacultyID: 3, FacultyName: "Dr. Sharma", Rating: 5, CreatedAt: time.Now()},
			{ID: 1, FacultyID: 3, FacultyName: "Dr. Sharma", Rating: 4, CreatedAt: time.Now().Add(-time.Hour)},
		},
	}
	router := newFeedbackTestRouter(svc, sessionFor(1, "admin@college.edu"))

	req := httptest.NewRequest("GET", "/faculty/3/feedback?page=1&size=10", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data       []dto.FeedbackResponse `json:"data"`
		Pagination *dto.PaginationInfo    `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, int64(2), resp.Pagination.TotalItems)
}

func TestListFacultyFeedbackRejectsBadID(t *testing.T) {
	svc := &stubFeedbackService{}
	router := newFeedbackTestRouter(svc, sessionFor(1, "admin@college.edu"))

	req := httptest.NewRequest("GET", "/faculty/abc/feedback", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
