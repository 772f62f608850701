package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/rhydam1003/demo-erp/internal/app/controllers"
	"github.com/rhydam1003/demo-erp/internal/app/models"
	"github.com/rhydam1003/demo-erp/internal/app/models/dto"
	"github.com/rhydam1003/demo-erp/internal/config"
	"github.com/rhydam1003/demo-erp/internal/middleware"
	"github.com/rhydam1003/demo-erp/internal/pkg/auth"
)

type noopAuthService struct{}

func (s *noopAuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	return &dto.RegisterResponse{Message: "Registration successful"}, nil
}

func (s *noopAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*models.Student, string, error) {
	return &models.Student{ID: 1, Email: req.Email}, "session-token", nil
}

func (s *noopAuthService) GetStudent(ctx context.Context, studentID int64) (*models.Student, error) {
	return &models.Student{ID: studentID}, nil
}

type noopCourseService struct{}

func (s *noopCourseService) ListForStudent(ctx context.Context, studentID int64) (*dto.CourseListResponse, error) {
	return &dto.CourseListResponse{Courses: []dto.CourseWithStatus{}}, nil
}

type noopFeedbackService struct{}

func (s *noopFeedbackService) GetForCourse(ctx context.Context, studentID, courseID int64) (*models.Feedback, error) {
	return nil, nil
}

func (s *noopFeedbackService) Submit(ctx context.Context, studentID int64, req *dto.SubmitFeedbackRequest) (*models.Feedback, error) {
	return &models.Feedback{}, nil
}

func (s *noopFeedbackService) GetSubmission(ctx context.Context, studentID int64) (*models.FeedbackSubmission, error) {
	return nil, nil
}

func (s *noopFeedbackService) FinalSubmit(ctx context.Context, studentID int64) (*models.FeedbackSubmission, error) {
	return &models.FeedbackSubmission{}, nil
}

func (s *noopFeedbackService) Questions() *dto.QuestionsResponse {
	return &dto.QuestionsResponse{}
}

func newTestRouter() (*gin.Engine, *auth.JWTService) {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Server.Mode = "development"
	cfg.Session.CookieName = "token"

	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", TokenExpiry: time.Hour})

	router := gin.New()
	SetupRouter(router,
		controllers.NewAuthController(&noopAuthService{}, jwtService, cfg, zerolog.Nop()),
		controllers.NewCourseController(&noopCourseService{}, zerolog.Nop()),
		controllers.NewFeedbackController(&noopFeedbackService{}, zerolog.Nop()),
		middleware.NewAuthMiddleware(jwtService, "token"),
	)
	return router, jwtService
}

func assertNoCacheHeaders(t *testing.T, w *httptest.ResponseRecorder, target string) {
	t.Helper()
	assert.Equal(t, "no-store, no-cache, must-revalidate, proxy-revalidate", w.Header().Get("Cache-Control"), "Cache-Control on %s", target)
	assert.Equal(t, "no-cache", w.Header().Get("Pragma"), "Pragma on %s", target)
	assert.Equal(t, "0", w.Header().Get("Expires"), "Expires on %s", target)
	assert.Equal(t, "no-store", w.Header().Get("Surrogate-Control"), "Surrogate-Control on %s", target)
}

// Login and logout set and clear the session cookie; those responses and
// everything else under /api/v1 must never be cached, whether or not the
// route requires a session.
func TestAPIRoutesEmitNoCacheHeaders(t *testing.T) {
	router, jwtService := newTestRouter()

	token, err := jwtService.GenerateSessionToken(&models.Student{ID: 1, Name: "Asha", Email: "asha@college.edu"})
	if err != nil {
		t.Fatalf("GenerateSessionToken failed: %v", err)
	}

	cases := []struct {
		method        string
		target        string
		authenticated bool
	}{
		{http.MethodPost, "/api/v1/auth/register", false},
		{http.MethodPost, "/api/v1/auth/login", false},
		{http.MethodPost, "/api/v1/auth/logout", false},
		{http.MethodGet, "/api/v1/auth/me", true},
		{http.MethodGet, "/api/v1/courses", true},
		{http.MethodGet, "/api/v1/feedback/final-submit", true},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.target, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.target, nil)
			if tc.authenticated {
				req.AddCookie(&http.Cookie{Name: "token", Value: token})
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assertNoCacheHeaders(t, w, tc.target)
		})
	}
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
