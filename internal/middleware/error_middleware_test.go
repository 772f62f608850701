package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/rhydam1003/demo-erp/internal/pkg/apperrors"
)

func TestHandleAPIErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", apperrors.ErrValidationFailed, http.StatusBadRequest, "VAL_001"},
		{"wrapped validation keeps message", apperrors.NewCustomError(apperrors.ErrValidationFailed, "every rating must be between 1 and 5"), http.StatusBadRequest, "VAL_001"},
		{"incomplete feedback", apperrors.ErrIncompleteFeedback, http.StatusBadRequest, "FDB_001"},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, "AUTH_001"},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized, "AUTH_003"},
		{"student not found", apperrors.ErrStudentNotFound, http.StatusNotFound, "RES_001"},
		{"course not found", apperrors.ErrCourseNotFound, http.StatusNotFound, "RES_001"},
		{"feedback locked", apperrors.ErrFeedbackLocked, http.StatusConflict, "FDB_002"},
		{"duplicate student", apperrors.ErrStudentAlreadyExists, http.StatusConflict, "RES_002"},
		{"wrapped sentinel", fmt.Errorf("saving: %w", apperrors.ErrFeedbackLocked), http.StatusConflict, "FDB_002"},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, "SRV_001"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleAPIError(c, tc.err)

			assert.Equal(t, tc.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.wantCode)
		})
	}
}

func TestHandleAPIErrorCustomMessageSurfaces(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)

	HandleAPIError(c, apperrors.NewCustomError(apperrors.ErrValidationFailed, "courseAnswers must have exactly 8 ratings"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "courseAnswers must have exactly 8 ratings")
}
