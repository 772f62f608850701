// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rhydam1003/demo-erp/internal/app/models/dto"
	"github.com/rhydam1003/demo-erp/internal/app/services"
	"github.com/rhydam1003/demo-erp/internal/config"
	"github.com/rhydam1003/demo-erp/internal/middleware"
	"github.com/rhydam1003/demo-erp/internal/pkg/auth"
)

// AuthController handles registration, login and session management
type AuthController struct {
	authService services.AuthService
	jwtService  *auth.JWTService
	config      *config.Config
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, jwtService *auth.JWTService, cfg *config.Config, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		jwtService:  jwtService,
		config:      cfg,
		logger:      logger,
	}
}

// setSessionCookie writes the signed session token as an httpOnly cookie.
// Secure is enabled only in production so local development over plain
// HTTP keeps working.
func (c *AuthController) setSessionCookie(ctx *gin.Context, token string, maxAge int) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(
		c.config.Session.CookieName,
		token,
		maxAge,
		"/",
		"",
		c.config.IsProduction(),
		true,
	)
}

// Register handles student registration
// @Summary Register a new student
// @Description Creates a student account. Email and roll number must be unique. Registration does not start a session; log in afterwards.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Student registration information"
// @Success 201 {object} dto.APIResponse{data=dto.RegisterResponse} "Student registered"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 409 {object} dto.ErrorResponse "Email or roll number already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid registration request payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	registerResponse, err := c.authService.Register(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Failed to register student")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Str("email", req.Email).
		Int64("studentID", registerResponse.Student.ID).
		Msg("Student registered")

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data: registerResponse,
	})
}

// Login handles student login
// @Summary Log in
// @Description Verifies credentials and starts a session by setting a signed httpOnly cookie. Wrong email and wrong password produce the same 401.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse} "Session started"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid login request payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, token, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.setSessionCookie(ctx, token, int(c.jwtService.TokenExpiry().Seconds()))

	c.logger.Info().
		Int64("studentID", student.ID).
		Str("email", student.Email).
		Msg("Student logged in")

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.LoginResponse{Student: dto.NewStudentProfile(student)},
	})
}

// Logout handles session termination
// @Summary Log out
// @Description Clears the session cookie. The endpoint succeeds whether or not a session existed.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Session cleared"
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	c.setSessionCookie(ctx, "", -1)

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.SuccessResponse{Message: "Logged out successfully"},
	})
}

// Me returns the authenticated student's profile
// @Summary Current student profile
// @Description Returns the profile of the student bound to the session cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.MeResponse} "Student profile"
// @Failure 401 {object} dto.ErrorResponse "Not authenticated"
// @Failure 404 {object} dto.ErrorResponse "Student no longer exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	studentID, ok := middleware.GetStudentID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Not authenticated")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.authService.GetStudent(ctx.Request.Context(), studentID)
	if err != nil {
		c.logger.Warn().Err(err).Int64("studentID", studentID).Msg("Failed to load student profile")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.MeResponse{Student: dto.NewStudentProfile(student)},
	})
}
