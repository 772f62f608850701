package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rhydam1003/demo-erp/internal/app/controllers"
	"github.com/rhydam1003/demo-erp/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	courseController *controllers.CourseController,
	feedbackController *controllers.FeedbackController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API version group. Every API response is session- or
	// credential-scoped, so nothing under it may be cached.
	v1 := router.Group("/api/v1")
	v1.Use(middleware.NoCache())

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)
	}

	// --- Session-only routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.SessionAuth())
	{
		authenticated.GET("/auth/me", authController.Me)

		authenticated.GET("/courses", courseController.ListCourses)

		feedback := authenticated.Group("/feedback")
		{
			feedback.GET("", feedbackController.GetFeedback)
			feedback.POST("", feedbackController.SubmitFeedback)
			feedback.GET("/questions", feedbackController.GetQuestions)
			feedback.GET("/final-submit", feedbackController.GetSubmission)
			feedback.POST("/final-submit", feedbackController.FinalSubmit)
		}
	}
}
