package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ilokeshmewari/college-project/internal/app/controllers"
	"github.com/ilokeshmewari/college-project/internal/app/models"
	"github.com/ilokeshmewari/college-project/internal/app/models/dto"
	"github.com/ilokeshmewari/college-project/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	profileController *controllers.ProfileController,
	facultyController *controllers.FacultyController,
	feedbackController *controllers.FeedbackController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
		auth.POST("/logout", authController.Logout)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Profile routes (own profile only)
		profile := authenticated.Group("/profile")
		{
			profile.GET("", profileController.GetProfile)
			profile.PUT("", profileController.SaveProfile)
		}

		// Faculty directory routes
		faculty := authenticated.Group("/faculty")
		{
			faculty.GET("", facultyController.ListFaculty)
			faculty.GET("/:id", facultyController.GetFaculty)

			// Admin-only routes within faculty
			facultyAdminProtected := faculty.Group("")
			facultyAdminProtected.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
			{
				facultyAdminProtected.POST("", facultyController.CreateFaculty)
				facultyAdminProtected.DELETE("/:id", facultyController.DeleteFaculty)
				facultyAdminProtected.GET("/:id/feedback", feedbackController.ListFacultyFeedback)
			}
		}

		// Feedback submission (any authenticated user)
		authenticated.POST("/feedback", feedbackController.SubmitFeedback)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
