package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/studenthub/backend/internal/app/controllers"
	"github.com/studenthub/backend/internal/app/models"
	"github.com/studenthub/backend/internal/app/models/dto"
	"github.com/studenthub/backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	achievementController *controllers.AchievementController,
	eventController *controllers.EventController,
	portfolioController *controllers.PortfolioController,
	dashboardController *controllers.DashboardController,
	institutionController *controllers.InstitutionController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// Public routes
	v1.GET("/institutions", institutionController.List)

	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// Authenticated routes
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)
		authenticated.GET("/auth/profile", authController.GetProfile)
		authenticated.GET("/dashboard", dashboardController.Get)

		achievements := authenticated.Group("/achievements")
		{
			achievements.GET("", achievementController.List)

			achievementsStudent := achievements.Group("")
			achievementsStudent.Use(authMiddleware.RoleRequired(models.RoleStudent))
			{
				achievementsStudent.POST("", achievementController.Create)
			}

			achievementsFaculty := achievements.Group("")
			achievementsFaculty.Use(authMiddleware.RoleRequired(models.RoleFaculty))
			{
				achievementsFaculty.POST("/:id/verify", achievementController.Verify)
			}
		}

		events := authenticated.Group("/events")
		{
			events.GET("", eventController.List)

			eventsFaculty := events.Group("")
			eventsFaculty.Use(authMiddleware.RoleRequired(models.RoleFaculty))
			{
				eventsFaculty.POST("", eventController.Create)
				eventsFaculty.PUT("/:id", eventController.Update)
			}

			eventsStudent := events.Group("")
			eventsStudent.Use(authMiddleware.RoleRequired(models.RoleStudent))
			{
				eventsStudent.POST("/:id/register", eventController.Register)
			}
		}

		portfolio := authenticated.Group("/portfolio")
		portfolio.Use(authMiddleware.RoleRequired(models.RoleStudent))
		{
			portfolio.POST("", portfolioController.Generate)
			portfolio.GET("", portfolioController.Get)
			portfolio.PUT("", portfolioController.Update)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewAPIResponse(gin.H{"status": "ok"}))
	})
}
