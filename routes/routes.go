package routes

import (
	"github.com/HarshwardhanPatil07/Piyush-Lifespaces-Pvt-Ltd-sub000/handlers"
	"github.com/HarshwardhanPatil07/Piyush-Lifespaces-Pvt-Ltd-sub000/middleware"
	"github.com/HarshwardhanPatil07/Piyush-Lifespaces-Pvt-Ltd-sub000/models"
	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handlers.HealthCheck)

	authController := handlers.NewAuthController()
	propertyController := handlers.NewPropertyController()
	inquiryController := handlers.NewInquiryController()
	contactController := handlers.NewContactController()
	reviewController := handlers.NewReviewController()
	homeController := handlers.NewHomeController()
	userController := handlers.NewUserController()
	statsController := handlers.NewStatsController()

	api := e.Group("/api")

	// Public surface consumed by the marketing site.
	api.POST("/auth/login", authController.Login)
	api.GET("/properties", propertyController.ListProperties)
	api.GET("/properties/:id", propertyController.GetProperty)
	api.POST("/inquiries", inquiryController.CreateInquiry)
	api.POST("/contact", contactController.CreateContact)
	api.GET("/reviews", reviewController.ListReviews)
	api.POST("/reviews", reviewController.CreateReview)
	api.PUT("/reviews/:id/helpful", reviewController.MarkHelpful)
	api.GET("/home", homeController.GetHomeContent)

	// Back-office surface: any authenticated staff role.
	staff := api.Group("", middleware.JWTMiddleware())
	staff.GET("/auth/me", authController.Me)

	staff.POST("/properties", propertyController.CreateProperty)
	staff.PUT("/properties/:id", propertyController.UpdateProperty)
	staff.DELETE("/properties/:id", propertyController.DeleteProperty)

	staff.GET("/inquiries", inquiryController.ListInquiries)
	staff.GET("/inquiries/:id", inquiryController.GetInquiry)
	staff.PUT("/inquiries/:id", inquiryController.UpdateInquiry)
	staff.DELETE("/inquiries/:id", inquiryController.DeleteInquiry)

	staff.GET("/contact", contactController.ListContacts)
	staff.GET("/contact/:id", contactController.GetContact)
	staff.PUT("/contact/:id", contactController.UpdateContact)

	staff.GET("/reviews/:id", reviewController.GetReview)
	staff.PUT("/reviews/:id", reviewController.UpdateReview)
	staff.DELETE("/reviews/:id", reviewController.DeleteReview)

	// Admin-only surface.
	admin := api.Group("/admin", middleware.JWTMiddleware(), middleware.RequireRole(models.RoleAdmin))
	admin.GET("/stats", statsController.GetDashboardStats)
	admin.GET("/properties", propertyController.ListAllProperties)

	admin.GET("/home-slides", homeController.ListSlides)
	admin.POST("/home-slides", homeController.CreateSlide)
	admin.PUT("/home-slides/:id", homeController.UpdateSlide)
	admin.DELETE("/home-slides/:id", homeController.DeleteSlide)

	admin.GET("/home-video", homeController.ListVideos)
	admin.POST("/home-video", homeController.CreateVideo)
	admin.PUT("/home-video/:id", homeController.UpdateVideo)
	admin.DELETE("/home-video/:id", homeController.DeleteVideo)

	admin.GET("/featured-reviews", homeController.ListFeaturedReviews)
	admin.POST("/featured-reviews", homeController.CreateFeaturedReview)
	admin.PUT("/featured-reviews/:id", homeController.UpdateFeaturedReview)
	admin.DELETE("/featured-reviews/:id", homeController.DeleteFeaturedReview)

	users := api.Group("/users", middleware.JWTMiddleware(), middleware.RequireRole(models.RoleAdmin))
	users.GET("", userController.ListUsers)
	users.GET("/:id", userController.GetUser)
	users.POST("", userController.CreateUser)
	users.PUT("/:id", userController.UpdateUser)
	users.DELETE("/:id", userController.DeleteUser)
}
