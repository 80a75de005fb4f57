package routes

import (
	"os"
	"strings"

	"glamour-salon-backend/config"
	"glamour-salon-backend/controllers"
	"glamour-salon-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	origins := []string{"http://localhost:3000"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	// Public catalogue and marketing endpoints
	public := r.Group("/api")
	{
		public.GET("/services", controllers.ListServices)
		public.GET("/services/:id", controllers.GetService)
		public.GET("/staff", controllers.ListStaff)
		public.GET("/testimonials", controllers.ListTestimonials)
		public.POST("/contact", controllers.SubmitContact)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Booking routes
		bookings := api.Group("/bookings")
		{
			bookings.POST("", controllers.CreateBooking)
			bookings.GET("", controllers.MyAppointments)
			bookings.POST("/:id/cancel", controllers.CancelAppointment)
			bookings.POST("/:id/payment", controllers.PayAppointment)
		}

		// Cart routes
		cart := api.Group("/cart")
		{
			cart.GET("", controllers.GetCart)
			cart.POST("", controllers.AddToCart)
			cart.DELETE("/:serviceId", controllers.RemoveFromCart)
		}

		// Favourites (saved list) routes
		favourites := api.Group("/favourites")
		{
			favourites.GET("", controllers.ListFavourites)
			favourites.POST("", controllers.AddFavourite)
			favourites.DELETE("/:serviceId", controllers.RemoveFavourite)
		}

		// Saved card routes (demo)
		cards := api.Group("/cards")
		{
			cards.GET("", controllers.ListCards)
			cards.POST("", controllers.AddCard)
			cards.POST("/:id/default", controllers.SetDefaultCard)
			cards.DELETE("/:id", controllers.RemoveCard)
		}

		// Profile routes
		profile := api.Group("/profile")
		{
			profile.GET("", controllers.GetProfile)
			profile.PUT("", controllers.UpdateProfile)
		}

		api.POST("/feedback", controllers.SubmitFeedback)
	}

	// Management panel
	admin := r.Group("/admin")
	{
		admin.POST("/login", controllers.AdminLogin)

		admin.Use(utils.AdminMiddleware())
		admin.GET("/dashboard", controllers.GetAdminDashboard)

		admin.GET("/services", controllers.AdminListServices)
		admin.POST("/services", controllers.CreateService)
		admin.PUT("/services/:id", controllers.UpdateService)
		admin.DELETE("/services/:id", controllers.DeleteService)
		admin.GET("/locations/suggest", controllers.SuggestLocations)

		admin.GET("/staff", controllers.AdminListStaff)
		admin.POST("/staff", controllers.CreateStaff)
		admin.PUT("/staff/:id", controllers.UpdateStaff)
		admin.DELETE("/staff/:id", controllers.DeleteStaff)

		admin.GET("/appointments", controllers.AdminListAppointments)
		admin.PUT("/appointments/:id/status", controllers.UpdateAppointmentStatus)
		admin.DELETE("/appointments/:id", controllers.AdminDeleteAppointment)

		admin.GET("/payments", controllers.AdminListPayments)
	}

	return r
}
