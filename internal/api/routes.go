package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"gecos_backend/internal/api/handlers"
	"gecos_backend/internal/middleware"
	"gecos_backend/internal/service"
)

func SetupRoutes(r *gin.Engine, services *service.Services, allowOrigins []string) {
	authHandler := handlers.NewAuthHandler(services.User, services.Token)
	userHandler := handlers.NewUserHandler(services.User)
	roomHandler := handlers.NewRoomHandler(services.Room)
	reservationHandler := handlers.NewReservationHandler(services.Reservation)
	subjectHandler := handlers.NewSubjectHandler(services.Subject)

	if len(allowOrigins) > 0 {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowOrigins = allowOrigins
		corsConfig.AllowCredentials = true
		corsConfig.AllowHeaders = []string{"Authorization", "Content-Type", "Origin", "Accept"}
		r.Use(cors.New(corsConfig))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})

	requireAuth := middleware.AuthMiddleware(services.Token)
	optionalAuth := middleware.OptionalAuth(services.Token)
	requireAdmin := middleware.RequireAdmin()

	api := r.Group("/api")

	// Public routes
	{
		api.POST("/auth/login", authHandler.Login)

		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
	}

	api.POST("/auth/logout", requireAuth, authHandler.Logout)

	// Room catalog: public reads, admin-only mutations.
	rooms := api.Group("/rooms")
	{
		rooms.GET("", roomHandler.ListRooms)
		rooms.GET("/available", roomHandler.AvailableRooms)
		rooms.GET("/:id", roomHandler.GetRoom) // ?date= adds the occupancy grid

		rooms.POST("", requireAuth, requireAdmin, roomHandler.CreateRoom)
		rooms.PUT("/:id", requireAuth, requireAdmin, roomHandler.UpdateRoom)
		rooms.DELETE("/:id", requireAuth, requireAdmin, roomHandler.DeleteRoom)
	}

	// Reservations: create accepts anonymous callers when the relaxed-auth
	// policy is enabled, so it only gets optional authentication.
	reservations := api.Group("/reservations")
	{
		reservations.GET("", reservationHandler.ListReservations)
		reservations.POST("", optionalAuth, reservationHandler.CreateReservation)
		reservations.GET("/mine", requireAuth, reservationHandler.MyReservations)
		reservations.POST("/:id/cancel", requireAuth, reservationHandler.CancelReservation)
		reservations.POST("/:id/confirm", requireAuth, reservationHandler.ConfirmReservation)
	}

	// Users: authenticated reads, admin-only mutations.
	users := api.Group("/users", requireAuth)
	{
		users.GET("", userHandler.ListUsers)
		users.GET("/me", userHandler.Me)
		users.GET("/:id", userHandler.GetUser)

		users.POST("", requireAdmin, userHandler.CreateUser)
		users.POST("/instructors", requireAdmin, userHandler.CreateInstructor)
		users.PUT("/:id", requireAdmin, userHandler.UpdateUser)
		users.DELETE("/:id", requireAdmin, userHandler.DeleteUser)
	}

	// Subjects: public reads, admin-only mutations.
	subjects := api.Group("/subjects")
	{
		subjects.GET("", subjectHandler.ListSubjects)
		subjects.GET("/:id", subjectHandler.GetSubject)

		subjects.POST("", requireAuth, requireAdmin, subjectHandler.CreateSubject)
		subjects.PUT("/:id", requireAuth, requireAdmin, subjectHandler.UpdateSubject)
		subjects.DELETE("/:id", requireAuth, requireAdmin, subjectHandler.DeleteSubject)
	}
}
