package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"homeservices/internal/config"
	"homeservices/internal/database"
	"homeservices/internal/middleware"
	"homeservices/internal/modules/admin"
	"homeservices/internal/modules/auth"
	"homeservices/internal/modules/booking"
	"homeservices/internal/modules/catalog"
	"homeservices/internal/modules/provider"
	jwtsvc "homeservices/internal/pkg/jwt"
	"homeservices/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.TokenTTL)

	authService := auth.NewService(userRepo, j, cfg.Roles)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(catalogRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(bookingRepo, catalogRepo, userRepo)
	bookingHandler := booking.NewHandler(bookingService)

	providerService := provider.NewService(userRepo, catalogRepo, bookingRepo)
	providerHandler := provider.NewHandler(providerService, bookingService)

	adminService := admin.NewService(userRepo, catalogRepo, bookingRepo)
	adminHandler := admin.NewHandler(adminService, catalogService)

	r := gin.Default()
	r.Use(middleware.CORS(), middleware.RequestLogger())

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterRoutes(v1.Group("/auth"))

		protected := v1.Group("/")
		protected.Use(middleware.Auth(j, userRepo))
		{
			authHandler.RegisterProtectedRoutes(protected.Group("/auth"))

			bookingsGroup := protected.Group("/bookings")
			catalogHandler.RegisterRoutes(bookingsGroup)
			bookingHandler.RegisterRoutes(bookingsGroup)

			providerGroup := protected.Group("/provider")
			providerGroup.Use(middleware.ProviderOnly())
			providerHandler.RegisterRoutes(providerGroup)

			adminGroup := protected.Group("/admin")
			adminGroup.Use(middleware.AdminOnly())
			adminHandler.RegisterRoutes(adminGroup)
		}
	}

	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
