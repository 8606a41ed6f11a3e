package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"inspectbook/internal/config"
	"inspectbook/internal/database"
	"inspectbook/internal/domain"
	"inspectbook/internal/middleware"
	"inspectbook/internal/modules/appstate"
	"inspectbook/internal/modules/auth"
	"inspectbook/internal/modules/events"
	"inspectbook/internal/modules/inspection"
	"inspectbook/internal/modules/payment"
	"inspectbook/internal/modules/prefs"
	"inspectbook/internal/modules/profile"
	"inspectbook/internal/pkg/jwt"
	"inspectbook/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadRuntimeConfig()
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

	snapshotRepo := repository.NewSnapshotRepository(db)
	prefRepo := repository.NewPreferenceRepository(db)

	manager := appstate.New(snapshotRepo)
	manager.Init(context.Background())
	defer manager.Close()

	jwtService := jwt.New(cfg.JWTSecret, cfg.JWTTTL)

	otpSender := auth.NewConsoleSender(cfg.DevLogOTP)
	authService := auth.NewService(
		manager,
		jwtService,
		otpSender,
		cfg.OTPCodeTTL,
		cfg.OTPResendCooldown,
		cfg.OTPMaxAttempts,
		cfg.OTPDemoCode,
	)
	authHandler := auth.NewHandler(authService)

	inspectionService := inspection.NewService(manager)
	inspectionHandler := inspection.NewHandler(inspectionService)

	paymentService := payment.NewService(manager)
	paymentHandler := payment.NewHandler(paymentService)

	profileHandler := profile.NewHandler(manager)

	prefsService := prefs.NewService(prefRepo)
	prefsHandler := prefs.NewHandler(prefsService)

	hub := events.NewHub()
	defer hub.Close()
	eventsHandler := events.NewHandler(hub, jwtService, manager)

	// Every state mutation fans out to connected clients.
	manager.Subscribe(func(state domain.AppState) {
		hub.Broadcast(events.NewStateEvent(state))
	})

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		prefsHandler.RegisterRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.Auth(jwtService))
		{
			authHandler.RegisterProtectedRoutes(protected)
			inspectionHandler.RegisterRoutes(protected)
			paymentHandler.RegisterRoutes(protected)
			profileHandler.RegisterRoutes(protected)
		}
	}

	r.GET("/ws", eventsHandler.HandleWebSocket)

	log.Printf("listening on %s (env %s)", cfg.ListenAddr, cfg.AppEnv)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
