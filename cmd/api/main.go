package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Lcsmrct/hennalash-backend/internal/adminauth"
	"github.com/Lcsmrct/hennalash-backend/internal/appointment"
	"github.com/Lcsmrct/hennalash-backend/internal/auth"
	"github.com/Lcsmrct/hennalash-backend/internal/cache"
	"github.com/Lcsmrct/hennalash-backend/internal/clientportal"
	"github.com/Lcsmrct/hennalash-backend/internal/config"
	"github.com/Lcsmrct/hennalash-backend/internal/contact"
	"github.com/Lcsmrct/hennalash-backend/internal/db"
	"github.com/Lcsmrct/hennalash-backend/internal/instagram"
	"github.com/Lcsmrct/hennalash-backend/internal/middleware"
	"github.com/Lcsmrct/hennalash-backend/internal/notifications"
	"github.com/Lcsmrct/hennalash-backend/internal/review"
	"github.com/Lcsmrct/hennalash-backend/internal/slot"
	"github.com/Lcsmrct/hennalash-backend/internal/transport"
	"github.com/Lcsmrct/hennalash-backend/internal/validation"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Error("mongo connection failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("mongo connected")
	defer client.Disconnect(context.Background())

	if err := db.EnsureIndexes(ctx, cols); err != nil {
		logger.Error("index creation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var cacheStore cache.Cache = cache.NewNoop()
	if cfg.RedisURL != "" || cfg.RedisAddr != "" {
		var redisCache *cache.RedisCache
		var err error
		if cfg.RedisURL != "" {
			redisCache, err = cache.NewRedisFromURL(cfg.RedisURL)
		} else {
			redisCache = cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		}
		if err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if err := redisCache.Ping(ctx); err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if cfg.RedisURL != "" {
			logger.Info("redis connected (url)")
		} else {
			logger.Info("redis connected", slog.String("addr", cfg.RedisAddr))
		}
		cacheStore = redisCache
	}

	var jwtManager *auth.Manager
	if cfg.JWTSecret != "" {
		jwtManager = &auth.Manager{
			Secret:     []byte(cfg.JWTSecret),
			AccessTTL:  time.Duration(cfg.AccessTTLMinutes) * time.Minute,
			RefreshTTL: time.Duration(cfg.RefreshTTLMinutes) * time.Minute,
			Issuer:     "hennalash-backend",
		}
	}

	brevo := notifications.NewBrevoClient(cfg.BrevoAPIKey, cfg.BrevoSenderEmail, cfg.BrevoSenderName, cfg.BrevoSandbox)
	var mailer appointment.Mailer
	var dispatch appointment.Dispatcher
	if brevo == nil {
		logger.Info("brevo mailer disabled")
	} else {
		logger.Info("brevo mailer enabled", slog.String("sender", cfg.BrevoSenderEmail), slog.Bool("sandbox", cfg.BrevoSandbox))
		dispatcher := notifications.NewDispatcher(logger, 64)
		defer dispatcher.Close()
		mailer = brevo
		dispatch = dispatcher
	}

	val := validation.New()
	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second

	appointmentRepo := appointment.NewRepository(cols.Appointments)
	appointmentService := appointment.NewService(appointmentRepo, cfg.Timezone, mailer, dispatch, cfg.OperatorEmail)
	appointmentHandler := appointment.NewHandler(appointmentService, val, logger)

	slotRepo := slot.NewRepository(cols.TimeSlots)
	slotService := slot.NewService(slotRepo, cfg.Timezone)
	slotHandler := slot.NewHandler(slotService, val, logger, cacheStore, cacheTTL)

	reviewRepo := review.NewRepository(cols.Reviews)
	reviewService := review.NewService(reviewRepo, cfg.Timezone)
	reviewHandler := review.NewHandler(reviewService, val, logger)

	contactRepo := contact.NewRepository(cols.ContactMessages)
	contactService := contact.NewService(contactRepo, cfg.Timezone)
	contactHandler := contact.NewHandler(contactService, val, logger)

	portalService := clientportal.NewService(appointmentService)
	portalHandler := clientportal.NewHandler(portalService, val, logger)

	var instagramFetcher instagram.Fetcher
	if c := instagram.NewClient(cfg.InstagramAppID, cfg.InstagramAppSecret, cfg.InstagramRedirectURI); c != nil {
		instagramFetcher = c
	} else {
		logger.Info("instagram integration disabled")
	}
	instagramRepo := instagram.NewRepository(cols.InstagramTokens)
	instagramService := instagram.NewService(instagramRepo, instagramFetcher)
	instagramHandler := instagram.NewHandler(instagramService, val, logger)

	userRepo := adminauth.NewRepository(cols.Users)
	adminHandler := adminauth.NewHandler(userRepo, jwtManager, val, logger, cfg.AdminUser, cfg.AdminPassword, cfg.CookieSecure)

	r := chi.NewRouter()
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.FrontendOrigins))
	r.Use(chiMiddleware.Timeout(30 * time.Second))

	window := time.Duration(cfg.RateLimitWindowSec) * time.Second
	appointmentsLimiter := middleware.NewRateLimiter(cfg.RateLimitAppointments, window)
	contactLimiter := middleware.NewRateLimiter(cfg.RateLimitContact, window)
	reviewsLimiter := middleware.NewRateLimiter(cfg.RateLimitReviews, window)

	adminAuth := middleware.AdminAuth(cfg.AdminAPIKey, jwtManager)

	r.Route("/api", func(api chi.Router) {
		api.Get("/", func(w http.ResponseWriter, r *http.Request) {
			transport.WriteJSON(w, http.StatusOK, map[string]string{"message": "HennaLash API - Réservations henné"})
		})

		api.Get("/services", appointmentHandler.GetServices)
		api.With(appointmentsLimiter.Middleware).Post("/appointments", appointmentHandler.Create)
		api.Get("/appointments/{id}", appointmentHandler.Get)

		api.Get("/available-slots", slotHandler.List)

		api.Get("/reviews", reviewHandler.List)
		api.With(reviewsLimiter.Middleware).Post("/reviews", reviewHandler.Create)

		api.With(contactLimiter.Middleware).Post("/contact", contactHandler.Create)

		api.Post("/client/login", portalHandler.Login)
		api.Get("/client/appointments", portalHandler.ListAppointments)

		api.Get("/instagram/posts", instagramHandler.Posts)
		api.Get("/instagram/auth-url", instagramHandler.AuthURL)

		api.Route("/admin", func(admin chi.Router) {
			admin.Post("/login", adminHandler.Login)
			admin.Post("/refresh", adminHandler.Refresh)
			admin.Post("/logout", adminHandler.Logout)
		})

		// Important (chi): middlewares must be attached before defining routes,
		// so the operator surface lives in its own sub-router.
		api.Group(func(protected chi.Router) {
			protected.Use(adminAuth)
			protected.Get("/appointments", appointmentHandler.List)
			protected.Put("/appointments/{id}/status", appointmentHandler.UpdateStatus)
			protected.Post("/available-slots", slotHandler.Create)
			protected.Put("/available-slots/{id}", slotHandler.UpdateAvailability)
			protected.Delete("/available-slots/{id}", slotHandler.Delete)
			protected.Put("/reviews/{id}", reviewHandler.UpdatePublication)
			protected.Delete("/reviews/{id}", reviewHandler.Delete)
			protected.Get("/contact", contactHandler.List)
			protected.Post("/instagram/auth", instagramHandler.Auth)
			protected.Delete("/instagram/token", instagramHandler.Revoke)
		})
	})

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: r,
	}

	go func() {
		logger.Info("server started", slog.String("addr", cfg.ServerAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
	}
}
