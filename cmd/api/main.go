package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	_ "github.com/johnquangdev/mom-generator/docs"
	"github.com/johnquangdev/mom-generator/internal/adapter/handler"
	"github.com/johnquangdev/mom-generator/internal/infrastructure/cache"
	"github.com/johnquangdev/mom-generator/internal/infrastructure/external/firebase"
	httpmw "github.com/johnquangdev/mom-generator/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/mom-generator/internal/infrastructure/metrics"
	"github.com/johnquangdev/mom-generator/internal/usecase/auth"
	momuse "github.com/johnquangdev/mom-generator/internal/usecase/mom"
	pkgai "github.com/johnquangdev/mom-generator/pkg/ai"
	"github.com/johnquangdev/mom-generator/pkg/config"
	"github.com/johnquangdev/mom-generator/pkg/jwt"
	pkgvalidator "github.com/johnquangdev/mom-generator/pkg/validator"
)

var contentSecurityPolicy = strings.Join([]string{
	"default-src 'self'",
	"connect-src 'self' https://identitytoolkit.googleapis.com https://securetoken.googleapis.com https://*.firebaseio.com https://oauth2.googleapis.com wss://*.firebaseio.com",
	"script-src 'self' 'unsafe-inline'",
	"style-src 'self' 'unsafe-inline'",
	"img-src 'self' data: https:",
	"font-src 'self' https: data:",
}, "; ")

// @title           MOM Generator API
// @version         1.0
// @description     Turns free-form meeting notes into structured minutes of meeting

// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the Firebase ID token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	e := echo.New()
	e.HideBanner = true

	validator := pkgvalidator.New()
	e.Validator = validator

	errHandler := handler.NewErrorHandler(logger, cfg.IsDevelopment())
	e.HTTPErrorHandler = errHandler.HTTPErrorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("request_id", v.RequestID),
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			logger.Info("request", fields...)
			return nil
		},
	}))
	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "SAMEORIGIN",
		HSTSMaxAge:            15552000,
		ContentSecurityPolicy: contentSecurityPolicy,
		ReferrerPolicy:        "no-referrer",
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))
	e.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	// Authentication
	certStore := cache.NewMemoryStore()
	defer certStore.Close()
	certs := firebase.NewCertSource(cfg.Firebase.CertsURL, certStore, logger)
	verifier := jwt.NewVerifier(cfg.Firebase.ProjectID, certs)

	var revocation auth.RevocationChecker
	if cfg.Firebase.CheckRevoked {
		revocation = firebase.NewAccountChecker(
			context.Background(),
			cfg.Firebase.ProjectID,
			cfg.Firebase.ClientEmail,
			cfg.Firebase.PrivateKey,
			logger,
		)
	}
	authenticator := auth.NewAuthenticator(verifier, revocation, cfg.Auth.AllowlistEmails, logger)

	// Generation pipeline
	chatClient, err := pkgai.NewChatClient(&cfg.LLM)
	if err != nil {
		logger.Fatal("Failed to initialize LLM client", zap.Error(err))
	}
	recorder := metrics.NewRecorder(nil)
	momService := momuse.NewService(
		momuse.NewRequestValidator(validator),
		momuse.NewGenerator(chatClient, momuse.GeneratorConfig{
			Model:       cfg.LLM.Model,
			MaxTokens:   cfg.LLM.MaxTokens,
			Temperature: cfg.LLM.Temperature,
		}, logger),
		momuse.NewFormatter(),
		recorder,
		logger,
	)

	router := handler.NewRouter(
		cfg,
		handler.NewMOM(momService, errHandler, logger),
		httpmw.EchoAuth(authenticator),
		recorder.Handler(),
	)
	router.Setup(e)

	go func() {
		addr := cfg.GetServerAddr()
		logger.Info("MOM Generator server starting",
			zap.String("addr", addr),
			zap.String("environment", cfg.Server.Environment),
			zap.Strings("cors_origin", cfg.Server.AllowedOrigins),
			zap.String("llm_provider", chatClient.Provider()),
			zap.String("model", cfg.LLM.Model),
			zap.Bool("check_revoked", cfg.Firebase.CheckRevoked),
		)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	sig := <-quit

	logger.Info("signal received: closing HTTP server", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
		return
	}

	logger.Info("HTTP server closed")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
