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

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"

	"github.com/artashes-tumo/portfolio-hub/internal/http/docs"
	"github.com/artashes-tumo/portfolio-hub/internal/http/health"
	"github.com/artashes-tumo/portfolio-hub/internal/http/v1/routes"
	"github.com/artashes-tumo/portfolio-hub/internal/platform/auth"
	"github.com/artashes-tumo/portfolio-hub/internal/platform/firebase"
	applog "github.com/artashes-tumo/portfolio-hub/internal/platform/logging"
	appmiddleware "github.com/artashes-tumo/portfolio-hub/internal/platform/middleware"
	"github.com/artashes-tumo/portfolio-hub/internal/platform/respond"
	"github.com/artashes-tumo/portfolio-hub/internal/platform/validate"
	"github.com/artashes-tumo/portfolio-hub/internal/service/portfolio"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

// directoryTTL bounds how stale the search snapshot may get; writes
// invalidate it immediately.
const directoryTTL = 5 * time.Minute

func main() {
	ctx := context.Background()

	firebaseProjectID := os.Getenv("FIREBASE_PROJECT_ID")
	if firebaseProjectID == "" {
		if os.Getenv("APP_ENVIRONMENT") == "development" {
			firebaseProjectID = "demo-test-project"
			applog.LogWarn(ctx, "using demo-test-project for local development")
		} else {
			applog.LogFatal(ctx, "FIREBASE_PROJECT_ID environment variable is required", nil)
		}
	}

	webAPIKey := os.Getenv("FIREBASE_WEB_API_KEY")
	if webAPIKey == "" {
		if os.Getenv("FIREBASE_AUTH_EMULATOR_HOST") != "" {
			webAPIKey = "fake-api-key"
		} else {
			applog.LogFatal(ctx, "FIREBASE_WEB_API_KEY environment variable is required", nil)
		}
	}

	firebaseClients, err := firebase.InitializeClients(ctx, firebase.Config{
		ProjectID: firebaseProjectID,
	})
	if err != nil {
		applog.LogFatal(ctx, "firebase init failed", err)
	}
	defer func() {
		if closeErr := firebaseClients.Close(); closeErr != nil {
			applog.LogError(ctx, "firebase close error", closeErr)
		}
	}()

	verifier := auth.NewFirebaseVerifier(firebaseClients.Auth)
	passwords := auth.NewIdentityToolkitClient(webAPIKey)
	accounts := auth.NewFirebaseAccounts(firebaseClients.Auth)
	store := portfolio.NewFirestoreStore(firebaseClients.Firestore)
	directory := portfolio.NewDirectory(store, directoryTTL)

	e := echo.New()
	e.Validator = validate.New()
	e.HTTPErrorHandler = respond.NewHTTPErrorHandler()
	e.IPExtractor = echo.ExtractIPFromRealIPHeader()
	e.Logger = applog.Logger()

	e.Use(
		appmiddleware.Security("/api-docs"),
		appmiddleware.Vary(),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		middleware.BodyLimit(1<<20),
		applog.RequestLogger(),
		applog.AccessLogger(),
		respond.Recoverer(),
	)

	e.GET("/health", health.Handler)
	docs.Register(e, "api/openapi.json")

	v1 := e.Group("/v1")
	routes.Register(v1, verifier, passwords, accounts, store, directory)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	applog.LogInfo(ctx, "server starting",
		slog.String("addr", ":"+port),
		slog.String("version", Version))

	sc := echo.StartConfig{
		Address:         ":" + port,
		GracefulTimeout: 10 * time.Second,
		BeforeServeFunc: func(s *http.Server) error {
			s.ReadTimeout = 5 * time.Second
			s.ReadHeaderTimeout = 2 * time.Second
			s.WriteTimeout = 10 * time.Second
			s.IdleTimeout = 60 * time.Second
			s.MaxHeaderBytes = 64 << 10
			return nil
		},
	}

	sigCtx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := sc.Start(sigCtx, e); err != nil {
		log.Fatal(err)
	}

	applog.LogInfo(ctx, "server exited")
}
