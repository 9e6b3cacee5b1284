package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/dokkaebistudio/kanghwa-server/internal/battle"
	"github.com/dokkaebistudio/kanghwa-server/internal/checkin"
	"github.com/dokkaebistudio/kanghwa-server/internal/database"
	"github.com/dokkaebistudio/kanghwa-server/internal/feed"
	"github.com/dokkaebistudio/kanghwa-server/internal/handler"
	"github.com/dokkaebistudio/kanghwa-server/internal/hunt"
	"github.com/dokkaebistudio/kanghwa-server/internal/logger"
	"github.com/dokkaebistudio/kanghwa-server/internal/metrics"
	"github.com/dokkaebistudio/kanghwa-server/internal/player"
	"github.com/dokkaebistudio/kanghwa-server/internal/session"
	"github.com/dokkaebistudio/kanghwa-server/internal/shop"
	"github.com/dokkaebistudio/kanghwa-server/internal/upgrade"
)

type Server struct {
	httpServer     *http.Server
	dbPool         database.Pool
	playerService  player.Service
	sessionService session.Service
	upgradeService upgrade.Service
	huntService    hunt.Service
	battleService  battle.Service
	checkinService checkin.Service
	shopService    shop.Service
	feedService    feed.Service
}

// NewServer creates a new Server instance
func NewServer(port int, trustedProxies []string, dbPool database.Pool, playerService player.Service, sessionService session.Service, upgradeService upgrade.Service, huntService hunt.Service, battleService battle.Service, checkinService checkin.Service, shopService shop.Service, feedService feed.Service) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(SessionAuthMiddleware(sessionService, trustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Auth routes
		authHandler := handler.NewAuthHandler(playerService, sessionService)
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.HandleRegister)
			r.Post("/logout", authHandler.HandleLogout)
		})

		// Player routes
		playerHandler := handler.NewPlayerHandler(playerService)
		r.Route("/player", func(r chi.Router) {
			r.Get("/profile", playerHandler.HandleGetProfile)
			r.Post("/nickname", playerHandler.HandleSetNickname)
		})

		// Upgrade routes
		upgradeHandler := handler.NewUpgradeHandler(upgradeService)
		r.Route("/upgrade", func(r chi.Router) {
			r.Post("/", upgradeHandler.HandleAttemptUpgrade)
			r.Post("/sell", upgradeHandler.HandleSellWeapon)
		})

		// Hunting ground routes
		huntHandler := handler.NewHuntHandler(huntService)
		r.Route("/hunt", func(r chi.Router) {
			r.Post("/start", huntHandler.HandleStartHunt)
			r.Post("/resolve", huntHandler.HandleResolveHunt)
			r.Post("/abandon", huntHandler.HandleAbandonHunt)
		})

		// Battle routes
		battleHandler := handler.NewBattleHandler(battleService)
		r.Route("/battle", func(r chi.Router) {
			r.Post("/", battleHandler.HandleExecuteBattle)
			r.Get("/tickets", battleHandler.HandleGetTickets)
			r.Get("/rankings", battleHandler.HandleGetRankings)
		})

		// Check-in route
		checkinHandler := handler.NewCheckinHandler(checkinService)
		r.Post("/checkin", checkinHandler.HandleCheckIn)

		// Shop routes
		shopHandler := handler.NewShopHandler(shopService)
		r.Route("/shop", func(r chi.Router) {
			r.Get("/", shopHandler.HandleGetCatalog)
			r.Post("/claim", shopHandler.HandleClaimProduct)
		})

		// Activity feed
		feedHandler := handler.NewFeedHandler(feedService)
		r.Get("/feed", feedHandler.HandleGetFeed)
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:         dbPool,
		playerService:  playerService,
		sessionService: sessionService,
		upgradeService: upgradeService,
		huntService:    huntService,
		battleService:  battleService,
		checkinService: checkinService,
		shopService:    shopService,
		feedService:    feedService,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		// Use HasPrefix to catch potential variations (e.g. /healthz/)
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		// Generate unique request ID
		requestID := logger.GenerateRequestID()

		// Add request ID to context
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		// Get scoped logger
		log := logger.FromContext(ctx)

		// Log request start with details
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		// Wrap response writer to capture status code
		rw := newResponseWriter(w)

		// Process request
		next.ServeHTTP(rw, r)

		// Log request completion with metrics
		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
