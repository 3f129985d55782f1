package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/secmon-lab/claimdesk/pkg/domain/model"
	"github.com/secmon-lab/claimdesk/pkg/utils/logging"
)

// ClaimUseCase is the claim orchestration used by the HTTP handlers
type ClaimUseCase interface {
	GetClaim(ctx context.Context, id string) (*model.Claim, error)
	SummarizeClaim(ctx context.Context, id string) (*model.ClaimSummary, error)
	CreateClaim(ctx context.Context, input model.CreateClaimInput) (*model.Claim, error)
}

const defaultMaxBodyBytes = 1 << 20

type Server struct {
	router       *chi.Mux
	claimUC      ClaimUseCase
	maxBodyBytes int64
}

type Options func(*Server)

// WithMaxBodyBytes limits the size of request bodies accepted by POST /claims
func WithMaxBodyBytes(n int64) Options {
	return func(s *Server) {
		s.maxBodyBytes = n
	}
}

func New(claimUC ClaimUseCase, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router:       r,
		claimUC:      claimUC,
		maxBodyBytes: defaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Route("/claims", func(r chi.Router) {
		r.Get("/health", healthHandler)
		r.Post("/", s.createClaimHandler)
		r.Get("/{id}", s.getClaimHandler)
		r.Post("/{id}/summarize", s.summarizeClaimHandler)
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		logger := logging.Default().With("request_id", middleware.GetReqID(r.Context()))
		ctx := logging.With(r.Context(), logger)

		defer func() {
			logger.Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r.WithContext(ctx))
	})
}
