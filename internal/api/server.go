// Package api exposes the tracker core over HTTP as a JSON API, the
// remote-access counterpart of the CLI.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dompet/dompet/internal/ledger"
)

// Server wires the ledger into a gin router.
type Server struct {
	store    *ledger.TransactionStore
	registry *ledger.CategoryRegistry
	router   *gin.Engine
}

// NewServer creates the API server. allowedOrigins configures CORS
// for browser frontends; an empty list allows none.
func NewServer(store *ledger.TransactionStore, registry *ledger.CategoryRegistry, allowedOrigins []string) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	if len(allowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     allowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	s := &Server{store: store, registry: registry, router: router}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	v1 := s.router.Group("/api/v1")

	v1.GET("/transactions", s.listTransactions)
	v1.POST("/transactions", s.createTransaction)
	v1.PUT("/transactions/:id", s.updateTransaction)
	v1.DELETE("/transactions/:id", s.deleteTransaction)

	v1.GET("/categories", s.listCategories)
	v1.PUT("/categories/:key", s.upsertCategory)

	v1.GET("/summary", s.summary)
	v1.GET("/summary/monthly", s.summaryMonthly)
}

// Handler returns the http.Handler for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	slog.Info("API server listening", "addr", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
