package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"currency-ledger/internal/config"
	"currency-ledger/internal/currency"
	"currency-ledger/internal/domain"
	"currency-ledger/internal/handler"
	"currency-ledger/internal/service"
)

// Server represents the HTTP server
type Server struct {
	router *mux.Router
	server *http.Server
	logger *slog.Logger
	port   string
}

// NewServer creates a new server instance over a fresh in-memory bank.
func NewServer(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	bank, err := domain.NewBank(cfg.BankName)
	if err != nil {
		return nil, err
	}

	converter := currency.NewConverter(nil)
	bankService := service.NewBankService(bank, converter, logger)

	accountHandler := handler.NewAccountHandler(bankService)
	transferHandler := handler.NewTransferHandler(bankService)
	bankHandler := handler.NewBankHandler(bankService, currency.Code(cfg.ReportingCurrency))

	router := mux.NewRouter()
	router.Use(loggingMiddleware(logger))

	// Account routes
	router.HandleFunc("/accounts", accountHandler.CreateAccount).Methods("POST")
	router.HandleFunc("/accounts/{owner}", accountHandler.GetStatement).Methods("GET")
	router.HandleFunc("/accounts/{owner}/deposit", accountHandler.Deposit).Methods("POST")
	router.HandleFunc("/accounts/{owner}/withdraw", accountHandler.Withdraw).Methods("POST")
	router.HandleFunc("/accounts/{owner}/convert", accountHandler.ConvertBalance).Methods("POST")
	router.HandleFunc("/accounts/{owner}/block", accountHandler.Block).Methods("POST")
	router.HandleFunc("/accounts/{owner}/unblock", accountHandler.Unblock).Methods("POST")

	// Transfer and bank-wide routes
	router.HandleFunc("/transfers", transferHandler.Transfer).Methods("POST")
	router.HandleFunc("/bank/total", bankHandler.TotalDeposits).Methods("GET")

	// Health check
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}).Methods("GET")

	return &Server{
		router: router,
		logger: logger,
	}, nil
}

// loggingMiddleware adds request logging
func loggingMiddleware(logger *slog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(ww, r)

			logger.Info("request completed",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.statusCode,
				"duration", time.Since(start),
			)
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Start starts the HTTP server on the specified port. Passing "0" binds an
// ephemeral port, which tests rely on.
func (s *Server) Start(port string) (string, error) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return "", err
	}

	addr := listener.Addr().(*net.TCPAddr)
	s.port = strconv.Itoa(addr.Port)

	s.server = &http.Server{
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("Starting server", "port", s.port)

	go func() {
		if err := s.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.logger.Error("Server failed", "error", err)
		}
	}()

	return s.port, nil
}

// Stop gracefully shuts down the server
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Shutting down server")

	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

// GetPort returns the port the server is listening on
func (s *Server) GetPort() string {
	return s.port
}

// GetBaseURL returns the base URL for the server
func (s *Server) GetBaseURL() string {
	return "http://localhost:" + s.port
}

// GetRouter returns the router for testing purposes
func (s *Server) GetRouter() *mux.Router {
	return s.router
}

// StartServer starts the server with the given configuration
func StartServer(cfg *config.Config) (*Server, string, error) {
	var logger *slog.Logger
	if cfg.ServerPort == "0" {
		// Test environment - use discard logger
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	} else {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}

	server, err := NewServer(cfg, logger)
	if err != nil {
		return nil, "", err
	}

	port, err := server.Start(cfg.ServerPort)
	if err != nil {
		return nil, "", err
	}

	return server, port, nil
}
