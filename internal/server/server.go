//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=server_mocks
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/Dali-debug/Jinen/internal/auth"
	"github.com/Dali-debug/Jinen/internal/cache"
	"github.com/Dali-debug/Jinen/internal/metrics"
	"github.com/Dali-debug/Jinen/internal/records"
)

type Store interface {
	Profile(ctx context.Context, userID string) (*records.Profile, error)
	CreateNursery(ctx context.Context, nursery records.Nursery) error
	GetNursery(ctx context.Context, nurseryID string) (*records.Nursery, error)
	ListNurseries(ctx context.Context) ([]records.Nursery, error)
	UpdateNursery(ctx context.Context, nurseryID string, patch records.NurseryPatch) (*records.Nursery, error)
	RegisterChild(ctx context.Context, child records.Child) error
	GetChild(ctx context.Context, childID string) (*records.Child, error)
	ParentChildren(ctx context.Context, userID string) ([]records.Child, error)
	NurseryChildren(ctx context.Context, nurseryID string) ([]records.ChildWithParent, error)
	SetChildStatus(ctx context.Context, childID, status string) (*records.Child, error)
	AddChildUpdate(ctx context.Context, update records.ChildUpdate) error
	ChildUpdates(ctx context.Context, childID string) ([]records.ChildUpdate, error)
	PutProgram(ctx context.Context, program records.Program) error
	GetProgram(ctx context.Context, nurseryID string) (*records.Program, error)
	RecordPayment(ctx context.Context, payment records.Payment) error
	NurseryPayments(ctx context.Context, nurseryID string) ([]records.PaymentWithParent, error)
	ParentPayments(ctx context.Context, userID string) ([]records.Payment, error)
}

type Identity interface {
	SignUp(ctx context.Context, email, password, name, userType string) (*records.User, error)
	SignIn(ctx context.Context, email, password string) (string, *records.User, error)
	UserFromToken(ctx context.Context, token string) (*records.User, error)
}

type ImageStore interface {
	Put(ctx context.Context, nurseryID, fileName string, data []byte) (string, error)
}

type Server struct {
	store        Store
	identity     Identity
	images       ImageStore
	browseCache  *cache.NurseryCache
	imageDir     string
	logger       *zap.Logger
	server       *http.Server
	AuditManager *AuditManager
}

func New(store Store, identity Identity, images ImageStore, producer AuditProducer, imageDir string, logger *zap.Logger) *Server {
	return &Server{
		store:        store,
		identity:     identity,
		images:       images,
		browseCache:  cache.NewNurseryCache(store),
		imageDir:     imageDir,
		logger:       logger,
		AuditManager: NewAuditManager(producer, 2, 5, 500*time.Millisecond),
	}
}

func (s *Server) Run(ctx context.Context, port string) error {
	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      s.setupRoutes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	s.AuditManager.Start(ctx)

	s.logger.Info("Server starting", zap.String("port", port))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server")

	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	s.AuditManager.Shutdown(ctx)

	s.logger.Info("Server shutdown completed")
	return nil
}

func (s *Server) setupRoutes() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/auth/signup", s.handleSignUp).Methods(http.MethodPost)
	r.HandleFunc("/auth/signin", s.handleSignIn).Methods(http.MethodPost)
	r.HandleFunc("/profile", s.handleProfile).Methods(http.MethodGet)

	r.HandleFunc("/nurseries", s.handleCreateNursery).Methods(http.MethodPost)
	r.HandleFunc("/nurseries", s.handleListNurseries).Methods(http.MethodGet)
	r.HandleFunc("/nurseries/{id}", s.handleGetNursery).Methods(http.MethodGet)
	r.HandleFunc("/nurseries/{id}", s.handleUpdateNursery).Methods(http.MethodPut)
	r.HandleFunc("/nurseries/{id}/upload-image", s.handleUploadImage).Methods(http.MethodPost)
	r.HandleFunc("/nurseries/{id}/program", s.handlePutProgram).Methods(http.MethodPost)
	r.HandleFunc("/nurseries/{id}/program", s.handleGetProgram).Methods(http.MethodGet)

	r.HandleFunc("/children", s.handleRegisterChild).Methods(http.MethodPost)
	r.HandleFunc("/parent/children", s.handleParentChildren).Methods(http.MethodGet)
	r.HandleFunc("/nursery/{id}/children", s.handleNurseryChildren).Methods(http.MethodGet)
	r.HandleFunc("/children/{id}/status", s.handleChildStatus).Methods(http.MethodPut)
	r.HandleFunc("/children/{id}/updates", s.handlePostChildUpdate).Methods(http.MethodPost)
	r.HandleFunc("/children/{id}/updates", s.handleChildUpdates).Methods(http.MethodGet)

	r.HandleFunc("/payments", s.handleCreatePayment).Methods(http.MethodPost)
	r.HandleFunc("/nursery/{id}/payments", s.handleNurseryPayments).Methods(http.MethodGet)
	r.HandleFunc("/parent/payments", s.handleParentPayments).Methods(http.MethodGet)

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	if s.imageDir != "" {
		r.PathPrefix("/images/").Handler(
			http.StripPrefix("/images/", http.FileServer(http.Dir(s.imageDir))))
	}

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         600,
	})

	return c.Handler(s.auditLogMiddleware(r))
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// authenticate resolves the bearer token on the request. A missing or
// unresolvable token is the caller's problem, surfaced as 401.
func (s *Server) authenticate(r *http.Request) (*records.User, error) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return nil, auth.ErrInvalidToken
	}
	return s.identity.UserFromToken(r.Context(), strings.TrimPrefix(header, prefix))
}

func (s *Server) requireUser(w http.ResponseWriter, r *http.Request) (*records.User, bool) {
	user, err := s.authenticate(r)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidToken) {
			respondError(w, http.StatusUnauthorized, "Unauthorized")
		} else {
			s.logger.Error("Token resolution failed", zap.Error(err))
			respondError(w, http.StatusInternalServerError, "Failed to authenticate request")
		}
		return nil, false
	}
	return user, true
}

// respondStoreError maps data-layer failures onto the error taxonomy:
// absent record 404, invalid transition 400, anything else 500 with the
// raw error logged and a generic message returned.
func (s *Server) respondStoreError(w http.ResponseWriter, operation, notFoundMsg, genericMsg string, err error) {
	switch {
	case errors.Is(err, records.ErrNotFound):
		respondError(w, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, records.ErrInvalidTransition):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		s.logger.Error(genericMsg, zap.String("operation", operation), zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues(operation).Inc()
		respondError(w, http.StatusInternalServerError, genericMsg)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
