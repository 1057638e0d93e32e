// Package mockbackend is an in-memory stand-in for the marketplace admin
// backend. It serves the endpoints the client speaks, checks the API key and
// bearer credential like the real service, and lets tests expire a token to
// provoke 401 responses.
package mockbackend

import (
	"context"
	"crypto/rand"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/PSchristopher/phoenix-admin/client"
	"github.com/PSchristopher/phoenix-admin/internal/mockbackend/recovery"
	"github.com/PSchristopher/phoenix-admin/internal/mockbackend/respond"
)

// Default credentials accepted by a fresh Server.
const (
	DefaultAPIKey   = "reqres-free-v1"
	DefaultEmail    = "admin@phoenix.dev"
	DefaultPassword = "phoenix-admin"
)

type adminAccount struct {
	id       string
	name     string
	password string
}

// Server holds the fake backend state. Create it with New and mount Handler.
type Server struct {
	mu sync.RWMutex

	apiKey   string
	tokenTTL time.Duration
	secret   []byte
	admins   map[string]adminAccount // by email
	tokens   map[string]string       // issued token -> admin email

	orders         []client.Order
	customerOrders map[string][]client.CustomerOrder
	products       []*client.Product
	users          []client.User
	customers      map[string]client.Customer
	vendors        []*client.Vendor
	vendorNotes    map[string]string

	log zerolog.Logger
	now func() time.Time
}

// Option configures a Server.
type Option func(*Server)

// WithAPIKey sets the x-api-key value the server demands.
func WithAPIKey(key string) Option { return func(s *Server) { s.apiKey = key } }

// WithAdmin adds a login.
func WithAdmin(email, password string) Option {
	return func(s *Server) {
		s.admins[strings.ToLower(email)] = adminAccount{id: newID(), name: "Admin", password: password}
	}
}

// WithTokenTTL sets the lifetime of issued credentials.
func WithTokenTTL(d time.Duration) Option { return func(s *Server) { s.tokenTTL = d } }

// WithLogger sets the request logger.
func WithLogger(l zerolog.Logger) Option { return func(s *Server) { s.log = l } }

// New returns a server seeded with sample marketplace data.
func New(opts ...Option) *Server {
	secret := make([]byte, 32)
	_, _ = rand.Read(secret)
	s := &Server{
		apiKey:   DefaultAPIKey,
		tokenTTL: time.Hour,
		secret:   secret,
		admins: map[string]adminAccount{
			DefaultEmail: {id: newID(), name: "Phoenix Admin", password: DefaultPassword},
		},
		tokens:      map[string]string{},
		vendorNotes: map[string]string{},
		log:         zerolog.Nop(),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.seed()
	return s
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()

	// Global middlewares
	r.Use(recovery.Middleware(s.log))
	r.Use(s.requireAPIKey)

	// Health endpoint
	r.HandleFunc("/health", s.health).Methods("GET")

	// Public endpoints
	r.HandleFunc("/admin/login", s.login).Methods("POST")

	// Order endpoints
	r.HandleFunc("/admin/orders", s.private(s.listOrders)).Methods("GET")

	// Product endpoints (bulk routes first so {productId} does not capture them)
	r.HandleFunc("/admin/products", s.private(s.listProducts)).Methods("GET")
	r.HandleFunc("/admin/products/bulk", s.private(s.bulkDeleteProducts)).Methods("DELETE")
	r.HandleFunc("/admin/products/bulk/status", s.private(s.bulkProductStatus)).Methods("PUT")
	r.HandleFunc("/admin/products/{productId}", s.private(s.getProduct)).Methods("GET")
	r.HandleFunc("/admin/products/{productId}/approve", s.private(s.approveProduct)).Methods("PATCH")
	r.HandleFunc("/admin/products/{productId}/reject", s.private(s.rejectProduct)).Methods("PATCH")

	// Customer endpoints
	r.HandleFunc("/user", s.private(s.listUsers)).Methods("GET")
	r.HandleFunc("/admin/customer/{customerId}", s.private(s.getCustomer)).Methods("GET")
	r.HandleFunc("/admin/users/bulk", s.private(s.bulkDeleteUsers)).Methods("DELETE")
	r.HandleFunc("/admin/users/bulk/status", s.private(s.bulkUserStatus)).Methods("PUT")

	// Vendor endpoints
	r.HandleFunc("/admin/vendors", s.private(s.listVendors)).Methods("GET")
	r.HandleFunc("/admin/vendors/{vendorId}/approve", s.private(s.setVendorStatus(client.VendorApproved))).Methods("PUT")
	r.HandleFunc("/admin/vendors/{vendorId}/reject", s.private(s.setVendorStatus(client.VendorRejected))).Methods("PUT")
	r.HandleFunc("/admin/vendors/{vendorId}/notes", s.private(s.saveVendorNotes)).Methods("POST")

	// Per-entity routes keyed by a bare id segment, registered last
	r.HandleFunc("/admin/{customerId}/orders", s.private(s.listCustomerOrders)).Methods("GET")
	r.HandleFunc("/admin/{vendorId}/vendor", s.private(s.getVendor)).Methods("GET")

	return r
}

// ListenAndServe serves Handler on addr until ctx is done, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", addr).Msg("mock backend starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info().Msg("Shutting down mock backend…")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": s.now().Format(time.RFC3339),
	})
}

// --------------------------------------------------------------------
// Credentials
// --------------------------------------------------------------------

func (s *Server) requireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" || s.apiKey == "" || r.Header.Get(client.APIKeyHeader) == s.apiKey {
			next.ServeHTTP(w, r)
			return
		}
		// 403 rather than 401: a bad key is not an expired session.
		respond.WriteError(w, http.StatusForbidden, "missing or invalid API key")
	})
}

func (s *Server) private(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(auth, "Bearer ")
		if !ok || token == "" {
			respond.WriteUnauthorized(w, "authorization token missing")
			return
		}
		if !s.validToken(token) {
			respond.WriteUnauthorized(w, "invalid or expired token")
			return
		}
		h(w, r)
	}
}

type tokenClaims struct {
	AdminID string `json:"id"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

func (s *Server) issueToken(email string, acct adminAccount) (string, error) {
	now := s.now()
	claims := tokenClaims{
		AdminID: acct.id,
		Email:   email,
		Role:    "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   acct.id,
			ID:        newID(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	s.tokens[token] = email
	s.mu.Unlock()
	return token, nil
}

func (s *Server) validToken(token string) bool {
	s.mu.RLock()
	_, issued := s.tokens[token]
	s.mu.RUnlock()
	if !issued {
		return false
	}
	var claims tokenClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	return err == nil
}

// Expire revokes token so the next request carrying it gets a 401. It
// reports whether the token was live.
func (s *Server) Expire(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.tokens[token]
	delete(s.tokens, token)
	return ok
}

// ExpireAll revokes every issued token.
func (s *Server) ExpireAll() {
	s.mu.Lock()
	s.tokens = map[string]string{}
	s.mu.Unlock()
}

// ActiveTokens returns the number of live credentials.
func (s *Server) ActiveTokens() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tokens)
}
