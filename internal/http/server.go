// Package http exposes the ledger, the report queries and the selection
// state as a JSON API. One signed-in client session maps to one active
// ledger; reports are memoized per ledger version.
package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wosadvpro-arch/finance-buddy/internal/cache"
	"github.com/wosadvpro-arch/finance-buddy/internal/middleware/ratelimit"
	"github.com/wosadvpro-arch/finance-buddy/internal/middleware/security"
	"github.com/wosadvpro-arch/finance-buddy/internal/middleware/trace"
	"github.com/wosadvpro-arch/finance-buddy/internal/selection"
	"github.com/wosadvpro-arch/finance-buddy/internal/session"
)

// API holds the HTTP-facing state: the account service, the shared ledger
// store and the per-token client sessions.
type API struct {
	accounts *session.Accounts
	store    session.Store
	pub      session.ChangePublisher

	mu       sync.Mutex
	sessions map[string]*clientSession

	reports *cache.ReportCache[[]byte]
}

// clientSession is one signed-in client: its ledger manager plus the
// view-local selection state, which is never persisted.
type clientSession struct {
	accountKey string
	manager    *session.Manager
	selection  *selection.State
}

func NewAPI(accounts *session.Accounts, store session.Store, pub session.ChangePublisher, cacheSize int, cacheTTL time.Duration) *API {
	return &API{
		accounts: accounts,
		store:    store,
		pub:      pub,
		sessions: make(map[string]*clientSession),
		reports:  cache.New[[]byte](cacheSize, cacheTTL),
	}
}

// Routes returns the full handler tree.
func (a *API) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/register", a.handleRegister)
	mux.HandleFunc("POST /api/login", a.handleLogin)
	mux.HandleFunc("POST /api/logout", a.withSession(a.handleLogout))

	mux.HandleFunc("GET /api/transactions", a.withSession(a.handleListTransactions))
	mux.HandleFunc("POST /api/transactions", a.withSession(a.handleAddTransaction))
	mux.HandleFunc("PUT /api/transactions/{id}", a.withSession(a.handleUpdateTransaction))
	mux.HandleFunc("DELETE /api/transactions/{id}", a.withSession(a.handleRemoveTransaction))
	mux.HandleFunc("POST /api/transactions/whatsapp", a.withSession(a.handleWhatsApp))

	mux.HandleFunc("GET /api/reports/monthly", a.withSession(a.handleMonthly))
	mux.HandleFunc("GET /api/reports/cashflow", a.withSession(a.handleCashFlow))
	mux.HandleFunc("GET /api/reports/categories", a.withSession(a.handleCategories))
	mux.HandleFunc("GET /api/reports/summary", a.withSession(a.handleSummary))

	mux.HandleFunc("GET /api/selection", a.withSession(a.handleGetSelection))
	mux.HandleFunc("POST /api/selection/month", a.withSession(a.handleSetMonth))
	mux.HandleFunc("POST /api/selection/toggle", a.withSession(a.handleToggleMonth))
	mux.HandleFunc("POST /api/selection/all", a.withSession(a.handleSelectAll))
	mux.HandleFunc("POST /api/selection/clear", a.withSession(a.handleClearSelection))

	ips := security.NewIPExtractor()
	var handler http.Handler = mux
	handler = ratelimit.NewLimiter(ratelimit.DefaultConfig()).Middleware(ips.ClientIP)(handler)
	handler = trace.NewMiddleware(ips.ClientIP).Middleware(handler)
	handler = security.NewHeadersMiddleware(security.DefaultHeadersConfig()).Middleware(handler)
	return handler
}

type sessionHandler func(w http.ResponseWriter, r *http.Request, sess *clientSession)

// withSession resolves the bearer token to a client session.
func (a *API) withSession(next sessionHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		a.mu.Lock()
		sess, ok := a.sessions[token]
		a.mu.Unlock()
		if !ok {
			writeError(w, http.StatusUnauthorized, "invalid or expired session")
			return
		}
		next(w, r, sess)
	}
}

// openSession loads the account's ledger and registers a new token for it.
func (a *API) openSession(r *http.Request, acct *session.Account) (string, error) {
	manager := session.NewManager(a.store, a.pub)
	if err := manager.Switch(r.Context(), acct.Key()); err != nil {
		return "", err
	}
	token := uuid.NewString()
	a.mu.Lock()
	a.sessions[token] = &clientSession{
		accountKey: acct.Key(),
		manager:    manager,
		selection:  selection.New(time.Now()),
	}
	a.mu.Unlock()
	return token, nil
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if after, found := strings.CutPrefix(h, "Bearer "); found {
		return strings.TrimSpace(after)
	}
	return ""
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
