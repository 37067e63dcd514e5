// Package httpapi wires the auth service into HTTP. Routing, body parsing and
// status mapping live here; the service below it only deals in Result values.
//
// Endpoints:
//
//	POST /api/register   create a user (201 on success, 400 on failure)
//	POST /api/login      verify credentials, returns a bearer token
//	GET  /api/me         identity behind the bearer token (401 otherwise)
//	GET  /health         liveness probe
package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/JoshuaSkootsky/roll-own-auth/internal/logging"
	"github.com/JoshuaSkootsky/roll-own-auth/internal/server/auth"
	"github.com/JoshuaSkootsky/roll-own-auth/internal/server/services"
	"github.com/google/uuid"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// credentialsRequest is the JSON body of register and login.
type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// authResponse mirrors services.Result on the wire.
type authResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}

type meResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// Handler bundles the auth service and a logger for the HTTP layer.
type Handler struct {
	svc    *services.AuthService
	logger logging.Logger
}

func NewHandler(svc *services.AuthService, logger logging.Logger) *Handler {
	return &Handler{svc: svc, logger: logger.With("module", "httpapi")}
}

// RegisterRoutes attaches all endpoints to mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/register", h.handleRegister)
	mux.HandleFunc("POST /api/login", h.handleLogin)
	mux.Handle("GET /api/me", h.requireAuth(http.HandlerFunc(h.handleMe)))
	mux.HandleFunc("GET /health", handleHealth)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, authResponse{Message: "invalid json"})
		return
	}

	res, err := h.svc.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		h.logger.Error(r.Context(), "register failed", "error", err.Error())
		writeJSON(w, http.StatusInternalServerError, authResponse{Message: "internal server error"})
		return
	}

	status := http.StatusBadRequest
	if res.Success {
		status = http.StatusCreated
	}
	writeJSON(w, status, authResponse{Success: res.Success, Message: res.Message})
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, authResponse{Message: "invalid json"})
		return
	}

	res, err := h.svc.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		h.logger.Error(r.Context(), "login failed", "error", err.Error())
		writeJSON(w, http.StatusInternalServerError, authResponse{Message: "internal server error"})
		return
	}

	status := http.StatusBadRequest
	if res.Success {
		status = http.StatusOK
	}
	writeJSON(w, status, authResponse{Success: res.Success, Message: res.Message, Token: res.Token})
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())
	if claims == nil {
		// requireAuth always sets claims; this is a wiring bug, not a user error.
		writeJSON(w, http.StatusUnauthorized, authResponse{Message: services.MsgUnauthorized})
		return
	}
	writeJSON(w, http.StatusOK, meResponse{UserID: claims.UserID, Username: claims.Username})
}

// requireAuth rejects requests whose Authorization header does not carry a
// valid bearer token, and stashes the verified claims in the request context.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		res := h.svc.CheckRequest(r.Header.Get("Authorization"))
		if !res.Valid {
			writeJSON(w, http.StatusUnauthorized, authResponse{Message: services.MsgUnauthorized})
			return
		}
		ctx := context.WithValue(r.Context(), claimsKey, res.User)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func claimsFromContext(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(claimsKey).(*auth.Claims)
	return claims
}

// WithRequestID tags every request with a generated id, echoes it in the
// X-Request-Id response header, and logs the request line.
func WithRequestID(logger logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		logger.Info(r.Context(), "request", "id", id, "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
