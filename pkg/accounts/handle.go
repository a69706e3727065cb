package accounts

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	apperrors "github.com/tendant/simple-notes/pkg/errors"
)

// CredentialsRequest is the body of POST /register and POST /login
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AccountResponse describes an account without its secret
type AccountResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

type Handle struct {
	service   *Service
	tokenAuth *jwtauth.JWTAuth
}

func NewHandle(service *Service, tokenAuth *jwtauth.JWTAuth) Handle {
	return Handle{
		service:   service,
		tokenAuth: tokenAuth,
	}
}

// Handler returns the session API routes, to be mounted under a prefix.
func Handler(h Handle) chi.Router {
	r := chi.NewRouter()
	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(h.tokenAuth))
		r.Use(jwtauth.Authenticator(h.tokenAuth))
		r.Get("/me", h.Me)
	})
	return r
}

// Register creates an account
// (POST /register)
func (h Handle) Register(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		slog.Error("Failed to decode request body", "error", err)
		writeError(w, r, apperrors.InvalidInput("body", "malformed JSON"))
		return
	}

	account, err := h.service.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, AccountResponse{ID: account.ID.String(), Email: account.Email})
}

// Login exchanges credentials for an access token
// (POST /login)
func (h Handle) Login(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		slog.Error("Failed to decode request body", "error", err)
		writeError(w, r, apperrors.InvalidInput("body", "malformed JSON"))
		return
	}

	token, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, token)
}

// Me returns the account the bearer token was issued to
// (GET /me)
func (h Handle) Me(w http.ResponseWriter, r *http.Request) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		writeError(w, r, apperrors.Wrap(err, apperrors.ErrCodeTokenInvalid, "invalid token"))
		return
	}

	sub, _ := claims["sub"].(string)
	id, err := uuid.Parse(sub)
	if err != nil {
		writeError(w, r, apperrors.Wrap(err, apperrors.ErrCodeTokenInvalid, "invalid token subject"))
		return
	}

	account, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	render.JSON(w, r, AccountResponse{ID: account.ID.String(), Email: account.Email})
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) {
		appErr = apperrors.InternalWrap(err, "internal error")
	}

	status := appErr.HTTPStatusCode()
	message := appErr.Message
	if status >= http.StatusInternalServerError {
		slog.Error("Request failed", "path", r.URL.Path, "error", err)
		message = http.StatusText(status)
	}

	render.Status(r, status)
	render.JSON(w, r, ErrorResponse{Error: message, Code: string(appErr.Code)})
}
