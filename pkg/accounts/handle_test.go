package accounts

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "handler-test-secret"

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	svc := NewService(NewInMemoryRepository(), NewTokenIssuer(testSecret, time.Hour), WithHashCost(bcrypt.MinCost))
	tokenAuth := jwtauth.New("HS256", []byte(testSecret), nil)
	return Handler(NewHandle(svc, tokenAuth))
}

func do(t *testing.T, h http.Handler, method, path, body, bearer string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHandler_RegisterLoginMe(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/register", `{"email":"Ana@Example.com","password":"password1"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	account := decode[AccountResponse](t, rec)
	assert.Equal(t, "ana@example.com", account.Email)
	assert.NotEmpty(t, account.ID)

	rec = do(t, h, http.MethodPost, "/login", `{"email":"ana@example.com","password":"password1"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var token struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &token))
	assert.Equal(t, "Bearer", token.TokenType)
	assert.Equal(t, int64(3600), token.ExpiresIn)
	require.NotEmpty(t, token.AccessToken)

	rec = do(t, h, http.MethodGet, "/me", "", token.AccessToken)
	require.Equal(t, http.StatusOK, rec.Code)
	me := decode[AccountResponse](t, rec)
	assert.Equal(t, account, me)
}

func TestHandler_Errors(t *testing.T) {
	h := newTestRouter(t)
	require.Equal(t, http.StatusCreated,
		do(t, h, http.MethodPost, "/register", `{"email":"a@b.com","password":"password1"}`, "").Code)

	tests := []struct {
		name   string
		path   string
		body   string
		status int
		code   string
	}{
		{"Duplicate", "/register", `{"email":"a@b.com","password":"password1"}`, http.StatusConflict, "USER_ALREADY_EXISTS"},
		{"InvalidEmail", "/register", `{"email":"nope","password":"password1"}`, http.StatusBadRequest, "INVALID_EMAIL"},
		{"ShortPassword", "/register", `{"email":"c@d.com","password":"short"}`, http.StatusBadRequest, "PASSWORD_TOO_SHORT"},
		{"MalformedBody", "/register", `{"email":`, http.StatusBadRequest, "INVALID_INPUT"},
		{"WrongPassword", "/login", `{"email":"a@b.com","password":"password2"}`, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{"UnknownAccount", "/login", `{"email":"x@y.com","password":"password1"}`, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{"MissingFields", "/login", `{}`, http.StatusBadRequest, "MISSING_REQUIRED"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, tt.path, tt.body, "")
			assert.Equal(t, tt.status, rec.Code)
			body := decode[ErrorResponse](t, rec)
			assert.Equal(t, tt.code, body.Code)
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestHandler_MeRequiresToken(t *testing.T) {
	h := newTestRouter(t)

	assert.Equal(t, http.StatusUnauthorized, do(t, h, http.MethodGet, "/me", "", "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(t, h, http.MethodGet, "/me", "", "not-a-token").Code)

	other, err := NewTokenIssuer("another-secret", time.Hour).Issue(Account{Email: "a@b.com"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, do(t, h, http.MethodGet, "/me", "", other.AccessToken).Code)
}
