package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/daniilsolovey/blog-platform/internal/blog"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "test-secret"
	testIssuer = "blog-platform-test"
)

var testUserID = uuid.MustParse("00000000-0000-0000-0000-00000000b001")

func noOpLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError + 1,
	}))
}

// newOfflineRouter builds a router whose manager has no store. Only requests rejected
// before reaching persistence may be sent to it.
func newOfflineRouter() (*Handler, *echo.Echo) {
	h := NewHandler(blog.NewManager(nil, blog.DefaultConfig(), noOpLogger()), noOpLogger())
	return h, h.RegisterRoutes(NewAuthenticator(testSecret, testIssuer), nil, Options{})
}

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func validClaims(role string) Claims {
	return Claims{
		UserID: testUserID.String(),
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func bearer(t *testing.T, role string) string {
	return "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims(role))
}

func serve(e *echo.Echo, method, target, authorization, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var response map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response), rec.Body.String())
	return response["error"]
}

func TestAuthenticator_Require(t *testing.T) {
	_, e := newOfflineRouter()

	expired := validClaims(RoleUser)
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	foreign := validClaims(RoleUser)
	foreign.Issuer = "someone-else"

	tests := []struct {
		name          string
		method        string
		target        string
		authorization string
		wantStatus    int
		wantError     string
	}{
		{name: "MissingHeader", method: http.MethodPost, target: "/api/v1/posts", wantStatus: http.StatusUnauthorized, wantError: "missing bearer token"},
		{name: "NotBearer", method: http.MethodPost, target: "/api/v1/posts", authorization: "Basic dXNlcjpwYXNz", wantStatus: http.StatusUnauthorized, wantError: "missing bearer token"},
		{name: "Garbage", method: http.MethodPost, target: "/api/v1/posts", authorization: "Bearer not-a-jwt", wantStatus: http.StatusUnauthorized, wantError: "invalid token"},
		{name: "WrongSecret", method: http.MethodGet, target: "/api/v1/user/posts", authorization: "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte("other"), validClaims(RoleUser)), wantStatus: http.StatusUnauthorized, wantError: "invalid token"},
		{name: "Expired", method: http.MethodGet, target: "/api/v1/user/posts", authorization: "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), expired), wantStatus: http.StatusUnauthorized, wantError: "invalid token"},
		{name: "ForeignIssuer", method: http.MethodGet, target: "/api/v1/user/posts", authorization: "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), foreign), wantStatus: http.StatusUnauthorized, wantError: "invalid token"},
		{name: "UnsignedToken", method: http.MethodGet, target: "/api/v1/user/posts", authorization: "Bearer " + signToken(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, validClaims(RoleAdmin)), wantStatus: http.StatusUnauthorized, wantError: "invalid token"},
		{name: "UserOnAdminRoute", method: http.MethodGet, target: "/api/v1/admin/posts", authorization: bearer(t, RoleUser), wantStatus: http.StatusForbidden, wantError: "forbidden"},
		{name: "UserCreatesCategory", method: http.MethodPost, target: "/api/v1/categories", authorization: bearer(t, RoleUser), wantStatus: http.StatusForbidden, wantError: "forbidden"},
		{name: "UnknownRole", method: http.MethodPost, target: "/api/v1/posts", authorization: bearer(t, "Guest"), wantStatus: http.StatusForbidden, wantError: "forbidden"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(e, tt.method, tt.target, tt.authorization, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantError, errorMessage(t, rec))
		})
	}
}

func TestAuthenticator_Parse(t *testing.T) {
	auth := NewAuthenticator(testSecret, "")

	t.Run("SubjectFallback", func(t *testing.T) {
		claims := Claims{Role: RoleAdmin, RegisteredClaims: jwt.RegisteredClaims{Subject: testUserID.String()}}
		identity, err := auth.Parse(signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claims))
		require.NoError(t, err)

		assert.Equal(t, testUserID, identity.UserID)
		assert.True(t, identity.IsAdmin())
	})

	t.Run("InvalidUserID", func(t *testing.T) {
		claims := Claims{UserID: "42", Role: RoleUser}
		_, err := auth.Parse(signToken(t, jwt.SigningMethodHS256, []byte(testSecret), claims))
		assert.Error(t, err)
	})
}

func TestHandler_RejectsBadInput(t *testing.T) {
	_, e := newOfflineRouter()

	tests := []struct {
		name          string
		method        string
		target        string
		authorization string
		body          string
		wantError     string
	}{
		{name: "PostIDNotUUID", method: http.MethodGet, target: "/api/v1/posts/42", wantError: "invalid post id"},
		{name: "RelatedPostIDNotUUID", method: http.MethodGet, target: "/api/v1/posts/abc/related?categoryId=1", wantError: "invalid post id"},
		{name: "RelatedCategoryNotNumber", method: http.MethodGet, target: "/api/v1/posts/" + uuid.NewString() + "/related?categoryId=x", wantError: "invalid request parameters"},
		{name: "RelatedNegativeLimit", method: http.MethodGet, target: "/api/v1/posts/" + uuid.NewString() + "/related?categoryId=1&limit=-1", wantError: "validation failed: limit must be positive: -1"},
		{name: "PageNotNumber", method: http.MethodGet, target: "/api/v1/posts?page=abc", wantError: "invalid request parameters"},
		{name: "NegativePage", method: http.MethodGet, target: "/api/v1/posts?page=-1", wantError: "validation failed: page and pageSize must be positive: page=-1, pageSize=0"},
		{name: "NegativePageSize", method: http.MethodGet, target: "/api/v1/posts?pageSize=-5", wantError: "validation failed: page and pageSize must be positive: page=0, pageSize=-5"},
		{name: "CategoryIDZero", method: http.MethodGet, target: "/api/v1/categories/0", wantError: "invalid category id"},
		{name: "CategoryIDNotNumber", method: http.MethodGet, target: "/api/v1/categories/web", wantError: "invalid category id"},
		{name: "UnknownStatusFilter", method: http.MethodGet, target: "/api/v1/admin/posts?status=Archived", authorization: bearer(t, RoleAdmin), wantError: `validation failed: unknown status "Archived"`},
		{name: "MalformedBody", method: http.MethodPost, target: "/api/v1/posts", authorization: bearer(t, RoleUser), body: `{"title":`, wantError: "invalid request body"},
		{name: "EmptyTitle", method: http.MethodPost, target: "/api/v1/posts", authorization: bearer(t, RoleUser), body: `{"title":" ","content":"body"}`, wantError: "validation failed: title is required"},
		{name: "UnknownStatusInBody", method: http.MethodPost, target: "/api/v1/posts", authorization: bearer(t, RoleUser), body: `{"title":"T","content":"body","status":"Archived"}`, wantError: `validation failed: unknown status "Archived"`},
		{name: "UpdateIDNotUUID", method: http.MethodPut, target: "/api/v1/posts/1", authorization: bearer(t, RoleUser), body: `{}`, wantError: "invalid post id"},
		{name: "EmptyCategoryName", method: http.MethodPost, target: "/api/v1/categories", authorization: bearer(t, RoleAdmin), body: `{"name":""}`, wantError: "validation failed: category name is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(e, tt.method, tt.target, tt.authorization, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			assert.Equal(t, tt.wantError, errorMessage(t, rec))
		})
	}
}

func TestHandler_HandleBlogError(t *testing.T) {
	h, e := newOfflineRouter()

	tests := []struct {
		err        error
		wantStatus int
		wantError  string
	}{
		{err: fmt.Errorf("%w: title is required", blog.ErrValidation), wantStatus: http.StatusBadRequest, wantError: "validation failed: title is required"},
		{err: fmt.Errorf("%w: post x", blog.ErrNotFound), wantStatus: http.StatusNotFound, wantError: "not found: post x"},
		{err: fmt.Errorf("%w: slug taken", blog.ErrConflict), wantStatus: http.StatusConflict, wantError: "conflict: slug taken"},
		{err: fmt.Errorf("%w: 2 posts", blog.ErrPreconditionFailed), wantStatus: http.StatusBadRequest, wantError: "precondition failed: 2 posts"},
		{err: errors.New("pq: connection refused"), wantStatus: http.StatusInternalServerError, wantError: "internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.wantError, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			require.NoError(t, h.handleBlogError(c, tt.err))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantError, errorMessage(t, rec))
		})
	}
}

func TestHandler_Health(t *testing.T) {
	_, e := newOfflineRouter()

	rec := serve(e, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHandler_SwaggerDoc(t *testing.T) {
	_, e := newOfflineRouter()

	rec := serve(e, http.MethodGet, "/swagger/doc.json", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Contains(t, doc, "paths")
}
