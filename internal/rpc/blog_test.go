package rpc

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

	"github.com/daniilsolovey/blog-platform/internal/blog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmkteam/zenrpc/v2"
)

func noOpLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError + 1,
	}))
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	ID     int             `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

func call(t *testing.T, h http.Handler, method, params string) rpcResponse {
	t.Helper()

	body := fmt.Sprintf(`{"jsonrpc":"2.0","id":1,"method":%q,"params":%s}`, method, params)
	req := httptest.NewRequest(http.MethodPost, "/v1/rpc/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp rpcResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return resp
}

// Only calls rejected before persistence may reach a server built here.
func newOfflineServer() *zenrpc.Server {
	return New(noOpLogger(), blog.NewManager(nil, blog.DefaultConfig(), noOpLogger()))
}

func TestBlogService_RejectsBadInput(t *testing.T) {
	server := newOfflineServer()

	tests := []struct {
		name     string
		method   string
		params   string
		wantCode int
		wantMsg  string
	}{
		{name: "BlankSlug", method: "blog.byslug", params: `{"slug":"  "}`, wantCode: 400, wantMsg: "slug is required"},
		{name: "BlankSlugPositional", method: "blog.byslug", params: `[""]`, wantCode: 400, wantMsg: "slug is required"},
		{name: "MalformedPostID", method: "blog.related", params: `{"id":"42","categoryId":1}`, wantCode: 400, wantMsg: "invalid post id"},
		{name: "NegativeLimit", method: "blog.related", params: `{"id":"7d1c1c52-8f5e-4a43-9a53-5f0c1f8f0a01","categoryId":1,"limit":-1}`, wantCode: 400, wantMsg: "limit must be positive"},
		{name: "NegativePage", method: "blog.published", params: `{"filter":{"page":-2}}`, wantCode: 400, wantMsg: "page and pageSize must be positive"},
		{name: "WrongParamType", method: "blog.byslug", params: `{"slug":5}`, wantCode: zenrpc.InvalidParams},
		{name: "UnknownMethod", method: "blog.drafts", params: `{}`, wantCode: zenrpc.MethodNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := call(t, server, tt.method, tt.params)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			assert.Contains(t, resp.Error.Message, tt.wantMsg)
		})
	}
}

func TestNewError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{name: "Validation", err: fmt.Errorf("%w: title is required", blog.ErrValidation), wantCode: 400, wantMsg: "validation failed: title is required"},
		{name: "Precondition", err: fmt.Errorf("%w: in use", blog.ErrPreconditionFailed), wantCode: 400, wantMsg: "precondition failed: in use"},
		{name: "NotFound", err: fmt.Errorf("%w: post", blog.ErrNotFound), wantCode: 404, wantMsg: "not found: post"},
		{name: "Unknown", err: errors.New("connection reset"), wantCode: 500, wantMsg: "internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rpcErr *zenrpc.Error
			require.ErrorAs(t, newError(tt.err), &rpcErr)
			assert.Equal(t, tt.wantCode, rpcErr.Code)
			assert.Equal(t, tt.wantMsg, rpcErr.Message)
		})
	}
}

func TestBlogService_SMD(t *testing.T) {
	info := BlogService{}.SMD()

	for _, name := range []string{"Published", "BySlug", "Related", "Categories", "Tags"} {
		assert.Contains(t, info.Methods, name)
	}
	assert.Len(t, info.Methods["Related"].Parameters, 3)
}
