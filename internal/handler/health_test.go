package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubPool struct {
	pingErr error
}

func (p *stubPool) Ping(ctx context.Context) error { return p.pingErr }
func (p *stubPool) Close()                         {}

func TestHandleHealthz(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)

	HandleHealthz()(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHandleReadyz_DatabaseUp(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)

	HandleReadyz(&stubPool{})(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleReadyz_DatabaseDown(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)

	HandleReadyz(&stubPool{pingErr: errors.New("connection refused")})(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "database connection failed")
}
