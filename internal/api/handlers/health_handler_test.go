package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPing(t *testing.T) {
	app := newTestApp(&fakeRecipeService{}, fakePinger{})

	status, body := do(t, app, http.MethodGet, "/api/ping", "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"message":"pong"}`, body)
}

func TestReady(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
		wantBody   string
	}{
		{name: "store up", wantStatus: http.StatusOK, wantBody: `{"status":"ok"}`},
		{name: "store down", pingErr: errors.New("connection refused"), wantStatus: http.StatusServiceUnavailable, wantBody: `{"detail":"Storage unavailable"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(&fakeRecipeService{}, fakePinger{err: tt.pingErr})

			status, body := do(t, app, http.MethodGet, "/healthz", "")
			assert.Equal(t, tt.wantStatus, status)
			assert.JSONEq(t, tt.wantBody, body)
		})
	}
}
