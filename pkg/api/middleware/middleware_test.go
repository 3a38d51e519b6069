// MiSTer Launcher
// Copyright (c) 2026 The Zaparoo Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of MiSTer Launcher.
//
// MiSTer Launcher is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// MiSTer Launcher is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with MiSTer Launcher.  If not, see <http://www.gnu.org/licenses/>.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestIPFilter_IsAllowed(t *testing.T) {
	t.Parallel()

	filter := NewIPFilter([]string{"192.168.1.50", "10.0.0.0/8", "192.168.1.60:7498", "invalid"})

	tests := []struct {
		addr string
		want bool
	}{
		{"127.0.0.1:5000", true},
		{"[::1]:5000", true},
		{"192.168.1.50:1234", true},
		{"192.168.1.60:1234", true},
		{"10.20.30.40:1234", true},
		{"192.168.1.51:1234", false},
		{"172.16.0.1:1234", false},
		{"garbage", false},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, filter.IsAllowed(tt.addr))
		})
	}
}

func TestHTTPIPFilterMiddleware(t *testing.T) {
	t.Parallel()

	handler := HTTPIPFilterMiddleware(NewIPFilter(nil))(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/health", http.NoBody)
	req.RemoteAddr = "127.0.0.1:1234"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/health", http.NoBody)
	req.RemoteAddr = "192.168.1.20:1234"
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHTTPRateLimitMiddleware(t *testing.T) {
	t.Parallel()

	limiter := NewLaunchRateLimiter()
	handler := HTTPRateLimitMiddleware(limiter)(okHandler)

	send := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/launch", http.NoBody)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("127.0.0.1:1000"))
	assert.Equal(t, http.StatusTooManyRequests, send("127.0.0.1:1001"))
	assert.Equal(t, http.StatusOK, send("192.168.1.2:1000"))
	assert.Equal(t, 2, limiter.Len())
}

func TestIPRateLimiter_Cleanup(t *testing.T) {
	t.Parallel()

	limiter := NewIPRateLimiter(rate.Inf, 1)
	first := limiter.GetLimiter("10.0.0.1")
	assert.Same(t, first, limiter.GetLimiter("10.0.0.1"))

	limiter.Cleanup(time.Hour)
	assert.Equal(t, 1, limiter.Len())

	limiter.Cleanup(-time.Second)
	assert.Equal(t, 0, limiter.Len())
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	var seen string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody))
	_, err := uuid.Parse(seen)
	require.NoError(t, err)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))

	given := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.Header.Set(RequestIDHeader, given)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, given, seen)

	req = httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.Header.Set(RequestIDHeader, "not-a-uuid")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.NotEqual(t, "not-a-uuid", seen)
}
