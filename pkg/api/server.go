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

// Package api is the local HTTP bridge used by frontend plugins to build
// the MiSTer menu and launch games.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ZaparooProject/mister-launcher/pkg/api/middleware"
	"github.com/ZaparooProject/mister-launcher/pkg/config"
	"github.com/ZaparooProject/mister-launcher/pkg/games"
	"github.com/ZaparooProject/mister-launcher/pkg/launcher"
	"github.com/ZaparooProject/mister-launcher/pkg/menu"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 5 * time.Second

// MenuSource builds candidates for a frontend selection.
type MenuSource interface {
	Candidates(ctx context.Context, sel menu.Selection) ([]games.Candidate, error)
}

// Launcher runs a launch, reporting notices to n.
type Launcher interface {
	LaunchNotify(ctx context.Context, c games.Candidate, n launcher.Notifier) error
}

// Env is everything the handlers need.
type Env struct {
	Menu        MenuSource
	Launcher    Launcher
	LaunchLimit *middleware.IPRateLimiter
	Version     string
	AllowedIPs  []string
}

func NewRouter(env *Env) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.HTTPIPFilterMiddleware(middleware.NewIPFilter(env.AllowedIPs)))
	r.Use(chimiddleware.NoCache)
	r.Use(chimiddleware.Timeout(config.APIRequestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{middleware.RequestIDHeader},
	}))

	limiter := env.LaunchLimit
	if limiter == nil {
		limiter = middleware.NewLaunchRateLimiter()
	}

	r.Get("/api/health", handleHealth(env))
	r.Post("/api/menu", handleMenu(env))
	r.With(middleware.HTTPRateLimitMiddleware(limiter)).
		Post("/api/launch", handleLaunch(env))

	return r
}

// Serve runs the bridge on listen until ctx is done.
func Serve(ctx context.Context, listen string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              listen,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Msgf("bridge listening on %s", listen)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("error starting http server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error stopping http server: %w", err)
	}
	log.Info().Msg("bridge stopped")
	return nil
}
