// Proyecto Final - Media Catalog and Watch Statistics
// Copyright 2026 Kenneth Romero Lopez (KennethRomeroLopez)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/KennethRomeroLopez/proyecto-final

// Package api provides the HTTP surface: chi routing, form handlers,
// and the JSON response envelope.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"

	"github.com/KennethRomeroLopez/proyecto-final/internal/logging"
	"github.com/KennethRomeroLopez/proyecto-final/internal/metrics"
	"github.com/KennethRomeroLopez/proyecto-final/internal/middleware"
)

// NewRouter wires every route behind the global middleware stack.
//
// Route tiers:
//   - public: landing, register, login
//   - authenticated: catalogs, marks, lists, search, statistics
//   - admin: catalog and account management
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to all routes in order.
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(requestLogger)
	r.Use(httprate.LimitByIP(h.config.Server.RateLimit, h.config.Server.RateLimitWindow))
	r.Use(middleware.Prometheus)
	r.Use(h.sessions.Authenticate)

	// Public routes.
	r.Get("/", h.Home)
	r.Get("/register", h.RegisterPage)
	r.Post("/register", h.Register)
	r.Get("/login", h.LoginPage)
	r.Post("/login", h.Login)

	// Any logged-in user.
	r.Group(func(r chi.Router) {
		r.Use(h.sessions.RequireAuth)

		r.Get("/logout", h.Logout)
		r.Get("/contents", h.Contents)
		r.Get("/catalogo_peliculas", h.CatalogoPeliculas)
		r.Get("/catalogo_series", h.CatalogoSeries)
		r.Get("/busqueda", h.Busqueda)
		r.Post("/busqueda", h.Busqueda)
		r.Get("/favoritas", h.Favoritas)
		r.Get("/vistas", h.Vistas)
		r.Get("/estadisticas", h.Estadisticas)

		// The catalog pages link marks as plain anchors, so GET stays
		// supported alongside POST.
		for path, handler := range map[string]http.HandlerFunc{
			"/marcar_pelicula_favorita/{id}": h.MarcarPeliculaFavorita,
			"/marcar_pelicula_vista/{id}":    h.MarcarPeliculaVista,
			"/marcar_serie_favorita/{id}":    h.MarcarSerieFavorita,
			"/marcar_serie_vista/{id}":       h.MarcarSerieVista,
		} {
			r.Get(path, handler)
			r.Post(path, handler)
		}
	})

	// Administrators only. RequireAdmin redirects everyone else to
	// /contents with a flash notice.
	r.Group(func(r chi.Router) {
		r.Use(h.sessions.RequireAdmin)

		r.Get("/admin", h.Admin)
		r.Get("/gestion_peliculas", h.GestionPeliculas)
		r.Post("/gestion_peliculas", h.CrearPelicula)
		r.Get("/gestion_series", h.GestionSeries)
		r.Post("/gestion_series", h.CrearSerie)
		r.Get("/editar_peliculas/{id}", h.EditarPeliculasPage)
		r.Post("/editar_peliculas/{id}", h.EditarPeliculas)
		r.Get("/editar_series/{id}", h.EditarSeriesPage)
		r.Post("/editar_series/{id}", h.EditarSeries)
		r.Get("/eliminar_peliculas/{id}", h.EliminarPeliculas)
		r.Get("/eliminar_series/{id}", h.EliminarSeries)
		r.Get("/gestion_usuarios", h.GestionUsuarios)
		r.Post("/gestion_usuarios", h.CrearUsuario)
		r.Get("/editar_usuarios/{id}", h.EditarUsuariosPage)
		r.Post("/editar_usuarios/{id}", h.EditarUsuarios)
		r.Get("/eliminar_usuarios/{id}", h.EliminarUsuarios)
	})

	// Operational endpoints.
	r.Get("/api/v1/health", h.Health)
	r.Get("/api/v1/health/live", h.HealthLive)
	r.Handle("/metrics", metrics.Handler())

	return r
}

// requestLogger emits one structured line per request, correlated by
// request id.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		logging.Ctx(r.Context()).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration", time.Since(start)).
			Str("remote", r.RemoteAddr).
			Msg("HTTP request")
	})
}
