package main

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/diewo77/go-immo/internal/auth"
	"github.com/diewo77/go-immo/internal/handlers"
	"github.com/diewo77/go-immo/internal/middleware"
	"github.com/diewo77/go-immo/internal/reservation"
	"github.com/diewo77/go-immo/internal/view"
)

// App is the main application handler that sets up all routes.
type App struct {
	mux *http.ServeMux
	db  *gorm.DB
	api *reservation.Client
}

// NewApp creates a new application with all routes configured.
func NewApp(db *gorm.DB, api *reservation.Client) *App {
	app := &App{
		mux: http.NewServeMux(),
		db:  db,
		api: api,
	}
	view.SetLangResolver(middleware.LangFrom)
	view.SetThemeResolver(middleware.ThemeFrom)
	app.setupRoutes()
	return app
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Global middleware: auth context + preferences (language, theme)
	handler := auth.Middleware(middleware.Prefs(a.mux))
	handler.ServeHTTP(w, r)
}

// setupRoutes configures all application routes.
func (a *App) setupRoutes() {
	ah := handlers.NewAuthHandler(a.db)
	rh := handlers.NewReservationHandler(a.api)
	ch := handlers.NewClientHandler(a.db)
	ih := handlers.NewImmeubleHandler(a.db)
	dh := handlers.NewDashboardHandler(a.db, a.api)
	eh := handlers.NewExportHandler(a.api)

	// Public routes
	a.mux.HandleFunc("GET /{$}", a.landingPage)
	a.mux.HandleFunc("GET /login", ah.Login)
	a.mux.HandleFunc("POST /login", ah.Login)
	a.mux.HandleFunc("GET /signup", ah.Signup)
	a.mux.HandleFunc("POST /signup", ah.Signup)
	a.mux.HandleFunc("GET /logout", ah.Logout)
	a.mux.HandleFunc("POST /logout", ah.Logout)
	a.mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Authenticated routes
	a.mux.Handle("GET /dashboard", auth.RequireAuth(http.HandlerFunc(dh.Show)))

	// Reservations (remote API)
	a.mux.Handle("GET /reservations", auth.RequireAuth(http.HandlerFunc(rh.List)))
	a.mux.Handle("GET /reservations/new", auth.RequireAuth(http.HandlerFunc(rh.New)))
	a.mux.Handle("POST /reservations", auth.RequireAuth(http.HandlerFunc(rh.Create)))
	a.mux.Handle("GET /reservations/export", auth.RequireAuth(http.HandlerFunc(eh.Reservations)))
	a.mux.Handle("GET /reservations/{nbr}", auth.RequireAuth(http.HandlerFunc(rh.Show)))
	a.mux.Handle("GET /reservations/{nbr}/edit", auth.RequireAuth(http.HandlerFunc(rh.Edit)))
	a.mux.Handle("POST /reservations/{nbr}", auth.RequireAuth(http.HandlerFunc(rh.Update)))
	a.mux.Handle("GET /reservations/{nbr}/delete", auth.RequireAuth(http.HandlerFunc(rh.ConfirmDelete)))
	a.mux.Handle("POST /reservations/{nbr}/delete", auth.RequireAuth(http.HandlerFunc(rh.Delete)))

	// Clients (local registry)
	a.mux.Handle("GET /clients", auth.RequireAuth(http.HandlerFunc(ch.List)))
	a.mux.Handle("GET /clients/new", auth.RequireAuth(http.HandlerFunc(ch.New)))
	a.mux.Handle("POST /clients", auth.RequireAuth(http.HandlerFunc(ch.Create)))
	a.mux.Handle("GET /clients/{id}/edit", auth.RequireAuth(http.HandlerFunc(ch.Edit)))
	a.mux.Handle("POST /clients/{id}", auth.RequireAuth(http.HandlerFunc(ch.Update)))
	a.mux.Handle("POST /clients/{id}/delete", auth.RequireAuth(http.HandlerFunc(ch.Delete)))

	// Immeubles (local registry)
	a.mux.Handle("GET /immeubles", auth.RequireAuth(http.HandlerFunc(ih.List)))
	a.mux.Handle("GET /immeubles/new", auth.RequireAuth(http.HandlerFunc(ih.New)))
	a.mux.Handle("POST /immeubles", auth.RequireAuth(http.HandlerFunc(ih.Create)))
	a.mux.Handle("GET /immeubles/{id}/edit", auth.RequireAuth(http.HandlerFunc(ih.Edit)))
	a.mux.Handle("POST /immeubles/{id}", auth.RequireAuth(http.HandlerFunc(ih.Update)))
	a.mux.Handle("POST /immeubles/{id}/delete", auth.RequireAuth(http.HandlerFunc(ih.Delete)))

	// Static files
	a.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))
}

func (a *App) landingPage(w http.ResponseWriter, r *http.Request) {
	userID, loggedIn := auth.UserIDFromContext(r.Context())
	data := map[string]any{
		"IsLoggedIn": loggedIn,
		"UserID":     userID,
	}
	if err := view.Render(w, r, "index.html", data); err != nil {
		http.Error(w, "Failed to render template: "+err.Error(), http.StatusInternalServerError)
	}
}
