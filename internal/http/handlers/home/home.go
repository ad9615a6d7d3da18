// Package home отдаёт корневую страницу: приветственный текст или
// HTML-панель управления каталогом, если она включена в конфиге.
package home

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/jayden648/shoesclean/internal/config"
	"github.com/jayden648/shoesclean/internal/lib/sl"
)

const welcome = "🦶 Selamat datang di Shoesclean API! Backend sudah enhanced dengan fitur CRUD lengkap, search, dan pagination."

//go:embed templates/dashboard.html
var templates embed.FS

var dashboard = template.Must(template.ParseFS(templates, "templates/dashboard.html"))

type page struct {
	APIBaseURL string
	Version    string
}

type Handler struct {
	log     *slog.Logger
	enabled bool
	data    page
}

// New создаёт обработчик. Пустой cfg.APIBaseURL означает тот же origin, что и у страницы.
func New(log *slog.Logger, cfg config.Dashboard, version string) *Handler {
	return &Handler{
		log:     log,
		enabled: cfg.Enabled,
		data:    page{APIBaseURL: cfg.APIBaseURL, Version: version},
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !h.enabled {
		render.PlainText(w, r, welcome)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dashboard.Execute(w, h.data); err != nil {
		h.log.Error("failed to render dashboard", slog.String("op", "handlers.home"), sl.Err(err))
	}
}
