package middlewarectx

import (
	"net/http"

	"github.com/go-chi/cors"
)

// DefaultCORSConfig разрешает методы и заголовки API для указанных источников,
// пустой список означает любой источник.
func DefaultCORSConfig(origins []string) cors.Options {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         300,
	}
}

// CORS проставляет заголовки Access-Control-* через go-chi/cors.
// Preflight библиотека пропускает дальше, здесь он завершается ответом 204.
func CORS(opts cors.Options) func(http.Handler) http.Handler {
	opts.OptionsPassthrough = true
	withHeaders := cors.Handler(opts)

	return func(next http.Handler) http.Handler {
		return withHeaders(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		}))
	}
}
