package handlers

import (
	"net/http"

	"github.com/diewo77/go-immo/internal/middleware"
	"github.com/diewo77/go-immo/internal/view"
)

// renderTemplate uses the shared view.Render to ensure layout, funcs and
// caching, and injects the pending flash message if any.
func renderTemplate(w http.ResponseWriter, r *http.Request, name string, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}
	if _, ok := data["Flash"]; !ok {
		if msg, isErr := middleware.PopFlash(w, r); msg != "" {
			if isErr {
				data["FlashError"] = msg
			} else {
				data["Flash"] = msg
			}
		}
	}
	if err := view.Render(w, r, name, data); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("template error"))
	}
}
