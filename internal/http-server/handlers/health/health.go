package health

import (
	"log/slog"
	"net/http"

	"odooclient/internal/lib/api/response"

	"github.com/go-chi/render"
)

// Health reports liveness of the facade itself. It deliberately does
// not touch the remote instance, a dead Odoo must not fail the probe.
func Health(_ *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, response.OkWithMessage(map[string]string{
			"status": "OK",
		}, "Odoo facade is running"))
	}
}
