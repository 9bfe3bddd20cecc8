package odoo

import (
	"log/slog"
	"net/http"

	"odooclient/internal/lib/api/response"
	apierrors "odooclient/internal/lib/errors"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// ModelInfo returns a static field summary for a model. The full
// fields_get introspection call is heavy, this endpoint only names the
// columns every model carries.
func ModelInfo(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.odoo.ModelInfo"

		log := logger.With(
			slog.String("op", op),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)

		model := chi.URLParam(r, "model")
		if model == "" {
			apiErr := apierrors.NewBadRequestError("Model name is required")
			log.Warn("missing model parameter", slog.String("error_code", string(apiErr.Code)))
			w.WriteHeader(apiErr.HTTPStatus)
			render.JSON(w, r, response.ErrorFromAPIError(apiErr))
			return
		}

		render.JSON(w, r, response.Ok(map[string]interface{}{
			"model":  model,
			"fields": []string{"id", "name", "create_date", "write_date"},
		}))
	}
}
