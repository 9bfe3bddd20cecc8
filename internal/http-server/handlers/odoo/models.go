package odoo

import (
	"log/slog"
	"net/http"

	"odooclient/internal/lib/api/response"
	apierrors "odooclient/internal/lib/errors"

	"github.com/go-chi/render"
)

// Models lists every model installed on the remote instance.
func Models(logger *slog.Logger, core Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.odoo.Models"

		log := logger.With(
			slog.String("op", op),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)

		models, err := core.ListModels()
		if err != nil {
			apiErr := apierrors.NewUpstreamError("ListModels")
			log.Error("failed to list models",
				slog.String("error", err.Error()),
				slog.String("error_code", string(apiErr.Code)),
			)
			w.WriteHeader(apiErr.HTTPStatus)
			render.JSON(w, r, response.ErrorFromAPIError(apiErr))
			return
		}

		render.JSON(w, r, response.Ok(models))
	}
}
