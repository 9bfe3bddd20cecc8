package odoo

import (
	"log/slog"
	"net/http"

	"odooclient/internal/lib/api/response"
	apierrors "odooclient/internal/lib/errors"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// Search runs a model search with a JSON domain embedded in the path.
func Search(logger *slog.Logger, core Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.odoo.Search"

		log := logger.With(
			slog.String("op", op),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)

		model := chi.URLParam(r, "model")
		domain := chi.URLParam(r, "domain")
		if model == "" {
			apiErr := apierrors.NewBadRequestError("Model name is required")
			log.Warn("missing model parameter", slog.String("error_code", string(apiErr.Code)))
			w.WriteHeader(apiErr.HTTPStatus)
			render.JSON(w, r, response.ErrorFromAPIError(apiErr))
			return
		}

		log = log.With(slog.String("model", model))

		records, err := core.SearchModel(model, domain)
		if err != nil {
			apiErr := apierrors.NewBadRequestError("Invalid domain format")
			log.Warn("search failed",
				slog.String("domain", domain),
				slog.String("error", err.Error()),
				slog.String("error_code", string(apiErr.Code)),
			)
			w.WriteHeader(apiErr.HTTPStatus)
			render.JSON(w, r, response.ErrorFromAPIError(apiErr))
			return
		}

		render.JSON(w, r, response.Ok(records))
	}
}
