package odoo

import (
	"errors"
	"log/slog"
	"net/http"

	"odooclient/internal/lib/api/request"
	"odooclient/internal/lib/api/response"
	apierrors "odooclient/internal/lib/errors"

	"github.com/go-chi/render"
)

// Execute is the generic read endpoint: model, domain, fields and
// limit from the body, search_read against the remote instance.
func Execute(logger *slog.Logger, core Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.odoo.Execute"

		log := logger.With(
			slog.String("op", op),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)

		req, err := request.Decode(r)
		if err != nil {
			message := "Invalid request body"
			if errors.Is(err, request.ErrEmptyBody) {
				message = "Request body is empty"
			}
			apiErr := apierrors.NewBadRequestError(message)
			log.Warn("failed to decode request",
				slog.String("error", err.Error()),
				slog.String("error_code", string(apiErr.Code)),
			)
			w.WriteHeader(apiErr.HTTPStatus)
			render.JSON(w, r, response.ErrorFromAPIError(apiErr))
			return
		}

		log = log.With(slog.String("model", req.Model))

		records, err := core.ExecuteQuery(req.Model, req.Domain, req.Fields, req.Limit)
		if err != nil {
			apiErr := apierrors.NewUpstreamError("ExecuteQuery")
			log.Error("query failed",
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
