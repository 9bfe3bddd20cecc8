package requestlog

import (
	"log/slog"
	"net/http"
	"time"

	"odooclient/internal/lib/sl"
	"odooclient/internal/lib/util"

	"github.com/go-chi/chi/v5/middleware"
)

// New logs every request with its status, size and duration. The
// facade has no caller authentication, so this is the whole access
// trail.
func New(log *slog.Logger) func(next http.Handler) http.Handler {
	mod := sl.Module("middleware.requestlog")
	log.With(mod).Info("request logging middleware initialized")

	return func(next http.Handler) http.Handler {

		fn := func(w http.ResponseWriter, r *http.Request) {
			id := middleware.GetReqID(r.Context())
			remote := util.ExtractIPAddress(r.RemoteAddr, r.Header.Get("X-Forwarded-For"))
			logger := log.With(
				mod,
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", remote),
				slog.String("request_id", id),
			)
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			t1 := time.Now()
			defer func() {
				logger.With(
					slog.Int("status", ww.Status()),
					slog.Int("size", ww.BytesWritten()),
					slog.Float64("duration", time.Since(t1).Seconds()),
				).Info("incoming request")
			}()

			ww.Header().Set("X-Request-ID", id)
			next.ServeHTTP(ww, r)
		}

		return http.HandlerFunc(fn)
	}
}
