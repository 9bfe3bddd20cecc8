package timeout

import (
	"net/http"
	"time"
)

// Timeout aborts request handling after the given number of seconds.
func Timeout(seconds int) func(next http.Handler) http.Handler {
	duration := time.Duration(seconds) * time.Second
	return func(next http.Handler) http.Handler {
		return http.TimeoutHandler(next, duration, "request timed out")
	}
}
