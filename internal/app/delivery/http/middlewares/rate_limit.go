package middlewares

import (
	"booking-service/internal/pkg/exceptions"
	"booking-service/internal/pkg/utils"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// MutationRateLimit is a tighter per-IP budget for the endpoints that write
// to the calendar; the global limiter in the router covers reads.
func (m *Middlewares) MutationRateLimit() func(next http.Handler) http.Handler {
	return httprate.Limit(
		m.InternalConfig.App.MutationRequestsPerMinute,
		time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrRateLimited(errors.New("mutation budget exhausted")))
		}),
	)
}
