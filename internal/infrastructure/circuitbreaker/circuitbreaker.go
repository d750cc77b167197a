package circuitbreaker

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"
)

// Timeout is how long the breaker stays open before letting a probe through.
const Timeout = 30 * time.Second

// CreateCircuitBreaker trips after at least 3 requests with a 60% failure ratio.
// isSuccessful decides which errors count as failures; nil counts every error.
func CreateCircuitBreaker[T any](name string, isSuccessful func(err error) bool) *gobreaker.CircuitBreaker[T] {
	var st gobreaker.Settings
	st.Name = name
	st.Timeout = Timeout
	st.ReadyToTrip = func(counts gobreaker.Counts) bool {
		failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
		return counts.Requests >= 3 && failureRatio >= 0.6
	}
	st.IsSuccessful = isSuccessful
	st.OnStateChange = func(name string, from gobreaker.State, to gobreaker.State) {
		log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state changed")
	}

	cb := gobreaker.NewCircuitBreaker[T](st)

	return cb
}
