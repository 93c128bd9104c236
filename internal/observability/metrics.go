package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	usersCreatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "exercise_tracker",
		Subsystem: "users",
		Name:      "created_total",
		Help:      "Number of new user records created.",
	})
	exercisesLoggedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "exercise_tracker",
		Subsystem: "exercises",
		Name:      "logged_total",
		Help:      "Number of exercise entries recorded.",
	})
	lastExerciseGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "exercise_tracker",
		Subsystem: "exercises",
		Name:      "last_logged_timestamp_seconds",
		Help:      "Unix timestamp of the most recently dated exercise entry.",
	})
)

func init() {
	prometheus.MustRegister(usersCreatedTotal, exercisesLoggedTotal, lastExerciseGauge)
}

// RecordUserCreated counts a freshly inserted user record.
func RecordUserCreated() {
	usersCreatedTotal.Inc()
}

// RecordExerciseLogged counts a stored entry and advances the watermark.
func RecordExerciseLogged(ts time.Time) {
	exercisesLoggedTotal.Inc()
	if ts.IsZero() {
		return
	}
	lastExerciseGauge.Set(float64(ts.Unix()))
}
