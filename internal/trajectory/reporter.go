package trajectory

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Reporter is the progress sink the driver may call zero or more times
// during a run. Nothing a Reporter does affects the returned Result.
type Reporter interface {
	Start(totalSteps, points int)
	Clamped(requested, granted int)
	Sample(index int, t float64)
	Done(steps, points int, elapsed time.Duration)
}

// NopReporter discards all progress.
type NopReporter struct{}

func (NopReporter) Start(int, int)               {}
func (NopReporter) Clamped(int, int)             {}
func (NopReporter) Sample(int, float64)          {}
func (NopReporter) Done(int, int, time.Duration) {}

// LogReporter reports progress and timing through a zerolog logger.
// Per-sample events go to debug level so a default-level logger only shows
// the run summary.
type LogReporter struct {
	log zerolog.Logger
}

func NewLogReporter(w io.Writer) *LogReporter {
	return &LogReporter{log: zerolog.New(w).With().Timestamp().Logger()}
}

func (r *LogReporter) Start(totalSteps, points int) {
	r.log.Info().Int("steps", totalSteps).Int("points", points).Msg("trajectory started")
}

func (r *LogReporter) Clamped(requested, granted int) {
	r.log.Info().Int("requested", requested).Int("granted", granted).
		Msg("sample count clamped to available steps")
}

func (r *LogReporter) Sample(index int, t float64) {
	r.log.Debug().Int("sample", index).Float64("t", t).Msg("sample recorded")
}

func (r *LogReporter) Done(steps, points int, elapsed time.Duration) {
	rate := 0.0
	if elapsed > 0 {
		rate = float64(steps) / elapsed.Seconds()
	}
	r.log.Info().
		Int("steps", steps).
		Int("points", points).
		Dur("elapsed", elapsed).
		Float64("steps_per_sec", rate).
		Msg("trajectory complete")
}
