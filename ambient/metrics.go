package ambient

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	mutedGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "storyroom_ambient_muted",
		Help: "1 when ambient audio is muted.",
	})
	trackVolume = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "storyroom_ambient_track_volume",
		Help: "Current volume of ambient track.",
	}, []string{"track"})
	switchCount = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storyroom_ambient_switches_total",
		Help: "Number of ambient context switches which changed active track.",
	})
	playFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storyroom_ambient_play_failures_total",
		Help: "Number of failed attempts to start ambient playback.",
	})
	supersededFades = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storyroom_ambient_fades_superseded_total",
		Help: "Number of fades cancelled by a newer fade on the same track.",
	})
)

// engines start muted
func init() {
	mutedGauge.Set(1)
}
