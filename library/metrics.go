package library

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	storiesLoaded = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "storyroom_stories_loaded",
		Help: "Number of stories available after the last load",
	})

	storiesSkipped = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "storyroom_stories_skipped",
		Help: "Number of story files skipped during the last load",
	})

	loadDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "storyroom_stories_load_duration_seconds",
		Help:    "Time spent loading stories",
		Buckets: prometheus.ExponentialBuckets(0.001, 4, 8),
	})
)
