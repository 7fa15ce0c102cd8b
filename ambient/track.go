package ambient

import (
	"time"

	"storyroom/common"
)

// DefaultTrack is the key of the track used for contexts without their own
// audio. It can never be a room id.
const DefaultTrack = "~default"

type track struct {
	key     string
	src     string
	player  Player
	playing bool
	state   common.TrackState
	volume  float64
	fade    *fade
}

// current returns volume as it should be at the given moment taking running
// fade into account.
func (t *track) current(now time.Time) float64 {
	if t.fade == nil {
		return t.volume
	}
	v, _ := t.fade.at(now)
	return v
}

func (t *track) setVolume(v float64) {
	t.volume = v
	if t.player != nil {
		t.player.SetVolume(v)
	}
	trackVolume.WithLabelValues(t.key).Set(v)
}

// TrackSnapshot describes a single track.
type TrackSnapshot struct {
	Key     string            `json:"key"`
	Source  string            `json:"source"`
	State   common.TrackState `json:"state"`
	Volume  float64           `json:"volume"`
	Playing bool              `json:"playing"`
}

func (t *track) snapshot() TrackSnapshot {
	return TrackSnapshot{
		Key:     t.key,
		Source:  t.src,
		State:   t.state,
		Volume:  t.volume,
		Playing: t.playing,
	}
}
