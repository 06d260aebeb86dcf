package watch

import (
	"testing"

	"github.com/PIAAR/PlayerXSpotty/internal/core"
)

func state(uri string, playing bool, volume int, deviceID string) *core.PlaybackState {
	s := &core.PlaybackState{
		IsPlaying: playing,
		Volume:    volume,
	}
	if uri != "" {
		s.Track = &core.Track{URI: uri, Title: "t"}
	}
	if deviceID != "" {
		s.Device = &core.Device{ID: deviceID}
	}
	return s
}

func eventTypes(events []Event) []EventType {
	types := make([]EventType, len(events))
	for i, e := range events {
		types[i] = e.Type
	}
	return types
}

func TestDiffStates(t *testing.T) {
	tests := []struct {
		name string
		prev *core.PlaybackState
		curr *core.PlaybackState
		want []EventType
	}{
		{
			name: "nil current",
			prev: state("spotify:track:a", true, 50, "d1"),
			curr: nil,
			want: nil,
		},
		{
			name: "first poll with track",
			prev: nil,
			curr: state("spotify:track:a", true, 50, "d1"),
			want: []EventType{EventTrackChange},
		},
		{
			name: "first poll idle",
			prev: nil,
			curr: state("", false, 0, ""),
			want: nil,
		},
		{
			name: "no change",
			prev: state("spotify:track:a", true, 50, "d1"),
			curr: state("spotify:track:a", true, 50, "d1"),
			want: nil,
		},
		{
			name: "track change",
			prev: state("spotify:track:a", true, 50, "d1"),
			curr: state("spotify:track:b", true, 50, "d1"),
			want: []EventType{EventTrackChange},
		},
		{
			name: "pause",
			prev: state("spotify:track:a", true, 50, "d1"),
			curr: state("spotify:track:a", false, 50, "d1"),
			want: []EventType{EventPause},
		},
		{
			name: "resume",
			prev: state("spotify:track:a", false, 50, "d1"),
			curr: state("spotify:track:a", true, 50, "d1"),
			want: []EventType{EventResume},
		},
		{
			name: "volume change",
			prev: state("spotify:track:a", true, 50, "d1"),
			curr: state("spotify:track:a", true, 70, "d1"),
			want: []EventType{EventVolumeChange},
		},
		{
			name: "device change",
			prev: state("spotify:track:a", true, 50, "d1"),
			curr: state("spotify:track:a", true, 50, "d2"),
			want: []EventType{EventDeviceChange},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := eventTypes(diffStates(tt.prev, tt.curr))
			if len(got) != len(tt.want) {
				t.Fatalf("events = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("event[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
