package player

import (
	"testing"
	"time"

	"github.com/PIAAR/PlayerXSpotty/internal/core"
	"github.com/PIAAR/PlayerXSpotty/internal/spotify/client"
)

func TestConvertTrack(t *testing.T) {
	wireTrack := &client.Track{
		ID:         "track123",
		URI:        "spotify:track:track123",
		Name:       "Test Song",
		DurationMS: 180000,
		Artists: []client.Artist{
			{Name: "Artist One"},
			{Name: "Artist Two"},
		},
		Album: client.Album{
			Name: "Test Album",
		},
	}

	coreTrack := convertTrack(wireTrack)

	if coreTrack.ID != "track123" {
		t.Errorf("ID = %q, want %q", coreTrack.ID, "track123")
	}
	if coreTrack.Title != "Test Song" {
		t.Errorf("Title = %q, want %q", coreTrack.Title, "Test Song")
	}
	if coreTrack.Artist != "Artist One" {
		t.Errorf("Artist = %q, want %q", coreTrack.Artist, "Artist One")
	}
	if len(coreTrack.Artists) != 2 {
		t.Errorf("Artists count = %d, want 2", len(coreTrack.Artists))
	}
	if coreTrack.Album != "Test Album" {
		t.Errorf("Album = %q, want %q", coreTrack.Album, "Test Album")
	}
	if coreTrack.Duration != 180*time.Second {
		t.Errorf("Duration = %v, want %v", coreTrack.Duration, 180*time.Second)
	}
}

func TestConvertEpisode(t *testing.T) {
	wireTrack := &client.Track{
		ID:         "ep123",
		URI:        "spotify:episode:ep123",
		Name:       "Episode 42",
		DurationMS: 2700000,
		Show: &client.Show{
			Name:      "Test Show",
			Publisher: "Test Publisher",
		},
	}

	coreTrack := convertTrack(wireTrack)

	if coreTrack.Album != "Test Show" {
		t.Errorf("Album = %q, want the show name", coreTrack.Album)
	}
	if coreTrack.Artist != "Test Publisher" {
		t.Errorf("Artist = %q, want the publisher", coreTrack.Artist)
	}
}

func TestConvertDevice(t *testing.T) {
	vol := 65
	wireDevice := &client.Device{
		ID:            "device123",
		Name:          "My Speaker",
		Type:          "Speaker",
		IsActive:      true,
		VolumePercent: &vol,
	}

	coreDevice := convertDevice(wireDevice)

	if coreDevice.ID != "device123" {
		t.Errorf("ID = %q, want %q", coreDevice.ID, "device123")
	}
	if coreDevice.Name != "My Speaker" {
		t.Errorf("Name = %q, want %q", coreDevice.Name, "My Speaker")
	}
	if coreDevice.Type != core.DeviceTypeSpeaker {
		t.Errorf("Type = %q, want %q", coreDevice.Type, core.DeviceTypeSpeaker)
	}
	if !coreDevice.IsActive {
		t.Error("IsActive = false, want true")
	}
	if coreDevice.Volume == nil || *coreDevice.Volume != 65 {
		t.Errorf("Volume = %v, want 65", coreDevice.Volume)
	}
}

func TestConvertDeviceUnknownTypeIsHeadless(t *testing.T) {
	// librespot and other daemons report types the Web API does not
	// enumerate.
	for _, wireType := range []string{"Avr", "CastAudio", "Unknown", ""} {
		d := convertDevice(&client.Device{ID: "d1", Name: "daemon", Type: wireType})
		if d.Type != core.DeviceTypeHeadless {
			t.Errorf("Type for %q = %q, want %q", wireType, d.Type, core.DeviceTypeHeadless)
		}
	}
}

func TestConvertNilTrack(t *testing.T) {
	if convertTrack(nil) != nil {
		t.Error("Expected nil for nil input")
	}
}

func TestConvertNilDevice(t *testing.T) {
	if convertDevice(nil) != nil {
		t.Error("Expected nil for nil input")
	}
}

func TestSetDevice(t *testing.T) {
	c, err := client.New("TOKEN")
	if err != nil {
		t.Fatal(err)
	}

	p := New(c)
	if p.Device() != "" {
		t.Errorf("Device() = %q, want empty", p.Device())
	}

	p.SetDevice("DEV1")
	if p.Device() != "DEV1" {
		t.Errorf("Device() = %q, want DEV1", p.Device())
	}
}
