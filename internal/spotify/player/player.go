package player

import (
	"context"
	"time"

	"github.com/PIAAR/PlayerXSpotty/internal/core"
	"github.com/PIAAR/PlayerXSpotty/internal/spotify/client"
)

// Player implements core.Player on top of the Web API client. An optional
// device ID scopes every command to one Connect endpoint; when empty the
// backend routes commands to the currently active device.
type Player struct {
	client   *client.Client
	deviceID string
}

// New creates a new player.
func New(c *client.Client) *Player {
	return &Player{client: c}
}

// SetDevice sets the target device for playback commands.
func (p *Player) SetDevice(deviceID string) {
	p.deviceID = deviceID
}

// Device returns the current target device ID.
func (p *Player) Device() string {
	return p.deviceID
}

// Play starts or resumes playback.
func (p *Player) Play(ctx context.Context) error {
	return p.client.Play(ctx, p.deviceID, nil)
}

// PlayURI starts playback of a single track or episode URI.
func (p *Player) PlayURI(ctx context.Context, uri string) error {
	return p.PlayURIs(ctx, []string{uri})
}

// PlayURIs starts playback of an ordered sequence of URIs.
func (p *Player) PlayURIs(ctx context.Context, uris []string) error {
	return p.client.Play(ctx, p.deviceID, &client.PlayOptions{
		URIs: uris,
	})
}

// PlayContext starts playback of a context (album, playlist, show) at a
// specific position.
func (p *Player) PlayContext(ctx context.Context, contextURI string, offset int) error {
	return p.client.Play(ctx, p.deviceID, &client.PlayOptions{
		ContextURI: contextURI,
		Offset:     &client.PlayOffset{Position: offset},
	})
}

// Pause pauses playback.
func (p *Player) Pause(ctx context.Context) error {
	return p.client.Pause(ctx, p.deviceID)
}

// Next skips to the next track.
func (p *Player) Next(ctx context.Context) error {
	return p.client.Next(ctx, p.deviceID)
}

// Prev skips to the previous track.
func (p *Player) Prev(ctx context.Context) error {
	return p.client.Previous(ctx, p.deviceID)
}

// Seek seeks to a position in the current track.
func (p *Player) Seek(ctx context.Context, positionMs int) error {
	return p.client.Seek(ctx, positionMs, p.deviceID)
}

// Volume sets the playback volume (0-100).
func (p *Player) Volume(ctx context.Context, percent int) error {
	return p.client.SetVolume(ctx, percent, p.deviceID)
}

// Shuffle sets the shuffle mode.
func (p *Player) Shuffle(ctx context.Context, on bool) error {
	return p.client.SetShuffle(ctx, on, p.deviceID)
}

// Repeat sets the repeat mode.
func (p *Player) Repeat(ctx context.Context, mode core.RepeatMode) error {
	return p.client.SetRepeat(ctx, string(mode), p.deviceID)
}

// AddToQueue adds an item to the playback queue.
func (p *Player) AddToQueue(ctx context.Context, uri string) error {
	return p.client.AddToQueue(ctx, uri, p.deviceID)
}

// TransferPlayback transfers playback to a different device.
func (p *Player) TransferPlayback(ctx context.Context, deviceID string, play bool) error {
	return p.client.TransferPlayback(ctx, deviceID, play)
}

// GetState returns the current playback state.
func (p *Player) GetState(ctx context.Context) (*core.PlaybackState, error) {
	state, err := p.client.GetPlaybackState(ctx)
	if err != nil {
		return nil, err
	}

	if state == nil {
		return &core.PlaybackState{}, nil
	}

	coreState := &core.PlaybackState{
		IsPlaying: state.IsPlaying,
		Shuffle:   state.ShuffleState,
		Repeat:    core.RepeatMode(state.RepeatState),
		Progress:  time.Duration(state.ProgressMS) * time.Millisecond,
	}

	if state.Device.VolumePercent != nil {
		coreState.Volume = *state.Device.VolumePercent
	}

	if state.Device.ID != "" {
		coreState.Device = convertDevice(&state.Device)
	}

	if state.Item != nil {
		coreState.Track = convertTrack(state.Item)
	}

	return coreState, nil
}

// GetDevices returns the user's available playback devices.
func (p *Player) GetDevices(ctx context.Context) ([]core.Device, error) {
	devices, err := p.client.GetDevices(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]core.Device, len(devices))
	for i, d := range devices {
		result[i] = *convertDevice(&d)
	}
	return result, nil
}

// convertTrack converts a wire track to a core track. Episodes carry their
// show name in the album slot.
func convertTrack(t *client.Track) *core.Track {
	if t == nil {
		return nil
	}

	artists := make([]string, len(t.Artists))
	for i, a := range t.Artists {
		artists[i] = a.Name
	}

	artist := ""
	if len(artists) > 0 {
		artist = artists[0]
	}

	album := t.Album.Name
	if t.Show != nil {
		album = t.Show.Name
		if artist == "" {
			artist = t.Show.Publisher
		}
	}

	return &core.Track{
		ID:       t.ID,
		URI:      t.URI,
		Title:    t.Name,
		Artist:   artist,
		Artists:  artists,
		Album:    album,
		Duration: time.Duration(t.DurationMS) * time.Millisecond,
	}
}

// convertDevice converts a wire device to a core device. Daemons such as
// librespot report nonstandard types; those map to headless.
func convertDevice(d *client.Device) *core.Device {
	if d == nil {
		return nil
	}

	var deviceType core.DeviceType
	switch d.Type {
	case "Computer":
		deviceType = core.DeviceTypeComputer
	case "Smartphone":
		deviceType = core.DeviceTypePhone
	case "Speaker":
		deviceType = core.DeviceTypeSpeaker
	case "TV":
		deviceType = core.DeviceTypeTV
	default:
		deviceType = core.DeviceTypeHeadless
	}

	return &core.Device{
		ID:         d.ID,
		Name:       d.Name,
		Type:       deviceType,
		IsActive:   d.IsActive,
		Restricted: d.IsRestricted,
		Volume:     d.VolumePercent,
	}
}

// Ensure Player implements core.Player
var _ core.Player = (*Player)(nil)
