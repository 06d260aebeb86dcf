package core

import "context"

// Player defines the interface for playback control against a single target
// device. Implementations hold no playback state of their own; every call is
// one request/response against the backend.
type Player interface {
	// Playback control
	Play(ctx context.Context) error
	PlayURI(ctx context.Context, uri string) error
	PlayURIs(ctx context.Context, uris []string) error
	Pause(ctx context.Context) error
	Next(ctx context.Context) error
	Prev(ctx context.Context) error
	Seek(ctx context.Context, positionMs int) error

	// Mode and volume control
	Shuffle(ctx context.Context, on bool) error
	Repeat(ctx context.Context, mode RepeatMode) error
	Volume(ctx context.Context, percent int) error

	// State queries
	GetState(ctx context.Context) (*PlaybackState, error)
	GetDevices(ctx context.Context) ([]Device, error)
}
