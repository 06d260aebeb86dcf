package core

// DeviceType indicates the kind of playback device.
type DeviceType string

const (
	DeviceTypeSpeaker  DeviceType = "speaker"
	DeviceTypeComputer DeviceType = "computer"
	DeviceTypePhone    DeviceType = "phone"
	DeviceTypeTV       DeviceType = "tv"
	DeviceTypeHeadless DeviceType = "headless"
)

// Device represents a Spotify Connect playback endpoint registered with the
// backend. The ID is opaque; the backend validates it, not us.
type Device struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Type       DeviceType `json:"type"`
	IsActive   bool       `json:"is_active"`
	Restricted bool       `json:"restricted"`
	Volume     *int       `json:"volume,omitempty"`
}
