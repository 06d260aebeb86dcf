package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestWithSuggestion(t *testing.T) {
	base := errors.New("something broke")
	err := WithSuggestion(base, "try turning it off and on again")

	if err.Error() != "something broke" {
		t.Errorf("Error() = %q, want %q", err.Error(), "something broke")
	}
	if !errors.Is(err, base) {
		t.Error("wrapped error should match the base via errors.Is")
	}
	if got := GetSuggestion(err); got != "try turning it off and on again" {
		t.Errorf("GetSuggestion() = %q", got)
	}
}

func TestGetSuggestion(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "nil",
			err:  nil,
			want: "",
		},
		{
			name: "not authenticated sentinel",
			err:  ErrNotAuthenticated,
			want: "SPOTIFY_ACCESS_TOKEN",
		},
		{
			name: "device not found sentinel",
			err:  ErrDeviceNotFound,
			want: "playerx devices",
		},
		{
			name: "device not found in backend payload",
			err:  errors.New("spotify api error 404: Device not found"),
			want: "playerx devices",
		},
		{
			name: "premium required",
			err:  fmt.Errorf("play: %w", ErrPremiumRequired),
			want: "Premium",
		},
		{
			name: "rate limited by status code",
			err:  errors.New("spotify api error 429: API rate limit exceeded"),
			want: "Wait a moment",
		},
		{
			name: "timeout sentinel",
			err:  fmt.Errorf("%w: context deadline exceeded", ErrTimeout),
			want: "internet connection",
		},
		{
			name: "unknown error",
			err:  errors.New("mystery"),
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetSuggestion(tt.err)
			if tt.want == "" {
				if got != "" {
					t.Errorf("GetSuggestion() = %q, want empty", got)
				}
				return
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("GetSuggestion() = %q, want substring %q", got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	if got := Format(nil); got != "" {
		t.Errorf("Format(nil) = %q, want empty", got)
	}

	plain := Format(errors.New("mystery"))
	if plain != "Error: mystery" {
		t.Errorf("Format() = %q", plain)
	}

	withHint := Format(ErrDeviceNotFound)
	if !strings.Contains(withHint, "Suggestion:") {
		t.Errorf("Format() = %q, want a suggestion block", withHint)
	}
}
