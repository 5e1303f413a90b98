package service

import (
	"strings"
	"testing"
)

func TestValidatePlaylistMeta(t *testing.T) {
	cases := []struct {
		name        string
		playlist    string
		description string
		wantErr     bool
	}{
		{"valid", "road trips", "van life footage", false},
		{"empty name", "", "van life footage", true},
		{"blank name", "   ", "van life footage", true},
		{"empty description", "road trips", "", true},
		{"blank description", "road trips", "   ", true},
		{"name too long", strings.Repeat("a", 129), "van life footage", true},
		{"name at limit", strings.Repeat("a", 128), "van life footage", false},
		{"description too long", "road trips", strings.Repeat("b", 1025), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validatePlaylistMeta(tc.playlist, tc.description)
			if tc.wantErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
