package service

import (
	"testing"

	"vidtube.com/pkg/errno"
)

func TestValidateTargetKind(t *testing.T) {
	for _, kind := range []string{"video", "comment", "tweet"} {
		if err := validateTargetKind(kind); err != nil {
			t.Fatalf("kind %q should be valid: %v", kind, err)
		}
	}
	for _, kind := range []string{"", "playlist", "Video", "VIDEO"} {
		err := validateTargetKind(kind)
		if err == nil {
			t.Fatalf("kind %q should be rejected", kind)
		}
		if errno.ConvertErr(err).ErrCode != errno.ParamErrCode {
			t.Fatalf("kind %q: expected param error, got %v", kind, err)
		}
	}
}
