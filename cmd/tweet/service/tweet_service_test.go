package service

import (
	"strings"
	"testing"

	"vidtube.com/pkg/errno"
)

func TestValidateTweetContent(t *testing.T) {
	cases := []struct {
		name    string
		content string
		wantErr bool
	}{
		{"valid", "hello", false},
		{"empty", "", true},
		{"whitespace", "   ", true},
		{"at limit", strings.Repeat("a", 280), false},
		{"over limit", strings.Repeat("a", 281), true},
		{"multibyte at limit", strings.Repeat("日", 280), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateTweetContent(tc.content)
			if tc.wantErr && err == nil {
				t.Fatal("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.wantErr && errno.ConvertErr(err).ErrCode != errno.ParamErrCode {
				t.Fatalf("expected param error, got %v", err)
			}
		})
	}
}
