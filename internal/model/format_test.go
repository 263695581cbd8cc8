package model

import (
	"errors"
	"testing"
)

func TestParseQuality(t *testing.T) {
	tests := []struct {
		name    string
		label   string
		height  int
		wantErr bool
	}{
		{name: "standard", label: "720p", height: 720},
		{name: "surrounding spaces", label: " 1080p ", height: 1080},
		{name: "missing suffix", label: "720", wantErr: true},
		{name: "not a number", label: "hdp", wantErr: true},
		{name: "zero", label: "0p", wantErr: true},
		{name: "negative", label: "-144p", wantErr: true},
		{name: "empty", label: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			height, err := ParseQuality(tt.label)
			if tt.wantErr {
				if !errors.Is(err, ErrValidation) {
					t.Fatalf("expected ErrValidation, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if height != tt.height {
				t.Errorf("expected height %d, got %d", tt.height, height)
			}
		})
	}
}

func TestFormatOption_Label(t *testing.T) {
	opt := FormatOption{Height: 1080, Ext: "mp4"}
	if got := opt.Label(); got != "1080p" {
		t.Errorf("Label() = %s, expected 1080p", got)
	}
}

func TestIsStandardHeight(t *testing.T) {
	for _, h := range []int{144, 240, 360, 480, 720, 1080, 1440, 2160, 4320} {
		if !IsStandardHeight(h) {
			t.Errorf("expected %d to be standard", h)
		}
	}
	for _, h := range []int{0, 100, 540, 576, 1920} {
		if IsStandardHeight(h) {
			t.Errorf("expected %d not to be standard", h)
		}
	}
}

func TestStreamFormat_HasVideo(t *testing.T) {
	tests := []struct {
		vcodec   string
		expected bool
	}{
		{"avc1.64001F", true},
		{"vp9", true},
		{"none", false},
		{"", false},
	}

	for _, test := range tests {
		f := StreamFormat{VCodec: test.vcodec}
		if got := f.HasVideo(); got != test.expected {
			t.Errorf("HasVideo() with vcodec=%q = %v, expected %v", test.vcodec, got, test.expected)
		}
	}
}

func TestIsCancelled(t *testing.T) {
	wrapped := errors.Join(errors.New("context canceled"), ErrCancelled)
	if !IsCancelled(wrapped) {
		t.Error("expected wrapped ErrCancelled to be detected")
	}
	if IsCancelled(ErrDownload) {
		t.Error("ErrDownload must not be reported as cancelled")
	}
}
