package download

import (
	"testing"
	"time"

	"github.com/ytget/ytgrab/internal/model"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestProgressUnknownTotal(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	tr := newProgressTracker(clock.now)

	updates := []model.TransferUpdate{
		{Downloaded: 100, Filename: "v.mp4"},
		{Downloaded: 300, Filename: "v.mp4"},
		{Downloaded: 200, Filename: "v.mp4"}, // out of order
		{Downloaded: 500, Total: 1000, Filename: "v.mp4"},
	}

	var last int64
	for i, u := range updates {
		clock.advance(time.Second)
		p := tr.Update(u)

		if p.Downloaded < last {
			t.Errorf("update %d: bytes went back from %d to %d", i, last, p.Downloaded)
		}
		last = p.Downloaded

		if u.Total == 0 {
			if p.Percent != 0 || p.HasTotal() {
				t.Errorf("update %d: expected 0%% with unknown total, got %v (total %d)", i, p.Percent, p.Total)
			}
		}
	}

	p := tr.Update(model.TransferUpdate{Downloaded: 500, Total: 1000, Filename: "v.mp4"})
	if p.Percent != 50 {
		t.Errorf("Expected 50%%, got %v", p.Percent)
	}
}

func TestProgressAcrossStreams(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	tr := newProgressTracker(clock.now)

	p := tr.Update(model.TransferUpdate{Downloaded: 100, Total: 100, Filename: "v.f137.mp4"})
	if p.Percent != 100 {
		t.Fatalf("Expected 100%% after the video stream, got %v", p.Percent)
	}

	tests := []struct {
		downloaded int64
		wantBytes  int64
	}{
		{1, 101},
		{25, 125},
		{49, 149},
	}

	var lastPercent float64
	for _, tt := range tests {
		p = tr.Update(model.TransferUpdate{Downloaded: tt.downloaded, Total: 50, Filename: "v.f140.m4a"})

		if p.Downloaded != tt.wantBytes {
			t.Errorf("audio %d: expected cumulative %d bytes, got %d", tt.downloaded, tt.wantBytes, p.Downloaded)
		}
		if p.Total != 150 {
			t.Errorf("audio %d: expected cumulative total 150, got %d", tt.downloaded, p.Total)
		}
		want := float64(tt.wantBytes) / 150 * 100
		if p.Percent != want {
			t.Errorf("audio %d: expected %v%%, got %v", tt.downloaded, want, p.Percent)
		}
		if p.Percent >= 100 {
			t.Errorf("audio %d: percent pinned at %v while audio is still downloading", tt.downloaded, p.Percent)
		}
		if p.Percent <= lastPercent {
			t.Errorf("audio %d: percent did not advance from %v", tt.downloaded, lastPercent)
		}
		lastPercent = p.Percent
	}

	if p.Filename != "v.f140.m4a" {
		t.Errorf("Expected current filename, got %q", p.Filename)
	}

	p = tr.Update(model.TransferUpdate{Downloaded: 50, Total: 50, Filename: "v.f140.m4a"})
	if p.Percent != 100 {
		t.Errorf("Expected 100%% once both streams finish, got %v", p.Percent)
	}
}

func TestProgressSpeedAndETA(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	tr := newProgressTracker(clock.now)

	tr.Update(model.TransferUpdate{Downloaded: 0, Total: 1000})
	clock.advance(2 * time.Second)
	p := tr.Update(model.TransferUpdate{Downloaded: 200, Total: 1000})

	if p.Speed != 100 {
		t.Errorf("Expected 100 B/s, got %v", p.Speed)
	}
	if p.ETA != 8*time.Second {
		t.Errorf("Expected ETA 8s, got %v", p.ETA)
	}
	if p.Percent != 20 {
		t.Errorf("Expected 20%%, got %v", p.Percent)
	}
}
