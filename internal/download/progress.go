package download

import (
	"sync"
	"time"

	"github.com/ytget/ytgrab/internal/model"
)

// progressTracker folds raw extractor updates into a Progress for the whole job.
// yt-dlp fetches video and audio as separate files, each counting from zero;
// the tracker adds finished files to a running base so byte counts never go back.
// Percent covers the files whose sizes are known so far, so it may drop when
// the next file starts.
type progressTracker struct {
	mu  sync.Mutex
	now func() time.Time

	startedAt  time.Time
	file       string
	fileBytes  int64 // bytes seen for the current file
	fileTotal  int64
	doneBytes  int64 // bytes of files already finished
	doneTotal  int64
	downloaded int64
}

func newProgressTracker(now func() time.Time) *progressTracker {
	if now == nil {
		now = time.Now
	}
	return &progressTracker{now: now}
}

// Update applies u and returns the resulting snapshot
func (t *progressTracker) Update(u model.TransferUpdate) model.Progress {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.startedAt.IsZero() {
		t.startedAt = t.now()
	}

	if u.Filename != "" && t.file != "" && u.Filename != t.file {
		t.doneBytes += t.fileBytes
		t.doneTotal += max(t.fileTotal, t.fileBytes)
		t.fileBytes, t.fileTotal = 0, 0
	}
	if u.Filename != "" {
		t.file = u.Filename
	}

	if u.Downloaded > t.fileBytes {
		t.fileBytes = u.Downloaded
	}
	if u.Total > 0 {
		t.fileTotal = u.Total
	}

	downloaded := t.doneBytes + t.fileBytes
	if downloaded > t.downloaded {
		t.downloaded = downloaded
	}

	var total int64
	if t.fileTotal > 0 {
		total = t.doneTotal + t.fileTotal
		if total < t.downloaded {
			total = t.downloaded
		}
	}

	var percent float64
	if total > 0 {
		percent = min(float64(t.downloaded)/float64(total)*100, 100)
	}

	p := model.Progress{
		Percent:    percent,
		Downloaded: t.downloaded,
		Total:      total,
		Filename:   t.file,
		Status:     u.Status,
	}

	if elapsed := t.now().Sub(t.startedAt).Seconds(); elapsed > 0 && t.downloaded > 0 {
		p.Speed = float64(t.downloaded) / elapsed
		if total > t.downloaded {
			p.ETA = time.Duration(float64(total-t.downloaded) / p.Speed * float64(time.Second))
		}
	}
	return p
}
