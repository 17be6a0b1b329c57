package service

import (
	"sync"
	"time"

	"github.com/YZcontent/yz-ad-club-backend/models"
)

// recordingMetrics is an in-memory metrics.Recorder.
type recordingMetrics struct {
	mu      sync.Mutex
	items   map[models.ItemStatus]int
	batches []string
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{items: make(map[models.ItemStatus]int)}
}

func (r *recordingMetrics) ObserveItem(_ string, status models.ItemStatus, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[status]++
}

func (r *recordingMetrics) ObserveBatch(outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches = append(r.batches, outcome)
}

var fixedNow = time.UnixMilli(1700000000000)

func item(id, title, contentType, fileURL string) models.ContentItem {
	return models.ContentItem{
		ID:          models.Identifier(id),
		Title:       title,
		ContentType: contentType,
		FileURL:     fileURL,
	}
}
