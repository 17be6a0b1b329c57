package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ContentItem is one catalog entry describing a media asset that has to be
// mirrored into the Yodeck media library.
type ContentItem struct {
	// ID is the caller's stable identifier. It is echoed back unchanged in
	// [ItemResult.ContentID] and is the join key between request and response.
	ID Identifier `json:"id"`

	// Title becomes the media name; a synthetic name is used when empty.
	Title string `json:"title,omitempty"`

	// Description is forwarded as the media description.
	Description string `json:"description,omitempty"`

	// ContentType is the internal classification (image, video, pdf,
	// document, webpage, ...). See [MapMediaType].
	ContentType string `json:"content_type"`

	// FileURL points at the source asset.
	FileURL string `json:"file_url"`

	// Duration is the display duration. Only sent for media types that
	// accept it.
	Duration Seconds `json:"duration,omitempty"`

	// DecodeErr is set when the element could not be decoded; only ID is
	// trustworthy then and the item fails on its own.
	DecodeErr error `json:"-"`
}

// SyncRequest is the inbound batch: every content item of one business.
type SyncRequest struct {
	// BusinessID identifies the tenant the catalog belongs to.
	BusinessID string `json:"businessId"`

	// BusinessName is added to the tag set of every uploaded media.
	BusinessName string `json:"businessName,omitempty"`

	// Content is never nil after validation, even for an empty batch.
	Content []ContentItem `json:"content"`
}

// Seconds is a whole number of seconds that decodes from a JSON number or a
// numeric JSON string ("10"). Fractions are rounded to the nearest second.
type Seconds int

func (s *Seconds) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		*s = 0
		return nil
	case float64:
		return s.setFloat(value)
	case string:
		value = strings.TrimSpace(value)
		if value == "" {
			*s = 0
			return nil
		}
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value, err)
		}
		return s.setFloat(f)
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

// maxSeconds bounds a duration so the int conversion is defined everywhere.
const maxSeconds = math.MaxInt32

func (s *Seconds) setFloat(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > maxSeconds {
		return fmt.Errorf("duration out of range: %v", f)
	}
	*s = Seconds(math.Round(f))
	return nil
}
