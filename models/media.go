package models

import "strings"

// MediaType is the Yodeck media-type vocabulary accepted by the media
// creation endpoint.
type MediaType string

const (
	// MediaTypeImage is also the fallback for unrecognized content types.
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
	MediaTypePDF   MediaType = "pdf"
)

// mediaTypes maps internal content classifications to Yodeck media types.
// Anything absent from the table maps to MediaTypeImage.
var mediaTypes = map[string]MediaType{
	"image":    MediaTypeImage,
	"video":    MediaTypeVideo,
	"pdf":      MediaTypePDF,
	"document": MediaTypePDF,
}

// MapMediaType translates an internal content type into a [MediaType].
// It is total: unknown or empty values degrade to [MediaTypeImage].
func MapMediaType(contentType string) MediaType {
	if mt, ok := mediaTypes[strings.ToLower(strings.TrimSpace(contentType))]; ok {
		return mt
	}
	return MediaTypeImage
}

// AcceptsDuration reports whether Yodeck honours a display duration for the
// media type.
func (m MediaType) AcceptsDuration() bool {
	return m == MediaTypeImage || m == MediaTypeVideo
}

// MediaUpload is the mapped upload contract for one content item.
type MediaUpload struct {
	Name              string    `json:"name"`
	MediaType         MediaType `json:"media_type"`
	Description       string    `json:"description"`
	SourceURL         string    `json:"source_url,omitempty"`
	Duration          Seconds   `json:"duration,omitempty"`
	Tags              []string  `json:"tags"`
	PlayUntilComplete bool      `json:"play_until_complete"`
}

// MediaRecord is what Yodeck returns for a created media.
type MediaRecord struct {
	// ID is the Yodeck-assigned identifier, kept verbatim.
	ID Identifier `json:"id"`

	// Name is the media name as echoed by Yodeck.
	Name string `json:"name,omitempty"`
}

// MediaFile holds a source asset fetched for proxy-upload.
type MediaFile struct {
	FileName    string
	ContentType string
	Data        []byte
}
