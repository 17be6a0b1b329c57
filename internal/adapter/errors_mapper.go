package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/YZcontent/yz-ad-club-backend/models"
	"github.com/go-resty/resty/v2"
)

// mediaResponse is the subset of the Yodeck media answer the server reads.
type mediaResponse struct {
	ID     json.RawMessage `json:"id"`
	Name   json.RawMessage `json:"name"`
	Detail json.RawMessage `json:"detail"`
}

// interpretMediaResponse maps a media-creation answer. The body must be a
// JSON object whatever the status; a non-2xx status reports Yodeck's detail
// and a 2xx answer must carry an id. Field values are only decoded after
// the status is known, since error bodies carry per-field arrays.
func interpretMediaResponse(resp *resty.Response) (models.MediaRecord, error) {
	body := resp.Body()

	var payload mediaResponse
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return models.MediaRecord{}, fmt.Errorf("%w: %s", ErrResponseParse, string(body))
	}
	if err := json.Unmarshal(trimmed, &payload); err != nil {
		return models.MediaRecord{}, fmt.Errorf("%w: %s", ErrResponseParse, string(body))
	}

	status := resp.StatusCode()
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return models.MediaRecord{}, fmt.Errorf("%w: %s (status %d)", ErrUpstream, detailMessage(payload.Detail), status)
	}

	var id models.Identifier
	if err := json.Unmarshal(payload.ID, &id); err != nil || id.IsZero() {
		return models.MediaRecord{}, fmt.Errorf("%w: missing id in %s", ErrResponseParse, string(body))
	}

	// a non-string name is not worth failing an accepted upload over
	var name string
	_ = json.Unmarshal(payload.Name, &name)

	return models.MediaRecord{ID: id, Name: name}, nil
}

// detailMessage renders the detail field: strings are unquoted, other JSON
// values are kept as written.
func detailMessage(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return uploadFallbackMessage
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if strings.TrimSpace(s) == "" {
			return uploadFallbackMessage
		}
		return s
	}

	return string(raw)
}
