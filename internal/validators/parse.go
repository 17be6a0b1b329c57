package validators

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/YZcontent/yz-ad-club-backend/models"
)

// rawSyncRequest keeps content undecoded so presence and array-ness can be
// told apart from an empty batch.
type rawSyncRequest struct {
	BusinessID   json.RawMessage `json:"businessId"`
	BusinessName string          `json:"businessName"`
	Content      json.RawMessage `json:"content"`
}

// ParseSyncRequest decodes an inbound sync body. It fails with
// [ErrMalformedBody] when the body is not a JSON object and with
// [ErrInvalidContent] when content is missing or not an array. Content of a
// successfully parsed request is never nil.
//
// Elements are decoded one by one. An element that does not decode keeps
// its position and carries the error in [models.ContentItem.DecodeErr], so
// only that item fails.
func ParseSyncRequest(body []byte) (models.SyncRequest, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return models.SyncRequest{}, ErrMalformedBody
	}

	var raw rawSyncRequest
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return models.SyncRequest{}, fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}

	content := bytes.TrimSpace(raw.Content)
	if len(content) == 0 || content[0] != '[' {
		return models.SyncRequest{}, ErrInvalidContent
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(content, &elements); err != nil {
		return models.SyncRequest{}, fmt.Errorf("%w: %w", ErrInvalidContent, err)
	}

	items := make([]models.ContentItem, 0, len(elements))
	for _, element := range elements {
		items = append(items, decodeContentItem(element))
	}

	return models.SyncRequest{
		BusinessID:   decodeBusinessID(raw.BusinessID),
		BusinessName: raw.BusinessName,
		Content:      items,
	}, nil
}

// decodeBusinessID accepts a JSON string or number; anything else is
// treated as absent.
func decodeBusinessID(raw json.RawMessage) string {
	var id models.Identifier
	if err := json.Unmarshal(raw, &id); err != nil {
		return ""
	}
	return id.String()
}

func decodeContentItem(raw json.RawMessage) models.ContentItem {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return models.ContentItem{DecodeErr: fmt.Errorf("%w: got %s", ErrInvalidItem, trimmed)}
	}

	var item models.ContentItem
	if err := json.Unmarshal(trimmed, &item); err != nil {
		return models.ContentItem{
			ID:        recoverItemID(trimmed),
			DecodeErr: fmt.Errorf("%w: %w", ErrInvalidItem, err),
		}
	}
	return item
}

// recoverItemID extracts id from an element that failed to decode, so the
// error result can still be joined to its request item.
func recoverItemID(raw json.RawMessage) models.Identifier {
	var head struct {
		ID json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(raw, &head); err != nil || len(head.ID) == 0 {
		return nil
	}

	var id models.Identifier
	if err := json.Unmarshal(head.ID, &id); err != nil {
		return nil
	}
	return id
}
