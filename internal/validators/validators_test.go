// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/YZcontent/yz-ad-club-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// ParseSyncRequest
// ---------------------------------------------------------------------------

func TestParseSyncRequest_Valid(t *testing.T) {
	body := []byte(`{
		"businessId": "biz-1",
		"businessName": "Cafe",
		"content": [
			{"id": 7, "title": "Menu", "content_type": "image", "file_url": "https://cdn/a.png", "duration": "10"},
			{"id": "x-2", "content_type": "video", "file_url": "https://cdn/b.mp4"}
		]
	}`)

	req, err := ParseSyncRequest(body)

	require.NoError(t, err)
	assert.Equal(t, "biz-1", req.BusinessID)
	assert.Equal(t, "Cafe", req.BusinessName)
	require.Len(t, req.Content, 2)
	assert.Equal(t, models.Identifier("7"), req.Content[0].ID)
	assert.Equal(t, models.Seconds(10), req.Content[0].Duration)
	assert.Equal(t, models.Identifier(`"x-2"`), req.Content[1].ID)
}

func TestParseSyncRequest_EmptyContentIsNotNil(t *testing.T) {
	req, err := ParseSyncRequest([]byte(`{"businessId":"b","content":[]}`))

	require.NoError(t, err)
	require.NotNil(t, req.Content)
	assert.Empty(t, req.Content)
}

func TestParseSyncRequest_NumericBusinessID(t *testing.T) {
	req, err := ParseSyncRequest([]byte(`{"businessId":42,"content":[]}`))

	require.NoError(t, err)
	assert.Equal(t, "42", req.BusinessID)
}

func TestParseSyncRequest_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{name: "empty body", body: ``, wantErr: ErrMalformedBody},
		{name: "not json", body: `hello`, wantErr: ErrMalformedBody},
		{name: "json array body", body: `[]`, wantErr: ErrMalformedBody},
		{name: "truncated object", body: `{"content": [`, wantErr: ErrMalformedBody},
		{name: "missing content", body: `{"businessId":"b"}`, wantErr: ErrInvalidContent},
		{name: "null content", body: `{"businessId":"b","content":null}`, wantErr: ErrInvalidContent},
		{name: "object content", body: `{"businessId":"b","content":{"id":1}}`, wantErr: ErrInvalidContent},
		{name: "string content", body: `{"businessId":"b","content":"[]"}`, wantErr: ErrInvalidContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSyncRequest([]byte(tt.body))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseSyncRequest_BadElementsStayItemScoped(t *testing.T) {
	body := []byte(`{"businessId":"b","content":[
		{"id": 1, "title": "Ok", "content_type": "image", "file_url": "https://cdn/a.png"},
		{"id": 2, "content_type": "image", "file_url": "https://cdn/b.png", "duration": "abc"},
		{"id": "t", "title": 123, "file_url": "https://cdn/c.png"},
		{"id": {"k": 1}, "file_url": "https://cdn/d.png"},
		{"id": 5, "duration": 1e300},
		7
	]}`)

	req, err := ParseSyncRequest(body)

	require.NoError(t, err)
	require.Len(t, req.Content, 6)

	assert.NoError(t, req.Content[0].DecodeErr)
	assert.Equal(t, "https://cdn/a.png", req.Content[0].FileURL)

	tests := []struct {
		index  int
		wantID models.Identifier
	}{
		{index: 1, wantID: models.Identifier("2")},
		{index: 2, wantID: models.Identifier(`"t"`)},
		{index: 3, wantID: nil},
		{index: 4, wantID: models.Identifier("5")},
		{index: 5, wantID: nil},
	}
	for _, tt := range tests {
		item := req.Content[tt.index]
		assert.ErrorIs(t, item.DecodeErr, ErrInvalidItem, "element %d", tt.index)
		assert.Equal(t, tt.wantID, item.ID, "element %d", tt.index)
		assert.Empty(t, item.FileURL, "element %d", tt.index)
	}
	assert.Contains(t, req.Content[1].DecodeErr.Error(), `invalid duration "abc"`)
}

// ---------------------------------------------------------------------------
// SyncRequestValidator
// ---------------------------------------------------------------------------

func TestNewSyncRequestValidator(t *testing.T) {
	require.NotNil(t, NewSyncRequestValidator())
}

func TestSyncRequestValidator_Validate(t *testing.T) {
	valid := models.SyncRequest{BusinessID: "b", Content: []models.ContentItem{}}

	tests := []struct {
		name    string
		obj     any
		fields  []string
		wantErr error
	}{
		{name: "valid value", obj: valid},
		{name: "valid pointer", obj: &valid},
		{name: "nil pointer", obj: (*models.SyncRequest)(nil), wantErr: ErrUnsupportedType},
		{name: "unsupported type", obj: "request", wantErr: ErrUnsupportedType},
		{name: "nil content", obj: models.SyncRequest{BusinessID: "b"}, wantErr: ErrInvalidContent},
		{name: "blank business id", obj: models.SyncRequest{BusinessID: "  ", Content: []models.ContentItem{}}, wantErr: ErrInvalidBusinessID},
		{
			name:    "content checked before business id",
			obj:     models.SyncRequest{},
			wantErr: ErrInvalidContent,
		},
		{
			name:   "scoped to content only",
			obj:    models.SyncRequest{Content: []models.ContentItem{}},
			fields: []string{FieldContent},
		},
		{
			name:    "scoped to business id only",
			obj:     models.SyncRequest{},
			fields:  []string{FieldBusinessID},
			wantErr: ErrInvalidBusinessID,
		},
		{name: "unknown field", obj: valid, fields: []string{"user_id"}, wantErr: ErrUnknownField},
	}

	v := NewSyncRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.obj, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
