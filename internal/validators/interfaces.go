// Package validators checks inbound sync requests before any outbound call
// is made.
//
// Decoding happens in two steps. [ParseSyncRequest] rejects bodies that are
// not a JSON object or whose content is missing or not an array. A
// [Validator] then applies semantic rules to the decoded request, optionally
// scoped to named fields.
package validators

import "context"

// Validator validates a decoded value. When fields are given only those
// rules run; otherwise all of them do.
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}
