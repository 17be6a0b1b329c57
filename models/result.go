package models

// ItemStatus tags the outcome of a single item upload.
type ItemStatus string

const (
	ItemStatusSuccess ItemStatus = "success"
	ItemStatusError   ItemStatus = "error"
)

// ItemResult is the outcome for one content item. Exactly one of YodeckID
// (on success) or Error (on failure) is set; use [NewSuccessResult] and
// [NewErrorResult] to keep that invariant.
type ItemResult struct {
	ContentID Identifier `json:"contentId"`
	Status    ItemStatus `json:"status"`
	YodeckID  Identifier `json:"yodeckId,omitempty"`
	Name      string     `json:"name,omitempty"`
	Error     string     `json:"error,omitempty"`
}

// NewSuccessResult builds the result of an accepted upload.
func NewSuccessResult(contentID Identifier, record MediaRecord) ItemResult {
	return ItemResult{
		ContentID: contentID,
		Status:    ItemStatusSuccess,
		YodeckID:  record.ID,
		Name:      record.Name,
	}
}

// NewErrorResult builds the result of a failed upload.
func NewErrorResult(contentID Identifier, err error) ItemResult {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}

	return ItemResult{
		ContentID: contentID,
		Status:    ItemStatusError,
		Error:     msg,
	}
}

// SyncResponse is the envelope returned once validation and configuration
// checks pass, even when every item failed.
type SyncResponse struct {
	Success     bool         `json:"success"`
	BusinessID  string       `json:"businessId,omitempty"`
	SyncedCount int          `json:"syncedCount"`
	FailedCount int          `json:"failedCount"`
	Items       []ItemResult `json:"items"`
}

// ErrorResponse is the envelope for structural rejections and request-fatal
// failures.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
