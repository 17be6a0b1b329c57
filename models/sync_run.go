// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncRun is the journal record of one completed sync batch. It is history
// only: the sync engine never reads it back.
type SyncRun struct {
	// ID is a UUID v7, so runs sort by creation time.
	ID string `json:"id"`

	BusinessID   string `json:"business_id"`
	BusinessName string `json:"business_name,omitempty"`

	// Strategy is the upload strategy the deployment ran with.
	Strategy string `json:"strategy"`

	Total  int `json:"total"`
	Synced int `json:"synced"`
	Failed int `json:"failed"`

	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

// SyncRunFilter narrows [SyncRun] listings.
type SyncRunFilter struct {
	// BusinessID restricts the listing to one tenant when non-empty.
	BusinessID string

	// Limit caps the number of returned runs.
	Limit uint64
}

// SyncRunsResponse is the body of the journal listing endpoint.
type SyncRunsResponse struct {
	Success bool      `json:"success"`
	Runs    []SyncRun `json:"runs"`
	Length  int       `json:"length"`
}
