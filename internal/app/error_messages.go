// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// sync server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidContentFormat is returned when the body is not a JSON object
	// or its content field is missing or not an array.
	MsgInvalidContentFormat = "Invalid content format"

	// MsgBusinessIDRequired is returned when businessId is absent or blank.
	MsgBusinessIDRequired = "businessId is required"

	// MsgRequestBodyTooLarge is returned when the body exceeds the
	// configured limit.
	MsgRequestBodyTooLarge = "request body too large"

	// MsgCredentialsNotConfigured is returned when the Yodeck API label or
	// token is missing from the server configuration.
	MsgCredentialsNotConfigured = "Yodeck API credentials are not configured"

	// MsgMethodNotAllowed is returned for a known path requested with an
	// unsupported method.
	MsgMethodNotAllowed = "Method Not Allowed"

	// MsgJournalDisabled is returned by the runs listing when no journal
	// database is configured.
	MsgJournalDisabled = "sync journal is disabled"

	// MsgInvalidLimit is returned when the limit query parameter is not a
	// positive integer.
	MsgInvalidLimit = "limit must be a positive integer"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
