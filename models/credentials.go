package models

import "strings"

// Credentials is the two-part Yodeck API token. It is built once per request
// from process configuration and never mutated afterwards.
type Credentials struct {
	Label string
	Token string
}

// IsComplete reports whether both parts are present.
func (c Credentials) IsComplete() bool {
	return strings.TrimSpace(c.Label) != "" && strings.TrimSpace(c.Token) != ""
}

// AuthorizationHeader renders the value of the Authorization header.
func (c Credentials) AuthorizationHeader() string {
	return "Token " + c.Label + ":" + c.Token
}

// String hides the secrets so credentials can be logged safely.
func (c Credentials) String() string {
	if !c.IsComplete() {
		return "Credentials{incomplete}"
	}
	return "Credentials{label:" + c.Label + ", token:***}"
}
