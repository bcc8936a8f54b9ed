package testmodels

import "github.com/go-openapi/strfmt"

// Account is a small entity used by datastore and bootstrap tests.
type Account struct {

	// Unique identifier of the account.
	// Required: true
	ID string `json:"Id" dynamodbav:"ID"`

	// Contact address.
	// Format: email
	Email strfmt.Email `json:"Email" dynamodbav:"Email"`

	// Display name.
	Name string `json:"Name,omitempty" dynamodbav:"Name"`

	// Timestamp when the account was created.
	// Required: true
	// Format: date-time
	CreatedAt strfmt.DateTime `json:"CreatedAt" dynamodbav:"CreatedAt"`
}

// AccountKey extracts the storage key of an account.
func AccountKey(a Account) string { return a.ID }

// AccountIndexMap is the single-table key layout for accounts.
func AccountIndexMap() map[string]string {
	return map[string]string{
		"PK":     "ACCOUNT#{ID}",
		"SK":     "ACCOUNT#{ID}",
		"GSI1PK": "EMAIL#{Email}",
		"GSI1SK": "ACCOUNT",
	}
}
