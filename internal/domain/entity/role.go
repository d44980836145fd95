// Package entity contains the core business objects of the project.
package entity

import "slices"

// AccountType represents the single role an account plays in the marketplace.
type AccountType string

const (
	// AccountTypeArtist is a tattoo artist.
	AccountTypeArtist AccountType = "artist"
	// AccountTypeStudio is a tattoo studio.
	AccountTypeStudio AccountType = "studio"
	// AccountTypeModel is a person offering skin for work.
	AccountTypeModel AccountType = "model"
)

// AccountTypes lists every valid account type.
var AccountTypes = []AccountType{AccountTypeArtist, AccountTypeStudio, AccountTypeModel}

// String returns the string representation of the AccountType.
func (a AccountType) String() string {
	return string(a)
}

// IsValid checks if the AccountType is a valid value.
func (a AccountType) IsValid() bool {
	return slices.Contains(AccountTypes, a)
}

// RoutePrefix returns the plural path segment used by role-scoped routes, e.g. "artists".
func (a AccountType) RoutePrefix() string {
	if !a.IsValid() {
		return ""
	}

	return string(a) + "s"
}

// AccountTypeFromRoutePrefix is the inverse of RoutePrefix.
func AccountTypeFromRoutePrefix(prefix string) (AccountType, bool) {
	for _, a := range AccountTypes {
		if a.RoutePrefix() == prefix {
			return a, true
		}
	}

	return "", false
}
