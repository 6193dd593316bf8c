package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors forming the service error taxonomy. The HTTP adapter maps
// these onto status codes; anything unrecognised becomes a 500.
var (
	// ErrCampaignNotFound is returned when no campaign matches a lookup.
	ErrCampaignNotFound = errors.New("campaign not found")
	// ErrNoRegionalData is returned when no campaign has performance data
	// for the requested region.
	ErrNoRegionalData = errors.New("no regional data found")
	// ErrNoCreativesFound is returned when none of the requested creative
	// ids resolve to a creative.
	ErrNoCreativesFound = errors.New("no creatives found")
	// ErrUserNotFound is returned when the username is absent from the
	// credential dataset.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials is returned when the username exists but the
	// password does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// RoleDeniedError reports that credentials were valid but the account role
// does not grant access to campaign data. User is non-nil only for the
// known non-admin role, where the response includes the account summary;
// unrecognised roles get a generic denial with no account details.
type RoleDeniedError struct {
	User    *User
	Message string
}

func (e *RoleDeniedError) Error() string {
	return fmt.Sprintf("access denied: %s", e.Message)
}
