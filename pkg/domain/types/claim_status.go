package types

import "github.com/m-mizutani/goerr/v2"

// ClaimStatus represents the processing state of an insurance claim
type ClaimStatus string

const (
	ClaimStatusOpen        ClaimStatus = "OPEN"
	ClaimStatusPendingInfo ClaimStatus = "PENDING_INFO"
	ClaimStatusClosed      ClaimStatus = "CLOSED"
	ClaimStatusDenied      ClaimStatus = "DENIED"
)

// AllClaimStatuses returns all valid claim statuses
func AllClaimStatuses() []ClaimStatus {
	return []ClaimStatus{
		ClaimStatusOpen,
		ClaimStatusPendingInfo,
		ClaimStatusClosed,
		ClaimStatusDenied,
	}
}

// IsValid checks if the claim status is valid
func (s ClaimStatus) IsValid() bool {
	switch s {
	case ClaimStatusOpen,
		ClaimStatusPendingInfo,
		ClaimStatusClosed,
		ClaimStatusDenied:
		return true
	default:
		return false
	}
}

// Normalize returns the status, treating empty as ClaimStatusOpen.
func (s ClaimStatus) Normalize() ClaimStatus {
	if s == "" {
		return ClaimStatusOpen
	}
	return s
}

// String returns the string representation of the claim status
func (s ClaimStatus) String() string {
	return string(s)
}

// ParseClaimStatus parses a string into a ClaimStatus
func ParseClaimStatus(s string) (ClaimStatus, error) {
	status := ClaimStatus(s)
	if !status.IsValid() {
		return "", goerr.New("invalid claim status", goerr.V("status", s))
	}
	return status, nil
}
