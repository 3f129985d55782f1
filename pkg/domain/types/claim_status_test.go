package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/claimdesk/pkg/domain/types"
)

func TestClaimStatus_IsValid(t *testing.T) {
	tests := []struct {
		name   string
		status types.ClaimStatus
		want   bool
	}{
		{name: "open", status: types.ClaimStatusOpen, want: true},
		{name: "pending info", status: types.ClaimStatusPendingInfo, want: true},
		{name: "closed", status: types.ClaimStatusClosed, want: true},
		{name: "denied", status: types.ClaimStatusDenied, want: true},
		{name: "lower case", status: types.ClaimStatus("open"), want: false},
		{name: "unknown", status: types.ClaimStatus("ARCHIVED"), want: false},
		{name: "empty", status: types.ClaimStatus(""), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.want {
				gt.B(t, tt.status.IsValid()).True()
			} else {
				gt.B(t, tt.status.IsValid()).False()
			}
		})
	}
}

func TestParseClaimStatus(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		got, err := types.ParseClaimStatus("PENDING_INFO")
		gt.NoError(t, err)
		gt.V(t, got).Equal(types.ClaimStatusPendingInfo)
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := types.ParseClaimStatus("pending")
		gt.Error(t, err)
	})
}

func TestClaimStatus_Normalize(t *testing.T) {
	gt.V(t, types.ClaimStatus("").Normalize()).Equal(types.ClaimStatusOpen)
	gt.V(t, types.ClaimStatusDenied.Normalize()).Equal(types.ClaimStatusDenied)
}

func TestAllClaimStatuses(t *testing.T) {
	statuses := types.AllClaimStatuses()
	gt.A(t, statuses).Length(4)

	for _, status := range statuses {
		gt.B(t, status.IsValid()).
			Describef("Status %s should be valid", status).
			True()
	}
}
