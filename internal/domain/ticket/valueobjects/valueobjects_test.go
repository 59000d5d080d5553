package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    Status
		wantErr bool
	}{
		{input: "Open", want: StatusOpen},
		{input: "open", want: StatusOpen},
		{input: "In Progress", want: StatusInProgress},
		{input: "in_progress", want: StatusInProgress},
		{input: "IN-PROGRESS", want: StatusInProgress},
		{input: "  pending ", want: StatusPending},
		{input: "resolved", want: StatusResolved},
		{input: "closed", want: StatusClosed},
		{input: "reopened", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := NewStatus(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaults(t *testing.T) {
	s, err := StatusOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, StatusOpen, s)

	p, err := PriorityOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, PriorityMedium, p)

	tt, err := TicketTypeOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, TypeQuestion, tt)

	_, err = PriorityOrDefault("urgent")
	assert.Error(t, err)
}

func TestNewTicketType(t *testing.T) {
	got, err := NewTicketType("feature_request")
	require.NoError(t, err)
	assert.Equal(t, TypeFeatureRequest, got)

	got, err = NewTicketType("Feature Request")
	require.NoError(t, err)
	assert.Equal(t, TypeFeatureRequest, got)

	_, err = NewTicketType("bug")
	assert.Error(t, err)
}

func TestRanks_FollowDeclaredOrder(t *testing.T) {
	for i, s := range StatusOrder {
		assert.Equal(t, i, s.Rank())
	}
	assert.Less(t, PriorityLow.Rank(), PriorityMedium.Rank())
	assert.Less(t, PriorityMedium.Rank(), PriorityHigh.Rank())
	assert.Equal(t, -1, Priority("Urgent").Rank())
	assert.False(t, Status("Reopened").IsValid())
}
