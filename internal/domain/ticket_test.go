package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTicketStatusTransitions(t *testing.T) {
	tests := []struct {
		from TicketStatus
		to   TicketStatus
		ok   bool
	}{
		{StatusOpen, StatusInProgress, true},
		{StatusOpen, StatusClosed, true},
		{StatusOpen, StatusResolved, false},
		{StatusInProgress, StatusResolved, true},
		{StatusInProgress, StatusClosed, false},
		{StatusResolved, StatusClosed, true},
		{StatusResolved, StatusOpen, false},
		{StatusClosed, StatusOpen, false},
		{StatusClosed, StatusInProgress, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.ok, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestTicketScore(t *testing.T) {
	tk := &Ticket{Upvotes: 7, Downvotes: 3}
	assert.Equal(t, 4, tk.Score())
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, StatusOpen.Valid())
	assert.False(t, TicketStatus("Reopened").Valid())
	assert.True(t, PriorityHigh.Valid())
	assert.False(t, TicketPriority("Urgent").Valid())
	assert.True(t, RoleSupportAgent.Valid())
	assert.False(t, Role("superuser").Valid())
	assert.True(t, VoteUp.Valid())
	assert.False(t, VoteType("sideways").Valid())
}
