package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRole_Satisfies(t *testing.T) {
	tests := []struct {
		name     string
		role     Role
		required Role
		want     bool
	}{
		{"admin passes any check", RoleAdmin, RoleTicket, true},
		{"admin passes own check", RoleAdmin, RoleAdmin, true},
		{"matching role passes", RoleMaster, RoleMaster, true},
		{"mismatched role fails", RoleVolunteer, RoleMaster, false},
		{"non-admin fails admin check", RoleTicket, RoleAdmin, false},
		{"empty role fails", Role(""), RoleMaster, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.Satisfies(tt.required))
		})
	}
}

func TestSession_Valid(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	var nilSession *Session
	assert.False(t, nilSession.Valid(now))

	future := &Session{Exp: now.Add(time.Minute).Unix()}
	assert.True(t, future.Valid(now))

	past := &Session{Exp: now.Add(-time.Minute).Unix()}
	assert.False(t, past.Valid(now))

	exact := &Session{Exp: now.Unix()}
	assert.False(t, exact.Valid(now), "expiry instant counts as expired")
}

func TestSoftDeleteRules(t *testing.T) {
	ts := "2025-05-01T10:00:00"

	live := &Master{Files: []string{"a.jpg"}}
	assert.True(t, live.CanDelete())
	assert.True(t, live.ShowFiles())

	gone := &Master{DeletedAt: &ts, Files: []string{"a.jpg"}}
	assert.True(t, gone.Deleted())
	assert.False(t, gone.CanDelete(), "soft-deleted rows hide the delete action")
	assert.False(t, gone.ShowFiles(), "soft-deleted rows hide attachments")

	noFiles := &Volunteer{}
	assert.False(t, noFiles.ShowFiles())

	deletedVolunteer := &Volunteer{DeletedAt: &ts, Files: []string{"b.jpg"}}
	assert.False(t, deletedVolunteer.ShowFiles())

	usedTicket := &Ticket{DeletedAt: &ts}
	assert.False(t, usedTicket.CanDelete())
}
