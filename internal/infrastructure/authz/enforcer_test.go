package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enrollment/enrollment-api/internal/core/domain"
)

func newTestEnforcer(t *testing.T) *Enforcer {
	t.Helper()
	e, err := NewEnforcer(DefaultPolicy())
	require.NoError(t, err)
	return e
}

func TestEnforcer_Authorize(t *testing.T) {
	admin := domain.Identity{Username: "admin1", Role: domain.RoleAdmin}
	s1 := domain.Identity{Username: "user1", Role: domain.RoleStudent, StudentID: "S001"}
	orphan := domain.Identity{Username: "ghost", Role: domain.RoleStudent}
	unknown := domain.Identity{Username: "eve", Role: "GUEST", StudentID: "S001"}

	tests := []struct {
		name    string
		who     domain.Identity
		action  domain.Action
		target  string
		allowed bool
	}{
		{"admin lists", admin, domain.ActionListEnrollments, "", true},
		{"student cannot list", s1, domain.ActionListEnrollments, "", false},
		{"admin reads any student", admin, domain.ActionReadEnrollments, "S002", true},
		{"student reads self", s1, domain.ActionReadEnrollments, "S001", true},
		{"student reads other", s1, domain.ActionReadEnrollments, "S002", false},
		{"admin cannot create", admin, domain.ActionCreateEnrollment, "S001", false},
		{"student creates for self", s1, domain.ActionCreateEnrollment, "S001", true},
		{"student creates for other", s1, domain.ActionCreateEnrollment, "S002", false},
		{"admin cannot delete", admin, domain.ActionDeleteEnrollment, "S001", false},
		{"student deletes own", s1, domain.ActionDeleteEnrollment, "S001", true},
		{"student deletes other", s1, domain.ActionDeleteEnrollment, "S002", false},
		{"student without id never owns", orphan, domain.ActionReadEnrollments, "", false},
		{"unknown role denied", unknown, domain.ActionReadEnrollments, "S001", false},
		{"admin resets", admin, domain.ActionResetStore, "", true},
		{"student resets", s1, domain.ActionResetStore, "", true},
	}

	e := newTestEnforcer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := e.Authorize(tt.who, tt.action, tt.target)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, domain.ErrForbidden)
			}
		})
	}
}

func TestEnforcer_EmptyPolicyDeniesEverything(t *testing.T) {
	e, err := NewEnforcer(nil)
	require.NoError(t, err)

	err = e.Authorize(domain.Identity{Role: domain.RoleAdmin}, domain.ActionListEnrollments, "")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
