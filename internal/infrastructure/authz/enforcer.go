// Package authz implements the per-route enrollment policy on top of Casbin.
//
// Policy rows are (role, action, scope). Scope "any" grants the action on
// every student; scope "own" grants it only when the caller's studentId
// equals the target studentId.
package authz

import (
	_ "embed"
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"

	"github.com/enrollment/enrollment-api/internal/core/domain"
)

//go:embed model.conf
var modelContent string

const (
	scopeAny = "any"
	scopeOwn = "own"
)

// DefaultPolicy grants ADMIN read-only oversight and lets students manage
// their own enrollments. Reset is open to every authenticated role.
func DefaultPolicy() [][]string {
	return [][]string{
		{string(domain.RoleAdmin), string(domain.ActionListEnrollments), scopeAny},
		{string(domain.RoleAdmin), string(domain.ActionReadEnrollments), scopeAny},
		{string(domain.RoleStudent), string(domain.ActionReadEnrollments), scopeOwn},
		{string(domain.RoleStudent), string(domain.ActionCreateEnrollment), scopeOwn},
		{string(domain.RoleStudent), string(domain.ActionDeleteEnrollment), scopeOwn},
		{string(domain.RoleAdmin), string(domain.ActionResetStore), scopeAny},
		{string(domain.RoleStudent), string(domain.ActionResetStore), scopeAny},
	}
}

// Enforcer satisfies ports.Authorizer.
type Enforcer struct {
	enforcer casbin.IEnforcer
}

// NewEnforcer builds an in-memory Casbin enforcer loaded with rules.
func NewEnforcer(rules [][]string) (*Enforcer, error) {
	m, err := model.NewModelFromString(modelContent)
	if err != nil {
		return nil, fmt.Errorf("parse casbin model: %w", err)
	}

	e, err := casbin.NewSyncedEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("create casbin enforcer: %w", err)
	}

	if len(rules) > 0 {
		if _, err := e.AddPolicies(rules); err != nil {
			return nil, fmt.Errorf("load casbin policies: %w", err)
		}
	}

	return &Enforcer{enforcer: e}, nil
}

// Authorize returns domain.ErrForbidden unless a policy row allows the request.
func (e *Enforcer) Authorize(who domain.Identity, action domain.Action, studentID string) error {
	allowed, err := e.enforcer.Enforce(string(who.Role), who.StudentID, studentID, string(action))
	if err != nil {
		return fmt.Errorf("enforce %s: %w", action, err)
	}
	if !allowed {
		return domain.ErrForbidden
	}
	return nil
}
