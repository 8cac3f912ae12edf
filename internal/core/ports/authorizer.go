package ports

import "github.com/enrollment/enrollment-api/internal/core/domain"

// Authorizer decides whether who may perform action against the enrollments
// of studentID. An empty studentID denotes a collection-wide action.
// Denials are reported as domain.ErrForbidden.
type Authorizer interface {
	Authorize(who domain.Identity, action domain.Action, studentID string) error
}
