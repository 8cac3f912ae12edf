package ports

import (
	"context"

	"github.com/enrollment/enrollment-api/internal/core/domain"
)

// EnrollmentRepository stores student profiles and enrollment pairs.
type EnrollmentRepository interface {
	FindStudent(ctx context.Context, studentID string) (*domain.Student, error)
	ListEnrollmentsByStudent(ctx context.Context, studentID string) ([]domain.Enrollment, error)
	ListEnrollments(ctx context.Context) ([]domain.Enrollment, error)
	EnrollmentExists(ctx context.Context, studentID, courseID string) (bool, error)
	AddEnrollment(ctx context.Context, e domain.Enrollment) error
	// RemoveEnrollment reports whether a matching pair was removed.
	RemoveEnrollment(ctx context.Context, studentID, courseID string) (bool, error)
}

// Resetter restores seed state.
type Resetter interface {
	ResetAll(ctx context.Context) error
}
