package ports

import (
	"context"

	"github.com/enrollment/enrollment-api/internal/core/domain"
)

// CourseRef is one entry in the admin listing.
type CourseRef struct {
	CourseID string
}

// StudentCourses summarises the courses of one STUDENT-role user.
type StudentCourses struct {
	StudentID string
	Courses   []CourseRef
}

// StudentEnrollments is a student profile merged with its course ids.
type StudentEnrollments struct {
	Student domain.Student
	Courses []string
}

// EnrollmentInput targets one (student, course) pair on behalf of Who.
type EnrollmentInput struct {
	Who       domain.Identity
	StudentID string
	CourseID  string
}

// EnrollmentService defines the enrollment use cases.
type EnrollmentService interface {
	ListAll(ctx context.Context, who domain.Identity) ([]StudentCourses, error)
	GetStudent(ctx context.Context, who domain.Identity, studentID string) (*StudentEnrollments, error)
	Enroll(ctx context.Context, input EnrollmentInput) (*domain.Enrollment, error)
	// Drop removes the pair and returns every remaining enrollment.
	Drop(ctx context.Context, input EnrollmentInput) ([]domain.Enrollment, error)
	Reset(ctx context.Context, who domain.Identity) error
}
