package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/enrollment/enrollment-api/internal/core/domain"
	"github.com/enrollment/enrollment-api/internal/core/ports"
)

// Store is the union of repositories the enrollment use cases need.
type Store interface {
	ports.IdentityRepository
	ports.EnrollmentRepository
	ports.Resetter
}

type enrollmentService struct {
	store Store
	authz ports.Authorizer
	log   zerolog.Logger
}

// NewEnrollmentService returns an EnrollmentService implementation.
func NewEnrollmentService(store Store, authz ports.Authorizer, log zerolog.Logger) ports.EnrollmentService {
	return &enrollmentService{store: store, authz: authz, log: log}
}

// ListAll returns one summary per STUDENT-role user. Students without a login
// account are not listed.
func (s *enrollmentService) ListAll(ctx context.Context, who domain.Identity) ([]ports.StudentCourses, error) {
	if err := s.authorize(who, domain.ActionListEnrollments, ""); err != nil {
		return nil, err
	}

	users, err := s.store.ListUsersByRole(ctx, domain.RoleStudent)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}

	out := make([]ports.StudentCourses, 0, len(users))
	for _, u := range users {
		enrollments, err := s.store.ListEnrollmentsByStudent(ctx, u.StudentID)
		if err != nil {
			return nil, fmt.Errorf("list enrollments for %s: %w", u.StudentID, err)
		}
		courses := make([]ports.CourseRef, 0, len(enrollments))
		for _, e := range enrollments {
			courses = append(courses, ports.CourseRef{CourseID: e.CourseID})
		}
		out = append(out, ports.StudentCourses{StudentID: u.StudentID, Courses: courses})
	}
	return out, nil
}

func (s *enrollmentService) GetStudent(ctx context.Context, who domain.Identity, studentID string) (*ports.StudentEnrollments, error) {
	if !domain.ValidStudentID(studentID) {
		return nil, fmt.Errorf("%w: studentId must look like S001", domain.ErrValidation)
	}
	if err := s.authorize(who, domain.ActionReadEnrollments, studentID); err != nil {
		return nil, err
	}

	student, err := s.store.FindStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	enrollments, err := s.store.ListEnrollmentsByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("list enrollments for %s: %w", studentID, err)
	}
	courses := make([]string, 0, len(enrollments))
	for _, e := range enrollments {
		courses = append(courses, e.CourseID)
	}

	return &ports.StudentEnrollments{Student: *student, Courses: courses}, nil
}

func (s *enrollmentService) Enroll(ctx context.Context, in ports.EnrollmentInput) (*domain.Enrollment, error) {
	if err := s.checkMutation(ctx, in, domain.ActionCreateEnrollment); err != nil {
		return nil, err
	}

	exists, err := s.store.EnrollmentExists(ctx, in.StudentID, in.CourseID)
	if err != nil {
		return nil, fmt.Errorf("check enrollment: %w", err)
	}
	if exists {
		return nil, domain.ErrEnrollmentExists
	}

	e := domain.Enrollment{StudentID: in.StudentID, CourseID: in.CourseID}
	if err := s.store.AddEnrollment(ctx, e); err != nil {
		return nil, fmt.Errorf("add enrollment: %w", err)
	}

	s.log.Info().Str("student_id", e.StudentID).Str("course_id", e.CourseID).Str("by", in.Who.Username).Msg("enrollment created")
	return &e, nil
}

func (s *enrollmentService) Drop(ctx context.Context, in ports.EnrollmentInput) ([]domain.Enrollment, error) {
	if err := s.checkMutation(ctx, in, domain.ActionDeleteEnrollment); err != nil {
		return nil, err
	}

	removed, err := s.store.RemoveEnrollment(ctx, in.StudentID, in.CourseID)
	if err != nil {
		return nil, fmt.Errorf("remove enrollment: %w", err)
	}
	if !removed {
		return nil, domain.ErrEnrollmentNotFound
	}

	s.log.Info().Str("student_id", in.StudentID).Str("course_id", in.CourseID).Str("by", in.Who.Username).Msg("enrollment removed")

	remaining, err := s.store.ListEnrollments(ctx)
	if err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	return remaining, nil
}

func (s *enrollmentService) Reset(ctx context.Context, who domain.Identity) error {
	if err := s.authorize(who, domain.ActionResetStore, ""); err != nil {
		return err
	}
	if err := s.store.ResetAll(ctx); err != nil {
		return fmt.Errorf("reset store: %w", err)
	}
	s.log.Warn().Str("by", who.Username).Msg("store reset to seed data")
	return nil
}

// checkMutation runs the shared prefix of create and delete: studentId
// format, ownership, courseId format, student existence.
func (s *enrollmentService) checkMutation(ctx context.Context, in ports.EnrollmentInput, action domain.Action) error {
	if !domain.ValidStudentID(in.StudentID) {
		return fmt.Errorf("%w: studentId must look like S001", domain.ErrValidation)
	}
	if err := s.authorize(in.Who, action, in.StudentID); err != nil {
		return err
	}
	if !domain.ValidCourseID(in.CourseID) {
		return fmt.Errorf("%w: courseId must look like CS101", domain.ErrValidation)
	}
	if _, err := s.store.FindStudent(ctx, in.StudentID); err != nil {
		return err
	}
	return nil
}

func (s *enrollmentService) authorize(who domain.Identity, action domain.Action, studentID string) error {
	if err := s.authz.Authorize(who, action, studentID); err != nil {
		s.log.Debug().
			Str("username", who.Username).
			Str("role", string(who.Role)).
			Str("action", string(action)).
			Str("target", studentID).
			Msg("authorization denied")
		return err
	}
	return nil
}
