package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enrollment/enrollment-api/internal/core/domain"
	"github.com/enrollment/enrollment-api/internal/core/ports"
	"github.com/enrollment/enrollment-api/internal/infrastructure/authz"
	"github.com/enrollment/enrollment-api/internal/infrastructure/memory"
)

var (
	admin    = domain.Identity{Username: "admin1", Role: domain.RoleAdmin}
	student1 = domain.Identity{Username: "user1", Role: domain.RoleStudent, StudentID: "S001"}
	student2 = domain.Identity{Username: "user2", Role: domain.RoleStudent, StudentID: "S002"}
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func newEnrollmentSvc(t *testing.T) (ports.EnrollmentService, *memory.Store) {
	t.Helper()
	store := memory.NewStore(memory.DefaultSeed())
	enforcer, err := authz.NewEnforcer(authz.DefaultPolicy())
	require.NoError(t, err)
	return NewEnrollmentService(store, enforcer, zerolog.Nop()), store
}

type denyAll struct{ calls int }

func (d *denyAll) Authorize(domain.Identity, domain.Action, string) error {
	d.calls++
	return domain.ErrForbidden
}

func courseCount(t *testing.T, store *memory.Store, studentID, courseID string) int {
	t.Helper()
	all, err := store.ListEnrollments(context.Background())
	require.NoError(t, err)
	n := 0
	for _, e := range all {
		if e.StudentID == studentID && e.CourseID == courseID {
			n++
		}
	}
	return n
}

// ---------------------------------------------------------------------------
// ListAll
// ---------------------------------------------------------------------------

func TestEnrollmentService_ListAll_Admin(t *testing.T) {
	svc, _ := newEnrollmentSvc(t)

	got, err := svc.ListAll(context.Background(), admin)
	require.NoError(t, err)
	assert.Equal(t, []ports.StudentCourses{
		{StudentID: "S001", Courses: []ports.CourseRef{{CourseID: "CS102"}}},
		{StudentID: "S002", Courses: []ports.CourseRef{{CourseID: "CS101"}, {CourseID: "CS201"}}},
	}, got)
}

func TestEnrollmentService_ListAll_StudentForbidden(t *testing.T) {
	svc, _ := newEnrollmentSvc(t)

	_, err := svc.ListAll(context.Background(), student1)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ---------------------------------------------------------------------------
// GetStudent
// ---------------------------------------------------------------------------

func TestEnrollmentService_GetStudent(t *testing.T) {
	svc, _ := newEnrollmentSvc(t)

	got, err := svc.GetStudent(context.Background(), student2, "S002")
	require.NoError(t, err)
	assert.Equal(t, "Suda", got.Student.FirstName)
	assert.Equal(t, []string{"CS101", "CS201"}, got.Courses)

	got, err = svc.GetStudent(context.Background(), admin, "S001")
	require.NoError(t, err)
	assert.Equal(t, []string{"CS102"}, got.Courses)
}

func TestEnrollmentService_GetStudent_Errors(t *testing.T) {
	svc, _ := newEnrollmentSvc(t)
	ctx := context.Background()

	_, err := svc.GetStudent(ctx, admin, "001")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.GetStudent(ctx, student1, "S002")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = svc.GetStudent(ctx, admin, "S999")
	assert.ErrorIs(t, err, domain.ErrStudentNotFound)
}

func TestEnrollmentService_GetStudent_NoEnrollments(t *testing.T) {
	svc, _ := newEnrollmentSvc(t)

	got, err := svc.GetStudent(context.Background(), admin, "S003")
	require.NoError(t, err)
	assert.NotNil(t, got.Courses)
	assert.Empty(t, got.Courses)
}

func TestEnrollmentService_ValidationBeforeAuthorization(t *testing.T) {
	store := memory.NewStore(memory.DefaultSeed())
	deny := &denyAll{}
	svc := NewEnrollmentService(store, deny, zerolog.Nop())

	_, err := svc.GetStudent(context.Background(), admin, "bad-id")
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Zero(t, deny.calls)
}

// ---------------------------------------------------------------------------
// Enroll
// ---------------------------------------------------------------------------

func TestEnrollmentService_Enroll_ThenGet(t *testing.T) {
	svc, store := newEnrollmentSvc(t)
	ctx := context.Background()

	e, err := svc.Enroll(ctx, ports.EnrollmentInput{Who: student1, StudentID: "S001", CourseID: "CS101"})
	require.NoError(t, err)
	assert.Equal(t, domain.Enrollment{StudentID: "S001", CourseID: "CS101"}, *e)

	got, err := svc.GetStudent(ctx, student1, "S001")
	require.NoError(t, err)
	assert.Contains(t, got.Courses, "CS101")
	assert.Equal(t, 1, courseCount(t, store, "S001", "CS101"))
}

func TestEnrollmentService_Enroll_DuplicateConflict(t *testing.T) {
	svc, store := newEnrollmentSvc(t)
	ctx := context.Background()
	in := ports.EnrollmentInput{Who: student2, StudentID: "S002", CourseID: "CS101"}

	_, err := svc.Enroll(ctx, in)
	assert.ErrorIs(t, err, domain.ErrEnrollmentExists)
	_, err = svc.Enroll(ctx, in)
	assert.ErrorIs(t, err, domain.ErrEnrollmentExists)

	all, _ := store.ListEnrollments(ctx)
	assert.Equal(t, memory.DefaultSeed().Enrollments, all)
}

func TestEnrollmentService_Enroll_Rejections(t *testing.T) {
	tests := []struct {
		name string
		in   ports.EnrollmentInput
		want error
	}{
		{"bad student id", ports.EnrollmentInput{Who: student1, StudentID: "S1", CourseID: "CS101"}, domain.ErrValidation},
		{"admin forbidden", ports.EnrollmentInput{Who: admin, StudentID: "S001", CourseID: "CS101"}, domain.ErrForbidden},
		{"other student forbidden", ports.EnrollmentInput{Who: student1, StudentID: "S002", CourseID: "CS301"}, domain.ErrForbidden},
		{"forbidden wins over empty course", ports.EnrollmentInput{Who: student1, StudentID: "S002"}, domain.ErrForbidden},
		{"bad course id", ports.EnrollmentInput{Who: student1, StudentID: "S001", CourseID: "cs-101"}, domain.ErrValidation},
		{"missing course id", ports.EnrollmentInput{Who: student1, StudentID: "S001"}, domain.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store := newEnrollmentSvc(t)
			_, err := svc.Enroll(context.Background(), tt.in)
			assert.True(t, errors.Is(err, tt.want), "expected %v, got %v", tt.want, err)

			all, _ := store.ListEnrollments(context.Background())
			assert.Len(t, all, len(memory.DefaultSeed().Enrollments))
		})
	}
}

func TestEnrollmentService_Enroll_StudentWithoutProfile(t *testing.T) {
	seed := memory.DefaultSeed()
	seed.Users = append(seed.Users, domain.User{Username: "user9", Password: "pass9", Role: domain.RoleStudent, StudentID: "S009"})
	store := memory.NewStore(seed)
	enforcer, err := authz.NewEnforcer(authz.DefaultPolicy())
	require.NoError(t, err)
	svc := NewEnrollmentService(store, enforcer, zerolog.Nop())

	who := domain.Identity{Username: "user9", Role: domain.RoleStudent, StudentID: "S009"}
	_, err = svc.Enroll(context.Background(), ports.EnrollmentInput{Who: who, StudentID: "S009", CourseID: "CS101"})
	assert.ErrorIs(t, err, domain.ErrStudentNotFound)
}

// ---------------------------------------------------------------------------
// Drop
// ---------------------------------------------------------------------------

func TestEnrollmentService_EnrollThenDrop_RoundTrip(t *testing.T) {
	svc, store := newEnrollmentSvc(t)
	ctx := context.Background()
	in := ports.EnrollmentInput{Who: student1, StudentID: "S001", CourseID: "CS101"}

	before, _ := store.ListEnrollments(ctx)

	_, err := svc.Enroll(ctx, in)
	require.NoError(t, err)

	remaining, err := svc.Drop(ctx, in)
	require.NoError(t, err)
	assert.Len(t, remaining, len(before))
	assert.NotContains(t, remaining, domain.Enrollment{StudentID: "S001", CourseID: "CS101"})
	assert.Zero(t, courseCount(t, store, "S001", "CS101"))
}

func TestEnrollmentService_Drop_ReturnsAllRemaining(t *testing.T) {
	svc, _ := newEnrollmentSvc(t)

	remaining, err := svc.Drop(context.Background(), ports.EnrollmentInput{Who: student2, StudentID: "S002", CourseID: "CS101"})
	require.NoError(t, err)
	assert.Equal(t, []domain.Enrollment{
		{StudentID: "S001", CourseID: "CS102"},
		{StudentID: "S002", CourseID: "CS201"},
	}, remaining)
}

func TestEnrollmentService_Drop_Missing(t *testing.T) {
	svc, store := newEnrollmentSvc(t)
	ctx := context.Background()

	_, err := svc.Drop(ctx, ports.EnrollmentInput{Who: student1, StudentID: "S001", CourseID: "CS999"})
	assert.ErrorIs(t, err, domain.ErrEnrollmentNotFound)

	all, _ := store.ListEnrollments(ctx)
	assert.Equal(t, memory.DefaultSeed().Enrollments, all)
}

func TestEnrollmentService_Drop_Forbidden(t *testing.T) {
	svc, _ := newEnrollmentSvc(t)
	ctx := context.Background()

	_, err := svc.Drop(ctx, ports.EnrollmentInput{Who: admin, StudentID: "S002", CourseID: "CS101"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = svc.Drop(ctx, ports.EnrollmentInput{Who: student1, StudentID: "S002", CourseID: "CS101"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ---------------------------------------------------------------------------
// Reset
// ---------------------------------------------------------------------------

func TestEnrollmentService_Reset(t *testing.T) {
	svc, store := newEnrollmentSvc(t)
	ctx := context.Background()

	_, err := svc.Enroll(ctx, ports.EnrollmentInput{Who: student1, StudentID: "S001", CourseID: "CS101"})
	require.NoError(t, err)

	require.NoError(t, svc.Reset(ctx, student1))

	all, _ := store.ListEnrollments(ctx)
	assert.Equal(t, memory.DefaultSeed().Enrollments, all)
}

func TestEnrollmentService_Reset_AdminAllowed(t *testing.T) {
	svc, _ := newEnrollmentSvc(t)
	assert.NoError(t, svc.Reset(context.Background(), admin))
}
