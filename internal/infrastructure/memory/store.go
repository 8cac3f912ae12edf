// Package memory holds the process-local identity and enrollment data.
//
// Each Store owns its slices, so tests and servers never share state. Every
// method is a linear scan; the collections are small by contract. The mutex
// keeps individual calls memory-safe but does not make check-then-write
// sequences atomic.
package memory

import (
	"context"
	"sync"

	"github.com/enrollment/enrollment-api/internal/core/domain"
)

// Store implements ports.IdentityRepository, ports.EnrollmentRepository and
// ports.Resetter.
type Store struct {
	mu   sync.RWMutex
	seed Seed
	data Seed
}

// NewStore returns a Store populated from seed.
func NewStore(seed Seed) *Store {
	return &Store{seed: seed.clone(), data: seed.clone()}
}

func (s *Store) FindUserByCredentials(_ context.Context, username, password string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.data.Users {
		if u.Username == username && u.Password == password {
			found := u
			return &found, nil
		}
	}
	return nil, domain.ErrInvalidCredentials
}

func (s *Store) ListUsersByRole(_ context.Context, role domain.Role) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]domain.User, 0, len(s.data.Users))
	for _, u := range s.data.Users {
		if u.Role == role {
			users = append(users, u)
		}
	}
	return users, nil
}

func (s *Store) FindStudent(_ context.Context, studentID string) (*domain.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, st := range s.data.Students {
		if st.StudentID == studentID {
			found := st
			return &found, nil
		}
	}
	return nil, domain.ErrStudentNotFound
}

func (s *Store) ListEnrollmentsByStudent(_ context.Context, studentID string) ([]domain.Enrollment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Enrollment, 0)
	for _, e := range s.data.Enrollments {
		if e.StudentID == studentID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *Store) ListEnrollments(_ context.Context) ([]domain.Enrollment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append(make([]domain.Enrollment, 0, len(s.data.Enrollments)), s.data.Enrollments...), nil
}

func (s *Store) EnrollmentExists(_ context.Context, studentID, courseID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.indexOf(studentID, courseID) >= 0, nil
}

// AddEnrollment appends e without checking for duplicates; callers check
// EnrollmentExists first.
func (s *Store) AddEnrollment(_ context.Context, e domain.Enrollment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.Enrollments = append(s.data.Enrollments, e)
	return nil
}

func (s *Store) RemoveEnrollment(_ context.Context, studentID, courseID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(studentID, courseID)
	if i < 0 {
		return false, nil
	}
	s.data.Enrollments = append(s.data.Enrollments[:i], s.data.Enrollments[i+1:]...)
	return true, nil
}

// ResetAll discards every change and restores the seed the Store was built with.
func (s *Store) ResetAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = s.seed.clone()
	return nil
}

// Ready reports whether the store holds any accounts. It backs the readiness probe.
func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.data.Users) > 0
}

func (s *Store) indexOf(studentID, courseID string) int {
	for i, e := range s.data.Enrollments {
		if e.StudentID == studentID && e.CourseID == courseID {
			return i
		}
	}
	return -1
}
