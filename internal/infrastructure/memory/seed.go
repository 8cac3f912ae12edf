package memory

import "github.com/enrollment/enrollment-api/internal/core/domain"

// Seed is the dataset a Store starts from and returns to on ResetAll.
type Seed struct {
	Users       []domain.User
	Students    []domain.Student
	Enrollments []domain.Enrollment
}

// DefaultSeed returns the dataset the service boots with. S003 has a profile
// but no login account.
func DefaultSeed() Seed {
	return Seed{
		Users: []domain.User{
			{Username: "admin1", Password: "adminpass", Role: domain.RoleAdmin},
			{Username: "user1", Password: "pass1", Role: domain.RoleStudent, StudentID: "S001"},
			{Username: "user2", Password: "pass2", Role: domain.RoleStudent, StudentID: "S002"},
		},
		Students: []domain.Student{
			{StudentID: "S001", FirstName: "Somchai", LastName: "Jaidee", Program: "CPE"},
			{StudentID: "S002", FirstName: "Suda", LastName: "Rakdee", Program: "ISNE"},
			{StudentID: "S003", FirstName: "Anan", LastName: "Meesuk", Program: "CPE"},
		},
		Enrollments: []domain.Enrollment{
			{StudentID: "S001", CourseID: "CS102"},
			{StudentID: "S002", CourseID: "CS101"},
			{StudentID: "S002", CourseID: "CS201"},
		},
	}
}

func (s Seed) clone() Seed {
	return Seed{
		Users:       append([]domain.User(nil), s.Users...),
		Students:    append([]domain.Student(nil), s.Students...),
		Enrollments: append([]domain.Enrollment(nil), s.Enrollments...),
	}
}
