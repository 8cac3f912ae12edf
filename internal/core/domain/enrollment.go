package domain

import "regexp"

// Student is a read-only profile record.
type Student struct {
	StudentID string `json:"studentId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Program   string `json:"program"`
}

// Enrollment associates a student with a course. The (StudentID, CourseID)
// pair is unique across the store.
type Enrollment struct {
	StudentID string `json:"studentId"`
	CourseID  string `json:"courseId"`
}

var (
	studentIDPattern = regexp.MustCompile(`^S\d{3}$`)
	courseIDPattern  = regexp.MustCompile(`^[A-Z]{2,4}\d{3}$`)
)

// ValidStudentID reports whether id has the S### form, e.g. "S001".
func ValidStudentID(id string) bool {
	return studentIDPattern.MatchString(id)
}

// ValidCourseID reports whether id looks like "CS101".
func ValidCourseID(id string) bool {
	return courseIDPattern.MatchString(id)
}
