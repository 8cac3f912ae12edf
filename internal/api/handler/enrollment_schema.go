package handler

import "github.com/enrollment/enrollment-api/internal/core/domain"

// --- Request types ---

type studentPathRequest struct {
	StudentID string `param:"studentId" validate:"required,student_id"`
}

type courseRequest struct {
	CourseID string `json:"courseId"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// --- Response types ---

type courseRefResponse struct {
	CourseID string `json:"courseId"`
}

type studentCoursesResponse struct {
	StudentID string              `json:"studentId"`
	Courses   []courseRefResponse `json:"courses"`
}

// studentDetailResponse is the student profile flattened together with its
// course ids.
type studentDetailResponse struct {
	domain.Student
	Courses []string `json:"courses"`
}

type enrollmentResponse struct {
	StudentID string `json:"studentId"`
	CourseID  string `json:"courseId"`
}
