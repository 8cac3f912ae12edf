package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/enrollment/enrollment-api/internal/api/metrics"
	"github.com/enrollment/enrollment-api/internal/core/domain"
	"github.com/enrollment/enrollment-api/internal/core/ports"
)

// EnrollmentHandler handles HTTP requests for enrollment operations.
type EnrollmentHandler struct {
	service ports.EnrollmentService
	binder  echo.DefaultBinder
}

func NewEnrollmentHandler(service ports.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{service: service}
}

// List handles GET /enrollments.
//
// @Summary      List every student's courses
// @Tags         enrollments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Envelope{data=[]studentCoursesResponse}
// @Failure      401  {object}  Envelope
// @Failure      403  {object}  Envelope
// @Router       /enrollments [get]
func (h *EnrollmentHandler) List(c echo.Context) error {
	who, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	summaries, err := h.service.ListAll(c.Request().Context(), who)
	if err != nil {
		return err
	}

	data := make([]studentCoursesResponse, 0, len(summaries))
	for _, s := range summaries {
		courses := make([]courseRefResponse, 0, len(s.Courses))
		for _, ref := range s.Courses {
			courses = append(courses, courseRefResponse{CourseID: ref.CourseID})
		}
		data = append(data, studentCoursesResponse{StudentID: s.StudentID, Courses: courses})
	}
	return ok(c, http.StatusOK, "Enrollments Information", data)
}

// Get handles GET /enrollments/:studentId.
//
// @Summary      Get one student's enrollments
// @Tags         enrollments
// @Produce      json
// @Security     BearerAuth
// @Param        studentId  path      string  true  "Student id (e.g. S001)"
// @Success      200        {object}  Envelope{data=studentDetailResponse}
// @Failure      400        {object}  Envelope
// @Failure      403        {object}  Envelope
// @Failure      404        {object}  Envelope
// @Router       /enrollments/{studentId} [get]
func (h *EnrollmentHandler) Get(c echo.Context) error {
	studentID, err := h.studentID(c)
	if err != nil {
		return err
	}
	who, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	detail, err := h.service.GetStudent(c.Request().Context(), who, studentID)
	if err != nil {
		return err
	}

	return ok(c, http.StatusOK, "Student Information", studentDetailResponse{
		Student: detail.Student,
		Courses: detail.Courses,
	})
}

// Create handles POST /enrollments/:studentId.
//
// @Summary      Enroll a student in a course
// @Tags         enrollments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        studentId  path      string         true  "Student id (e.g. S001)"
// @Param        body       body      courseRequest  true  "Course to add"
// @Success      201        {object}  Envelope{data=enrollmentResponse}
// @Failure      400        {object}  Envelope
// @Failure      403        {object}  Envelope
// @Failure      404        {object}  Envelope
// @Failure      409        {object}  Envelope
// @Router       /enrollments/{studentId} [post]
func (h *EnrollmentHandler) Create(c echo.Context) error {
	in, err := h.enrollmentInput(c)
	if err != nil {
		return err
	}

	e, err := h.service.Enroll(c.Request().Context(), in)
	if err != nil {
		return withMessage(err, domain.ErrEnrollmentExists, "studentId && courseId is already exists")
	}

	metrics.EnrollmentsCreatedTotal.Inc()
	return ok(c, http.StatusCreated,
		fmt.Sprintf("Student %s && Course %s has been added successfully", e.StudentID, e.CourseID),
		enrollmentResponse{StudentID: e.StudentID, CourseID: e.CourseID})
}

// Delete handles DELETE /enrollments/:studentId.
//
// @Summary      Remove a student's enrollment
// @Tags         enrollments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        studentId  path      string         true  "Student id (e.g. S001)"
// @Param        body       body      courseRequest  true  "Course to remove"
// @Success      200        {object}  Envelope{data=[]enrollmentResponse}
// @Failure      400        {object}  Envelope
// @Failure      403        {object}  Envelope
// @Failure      404        {object}  Envelope
// @Router       /enrollments/{studentId} [delete]
func (h *EnrollmentHandler) Delete(c echo.Context) error {
	in, err := h.enrollmentInput(c)
	if err != nil {
		return err
	}

	remaining, err := h.service.Drop(c.Request().Context(), in)
	if err != nil {
		return withMessage(err, domain.ErrForbidden, "You are not allowed to modify another student's data")
	}

	metrics.EnrollmentsRemovedTotal.Inc()
	data := make([]enrollmentResponse, 0, len(remaining))
	for _, e := range remaining {
		data = append(data, enrollmentResponse{StudentID: e.StudentID, CourseID: e.CourseID})
	}
	return ok(c, http.StatusOK,
		fmt.Sprintf("Student %s && Course %s has been deleted successfully", in.StudentID, in.CourseID),
		data)
}

// Reset handles POST /enrollments/reset.
//
// @Summary      Restore seed data
// @Tags         enrollments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Envelope
// @Failure      401  {object}  Envelope
// @Router       /enrollments/reset [post]
func (h *EnrollmentHandler) Reset(c echo.Context) error {
	who, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	if err := h.service.Reset(c.Request().Context(), who); err != nil {
		return err
	}

	metrics.StoreResetsTotal.Inc()
	return ok(c, http.StatusOK, "enrollments database has been reset", nil)
}

func (h *EnrollmentHandler) studentID(c echo.Context) (string, error) {
	var req studentPathRequest
	if err := h.binder.BindPathParams(c, &req); err != nil {
		return "", err
	}
	if err := c.Validate(&req); err != nil {
		return "", err
	}
	return req.StudentID, nil
}

func (h *EnrollmentHandler) enrollmentInput(c echo.Context) (ports.EnrollmentInput, error) {
	studentID, err := h.studentID(c)
	if err != nil {
		return ports.EnrollmentInput{}, err
	}
	who, err := ctxIdentity(c)
	if err != nil {
		return ports.EnrollmentInput{}, err
	}

	var body courseRequest
	if err := h.binder.BindBody(c, &body); err != nil {
		return ports.EnrollmentInput{}, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	return ports.EnrollmentInput{Who: who, StudentID: studentID, CourseID: body.CourseID}, nil
}
