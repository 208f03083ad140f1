package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/trindtech/student-registry/internal/model"
	"github.com/trindtech/student-registry/internal/response"
	"github.com/trindtech/student-registry/internal/service"
	"github.com/trindtech/student-registry/internal/validator"
)

// StudentCourseHandler handles the student-course association endpoints.
type StudentCourseHandler struct {
	associationService *service.StudentCourseService
}

// NewStudentCourseHandler creates a new StudentCourseHandler.
func NewStudentCourseHandler(associationService *service.StudentCourseService) *StudentCourseHandler {
	return &StudentCourseHandler{associationService: associationService}
}

// CreateAssociation handles POST /student-course.
func (h *StudentCourseHandler) CreateAssociation(c *gin.Context) {
	var req model.CreateStudentCourseRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.ValidationError(c, fields)
		return
	}

	sc := &model.StudentCourse{
		StudentID:      req.StudentID,
		CourseID:       req.CourseID,
		ConclusionDate: req.ConclusionDate,
	}

	if err := h.associationService.Create(c.Request.Context(), sc); err != nil {
		response.FromPersistence(c, err, http.StatusBadRequest)
		return
	}

	c.JSON(http.StatusCreated, sc)
}

// ListAssociations handles GET /student-course.
func (h *StudentCourseHandler) ListAssociations(c *gin.Context) {
	associations, err := h.associationService.List(c.Request.Context())
	if err != nil {
		response.FromPersistence(c, err, http.StatusInternalServerError)
		return
	}
	if associations == nil {
		associations = []model.StudentCourse{}
	}

	c.JSON(http.StatusOK, associations)
}

// GetAssociation handles GET /student-course/:student_id/:course_id.
func (h *StudentCourseHandler) GetAssociation(c *gin.Context) {
	studentID, courseID, ok := h.compositeKey(c)
	if !ok {
		return
	}

	sc, err := h.associationService.GetByKey(c.Request.Context(), studentID, courseID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Error(c, http.StatusNotFound, "association not found")
			return
		}
		response.FromPersistence(c, err, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, sc)
}

// UpdateAssociation handles PUT /student-course/:student_id/:course_id.
// The body must carry both new key values and may repoint the composite
// key itself.
func (h *StudentCourseHandler) UpdateAssociation(c *gin.Context) {
	studentID, courseID, ok := h.compositeKey(c)
	if !ok {
		return
	}

	if _, err := h.associationService.GetByKey(c.Request.Context(), studentID, courseID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Error(c, http.StatusNotFound, "association not found")
			return
		}
		response.FromPersistence(c, err, http.StatusInternalServerError)
		return
	}

	var req model.UpdateStudentCourseRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.ValidationError(c, fields)
		return
	}

	sc := &model.StudentCourse{
		StudentID:      req.StudentID,
		CourseID:       req.CourseID,
		ConclusionDate: req.ConclusionDate,
	}

	if err := h.associationService.Update(c.Request.Context(), studentID, courseID, sc); err != nil {
		response.FromPersistence(c, err, http.StatusBadRequest)
		return
	}

	c.JSON(http.StatusOK, sc)
}

// DeleteAssociation handles DELETE /student-course/:student_id/:course_id.
func (h *StudentCourseHandler) DeleteAssociation(c *gin.Context) {
	studentID, courseID, ok := h.compositeKey(c)
	if !ok {
		return
	}

	if _, err := h.associationService.GetByKey(c.Request.Context(), studentID, courseID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Error(c, http.StatusNotFound, "association not found")
			return
		}
		response.FromPersistence(c, err, http.StatusInternalServerError)
		return
	}

	if err := h.associationService.Delete(c.Request.Context(), studentID, courseID); err != nil {
		response.FromPersistence(c, err, http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusNoContent)
}

// compositeKey parses both path params, failing the request on bad input.
func (h *StudentCourseHandler) compositeKey(c *gin.Context) (int64, int64, bool) {
	studentID, err := strconv.ParseInt(c.Param("student_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid student id")
		return 0, 0, false
	}
	courseID, err := strconv.ParseInt(c.Param("course_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid course id")
		return 0, 0, false
	}
	return studentID, courseID, true
}
