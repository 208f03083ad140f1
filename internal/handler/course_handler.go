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

// CourseHandler handles course CRUD endpoints.
type CourseHandler struct {
	courseService *service.CourseService
}

// NewCourseHandler creates a new CourseHandler.
func NewCourseHandler(courseService *service.CourseService) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

// CreateCourse handles POST /courses.
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var req model.CreateCourseRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.ValidationError(c, fields)
		return
	}

	course := &model.Course{Name: req.Name}
	if err := h.courseService.Create(c.Request.Context(), course); err != nil {
		response.FromPersistence(c, err, http.StatusBadRequest)
		return
	}

	c.JSON(http.StatusCreated, course)
}

// ListCourses handles GET /courses.
func (h *CourseHandler) ListCourses(c *gin.Context) {
	courses, err := h.courseService.List(c.Request.Context())
	if err != nil {
		response.FromPersistence(c, err, http.StatusInternalServerError)
		return
	}
	if courses == nil {
		courses = []model.Course{}
	}

	c.JSON(http.StatusOK, courses)
}

// GetCourse handles GET /courses/:id.
func (h *CourseHandler) GetCourse(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid course id")
		return
	}

	course, err := h.courseService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Error(c, http.StatusNotFound, "course not found")
			return
		}
		response.FromPersistence(c, err, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, course)
}

// UpdateCourse handles PUT /courses/:id.
func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid course id")
		return
	}

	var req model.UpdateCourseRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.ValidationError(c, fields)
		return
	}

	course, err := h.courseService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Error(c, http.StatusNotFound, "course not found")
			return
		}
		response.FromPersistence(c, err, http.StatusInternalServerError)
		return
	}

	if req.Name != nil {
		course.Name = *req.Name
	}

	if err := h.courseService.Update(c.Request.Context(), course); err != nil {
		response.FromPersistence(c, err, http.StatusBadRequest)
		return
	}

	c.JSON(http.StatusOK, course)
}

// DeleteCourse handles DELETE /courses/:id.
func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid course id")
		return
	}

	if _, err := h.courseService.GetByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Error(c, http.StatusNotFound, "course not found")
			return
		}
		response.FromPersistence(c, err, http.StatusInternalServerError)
		return
	}

	if err := h.courseService.Delete(c.Request.Context(), id); err != nil {
		response.FromPersistence(c, err, http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusNoContent)
}
