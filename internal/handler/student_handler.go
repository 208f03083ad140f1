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

// StudentHandler handles student CRUD endpoints, including the nested
// location and course enrollment writes.
type StudentHandler struct {
	studentService *service.StudentService
}

// NewStudentHandler creates a new StudentHandler.
func NewStudentHandler(studentService *service.StudentService) *StudentHandler {
	return &StudentHandler{studentService: studentService}
}

// CreateStudent handles POST /students. The student row, its location and
// its enrollments are written in one transaction; any failure rolls the
// whole request back with a 400.
func (h *StudentHandler) CreateStudent(c *gin.Context) {
	var req model.CreateStudentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.ValidationError(c, fields)
		return
	}

	student := &model.Student{
		Name:      req.Name,
		Lastname:  req.Lastname,
		Birthdate: req.Birthdate,
		CPF:       req.CPF,
		Gender:    req.Gender,
		Email:     req.Email,
	}
	location := &model.Location{
		CEP:        req.Location.CEP,
		Country:    req.Location.Country,
		Street:     req.Location.Street,
		District:   req.Location.District,
		Number:     req.Location.Number,
		Complement: req.Location.Complement,
		City:       req.Location.City,
		State:      req.Location.State,
	}

	if err := h.studentService.Create(c.Request.Context(), student, location, req.Courses); err != nil {
		response.FromPersistence(c, err, http.StatusBadRequest)
		return
	}

	// The created record is returned as stored, without reloading the
	// location and course associations.
	c.JSON(http.StatusCreated, student)
}

// ListStudents handles GET /students.
func (h *StudentHandler) ListStudents(c *gin.Context) {
	students, err := h.studentService.List(c.Request.Context())
	if err != nil {
		response.FromPersistence(c, err, http.StatusInternalServerError)
		return
	}
	if students == nil {
		students = []model.Student{}
	}

	c.JSON(http.StatusOK, students)
}

// GetStudent handles GET /students/:id.
func (h *StudentHandler) GetStudent(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid student id")
		return
	}

	student, err := h.studentService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Error(c, http.StatusNotFound, "student not found")
			return
		}
		response.FromPersistence(c, err, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, student)
}

// UpdateStudent handles PUT /students/:id. Scalar patches, the optional
// location payload and the optional enrollment replacement run in one
// transaction; the reloaded record is returned.
func (h *StudentHandler) UpdateStudent(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid student id")
		return
	}

	var req model.UpdateStudentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.ValidationError(c, fields)
		return
	}

	if _, err := h.studentService.GetByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Error(c, http.StatusNotFound, "student not found")
			return
		}
		response.FromPersistence(c, err, http.StatusInternalServerError)
		return
	}

	upd := &model.StudentUpdate{
		Name:      req.Name,
		Lastname:  req.Lastname,
		Birthdate: req.Birthdate,
		CPF:       req.CPF,
		Gender:    req.Gender,
		Email:     req.Email,
		Location:  req.Location,
		Courses:   req.Courses,
	}

	student, err := h.studentService.Update(c.Request.Context(), id, upd)
	if err != nil {
		response.FromPersistence(c, err, http.StatusBadRequest)
		return
	}

	c.JSON(http.StatusOK, student)
}

// DeleteStudent handles DELETE /students/:id. Only the student row is
// deleted here; the location goes via the schema cascade.
func (h *StudentHandler) DeleteStudent(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid student id")
		return
	}

	if _, err := h.studentService.GetByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Error(c, http.StatusNotFound, "student not found")
			return
		}
		response.FromPersistence(c, err, http.StatusInternalServerError)
		return
	}

	if err := h.studentService.Delete(c.Request.Context(), id); err != nil {
		response.FromPersistence(c, err, http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusNoContent)
}
