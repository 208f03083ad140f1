package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/trindtech/student-registry/internal/model"
	"github.com/trindtech/student-registry/internal/service"
)

type fakeCourseRepo struct {
	nextID  int64
	courses map[int64]model.Course
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{courses: make(map[int64]model.Course)}
}

func (f *fakeCourseRepo) GetByID(_ context.Context, id int64) (*model.Course, error) {
	c, ok := f.courses[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &c, nil
}

func (f *fakeCourseRepo) List(_ context.Context) ([]model.Course, error) {
	var out []model.Course
	for id := int64(1); id <= f.nextID; id++ {
		if c, ok := f.courses[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCourseRepo) Create(_ context.Context, c *model.Course) error {
	f.nextID++
	c.ID = f.nextID
	f.courses[c.ID] = *c
	return nil
}

func (f *fakeCourseRepo) Update(_ context.Context, c *model.Course) error {
	if _, ok := f.courses[c.ID]; ok {
		f.courses[c.ID] = *c
	}
	return nil
}

func (f *fakeCourseRepo) Delete(_ context.Context, id int64) error {
	delete(f.courses, id)
	return nil
}

func newCourseRouter(repo service.CourseRepository) *gin.Engine {
	h := NewCourseHandler(service.NewCourseService(repo))
	r := gin.New()
	r.POST("/courses", h.CreateCourse)
	r.GET("/courses", h.ListCourses)
	r.GET("/courses/:id", h.GetCourse)
	r.PUT("/courses/:id", h.UpdateCourse)
	r.DELETE("/courses/:id", h.DeleteCourse)
	return r
}

func TestCreateCourseThenGet(t *testing.T) {
	r := newCourseRouter(newFakeCourseRepo())

	w := perform(r, http.MethodPost, "/courses", `{"course_name":"Algorithms"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: got status %d, want 201: %s", w.Code, w.Body.String())
	}
	var created model.Course
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("create: course id was not assigned")
	}
	if created.Name != "Algorithms" {
		t.Fatalf("create: got name %q, want %q", created.Name, "Algorithms")
	}

	w = perform(r, http.MethodGet, "/courses/1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("get: got status %d, want 200", w.Code)
	}
	var got model.Course
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode get response: %v", err)
	}
	if got != created {
		t.Fatalf("get: got %+v, want %+v", got, created)
	}
}

func TestCreateCourseMissingName(t *testing.T) {
	r := newCourseRouter(newFakeCourseRepo())

	w := perform(r, http.MethodPost, "/courses", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", w.Code)
	}
}

func TestListCoursesEmpty(t *testing.T) {
	r := newCourseRouter(newFakeCourseRepo())

	w := perform(r, http.MethodGet, "/courses", "")
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", w.Code)
	}
	if body := w.Body.String(); body != "[]" {
		t.Fatalf("got body %q, want empty array", body)
	}
}

func TestGetCourseNotFound(t *testing.T) {
	r := newCourseRouter(newFakeCourseRepo())

	w := perform(r, http.MethodGet, "/courses/99", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("got status %d, want 404", w.Code)
	}
}

func TestUpdateCoursePartial(t *testing.T) {
	repo := newFakeCourseRepo()
	r := newCourseRouter(repo)
	perform(r, http.MethodPost, "/courses", `{"course_name":"Databases"}`)

	w := perform(r, http.MethodPut, "/courses/1", `{"course_name":"Databases II"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200: %s", w.Code, w.Body.String())
	}
	if repo.courses[1].Name != "Databases II" {
		t.Fatalf("got stored name %q, want %q", repo.courses[1].Name, "Databases II")
	}
}

func TestUpdateCourseNotFound(t *testing.T) {
	r := newCourseRouter(newFakeCourseRepo())

	w := perform(r, http.MethodPut, "/courses/7", `{"course_name":"X"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("got status %d, want 404", w.Code)
	}
}

func TestDeleteCourse(t *testing.T) {
	repo := newFakeCourseRepo()
	r := newCourseRouter(repo)
	perform(r, http.MethodPost, "/courses", `{"course_name":"Networks"}`)

	w := perform(r, http.MethodDelete, "/courses/1", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("got status %d, want 204", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Fatalf("got body %q, want empty", w.Body.String())
	}
	if len(repo.courses) != 0 {
		t.Fatal("course was not deleted")
	}
}

func TestDeleteCourseNotFoundNever500(t *testing.T) {
	r := newCourseRouter(newFakeCourseRepo())

	w := perform(r, http.MethodDelete, "/courses/42", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("got status %d, want 404", w.Code)
	}
}
