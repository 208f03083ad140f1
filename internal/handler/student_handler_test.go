package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/trindtech/student-registry/internal/model"
	"github.com/trindtech/student-registry/internal/service"
)

// fakeStudentRepo mimics the transactional student repository contract in
// memory: unknown course ids are skipped, a non-empty courses list replaces
// the enrollment set, and deleting a student cascades to its location.
type fakeStudentRepo struct {
	nextID      int64
	students    map[int64]model.Student
	locations   map[int64]model.Location
	enrollments map[int64][]model.Enrollment
	courses     map[int64]string
}

func newFakeStudentRepo(courses map[int64]string) *fakeStudentRepo {
	return &fakeStudentRepo{
		students:    make(map[int64]model.Student),
		locations:   make(map[int64]model.Location),
		enrollments: make(map[int64][]model.Enrollment),
		courses:     courses,
	}
}

func (f *fakeStudentRepo) GetByID(_ context.Context, id int64) (*model.Student, error) {
	s, ok := f.students[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	if loc, ok := f.locations[id]; ok {
		l := loc
		s.Location = &l
	}
	for _, e := range f.enrollments[id] {
		s.Courses = append(s.Courses, model.CourseEnrollment{
			CourseID:       e.CourseID,
			Name:           f.courses[e.CourseID],
			ConclusionDate: e.ConclusionDate,
		})
	}
	return &s, nil
}

func (f *fakeStudentRepo) List(_ context.Context) ([]model.Student, error) {
	var out []model.Student
	for id := int64(1); id <= f.nextID; id++ {
		if _, ok := f.students[id]; ok {
			s, _ := f.GetByID(context.Background(), id)
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeStudentRepo) Create(_ context.Context, s *model.Student, loc *model.Location, enrollments []model.Enrollment) error {
	for _, existing := range f.students {
		if existing.Email == s.Email {
			return &pgconn.PgError{Code: "23505", Message: `duplicate key value violates unique constraint "students_student_email_key"`}
		}
	}
	f.nextID++
	s.ID = f.nextID
	s.RegisterDate = time.Now().UTC()
	f.students[s.ID] = *s

	loc.StudentFK = s.ID
	loc.ID = s.ID
	f.locations[s.ID] = *loc

	for _, e := range enrollments {
		if _, ok := f.courses[e.CourseID]; ok {
			f.enrollments[s.ID] = append(f.enrollments[s.ID], e)
		}
	}
	return nil
}

func (f *fakeStudentRepo) Update(_ context.Context, id int64, upd *model.StudentUpdate) error {
	s := f.students[id]
	if upd.Name != nil {
		s.Name = *upd.Name
	}
	if upd.Lastname != nil {
		s.Lastname = upd.Lastname
	}
	if upd.Birthdate != nil {
		s.Birthdate = upd.Birthdate
	}
	if upd.CPF != nil {
		s.CPF = upd.CPF
	}
	if upd.Gender != nil {
		s.Gender = upd.Gender
	}
	if upd.Email != nil {
		s.Email = *upd.Email
	}
	f.students[id] = s

	if upd.Location != nil {
		loc := f.locations[id]
		loc.StudentFK = id
		if upd.Location.CEP != nil {
			loc.CEP = *upd.Location.CEP
		}
		if upd.Location.Country != nil {
			loc.Country = *upd.Location.Country
		}
		if upd.Location.Number != nil {
			loc.Number = *upd.Location.Number
		}
		if upd.Location.City != nil {
			loc.City = upd.Location.City
		}
		f.locations[id] = loc
	}

	if len(upd.Courses) > 0 {
		f.enrollments[id] = nil
		for _, e := range upd.Courses {
			if _, ok := f.courses[e.CourseID]; ok {
				f.enrollments[id] = append(f.enrollments[id], e)
			}
		}
	}
	return nil
}

func (f *fakeStudentRepo) Delete(_ context.Context, id int64) error {
	delete(f.students, id)
	delete(f.locations, id)
	delete(f.enrollments, id)
	return nil
}

func newStudentRouter(repo service.StudentRepository) *gin.Engine {
	h := NewStudentHandler(service.NewStudentService(repo))
	r := gin.New()
	r.POST("/students", h.CreateStudent)
	r.GET("/students", h.ListStudents)
	r.GET("/students/:id", h.GetStudent)
	r.PUT("/students/:id", h.UpdateStudent)
	r.DELETE("/students/:id", h.DeleteStudent)
	return r
}

const validStudentBody = `{
	"student_name": "Maria",
	"student_email": "maria@example.com",
	"student_gender": "Female",
	"location": {"cep": "13010-000", "country": "Brazil", "number": 10}
}`

func TestCreateStudentSkipsUnknownCourse(t *testing.T) {
	repo := newFakeStudentRepo(map[int64]string{1: "Algorithms"})
	r := newStudentRouter(repo)

	body := `{
		"student_name": "Maria",
		"student_email": "maria@example.com",
		"location": {"cep": "13010-000", "country": "Brazil", "number": 10},
		"courses": [{"id_course": 1}, {"id_course": 999}]
	}`
	w := perform(r, http.MethodPost, "/students", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("got status %d, want 201: %s", w.Code, w.Body.String())
	}

	if got := len(repo.enrollments[1]); got != 1 {
		t.Fatalf("got %d enrollments, want 1 (unknown course id must be skipped)", got)
	}
	if repo.enrollments[1][0].CourseID != 1 {
		t.Fatalf("got enrollment for course %d, want 1", repo.enrollments[1][0].CourseID)
	}
}

func TestCreateStudentResponseOmitsAssociations(t *testing.T) {
	repo := newFakeStudentRepo(map[int64]string{1: "Algorithms"})
	r := newStudentRouter(repo)

	w := perform(r, http.MethodPost, "/students", validStudentBody)
	if w.Code != http.StatusCreated {
		t.Fatalf("got status %d, want 201: %s", w.Code, w.Body.String())
	}
	var created model.Student
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("student id was not assigned")
	}
	if created.Location != nil || created.Courses != nil {
		t.Fatal("create response must not embed associations")
	}
}

func TestCreateStudentDuplicateEmail(t *testing.T) {
	repo := newFakeStudentRepo(nil)
	r := newStudentRouter(repo)

	if w := perform(r, http.MethodPost, "/students", validStudentBody); w.Code != http.StatusCreated {
		t.Fatalf("first create: got status %d, want 201", w.Code)
	}
	w := perform(r, http.MethodPost, "/students", validStudentBody)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("second create: got status %d, want 400", w.Code)
	}
	if len(repo.students) != 1 {
		t.Fatalf("got %d students, want 1 (no row created on duplicate)", len(repo.students))
	}
}

func TestCreateStudentMissingLocation(t *testing.T) {
	r := newStudentRouter(newFakeStudentRepo(nil))

	w := perform(r, http.MethodPost, "/students", `{"student_name":"Ana","student_email":"ana@example.com"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", w.Code)
	}
}

func TestGetStudentEmbedsRelations(t *testing.T) {
	repo := newFakeStudentRepo(map[int64]string{3: "Literature"})
	r := newStudentRouter(repo)

	body := `{
		"student_name": "Jo",
		"student_email": "jo@example.com",
		"location": {"cep": "13010-000", "country": "Brazil", "number": 5, "city": "Campinas"},
		"courses": [{"id_course": 3, "conclusion_date": "2025-06-30T00:00:00Z"}]
	}`
	perform(r, http.MethodPost, "/students", body)

	w := perform(r, http.MethodGet, "/students/1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", w.Code)
	}
	var got model.Student
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Location == nil || got.Location.CEP != "13010-000" {
		t.Fatalf("location not embedded: %+v", got.Location)
	}
	if len(got.Courses) != 1 || got.Courses[0].Name != "Literature" {
		t.Fatalf("courses not embedded: %+v", got.Courses)
	}
	if got.Courses[0].ConclusionDate == nil {
		t.Fatal("conclusion date not projected from association row")
	}
}

func TestUpdateStudentReplacesCourseSet(t *testing.T) {
	repo := newFakeStudentRepo(map[int64]string{1: "A", 2: "B", 3: "C"})
	r := newStudentRouter(repo)

	body := `{
		"student_name": "Leo",
		"student_email": "leo@example.com",
		"location": {"cep": "13010-000", "country": "Brazil", "number": 1},
		"courses": [{"id_course": 1}, {"id_course": 2}]
	}`
	perform(r, http.MethodPost, "/students", body)

	w := perform(r, http.MethodPut, "/students/1", `{"courses":[{"id_course":3}]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200: %s", w.Code, w.Body.String())
	}
	var got model.Student
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Courses) != 1 || got.Courses[0].CourseID != 3 {
		t.Fatalf("got courses %+v, want exactly the new set [3]", got.Courses)
	}
}

func TestUpdateStudentEmptyCourseListIsNoop(t *testing.T) {
	repo := newFakeStudentRepo(map[int64]string{1: "A"})
	r := newStudentRouter(repo)

	body := `{
		"student_name": "Bia",
		"student_email": "bia@example.com",
		"location": {"cep": "13010-000", "country": "Brazil", "number": 2},
		"courses": [{"id_course": 1}]
	}`
	perform(r, http.MethodPost, "/students", body)

	w := perform(r, http.MethodPut, "/students/1", `{"courses":[]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", w.Code)
	}
	if got := len(repo.enrollments[1]); got != 1 {
		t.Fatalf("got %d enrollments, want 1 (empty list leaves associations untouched)", got)
	}
}

func TestUpdateStudentScalarPatch(t *testing.T) {
	repo := newFakeStudentRepo(nil)
	r := newStudentRouter(repo)
	perform(r, http.MethodPost, "/students", validStudentBody)

	w := perform(r, http.MethodPut, "/students/1", `{"student_name":"Maria Clara"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200: %s", w.Code, w.Body.String())
	}
	s := repo.students[1]
	if s.Name != "Maria Clara" {
		t.Fatalf("got name %q, want %q", s.Name, "Maria Clara")
	}
	if s.Email != "maria@example.com" {
		t.Fatalf("email changed on partial update: %q", s.Email)
	}
}

func TestUpdateStudentNotFound(t *testing.T) {
	r := newStudentRouter(newFakeStudentRepo(nil))

	w := perform(r, http.MethodPut, "/students/9", `{"student_name":"X"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("got status %d, want 404", w.Code)
	}
}

func TestDeleteStudentNotFoundNever500(t *testing.T) {
	r := newStudentRouter(newFakeStudentRepo(nil))

	w := perform(r, http.MethodDelete, "/students/9", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("got status %d, want 404", w.Code)
	}
}

func TestDeleteStudent(t *testing.T) {
	repo := newFakeStudentRepo(nil)
	r := newStudentRouter(repo)
	perform(r, http.MethodPost, "/students", validStudentBody)

	w := perform(r, http.MethodDelete, "/students/1", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("got status %d, want 204", w.Code)
	}
	if len(repo.students) != 0 || len(repo.locations) != 0 {
		t.Fatal("student and cascaded location were not removed")
	}
}

func TestCreateStudentInvalidGender(t *testing.T) {
	r := newStudentRouter(newFakeStudentRepo(nil))

	body := `{
		"student_name": "Ana",
		"student_email": "ana@example.com",
		"student_gender": "Unknown",
		"location": {"cep": "13010-000", "country": "Brazil", "number": 1}
	}`
	w := perform(r, http.MethodPost, "/students", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", w.Code)
	}
}
