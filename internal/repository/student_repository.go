package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/trindtech/student-registry/internal/model"
)

const studentColumns = `id_student, student_name, student_lastname, student_birthdate,
	student_cpf, student_gender, student_email, student_register_date`

// StudentRepository handles student data access, including the student's
// location and course enrollments. Multi-step writes run inside a single
// transaction so a failure in any step leaves no partial state behind.
type StudentRepository struct {
	pool *pgxpool.Pool
	log  zerolog.Logger
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(pool *pgxpool.Pool, log zerolog.Logger) *StudentRepository {
	return &StudentRepository{
		pool: pool,
		log:  log.With().Str("component", "student_repository").Logger(),
	}
}

// GetByID retrieves a student with its location and enrolled courses.
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*model.Student, error) {
	s := &model.Student{}
	err := r.pool.QueryRow(ctx,
		`SELECT `+studentColumns+` FROM students WHERE id_student = $1`, id,
	).Scan(&s.ID, &s.Name, &s.Lastname, &s.Birthdate, &s.CPF, &s.Gender, &s.Email, &s.RegisterDate)
	if err != nil {
		return nil, err
	}

	loc, err := r.locationOf(ctx, id)
	if err != nil {
		return nil, err
	}
	s.Location = loc

	courses, err := r.enrollmentsOf(ctx, id)
	if err != nil {
		return nil, err
	}
	s.Courses = courses

	return s, nil
}

// List retrieves all students with locations and enrolled courses embedded.
func (r *StudentRepository) List(ctx context.Context) ([]model.Student, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+studentColumns+` FROM students ORDER BY id_student`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []model.Student
	index := make(map[int64]int)
	for rows.Next() {
		var s model.Student
		if err := rows.Scan(&s.ID, &s.Name, &s.Lastname, &s.Birthdate, &s.CPF, &s.Gender, &s.Email, &s.RegisterDate); err != nil {
			return nil, err
		}
		index[s.ID] = len(students)
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	locRows, err := r.pool.Query(ctx,
		`SELECT id_location, cep, country, street, district, number, complement, city, state, student_fk
		 FROM locations`)
	if err != nil {
		return nil, err
	}
	defer locRows.Close()
	for locRows.Next() {
		var l model.Location
		if err := locRows.Scan(&l.ID, &l.CEP, &l.Country, &l.Street, &l.District, &l.Number, &l.Complement, &l.City, &l.State, &l.StudentFK); err != nil {
			return nil, err
		}
		if i, ok := index[l.StudentFK]; ok {
			loc := l
			students[i].Location = &loc
		}
	}
	if err := locRows.Err(); err != nil {
		return nil, err
	}

	courseRows, err := r.pool.Query(ctx,
		`SELECT sc.student_id, c.id_course, c.course_name, sc.conclusion_date
		 FROM student_course sc
		 JOIN courses c ON c.id_course = sc.course_id
		 ORDER BY sc.student_id, c.id_course`)
	if err != nil {
		return nil, err
	}
	defer courseRows.Close()
	for courseRows.Next() {
		var studentID int64
		var e model.CourseEnrollment
		if err := courseRows.Scan(&studentID, &e.CourseID, &e.Name, &e.ConclusionDate); err != nil {
			return nil, err
		}
		if i, ok := index[studentID]; ok {
			students[i].Courses = append(students[i].Courses, e)
		}
	}
	return students, courseRows.Err()
}

// Create inserts a student together with its location and course
// enrollments in one transaction. Enrollment entries whose course id does
// not resolve to a record are skipped without error. The student's Location
// and Courses fields are not populated on return.
func (r *StudentRepository) Create(ctx context.Context, s *model.Student, loc *model.Location, enrollments []model.Enrollment) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO students (student_name, student_lastname, student_birthdate, student_cpf, student_gender, student_email)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id_student, student_register_date`,
		s.Name, s.Lastname, s.Birthdate, s.CPF, s.Gender, s.Email,
	).Scan(&s.ID, &s.RegisterDate)
	if err != nil {
		return err
	}

	loc.StudentFK = s.ID
	err = tx.QueryRow(ctx,
		`INSERT INTO locations (cep, country, street, district, number, complement, city, state, student_fk)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id_location`,
		loc.CEP, loc.Country, loc.Street, loc.District, loc.Number, loc.Complement, loc.City, loc.State, loc.StudentFK,
	).Scan(&loc.ID)
	if err != nil {
		return err
	}

	if err := r.addEnrollments(ctx, tx, s.ID, enrollments); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Update applies scalar patches, the optional location change, and the
// optional enrollment replacement in one transaction. A non-empty Courses
// list clears all existing associations before re-adding the new set.
func (r *StudentRepository) Update(ctx context.Context, id int64, upd *model.StudentUpdate) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`UPDATE students SET
			student_name = COALESCE($1, student_name),
			student_lastname = COALESCE($2, student_lastname),
			student_birthdate = COALESCE($3, student_birthdate),
			student_cpf = COALESCE($4, student_cpf),
			student_gender = COALESCE($5, student_gender),
			student_email = COALESCE($6, student_email)
		 WHERE id_student = $7`,
		upd.Name, upd.Lastname, upd.Birthdate, upd.CPF, upd.Gender, upd.Email, id,
	)
	if err != nil {
		return err
	}

	if upd.Location != nil {
		if err := r.upsertLocation(ctx, tx, id, upd.Location); err != nil {
			return err
		}
	}

	if len(upd.Courses) > 0 {
		if _, err := tx.Exec(ctx,
			`DELETE FROM student_course WHERE student_id = $1`, id,
		); err != nil {
			return err
		}
		if err := r.addEnrollments(ctx, tx, id, upd.Courses); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// Delete removes a student by ID. The location row goes with it via the
// schema-level cascade.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM students WHERE id_student = $1`, id)
	return err
}

// addEnrollments links the student to each course that exists. Unknown
// course ids are skipped, matching the original API contract.
func (r *StudentRepository) addEnrollments(ctx context.Context, tx pgx.Tx, studentID int64, enrollments []model.Enrollment) error {
	for _, e := range enrollments {
		var courseID int64
		err := tx.QueryRow(ctx,
			`SELECT id_course FROM courses WHERE id_course = $1`, e.CourseID,
		).Scan(&courseID)
		if err == pgx.ErrNoRows {
			r.log.Debug().
				Int64("student_id", studentID).
				Int64("course_id", e.CourseID).
				Msg("Skipping enrollment for unknown course")
			continue
		}
		if err != nil {
			return err
		}

		if _, err := tx.Exec(ctx,
			`INSERT INTO student_course (student_id, course_id, conclusion_date)
			 VALUES ($1, $2, $3)`,
			studentID, courseID, e.ConclusionDate,
		); err != nil {
			return err
		}
	}
	return nil
}

// upsertLocation patches the student's existing location or creates one
// from the patch when none exists yet.
func (r *StudentRepository) upsertLocation(ctx context.Context, tx pgx.Tx, studentID int64, p *model.LocationPatch) error {
	tag, err := tx.Exec(ctx,
		`UPDATE locations SET
			cep = COALESCE($1, cep),
			country = COALESCE($2, country),
			street = COALESCE($3, street),
			district = COALESCE($4, district),
			number = COALESCE($5, number),
			complement = COALESCE($6, complement),
			city = COALESCE($7, city),
			state = COALESCE($8, state)
		 WHERE student_fk = $9`,
		p.CEP, p.Country, p.Street, p.District, p.Number, p.Complement, p.City, p.State, studentID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO locations (cep, country, street, district, number, complement, city, state, student_fk)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		p.CEP, p.Country, p.Street, p.District, p.Number, p.Complement, p.City, p.State, studentID,
	)
	return err
}

func (r *StudentRepository) locationOf(ctx context.Context, studentID int64) (*model.Location, error) {
	l := &model.Location{}
	err := r.pool.QueryRow(ctx,
		`SELECT id_location, cep, country, street, district, number, complement, city, state, student_fk
		 FROM locations WHERE student_fk = $1`, studentID,
	).Scan(&l.ID, &l.CEP, &l.Country, &l.Street, &l.District, &l.Number, &l.Complement, &l.City, &l.State, &l.StudentFK)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (r *StudentRepository) enrollmentsOf(ctx context.Context, studentID int64) ([]model.CourseEnrollment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT c.id_course, c.course_name, sc.conclusion_date
		 FROM student_course sc
		 JOIN courses c ON c.id_course = sc.course_id
		 WHERE sc.student_id = $1
		 ORDER BY c.id_course`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []model.CourseEnrollment
	for rows.Next() {
		var e model.CourseEnrollment
		if err := rows.Scan(&e.CourseID, &e.Name, &e.ConclusionDate); err != nil {
			return nil, err
		}
		courses = append(courses, e)
	}
	return courses, rows.Err()
}
