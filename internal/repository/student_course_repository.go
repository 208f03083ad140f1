package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/trindtech/student-registry/internal/model"
)

// StudentCourseRepository handles the student-course association rows,
// keyed by the composite (student_id, course_id) pair.
type StudentCourseRepository struct {
	pool *pgxpool.Pool
}

// NewStudentCourseRepository creates a new StudentCourseRepository.
func NewStudentCourseRepository(pool *pgxpool.Pool) *StudentCourseRepository {
	return &StudentCourseRepository{pool: pool}
}

// GetByKey retrieves the association row matching both ids.
func (r *StudentCourseRepository) GetByKey(ctx context.Context, studentID, courseID int64) (*model.StudentCourse, error) {
	sc := &model.StudentCourse{}
	err := r.pool.QueryRow(ctx,
		`SELECT student_id, course_id, conclusion_date
		 FROM student_course WHERE student_id = $1 AND course_id = $2`,
		studentID, courseID,
	).Scan(&sc.StudentID, &sc.CourseID, &sc.ConclusionDate)
	if err != nil {
		return nil, err
	}
	return sc, nil
}

// List retrieves all association rows without entity expansion.
func (r *StudentCourseRepository) List(ctx context.Context) ([]model.StudentCourse, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT student_id, course_id, conclusion_date
		 FROM student_course ORDER BY student_id, course_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var associations []model.StudentCourse
	for rows.Next() {
		var sc model.StudentCourse
		if err := rows.Scan(&sc.StudentID, &sc.CourseID, &sc.ConclusionDate); err != nil {
			return nil, err
		}
		associations = append(associations, sc)
	}
	return associations, rows.Err()
}

// Create inserts a new association row. Duplicate pairs and dangling
// foreign keys are rejected by the schema constraints.
func (r *StudentCourseRepository) Create(ctx context.Context, sc *model.StudentCourse) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO student_course (student_id, course_id, conclusion_date)
		 VALUES ($1, $2, $3)`,
		sc.StudentID, sc.CourseID, sc.ConclusionDate,
	)
	return err
}

// Update modifies the row identified by the old key, possibly repointing
// the composite key itself.
func (r *StudentCourseRepository) Update(ctx context.Context, oldStudentID, oldCourseID int64, sc *model.StudentCourse) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE student_course SET student_id = $1, course_id = $2, conclusion_date = $3
		 WHERE student_id = $4 AND course_id = $5`,
		sc.StudentID, sc.CourseID, sc.ConclusionDate, oldStudentID, oldCourseID,
	)
	return err
}

// Delete removes the association row matching both ids.
func (r *StudentCourseRepository) Delete(ctx context.Context, studentID, courseID int64) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM student_course WHERE student_id = $1 AND course_id = $2`,
		studentID, courseID,
	)
	return err
}
