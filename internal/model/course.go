package model

import "time"

// Course represents a course offered to students.
type Course struct {
	ID   int64  `json:"id_course"`
	Name string `json:"course_name"`
}

// CourseEnrollment is a course as seen from a student record, with the
// conclusion date projected from the association row.
type CourseEnrollment struct {
	CourseID       int64      `json:"id_course"`
	Name           string     `json:"course_name"`
	ConclusionDate *time.Time `json:"conclusion_date"`
}

// CreateCourseRequest is the payload for creating a new course.
type CreateCourseRequest struct {
	Name string `json:"course_name" binding:"required,min=1,max=255"`
}

// UpdateCourseRequest is the payload for a partial course update.
type UpdateCourseRequest struct {
	Name *string `json:"course_name" binding:"omitempty,min=1,max=255"`
}
