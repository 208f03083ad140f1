package model

import "time"

// StudentCourse is the association row between a student and a course,
// identified by the composite (student_id, course_id) key.
type StudentCourse struct {
	StudentID      int64      `json:"student_id"`
	CourseID       int64      `json:"course_id"`
	ConclusionDate *time.Time `json:"conclusion_date"`
}

// CreateStudentCourseRequest is the payload for creating an association.
// Both ids are mandatory; duplicate pairs and dangling foreign keys are
// rejected by the schema.
type CreateStudentCourseRequest struct {
	StudentID      int64      `json:"student_id" binding:"required"`
	CourseID       int64      `json:"course_id" binding:"required"`
	ConclusionDate *time.Time `json:"conclusion_date"`
}

// UpdateStudentCourseRequest is the payload for updating an association.
// It must carry both key fields and may repoint the composite key itself.
type UpdateStudentCourseRequest struct {
	StudentID      int64      `json:"student_id" binding:"required"`
	CourseID       int64      `json:"course_id" binding:"required"`
	ConclusionDate *time.Time `json:"conclusion_date"`
}
