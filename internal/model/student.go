package model

import "time"

// Gender represents the student's declared gender.
type Gender string

const (
	GenderMale           Gender = "Male"
	GenderFemale         Gender = "Female"
	GenderNonBinary      Gender = "Non-binary"
	GenderOther          Gender = "Other"
	GenderPreferNotToSay Gender = "PreferNotToSay"
)

// Student represents an enrolled student. Location and Courses are populated
// on reads; create responses carry only the scalar columns.
type Student struct {
	ID           int64              `json:"id_student"`
	Name         string             `json:"student_name"`
	Lastname     *string            `json:"student_lastname"`
	Birthdate    *time.Time         `json:"student_birthdate"`
	CPF          *string            `json:"student_cpf"`
	Gender       *Gender            `json:"student_gender"`
	Email        string             `json:"student_email"`
	RegisterDate time.Time          `json:"student_register_date"`
	Location     *Location          `json:"location,omitempty"`
	Courses      []CourseEnrollment `json:"courses,omitempty"`
}

// Enrollment links a student to a course with an optional conclusion date.
type Enrollment struct {
	CourseID       int64      `json:"id_course" binding:"required"`
	ConclusionDate *time.Time `json:"conclusion_date"`
}

// CreateStudentRequest is the payload for creating a student together with
// its location and course enrollments.
type CreateStudentRequest struct {
	Name      string                `json:"student_name" binding:"required,min=1,max=255"`
	Lastname  *string               `json:"student_lastname" binding:"omitempty,max=255"`
	Birthdate *time.Time            `json:"student_birthdate"`
	CPF       *string               `json:"student_cpf" binding:"omitempty,max=14"`
	Gender    *Gender               `json:"student_gender" binding:"omitempty,oneof=Male Female Non-binary Other PreferNotToSay"`
	Email     string                `json:"student_email" binding:"required,email,max=255"`
	Location  CreateLocationRequest `json:"location" binding:"required"`
	Courses   []Enrollment          `json:"courses" binding:"omitempty,dive"`
}

// UpdateStudentRequest is the payload for a partial student update. Nil
// fields are left untouched; a non-empty Courses list replaces the full
// enrollment set.
type UpdateStudentRequest struct {
	Name      *string        `json:"student_name" binding:"omitempty,min=1,max=255"`
	Lastname  *string        `json:"student_lastname" binding:"omitempty,max=255"`
	Birthdate *time.Time     `json:"student_birthdate"`
	CPF       *string        `json:"student_cpf" binding:"omitempty,max=14"`
	Gender    *Gender        `json:"student_gender" binding:"omitempty,oneof=Male Female Non-binary Other PreferNotToSay"`
	Email     *string        `json:"student_email" binding:"omitempty,email,max=255"`
	Location  *LocationPatch `json:"location"`
	Courses   []Enrollment   `json:"courses" binding:"omitempty,dive"`
}

// StudentUpdate is the repository-level view of an update: scalar patches
// plus the optional location and enrollment changes, applied in one
// transaction.
type StudentUpdate struct {
	Name      *string
	Lastname  *string
	Birthdate *time.Time
	CPF       *string
	Gender    *Gender
	Email     *string
	Location  *LocationPatch
	Courses   []Enrollment
}
