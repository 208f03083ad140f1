package model

// Location is a student's address. Each student has at most one location;
// deleting the student cascades to it at the schema level.
type Location struct {
	ID         int64   `json:"id_location"`
	CEP        string  `json:"cep"`
	Country    string  `json:"country"`
	Street     *string `json:"street"`
	District   *string `json:"district"`
	Number     int     `json:"number"`
	Complement *string `json:"complement"`
	City       *string `json:"city"`
	State      *string `json:"state"`
	StudentFK  int64   `json:"student_fk"`
}

// CreateLocationRequest is the nested location payload on student creation.
type CreateLocationRequest struct {
	CEP        string  `json:"cep" binding:"required,max=9"`
	Country    string  `json:"country" binding:"required,max=55"`
	Street     *string `json:"street" binding:"omitempty,max=255"`
	District   *string `json:"district" binding:"omitempty,max=255"`
	Number     int     `json:"number" binding:"required"`
	Complement *string `json:"complement" binding:"omitempty,max=100"`
	City       *string `json:"city" binding:"omitempty,max=255"`
	State      *string `json:"state" binding:"omitempty,max=100"`
}

// LocationPatch carries partial location fields on student update. When the
// student has no location yet a new row is created from the patch, so the
// NOT NULL columns must be present in that case; the database rejects the
// insert otherwise.
type LocationPatch struct {
	CEP        *string `json:"cep" binding:"omitempty,max=9"`
	Country    *string `json:"country" binding:"omitempty,max=55"`
	Street     *string `json:"street" binding:"omitempty,max=255"`
	District   *string `json:"district" binding:"omitempty,max=255"`
	Number     *int    `json:"number"`
	Complement *string `json:"complement" binding:"omitempty,max=100"`
	City       *string `json:"city" binding:"omitempty,max=255"`
	State      *string `json:"state" binding:"omitempty,max=100"`
}
