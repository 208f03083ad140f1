package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error classes that map to a client fault rather than a server
// one: unique violation, foreign key violation, not-null violation, check
// violation and invalid text representation.
var clientFaultCodes = map[string]bool{
	"23505": true,
	"23503": true,
	"23502": true,
	"23514": true,
	"22P02": true,
}

// FromPersistence translates a repository error into an HTTP response.
// Row absence becomes 404, constraint violations become 400, and anything
// else falls back to the status the operation prescribes (400 for writes,
// 500 for reads and deletes).
func FromPersistence(c *gin.Context, err error, fallback int) {
	if errors.Is(err, pgx.ErrNoRows) {
		Error(c, http.StatusNotFound, "record not found")
		return
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && clientFaultCodes[pgErr.Code] {
		Error(c, http.StatusBadRequest, pgErr.Message)
		return
	}

	Error(c, fallback, err.Error())
}
