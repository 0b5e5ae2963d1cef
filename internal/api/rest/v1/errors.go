package v1

import (
	"errors"
	"net/http"

	"github.com/MGTheTrain/student-roster/internal/domain/roster"

	"github.com/gin-gonic/gin"
)

// statusForError maps domain errors to HTTP status codes
func statusForError(err error) int {
	switch {
	case errors.Is(err, roster.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, roster.ErrStudentNotFound), errors.Is(err, roster.ErrClassroomNotFound):
		return http.StatusNotFound
	case errors.Is(err, roster.ErrConcurrencyConflict), errors.Is(err, roster.ErrClassroomInUse):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func respondWithError(ctx *gin.Context, status int, message string) {
	ctx.AbortWithStatusJSON(status, ErrorResponse{Message: message})
}

func respondWithDomainError(ctx *gin.Context, err error) {
	respondWithError(ctx, statusForError(err), err.Error())
}
