package v1

import (
	"fmt"
	"net/http"

	"github.com/MGTheTrain/student-roster/internal/domain/roster"

	"github.com/gin-gonic/gin"
)

// ClassroomHandler defines the interface for handling classroom-related operations
type ClassroomHandler interface {
	ListOptions(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type classroomHandler struct {
	classroomService roster.ClassroomService
}

// NewClassroomHandler creates a new ClassroomHandler
func NewClassroomHandler(classroomService roster.ClassroomService) ClassroomHandler {
	return &classroomHandler{classroomService: classroomService}
}

// ListOptions handles the GET request for the classroom select options
// @Summary List classrooms as select options
// @Tags Classroom
// @Produce json
// @Success 200 {array} ClassroomOptionResponse
// @Failure 500 {object} ErrorResponse
// @Router /classrooms [get]
func (handler *classroomHandler) ListOptions(ctx *gin.Context) {
	options, err := handler.classroomService.Options(ctx)
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, fmt.Sprintf("list query failed: %v", err))
		return
	}

	listResponse := make([]ClassroomOptionResponse, 0, len(options))
	for _, option := range options {
		listResponse = append(listResponse, ClassroomOptionResponse{ID: option.ID, Name: option.Name})
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request for a classroom and its children
// @Summary Retrieve a classroom by ID
// @Tags Classroom
// @Produce json
// @Param id path int true "Classroom ID"
// @Success 200 {object} ClassroomResponse
// @Failure 404 {object} ErrorResponse
// @Router /classrooms/{id} [get]
func (handler *classroomHandler) GetByID(ctx *gin.Context) {
	classroomID, ok := pathID(ctx)
	if !ok {
		return
	}

	classroom, err := handler.classroomService.GetByID(ctx, classroomID)
	if err != nil {
		respondWithDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, NewClassroomResponse(classroom))
}

// Create handles the POST request to add a classroom
// @Summary Create a classroom
// @Tags Classroom
// @Accept json
// @Produce json
// @Param requestBody body ClassroomRequest true "Classroom"
// @Success 201 {object} ClassroomResponse
// @Failure 400 {object} ErrorResponse
// @Router /classrooms [post]
func (handler *classroomHandler) Create(ctx *gin.Context) {
	var request ClassroomRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondWithError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid classroom data: %v", err))
		return
	}

	if err := request.Validate(); err != nil {
		respondWithError(ctx, http.StatusBadRequest, err.Error())
		return
	}

	classroom, err := handler.classroomService.Create(ctx, &roster.Classroom{
		Name:     request.Name,
		ParentID: request.ParentID,
	})
	if err != nil {
		respondWithDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, NewClassroomResponse(classroom))
}

// DeleteByID handles the DELETE request for an empty classroom
// @Summary Delete a classroom
// @Tags Classroom
// @Param id path int true "Classroom ID"
// @Success 204
// @Failure 409 {object} ErrorResponse
// @Router /classrooms/{id} [delete]
func (handler *classroomHandler) DeleteByID(ctx *gin.Context) {
	classroomID, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := handler.classroomService.DeleteByID(ctx, classroomID); err != nil {
		respondWithDomainError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
