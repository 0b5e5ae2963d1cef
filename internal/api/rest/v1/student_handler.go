package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/MGTheTrain/student-roster/internal/domain/roster"
	"github.com/MGTheTrain/student-roster/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// StudentHandler defines the interface for handling student-related operations
type StudentHandler interface {
	Search(ctx *gin.Context)
	Autocomplete(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	Import(ctx *gin.Context)
	Export(ctx *gin.Context)
}

type studentHandler struct {
	studentService  roster.StudentService
	transferService roster.RosterTransferService
}

// NewStudentHandler creates a new StudentHandler
func NewStudentHandler(studentService roster.StudentService, transferService roster.RosterTransferService) StudentHandler {
	return &studentHandler{
		studentService:  studentService,
		transferService: transferService,
	}
}

// Search handles the GET request listing the students that match searchString
// @Summary Search students
// @Description Match on student name, classroom name or, for numeric terms, exact GPA. An empty term lists everyone.
// @Tags Student
// @Produce json
// @Param searchString query string false "Search term"
// @Success 200 {array} StudentResponse
// @Failure 500 {object} ErrorResponse
// @Router /students [get]
func (handler *studentHandler) Search(ctx *gin.Context) {
	students, err := handler.studentService.Search(ctx, ctx.Query("searchString"))
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, fmt.Sprintf("search failed: %v", err))
		return
	}

	listResponse := make([]StudentResponse, 0, len(students))
	for _, student := range students {
		listResponse = append(listResponse, NewStudentResponse(student))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// Autocomplete handles the GET request for type-ahead suggestions
// @Summary Autocomplete students
// @Tags Student
// @Produce json
// @Param term query string false "Search term"
// @Success 200 {array} SuggestionResponse
// @Failure 500 {object} ErrorResponse
// @Router /students/autocomplete [get]
func (handler *studentHandler) Autocomplete(ctx *gin.Context) {
	suggestions, err := handler.studentService.Autocomplete(ctx, ctx.Query("term"))
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, fmt.Sprintf("autocomplete failed: %v", err))
		return
	}

	listResponse := make([]SuggestionResponse, 0, len(suggestions))
	for _, s := range suggestions {
		listResponse = append(listResponse, SuggestionResponse{
			Label:         s.Label,
			Value:         s.Value,
			ClassroomName: s.ClassroomName,
			GPA:           s.GPA,
		})
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request for the details of one student
// @Summary Retrieve a student by ID
// @Tags Student
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} StudentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /students/{id} [get]
func (handler *studentHandler) GetByID(ctx *gin.Context) {
	studentID, ok := pathID(ctx)
	if !ok {
		return
	}

	student, err := handler.studentService.GetByID(ctx, studentID)
	if err != nil {
		respondWithDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, NewStudentResponse(student))
}

// Create handles the POST request to add a student
// @Summary Create a student
// @Tags Student
// @Accept json
// @Produce json
// @Param requestBody body StudentRequest true "Student"
// @Success 201 {object} StudentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /students [post]
func (handler *studentHandler) Create(ctx *gin.Context) {
	request, ok := bindStudentRequest(ctx)
	if !ok {
		return
	}

	student, err := handler.studentService.Create(ctx, request.ToDomain())
	if err != nil {
		respondWithDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, NewStudentResponse(student))
}

// Update handles the PUT request to edit a student. The body must carry
// the same id as the path and the version that was read.
// @Summary Edit a student
// @Tags Student
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param requestBody body StudentRequest true "Student"
// @Success 200 {object} StudentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /students/{id} [put]
func (handler *studentHandler) Update(ctx *gin.Context) {
	studentID, ok := pathID(ctx)
	if !ok {
		return
	}

	request, ok := decodeStudentRequest(ctx)
	if !ok {
		return
	}

	// An id mismatch is reported before the payload is validated
	if request.ID != studentID {
		respondWithDomainError(ctx, fmt.Errorf("%w: path id %d does not match payload id %d", roster.ErrStudentNotFound, studentID, request.ID))
		return
	}

	if !validateStudentRequest(ctx, request) {
		return
	}

	student, err := handler.studentService.Update(ctx, studentID, request.ToDomain())
	if err != nil {
		respondWithDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, NewStudentResponse(student))
}

// DeleteByID handles the DELETE request for a student. Unknown IDs succeed.
// @Summary Delete a student
// @Tags Student
// @Param id path int true "Student ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Router /students/{id} [delete]
func (handler *studentHandler) DeleteByID(ctx *gin.Context) {
	studentID, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := handler.studentService.DeleteByID(ctx, studentID); err != nil {
		respondWithDomainError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Import handles the multipart upload of a roster spreadsheet
// @Summary Import students from an xlsx roster
// @Tags Student
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Roster workbook"
// @Param classroomId formData int true "Target classroom"
// @Success 201 {object} ImportResponse
// @Failure 400 {object} ErrorResponse
// @Router /students/import [post]
func (handler *studentHandler) Import(ctx *gin.Context) {
	classroomID, err := strutil.ConvertToInt(ctx.PostForm("classroomId"))
	if err != nil || classroomID <= 0 {
		respondWithError(ctx, http.StatusBadRequest, "classroomId must be a positive integer")
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, fmt.Sprintf("missing roster file: %v", err))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, fmt.Sprintf("failed to open roster file: %v", err))
		return
	}
	defer file.Close()

	result, err := handler.transferService.Import(ctx, file, classroomID)
	if err != nil {
		status := statusForError(err)
		if status == http.StatusInternalServerError {
			status = http.StatusBadRequest
		}
		respondWithError(ctx, status, fmt.Sprintf("import failed: %v", err))
		return
	}

	skipped := result.SkippedRows
	if skipped == nil {
		skipped = []int{}
	}
	ctx.JSON(http.StatusCreated, ImportResponse{Imported: result.Imported, SkippedRows: skipped})
}

// Export handles the GET request to download matching students as xlsx
// @Summary Export students to an xlsx roster
// @Tags Student
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param searchString query string false "Search term"
// @Success 200 {file} file
// @Failure 500 {object} ErrorResponse
// @Router /students/export [get]
func (handler *studentHandler) Export(ctx *gin.Context) {
	fileName := fmt.Sprintf("students_%s.xlsx", time.Now().Format("20060102_150405"))
	ctx.Header("Content-Type", xlsxContentType)
	ctx.Header("Content-Disposition", "attachment; filename="+fileName)

	if _, err := handler.transferService.Export(ctx, ctx.Writer, ctx.Query("searchString")); err != nil {
		ctx.Header("Content-Type", "")
		ctx.Header("Content-Disposition", "")
		respondWithError(ctx, http.StatusInternalServerError, fmt.Sprintf("export failed: %v", err))
	}
}

// pathID parses the :id parameter, writing a 400 response when it is not an integer
func pathID(ctx *gin.Context) (int, bool) {
	id, err := strutil.ConvertToInt(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid id %q", ctx.Param("id")))
		return 0, false
	}
	return id, true
}

func bindStudentRequest(ctx *gin.Context) (*StudentRequest, bool) {
	request, ok := decodeStudentRequest(ctx)
	if !ok || !validateStudentRequest(ctx, request) {
		return nil, false
	}
	return request, true
}

func decodeStudentRequest(ctx *gin.Context) (*StudentRequest, bool) {
	var request StudentRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondWithError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid student data: %v", err))
		return nil, false
	}
	return &request, true
}

func validateStudentRequest(ctx *gin.Context, request *StudentRequest) bool {
	if err := request.Validate(); err != nil {
		respondWithError(ctx, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}
