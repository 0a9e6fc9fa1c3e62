package v1

import (
	"fmt"
	"net/http"

	"github.com/MGTheTrain/cipher-lab/internal/domain/algorithms"
	"github.com/MGTheTrain/cipher-lab/internal/domain/analysis"
	"github.com/MGTheTrain/cipher-lab/internal/domain/sessions"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionHandler defines the interface for handling session-related operations
type SessionHandler interface {
	Create(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	SavePlaintext(ctx *gin.Context)
	ToggleSort(ctx *gin.Context)
	Analysis(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type sessionHandler struct {
	sessionService  sessions.SessionService
	analysisService analysis.AnalysisService
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(sessionService sessions.SessionService, analysisService analysis.AnalysisService) SessionHandler {
	return &sessionHandler{
		sessionService:  sessionService,
		analysisService: analysisService,
	}
}

func newSessionResponse(session *sessions.Session) SessionResponse {
	state := session.SortState()
	return SessionResponse{
		ID:              session.ID,
		Plaintext:       session.Plaintext,
		PlaintextSize:   session.PlaintextSize,
		SortBy:          state.Column.String(),
		SortOrder:       sortOrder(state.Ascending),
		DateTimeCreated: session.DateTimeCreated,
		DateTimeUpdated: session.DateTimeUpdated,
	}
}

// sessionID reads the id path parameter and rejects values that are not UUIDs.
func sessionID(ctx *gin.Context) (string, bool) {
	id := ctx.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		respondBadRequest(ctx, fmt.Sprintf("invalid session id %q", id))
		return "", false
	}
	return id, true
}

// Create handles the POST request to create a session
// @Summary Create a session
// @Description Create a session holding plaintext and table sort state.
// @Tags Session
// @Produce json
// @Success 201 {object} SessionResponse
// @Failure 500 {object} ErrorResponse
// @Router /sessions [post]
func (handler *sessionHandler) Create(ctx *gin.Context) {
	session, err := handler.sessionService.Create(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newSessionResponse(session))
}

// GetByID handles the GET request to retrieve a session by ID
// @Summary Retrieve a session by ID
// @Tags Session
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id} [get]
func (handler *sessionHandler) GetByID(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	session, err := handler.sessionService.GetByID(ctx, id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newSessionResponse(session))
}

// SavePlaintext handles the PUT request storing the plaintext of a session
// @Summary Store plaintext
// @Description Store plaintext and its size; the size drives the analysis table.
// @Tags Session
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param requestBody body SavePlaintextRequest true "Plaintext"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id}/plaintext [put]
func (handler *sessionHandler) SavePlaintext(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	var request SavePlaintextRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, fmt.Sprintf("invalid plaintext data: %v", err.Error()))
		return
	}

	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	session, err := handler.sessionService.SavePlaintext(ctx, id, request.Plaintext)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newSessionResponse(session))
}

// ToggleSort handles the POST request selecting a sort column
// @Summary Toggle the sort column
// @Description Selecting the active column flips the direction, another column sorts ascending.
// @Tags Session
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param requestBody body ToggleSortRequest true "Column"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id}/sort [post]
func (handler *sessionHandler) ToggleSort(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	var request ToggleSortRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, fmt.Sprintf("invalid sort data: %v", err.Error()))
		return
	}

	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, err.Error())
		return
	}

	column, err := analysis.ParseColumn(request.Column)
	if err != nil {
		respondError(ctx, err)
		return
	}

	session, err := handler.sessionService.ToggleSort(ctx, id, column)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newSessionResponse(session))
}

// Analysis handles the GET request for the comparison table of a session
// @Summary Retrieve the session's comparison table
// @Description Comparison table using the stored plaintext size and sort state.
// @Tags Session
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} AnalysisResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id}/analysis [get]
func (handler *sessionHandler) Analysis(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	session, err := handler.sessionService.GetByID(ctx, id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	table, err := handler.analysisService.Table(ctx, session.EffectivePlaintextSize(algorithms.DefaultPlaintextSize), session.SortState())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newAnalysisResponse(table))
}

// DeleteByID handles the DELETE request to delete a session by ID
// @Summary Delete a session by ID
// @Tags Session
// @Produce json
// @Param id path string true "Session ID"
// @Success 204 {object} InfoResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id} [delete]
func (handler *sessionHandler) DeleteByID(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	if err := handler.sessionService.DeleteByID(ctx, id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusNoContent, InfoResponse{Message: fmt.Sprintf("deleted session with id %s", id)})
}
