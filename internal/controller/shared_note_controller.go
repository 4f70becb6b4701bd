package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hivebackit/hivebackit-api/internal/dto"
	"github.com/hivebackit/hivebackit-api/internal/service"
)

type SharedNoteController struct {
	noteService   service.SharedNoteService
	uploadService service.UploadService
}

func NewSharedNoteController(ns service.SharedNoteService, us service.UploadService) *SharedNoteController {
	return &SharedNoteController{noteService: ns, uploadService: us}
}

func (c *SharedNoteController) RegisterRoutes(r gin.IRouter) {
	notes := r.Group("/shared-notes")
	notes.POST("", c.CreateNote)
	notes.GET("", c.ListPublicNotes)
	notes.POST("/comment", c.AddComment)
	notes.POST("/upload-url", c.CreateUploadURL)
	notes.GET("/:note_id", c.GetNote)
	notes.GET("/:note_id/comments", c.ListComments)
}

// CreateNote godoc
// @Summary Share a note
// @Tags Shared Notes
// @Accept json
// @Produce json
// @Param note body dto.SharedNoteCreateDTO true "Note"
// @Success 201 {object} dto.SharedNoteResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /shared-notes [post]
func (c *SharedNoteController) CreateNote(ctx *gin.Context) {
	var req dto.SharedNoteCreateDTO
	if !bindJSON(ctx, &req) {
		return
	}
	note, err := c.noteService.CreateNote(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err, "Failed to create shared note")
		return
	}
	ctx.JSON(http.StatusCreated, note)
}

// ListPublicNotes godoc
// @Summary List public shared notes
// @Tags Shared Notes
// @Produce json
// @Success 200 {array} dto.SharedNoteResponseDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /shared-notes [get]
func (c *SharedNoteController) ListPublicNotes(ctx *gin.Context) {
	notes, err := c.noteService.ListPublicNotes(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err, "Failed to retrieve shared notes")
		return
	}
	ctx.JSON(http.StatusOK, notes)
}

// GetNote godoc
// @Summary Get a shared note
// @Description Answers null when the note does not exist.
// @Tags Shared Notes
// @Produce json
// @Param note_id path string true "Note ID (UUID)"
// @Success 200 {object} dto.SharedNoteResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid note ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /shared-notes/{note_id} [get]
func (c *SharedNoteController) GetNote(ctx *gin.Context) {
	noteID, ok := uuidParam(ctx, "note_id")
	if !ok {
		return
	}
	note, err := c.noteService.GetNote(ctx.Request.Context(), noteID)
	if err != nil {
		respondError(ctx, err, "Failed to retrieve shared note")
		return
	}
	ctx.JSON(http.StatusOK, note)
}

// AddComment godoc
// @Summary Comment on a shared note
// @Tags Shared Notes
// @Accept json
// @Produce json
// @Param comment body dto.SharedNoteCommentCreateDTO true "Comment"
// @Success 201 {object} dto.SharedNoteCommentResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /shared-notes/comment [post]
func (c *SharedNoteController) AddComment(ctx *gin.Context) {
	var req dto.SharedNoteCommentCreateDTO
	if !bindJSON(ctx, &req) {
		return
	}
	comment, err := c.noteService.AddComment(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err, "Failed to add comment")
		return
	}
	ctx.JSON(http.StatusCreated, comment)
}

// ListComments godoc
// @Summary List the comments of a shared note
// @Tags Shared Notes
// @Produce json
// @Param note_id path string true "Note ID (UUID)"
// @Success 200 {array} dto.SharedNoteCommentResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid note ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /shared-notes/{note_id}/comments [get]
func (c *SharedNoteController) ListComments(ctx *gin.Context) {
	noteID, ok := uuidParam(ctx, "note_id")
	if !ok {
		return
	}
	comments, err := c.noteService.ListComments(ctx.Request.Context(), noteID)
	if err != nil {
		respondError(ctx, err, "Failed to retrieve comments")
		return
	}
	ctx.JSON(http.StatusOK, comments)
}

// CreateUploadURL godoc
// @Summary Get a presigned upload URL for a shared note
// @Tags Shared Notes
// @Accept json
// @Produce json
// @Param upload body dto.UploadURLRequestDTO true "Storage path"
// @Success 200 {object} dto.UploadURLResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid path"
// @Failure 503 {object} dto.ErrorResponse "Object storage not configured"
// @Router /shared-notes/upload-url [post]
func (c *SharedNoteController) CreateUploadURL(ctx *gin.Context) {
	var req dto.UploadURLRequestDTO
	if !bindJSON(ctx, &req) {
		return
	}
	upload, err := c.uploadService.CreateUploadURL(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err, "Failed to create upload URL")
		return
	}
	ctx.JSON(http.StatusOK, upload)
}
