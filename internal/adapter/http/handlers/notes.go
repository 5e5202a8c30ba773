package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"taskhub/internal/adapter/http/dto"
	"taskhub/internal/adapter/http/mapper"
	"taskhub/internal/adapter/http/middleware"
	"taskhub/internal/adapter/http/validation"
	"taskhub/internal/core/ports"
	"taskhub/pkg/apierrors"
)

type NoteHandler struct {
	noteService ports.NoteService
}

func NewNoteHandler(noteService ports.NoteService) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

func (h *NoteHandler) ListNotes(c *gin.Context) {
	var subjectID *string
	if value, ok := c.GetQuery("subject_id"); ok {
		if _, err := uuid.Parse(value); err != nil {
			writeError(c, http.StatusBadRequest, apierrors.MsgInvalidID)
			return
		}
		subjectID = &value
	}

	notes, err := h.noteService.ListNotes(c.Request.Context(), middleware.GetUserID(c), subjectID)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailListNotes, "failed to list notes")
		return
	}

	c.JSON(http.StatusOK, mapper.ToNoteItems(notes))
}

func (h *NoteHandler) GetNote(c *gin.Context) {
	noteID, ok := pathID(c)
	if !ok {
		return
	}

	note, err := h.noteService.GetNote(c.Request.Context(), middleware.GetUserID(c), noteID)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailGetNote, "failed to get note", zap.String("note_id", noteID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToNoteItem(note))
}

func (h *NoteHandler) CreateNote(c *gin.Context) {
	var req dto.CreateNoteRequest
	if _, err := bindJSON(c, &req); err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidNotePayload)
		return
	}

	input, err := validation.BuildCreateNoteInput(req)
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidNotePayload)
		return
	}

	note, err := h.noteService.CreateNote(c.Request.Context(), middleware.GetUserID(c), input)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailCreateNote, "failed to create note")
		return
	}

	c.JSON(http.StatusCreated, mapper.ToNoteItem(note))
}

func (h *NoteHandler) UpdateNote(c *gin.Context) {
	noteID, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateNoteRequest
	raw, err := bindJSON(c, &req)
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidNotePayload)
		return
	}

	input, err := validation.BuildUpdateNoteInput(req, raw)
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidNotePayload)
		return
	}

	note, err := h.noteService.UpdateNote(c.Request.Context(), middleware.GetUserID(c), noteID, input)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailUpdateNote, "failed to update note", zap.String("note_id", noteID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToNoteItem(note))
}

func (h *NoteHandler) DeleteNote(c *gin.Context) {
	noteID, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.noteService.DeleteNote(c.Request.Context(), middleware.GetUserID(c), noteID); err != nil {
		respondServiceError(c, err, apierrors.MsgFailDeleteNote, "failed to delete note", zap.String("note_id", noteID))
		return
	}

	c.Status(http.StatusNoContent)
}
