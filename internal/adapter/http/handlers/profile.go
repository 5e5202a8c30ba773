package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskhub/internal/adapter/http/dto"
	"taskhub/internal/adapter/http/mapper"
	"taskhub/internal/adapter/http/middleware"
	"taskhub/internal/adapter/http/validation"
	"taskhub/internal/core/ports"
	"taskhub/pkg/apierrors"
)

type ProfileHandler struct {
	profileService ports.ProfileService
}

func NewProfileHandler(profileService ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// Session returns the caller's id and profile. The profile is null when it
// is missing or could not be fetched in time.
func (h *ProfileHandler) Session(c *gin.Context) {
	session, err := h.profileService.Session(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailGetSession, "failed to open session")
		return
	}

	c.JSON(http.StatusOK, mapper.ToSessionResponse(session))
}

func (h *ProfileHandler) EndSession(c *gin.Context) {
	if err := h.profileService.EndSession(c.Request.Context(), middleware.GetUserID(c)); err != nil {
		respondServiceError(c, err, apierrors.MsgFailEndSession, "failed to end session")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.profileService.GetProfile(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailGetProfile, "failed to get profile")
		return
	}

	c.JSON(http.StatusOK, mapper.ToProfileItem(profile))
}

func (h *ProfileHandler) UpsertProfile(c *gin.Context) {
	var req dto.UpsertProfileRequest
	if _, err := bindJSON(c, &req); err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidProfilePayload)
		return
	}

	input, err := validation.BuildUpsertProfileInput(req)
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidProfilePayload)
		return
	}

	profile, err := h.profileService.UpsertProfile(c.Request.Context(), middleware.GetUserID(c), input)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailUpsertProfile, "failed to upsert profile")
		return
	}

	c.JSON(http.StatusOK, mapper.ToProfileItem(profile))
}
