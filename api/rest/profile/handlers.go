package profile

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/LucasBaccaro/fullstack/internal/auth"
	"github.com/LucasBaccaro/fullstack/internal/errors"
	"github.com/LucasBaccaro/fullstack/tutor/profiles"
	"github.com/gin-gonic/gin"
)

// GetMe godoc
// @Summary Get the caller's profile
// @Tags profile
// @Produce json
// @Success 200 {object} profiles.Profile
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /profile/me [get]
// @Security BearerAuth
func GetMe(store ProfileStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		profile, err := store.Get(c.Request.Context(), userID)
		if stderrors.Is(err, profiles.ErrNotFound) {
			errors.NotFound(c, "profile")
			return
		}

		if err != nil {
			errors.InternalError(c, "failed to load profile", err)
			return
		}

		c.JSON(http.StatusOK, profile)
	}
}

// UpdateMe godoc
// @Summary Update the caller's profile
// @Description Only name, profile_picture_url and english_level can change. An explicit null clears the field
// @Tags profile
// @Accept json
// @Produce json
// @Param request body UpdateProfileRequest true "Fields to change"
// @Success 200 {object} profiles.Profile
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /profile/me [patch]
// @Security BearerAuth
func UpdateMe(store ProfileStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		var raw map[string]json.RawMessage
		if err := c.ShouldBindJSON(&raw); err != nil {
			errors.ValidationError(c, err)
			return
		}

		patch, err := decodePatch(raw)
		if err != nil {
			errors.ValidationError(c, err)
			return
		}

		if len(patch) == 0 {
			errors.BadRequest(c, "provide at least one field to update", nil)
			return
		}

		profile, err := store.Update(c.Request.Context(), userID, patch)
		switch {
		case stderrors.Is(err, profiles.ErrEmptyPatch):
			errors.BadRequest(c, "provide at least one field to update", nil)
		case stderrors.Is(err, profiles.ErrNotFound):
			errors.NotFound(c, "profile")
		case err != nil:
			errors.InternalError(c, "failed to update profile", err)
		default:
			c.JSON(http.StatusOK, profile)
		}
	}
}

// keeps only patchable keys. null becomes a nil value, strings are taken
// as-is and any other JSON type is rejected
func decodePatch(raw map[string]json.RawMessage) (profiles.Patch, error) {
	patch := profiles.Patch{}

	for _, field := range profiles.PatchableFields {
		value, ok := raw[field]
		if !ok {
			continue
		}

		if string(value) == "null" {
			patch[field] = nil
			continue
		}

		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			return nil, fmt.Errorf("%s must be a string or null", field)
		}

		patch[field] = &s
	}

	return patch, nil
}
