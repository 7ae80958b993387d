package auth

import (
	stderrors "errors"
	"net/http"

	"github.com/LucasBaccaro/fullstack/internal/errors"
	"github.com/LucasBaccaro/fullstack/internal/logger"
	"github.com/LucasBaccaro/fullstack/internal/metrics"
	"github.com/LucasBaccaro/fullstack/tutor/accounts"
	"github.com/gin-gonic/gin"
)

// SignUp godoc
// @Summary Register a new account
// @Description Creates an account without email verification, logs it in and bootstraps the profile
// @Tags auth
// @Accept json
// @Produce json
// @Param request body CredentialsRequest true "Email and password"
// @Success 201 {object} SessionResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/signup [post]
func SignUp(svc AccountService, rec metrics.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CredentialsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		result, err := svc.SignUp(c.Request.Context(), req.Email, req.Password)
		if result != nil {
			rec.RecordSignup(string(result.State))
		}

		if err != nil {
			respondAccountError(c, err)
			return
		}

		if result.State == accounts.StateProfileBootstrapFailed {
			logger.FromContext(c.Request.Context()).Warn("signed up without profile", "user_id", result.UserID)
		}

		c.JSON(http.StatusCreated, newSessionResponse(result))
	}
}

// Login godoc
// @Summary Log in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body CredentialsRequest true "Email and password"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/login [post]
func Login(svc AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CredentialsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		result, err := svc.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondAccountError(c, err)
			return
		}

		c.JSON(http.StatusOK, newSessionResponse(result))
	}
}

func newSessionResponse(result *accounts.Result) SessionResponse {
	return SessionResponse{
		User: UserResponse{
			ID:    result.UserID,
			Email: result.Email,
		},
		Session: TokenResponse{
			AccessToken: result.AccessToken,
			TokenType:   result.TokenType,
		},
	}
}

// writes the response for an account failure
func respondAccountError(c *gin.Context, err error) {
	var accErr *accounts.Error
	if !stderrors.As(err, &accErr) {
		errors.InternalError(c, "", err)
		return
	}

	switch accErr.Kind {
	case accounts.KindUnauthorized:
		if accErr.Err != nil {
			logger.FromContext(c.Request.Context()).Debug("credentials rejected", "error", accErr.Err)
		}
		errors.Unauthorized(c, accErr.Message)
	case accounts.KindConflict:
		errors.Conflict(c, accErr.Message)
	case accounts.KindUnprocessable:
		errors.UnprocessableEntity(c, accErr.Message)
	case accounts.KindBadRequest:
		errors.BadRequest(c, accErr.Message, nil)
	default:
		errors.InternalError(c, "", accErr)
	}
}
