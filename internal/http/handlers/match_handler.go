// Draw HTTP handler.
//
// This file exposes the draw endpoint:
//   - POST /draw   (request one opposite-gender match for a submitted profile)
//
// The handler derives an optional request-origin fingerprint (a truncated
// sha256 of the client IP) for abuse diagnostics, then delegates the gate
// sequence to the match service and maps its sentinels onto the error
// taxonomy. An empty candidate pool is reported as success:false with
// HTTP 200: a "try later" outcome, not an error.
package handlers

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tbourn/go-match-backend/internal/services"
)

//
// DTOs
//

// DrawRequest is the JSON payload for requesting a match.
type DrawRequest struct {
	// UserID is the opaque id returned by /submit.
	UserID string `json:"user_id" example:"141add05-4415-4938-b5a1-17e0d3171aff"`
}

// DrawData is the success payload for a draw: the matched profile's public
// fields. The matched profile's id is never exposed.
type DrawData struct {
	Nickname string `json:"nickname"`
	Age      int    `json:"age"`
	Contact  string `json:"contact_handle"`
}

//
// Helpers
//

// originFingerprint derives a non-reversible identifier for the request
// origin: sha256 of the client IP, hex-encoded, truncated to 32 characters.
// It returns "" when the origin IP is unknown.
func originFingerprint(c *gin.Context) string {
	ip := c.ClientIP()
	if ip == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(ip))
	return hex.EncodeToString(sum[:])[:32]
}

// retryAfterSeconds inspects the concrete MatchService for the configured
// cooldown so 429 responses can advertise an accurate Retry-After. If
// unavailable, it falls back to the default cooldown.
func retryAfterSeconds(matchSvc MatchService) int {
	if ms, ok := matchSvc.(*services.MatchService); ok && ms.Cooldown > 0 {
		return int(ms.Cooldown.Seconds())
	}
	return int(services.DefaultCooldown.Seconds())
}

//
// Handlers
//

// Draw godoc
// @ID          drawMatch
// @Summary     Draw one opposite-gender match
// @Description Runs the draw gate sequence (identity, cooldown, candidate selection) and returns the matched profile's nickname, age, and contact handle.
// @Tags        Draws
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.DrawRequest  true  "Draw payload"
//
// @Success     200  {object}  handlers.Response  "Match found, or EMPTY_POOL with success:false"
// @Failure     400  {object}  handlers.Response  "BAD_JSON or INVALID_BODY"
// @Failure     404  {object}  handlers.Response  "USER_NOT_FOUND"
// @Failure     429  {object}  handlers.Response  "TOO_FREQUENT"
// @Failure     500  {object}  handlers.Response  "DB_ERROR"
// @Router      /draw [post]
func (h *Handlers) Draw(c *gin.Context) {
	var req DrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		code := classifyBindError(err)
		if code == CodeBadJSON {
			fail(c, http.StatusBadRequest, CodeBadJSON, "request body is not valid JSON")
			return
		}
		fail(c, http.StatusBadRequest, CodeInvalidBody, "user_id is required")
		return
	}
	if _, err := uuid.Parse(req.UserID); err != nil {
		fail(c, http.StatusBadRequest, CodeInvalidBody, "user_id must be a UUID")
		return
	}

	res, err := h.matchSvc.Draw(c.Request.Context(), req.UserID, originFingerprint(c))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			fail(c, http.StatusNotFound, CodeUserNotFound, "user not found, please submit your profile again")
		case errors.Is(err, services.ErrRateLimited):
			c.Header("Retry-After", strconv.Itoa(retryAfterSeconds(h.matchSvc)))
			fail(c, http.StatusTooManyRequests, CodeTooFrequent, "too many draws, please wait and try again")
		case errors.Is(err, services.ErrEmptyPool):
			// Success-shaped failure: HTTP 200, success:false.
			fail(c, http.StatusOK, CodeEmptyPool, "no opposite-gender profiles available right now, try again later")
		default:
			fail(c, http.StatusInternalServerError, CodeDBError, "service unavailable, please try again later")
		}
		return
	}

	ok(c, http.StatusOK, DrawData{
		Nickname: res.Nickname,
		Age:      res.Age,
		Contact:  res.Contact,
	})
}
