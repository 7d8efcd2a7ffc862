// Profile submission HTTP handler.
//
// This file exposes the profile intake endpoint:
//   - POST /submit   (validate a profile payload, insert it, return the id)
//
// Handlers are transport-thin: they parse input, call application services,
// and translate results into the response envelope. JSON parse failures
// (BAD_JSON) are distinguished from well-formed-but-invalid payloads
// (INVALID_BODY) so clients can tell a broken request apart from bad values.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-match-backend/internal/domain"
	"github.com/tbourn/go-match-backend/internal/services"
)

//
// Service contracts (context-aware)
//

// ProfileService defines the submission operation consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type ProfileService interface {
	// Submit validates, normalizes, and persists a profile payload.
	Submit(ctx context.Context, in services.SubmitInput) (*domain.Profile, error)
}

// MatchService defines the draw operation and pool aggregates consumed by
// HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type MatchService interface {
	// Draw runs the full gate sequence for one draw request.
	Draw(ctx context.Context, userID, fingerprint string) (*services.MatchResult, error)
	// PoolStats returns profile pool totals for the stats endpoint.
	PoolStats(ctx context.Context) (int64, map[domain.Gender]int64, error)
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints for submission, drawing, and stats.
// It depends on abstract service interfaces to keep transport concerns
// separate from business logic.
type Handlers struct {
	profileSvc ProfileService
	matchSvc   MatchService
}

// New constructs and returns a Handlers instance bound to the given services.
func New(profileSvc ProfileService, matchSvc MatchService) *Handlers {
	return &Handlers{profileSvc: profileSvc, matchSvc: matchSvc}
}

//
// DTOs
//

// ageValue accepts a JSON number or a numeric string and coerces it to an
// integer, mirroring lenient clients that post form values as strings.
// Non-integer input fails unmarshalling, which the handler reports as
// INVALID_BODY.
type ageValue int

// UnmarshalJSON implements json.Unmarshaler.
func (a *ageValue) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(strings.Trim(strings.TrimSpace(string(b)), `"`))
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("age must be an integer: %w", err)
	}
	*a = ageValue(n)
	return nil
}

// SubmitRequest is the JSON payload for submitting a profile.
type SubmitRequest struct {
	// Nickname is the display name (1–50 chars after trimming).
	Nickname string `json:"nickname" example:"Alice"`
	// Age must be an integer between 18 and 50; numeric strings are accepted.
	Age ageValue `json:"age" swaggertype:"integer" example:"25"`
	// Gender must be "male" or "female".
	Gender string `json:"gender" example:"female"`
	// Contact is the handle shown to a matched user (1–64 chars after trimming).
	Contact string `json:"contact_handle" example:"wx_alice"`
}

// SubmitData is the success payload for a submission: the opaque id the
// client must hold to draw later.
type SubmitData struct {
	UserID string `json:"userId"`
}

//
// Helpers
//

// classifyBindError maps a JSON binding failure to the API error taxonomy:
// unparseable bodies are BAD_JSON, well-formed bodies with wrong shapes or
// values are INVALID_BODY.
func classifyBindError(err error) string {
	var syn *json.SyntaxError
	if errors.As(err, &syn) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return CodeBadJSON
	}
	return CodeInvalidBody
}

//
// Handlers
//

// Submit godoc
// @ID          submitProfile
// @Summary     Submit a profile
// @Description Validates and stores an anonymous profile, returning the opaque user id the client must present when drawing.
// @Tags        Profiles
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.SubmitRequest  true  "Profile payload"
//
// @Success     201  {object}  handlers.Response
// @Failure     400  {object}  handlers.Response  "BAD_JSON or INVALID_BODY"
// @Failure     500  {object}  handlers.Response  "DB_ERROR"
// @Router      /submit [post]
func (h *Handlers) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		code := classifyBindError(err)
		if code == CodeBadJSON {
			fail(c, http.StatusBadRequest, CodeBadJSON, "request body is not valid JSON")
			return
		}
		fail(c, http.StatusBadRequest, CodeInvalidBody, "invalid field(s), please check your input")
		return
	}

	p, err := h.profileSvc.Submit(c.Request.Context(), services.SubmitInput{
		Nickname: req.Nickname,
		Age:      int(req.Age),
		Gender:   req.Gender,
		Contact:  req.Contact,
	})
	if err != nil {
		var ve *services.ValidationError
		if errors.As(err, &ve) {
			fail(c, http.StatusBadRequest, CodeInvalidBody, ve.Error())
			return
		}
		fail(c, http.StatusInternalServerError, CodeDBError, "could not save profile, please try again later")
		return
	}

	ok(c, http.StatusCreated, SubmitData{UserID: p.ID})
}
