// Pool stats HTTP handler.
//
// Exposes GET /stats: aggregate pool sizes for operational visibility. Only
// counts are returned; no profile data leaves the server through this route.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-match-backend/internal/domain"
)

// StatsData is the success payload for the stats endpoint.
type StatsData struct {
	Total    int64            `json:"total"`
	ByGender map[string]int64 `json:"by_gender"`
}

// Stats godoc
// @ID          poolStats
// @Summary     Profile pool totals
// @Description Returns the total number of submitted profiles and a per-gender breakdown.
// @Tags        Stats
// @Produce     json
//
// @Success     200  {object}  handlers.Response
// @Failure     500  {object}  handlers.Response  "DB_ERROR"
// @Router      /stats [get]
func (h *Handlers) Stats(c *gin.Context) {
	total, byGender, err := h.matchSvc.PoolStats(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, CodeDBError, "service unavailable, please try again later")
		return
	}

	out := StatsData{Total: total, ByGender: make(map[string]int64, len(byGender))}
	for g, n := range byGender {
		out.ByGender[string(g)] = n
	}
	for _, g := range []domain.Gender{domain.GenderMale, domain.GenderFemale} {
		if _, present := out.ByGender[string(g)]; !present {
			out.ByGender[string(g)] = 0
		}
	}
	ok(c, http.StatusOK, out)
}
