package handles

import (
	"strings"

	"github.com/AuraHubTeam/AuraHub/server/common"
	"github.com/gin-gonic/gin"
)

// StreamTicket issues the short-lived ticket for a file. This is the
// credentialed half of the two-step download flow; the caller brings the
// ticket back to StreamLink.
func (h *Handler) StreamTicket(c *gin.Context) {
	result, err := h.client.DownloadTicket(c.Request.Context(), c.Param("file_id"))
	if err != nil {
		common.ErrorResp(c, err)
		return
	}
	common.SuccessResp(c, result)
}

// StreamLink exchanges a ticket for the final direct link. The upstream call
// behind it carries no credentials; the ticket alone authorizes it.
func (h *Handler) StreamLink(c *gin.Context) {
	ticket := c.Query("ticket")
	if ticket == "" {
		common.ErrorStrResp(c, "ticket", "a download ticket is required")
		return
	}
	result, err := h.client.DownloadLink(c.Request.Context(), c.Param("file_id"), ticket, c.Query("captcha_response"))
	if err != nil {
		common.ErrorResp(c, err)
		return
	}
	common.SuccessResp(c, result)
}

// FileInfo accepts comma-separated ids in one path segment and forwards them
// as a single batched upstream call.
func (h *Handler) FileInfo(c *gin.Context) {
	ids := strings.Split(c.Param("file_ids"), ",")
	result, err := h.client.FileInfo(c.Request.Context(), ids)
	if err != nil {
		common.ErrorResp(c, err)
		return
	}
	common.SuccessResp(c, result)
}
