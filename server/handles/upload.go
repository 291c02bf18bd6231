package handles

import (
	"github.com/AuraHubTeam/AuraHub/internal/streamtape"
	"github.com/AuraHubTeam/AuraHub/server/common"
	"github.com/gin-gonic/gin"
)

type UploadURLReq struct {
	Folder   string `form:"folder"`
	SHA256   string `form:"sha256"`
	HTTPOnly bool   `form:"httponly"`
}

// GetUploadURL relays a one-time upload URL. Files are POSTed by the caller
// directly to that URL, never through this service.
func (h *Handler) GetUploadURL(c *gin.Context) {
	var req UploadURLReq
	if err := c.ShouldBindQuery(&req); err != nil {
		common.ErrorStrResp(c, "query", err.Error())
		return
	}
	result, err := h.client.GetUploadURL(c.Request.Context(), streamtape.UploadURLOptions{
		Folder:   req.Folder,
		SHA256:   req.SHA256,
		HTTPOnly: req.HTTPOnly,
	})
	if err != nil {
		common.ErrorResp(c, err)
		return
	}
	common.SuccessResp(c, result)
}
