package handles

import (
	"github.com/AuraHubTeam/AuraHub/server/common"
	"github.com/gin-gonic/gin"
)

func (h *Handler) RunningConverts(c *gin.Context) {
	result, err := h.client.RunningConverts(c.Request.Context())
	if err != nil {
		common.ErrorResp(c, err)
		return
	}
	common.SuccessResp(c, result)
}

func (h *Handler) FailedConverts(c *gin.Context) {
	result, err := h.client.FailedConverts(c.Request.Context())
	if err != nil {
		common.ErrorResp(c, err)
		return
	}
	common.SuccessResp(c, result)
}

type ThumbnailResp struct {
	ThumbnailURL string `json:"thumbnail_url"`
}

func (h *Handler) Thumbnail(c *gin.Context) {
	url, err := h.client.Thumbnail(c.Request.Context(), c.Param("file_id"))
	if err != nil {
		common.ErrorResp(c, err)
		return
	}
	common.SuccessResp(c, ThumbnailResp{ThumbnailURL: url})
}
