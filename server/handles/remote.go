package handles

import (
	"github.com/AuraHubTeam/AuraHub/internal/streamtape"
	"github.com/AuraHubTeam/AuraHub/server/common"
	"github.com/gin-gonic/gin"
)

type RemoteUploadAddReq struct {
	URL     string `form:"url"`
	Folder  string `form:"folder"`
	Headers string `form:"headers"`
	Name    string `form:"name"`
}

// RemoteUploadAdd hands a source URL to the upstream, which downloads and
// stores it on its own schedule. Progress is polled via RemoteUploadStatus.
func (h *Handler) RemoteUploadAdd(c *gin.Context) {
	var req RemoteUploadAddReq
	if err := c.ShouldBindQuery(&req); err != nil {
		common.ErrorStrResp(c, "query", err.Error())
		return
	}
	if req.URL == "" {
		common.ErrorStrResp(c, "url", "a source url is required")
		return
	}
	result, err := h.client.RemoteUploadAdd(c.Request.Context(), streamtape.RemoteUploadOptions{
		URL:     req.URL,
		Folder:  req.Folder,
		Headers: req.Headers,
		Name:    req.Name,
	})
	if err != nil {
		common.ErrorResp(c, err)
		return
	}
	common.SuccessResp(c, result)
}

// RemoteUploadRemove cancels one remote upload by id, or all of them when
// the id is the literal "all".
func (h *Handler) RemoteUploadRemove(c *gin.Context) {
	result, err := h.client.RemoteUploadRemove(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.ErrorResp(c, err)
		return
	}
	common.SuccessResp(c, result)
}

func (h *Handler) RemoteUploadStatus(c *gin.Context) {
	result, err := h.client.RemoteUploadStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.ErrorResp(c, err)
		return
	}
	common.SuccessResp(c, result)
}
