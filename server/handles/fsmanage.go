package handles

import (
	"github.com/AuraHubTeam/AuraHub/server/common"
	"github.com/gin-gonic/gin"
)

// ListContents shows the folders and files of one folder, the account root
// when folder_id is absent.
func (h *Handler) ListContents(c *gin.Context) {
	result, err := h.client.ListFolder(c.Request.Context(), c.Query("folder_id"))
	if err != nil {
		common.ErrorResp(c, err)
		return
	}
	common.SuccessResp(c, result)
}

type CreateFolderReq struct {
	Name           string `form:"name"`
	ParentFolderID string `form:"parent_folder_id"`
}

func (h *Handler) CreateFolder(c *gin.Context) {
	var req CreateFolderReq
	if err := c.ShouldBindQuery(&req); err != nil {
		common.ErrorStrResp(c, "query", err.Error())
		return
	}
	if req.Name == "" {
		common.ErrorStrResp(c, "name", "a folder name is required")
		return
	}
	result, err := h.client.CreateFolder(c.Request.Context(), req.Name, req.ParentFolderID)
	if err != nil {
		common.ErrorResp(c, err)
		return
	}
	common.SuccessResp(c, result)
}

func (h *Handler) RenameFolder(c *gin.Context) {
	newName := c.Query("new_name")
	if newName == "" {
		common.ErrorStrResp(c, "new_name", "a new name is required")
		return
	}
	result, err := h.client.RenameFolder(c.Request.Context(), c.Param("folder_id"), newName)
	if err != nil {
		common.ErrorResp(c, err)
		return
	}
	common.SuccessResp(c, result)
}

// DeleteFolder removes the folder and every descendant. There is no
// confirmation step; the caller owns that decision.
func (h *Handler) DeleteFolder(c *gin.Context) {
	result, err := h.client.DeleteFolder(c.Request.Context(), c.Param("folder_id"))
	if err != nil {
		common.ErrorResp(c, err)
		return
	}
	common.SuccessResp(c, result)
}

func (h *Handler) RenameFile(c *gin.Context) {
	newName := c.Query("new_name")
	if newName == "" {
		common.ErrorStrResp(c, "new_name", "a new name is required")
		return
	}
	result, err := h.client.RenameFile(c.Request.Context(), c.Param("file_id"), newName)
	if err != nil {
		common.ErrorResp(c, err)
		return
	}
	common.SuccessResp(c, result)
}

func (h *Handler) MoveFile(c *gin.Context) {
	dest := c.Query("destination_folder_id")
	if dest == "" {
		common.ErrorStrResp(c, "destination_folder_id", "a destination folder id is required")
		return
	}
	result, err := h.client.MoveFile(c.Request.Context(), c.Param("file_id"), dest)
	if err != nil {
		common.ErrorResp(c, err)
		return
	}
	common.SuccessResp(c, result)
}

func (h *Handler) DeleteFile(c *gin.Context) {
	result, err := h.client.DeleteFile(c.Request.Context(), c.Param("file_id"))
	if err != nil {
		common.ErrorResp(c, err)
		return
	}
	common.SuccessResp(c, result)
}
