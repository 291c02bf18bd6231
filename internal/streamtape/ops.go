package streamtape

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/AuraHubTeam/AuraHub/internal/errs"
	"github.com/tidwall/gjson"
)

// GetUploadURL fetches a one-time URL that files can be POSTed to directly.
func (c *Client) GetUploadURL(ctx context.Context, opts UploadURLOptions) (json.RawMessage, error) {
	params := map[string]string{
		"folder": opts.Folder,
		"sha256": opts.SHA256,
	}
	if opts.HTTPOnly {
		params["httponly"] = "true"
	}
	return c.call(ctx, http.MethodGet, PathUploadURL, params, true)
}

// RemoteUploadAdd asks the upstream to download opts.URL and store it.
func (c *Client) RemoteUploadAdd(ctx context.Context, opts RemoteUploadOptions) (json.RawMessage, error) {
	if opts.URL == "" {
		return nil, errs.NewValidation("url", "a source url is required")
	}
	return c.call(ctx, http.MethodGet, PathRemoteUploadAdd, map[string]string{
		"url":     opts.URL,
		"folder":  opts.Folder,
		"headers": opts.Headers,
		"name":    opts.Name,
	}, true)
}

// RemoteUploadRemove cancels one pending remote upload, or every pending one
// when id is RemoveAll. Either way it is a single upstream call.
func (c *Client) RemoteUploadRemove(ctx context.Context, id string) (json.RawMessage, error) {
	if id == "" {
		return nil, errs.NewValidation("id", "a remote upload id (or \"all\") is required")
	}
	return c.call(ctx, http.MethodGet, PathRemoteUploadRemove, map[string]string{"id": id}, true)
}

// RemoteUploadStatus reports progress of one remote upload. Polling is the
// caller's job; nothing is tracked here.
func (c *Client) RemoteUploadStatus(ctx context.Context, id string) (json.RawMessage, error) {
	if id == "" {
		return nil, errs.NewValidation("id", "a remote upload id is required")
	}
	return c.call(ctx, http.MethodGet, PathRemoteUploadStatus, map[string]string{"id": id}, true)
}

// ListFolder returns the folders and files under folderID (account root when
// empty).
func (c *Client) ListFolder(ctx context.Context, folderID string) (json.RawMessage, error) {
	return c.call(ctx, http.MethodGet, PathListFolder, map[string]string{"folder": folderID}, true)
}

func (c *Client) CreateFolder(ctx context.Context, name, parentID string) (json.RawMessage, error) {
	if name == "" {
		return nil, errs.NewValidation("name", "a folder name is required")
	}
	return c.call(ctx, http.MethodGet, PathCreateFolder, map[string]string{
		"name": name,
		"pid":  parentID,
	}, true)
}

func (c *Client) RenameFolder(ctx context.Context, folderID, newName string) (json.RawMessage, error) {
	if folderID == "" {
		return nil, errs.NewValidation("folder_id", "a folder id is required")
	}
	if newName == "" {
		return nil, errs.NewValidation("new_name", "a new name is required")
	}
	return c.call(ctx, http.MethodGet, PathRenameFolder, map[string]string{
		"folder": folderID,
		"name":   newName,
	}, true)
}

// DeleteFolder removes the folder and everything below it. The upstream does
// not ask twice and neither do we.
func (c *Client) DeleteFolder(ctx context.Context, folderID string) (json.RawMessage, error) {
	if folderID == "" {
		return nil, errs.NewValidation("folder_id", "a folder id is required")
	}
	return c.call(ctx, http.MethodGet, PathDeleteFolder, map[string]string{"folder": folderID}, true)
}

func (c *Client) RenameFile(ctx context.Context, fileID, newName string) (json.RawMessage, error) {
	if fileID == "" {
		return nil, errs.NewValidation("file_id", "a file id is required")
	}
	if newName == "" {
		return nil, errs.NewValidation("new_name", "a new name is required")
	}
	return c.call(ctx, http.MethodGet, PathRenameFile, map[string]string{
		"file": fileID,
		"name": newName,
	}, true)
}

func (c *Client) MoveFile(ctx context.Context, fileID, destFolderID string) (json.RawMessage, error) {
	if fileID == "" {
		return nil, errs.NewValidation("file_id", "a file id is required")
	}
	if destFolderID == "" {
		return nil, errs.NewValidation("destination_folder_id", "a destination folder id is required")
	}
	return c.call(ctx, http.MethodGet, PathMoveFile, map[string]string{
		"file":   fileID,
		"folder": destFolderID,
	}, true)
}

func (c *Client) DeleteFile(ctx context.Context, fileID string) (json.RawMessage, error) {
	if fileID == "" {
		return nil, errs.NewValidation("file_id", "a file id is required")
	}
	return c.call(ctx, http.MethodGet, PathDeleteFile, map[string]string{"file": fileID}, true)
}

// RunningConverts lists conversions currently in progress for the account.
func (c *Client) RunningConverts(ctx context.Context) (json.RawMessage, error) {
	return c.call(ctx, http.MethodGet, PathRunningConverts, nil, true)
}

// FailedConverts lists conversions that ended in failure.
func (c *Client) FailedConverts(ctx context.Context) (json.RawMessage, error) {
	return c.call(ctx, http.MethodGet, PathFailedConverts, nil, true)
}

// Thumbnail returns the direct URL of the video's splash image.
func (c *Client) Thumbnail(ctx context.Context, fileID string) (string, error) {
	if fileID == "" {
		return "", errs.NewValidation("file_id", "a file id is required")
	}
	result, err := c.call(ctx, http.MethodGet, PathThumbnail, map[string]string{"file": fileID}, true)
	if err != nil {
		return "", err
	}
	url := gjson.ParseBytes(result).String()
	if url == "" {
		return "", errs.MalformedResponse
	}
	return url, nil
}

// DownloadTicket issues the short-lived ticket that authorizes a later
// DownloadLink call. This step uses the stored credentials.
func (c *Client) DownloadTicket(ctx context.Context, fileID string) (json.RawMessage, error) {
	if fileID == "" {
		return nil, errs.NewValidation("file_id", "a file id is required")
	}
	return c.call(ctx, http.MethodGet, PathDownloadTicket, map[string]string{"file": fileID}, true)
}

// DownloadLink exchanges a ticket for the final direct link. The upstream
// authorizes this step by ticket alone, so the stored login/key must not be
// attached; call runs with withAuth=false and strips the keys regardless.
func (c *Client) DownloadLink(ctx context.Context, fileID, ticket, captchaResponse string) (json.RawMessage, error) {
	if fileID == "" {
		return nil, errs.NewValidation("file_id", "a file id is required")
	}
	if ticket == "" {
		return nil, errs.NewValidation("ticket", "a download ticket is required")
	}
	return c.call(ctx, http.MethodGet, PathDownloadLink, map[string]string{
		"file":             fileID,
		"ticket":           ticket,
		"captcha_response": captchaResponse,
	}, false)
}

// FileInfo checks one batched call for up to MaxFileInfoIDs ids. The
// upstream keys its result by id, so relative order is the caller's concern.
func (c *Client) FileInfo(ctx context.Context, ids []string) (json.RawMessage, error) {
	cleaned := make([]string, 0, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			cleaned = append(cleaned, id)
		}
	}
	if len(cleaned) == 0 {
		return nil, errs.NewValidation("file_ids", "at least one file id is required")
	}
	if len(cleaned) > MaxFileInfoIDs {
		return nil, errs.NewValidation("file_ids", "at most 100 file ids per request")
	}
	return c.call(ctx, http.MethodGet, PathFileInfo, map[string]string{"file": strings.Join(cleaned, ",")}, true)
}
