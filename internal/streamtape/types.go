package streamtape

// Upstream operation paths. The client refuses to call anything outside this
// set, so a handler bug cannot turn it into a generic credential-attaching
// proxy.
const (
	PathUploadURL          = "/file/ul"
	PathRemoteUploadAdd    = "/remotedl/add"
	PathRemoteUploadRemove = "/remotedl/remove"
	PathRemoteUploadStatus = "/remotedl/status"
	PathListFolder         = "/file/listfolder"
	PathCreateFolder       = "/file/createfolder"
	PathRenameFolder       = "/file/renamefolder"
	PathDeleteFolder       = "/file/deletefolder"
	PathRenameFile         = "/file/rename"
	PathMoveFile           = "/file/move"
	PathDeleteFile         = "/file/delete"
	PathRunningConverts    = "/file/runningconverts"
	PathFailedConverts     = "/file/failedconverts"
	PathThumbnail          = "/file/getsplash"
	PathDownloadTicket     = "/file/dlticket"
	PathDownloadLink       = "/file/dl"
	PathFileInfo           = "/file/info"
)

var knownPaths = map[string]struct{}{
	PathUploadURL:          {},
	PathRemoteUploadAdd:    {},
	PathRemoteUploadRemove: {},
	PathRemoteUploadStatus: {},
	PathListFolder:         {},
	PathCreateFolder:       {},
	PathRenameFolder:       {},
	PathDeleteFolder:       {},
	PathRenameFile:         {},
	PathMoveFile:           {},
	PathDeleteFile:         {},
	PathRunningConverts:    {},
	PathFailedConverts:     {},
	PathThumbnail:          {},
	PathDownloadTicket:     {},
	PathDownloadLink:       {},
	PathFileInfo:           {},
}

// RemoveAll is the upstream sentinel that cancels every pending remote
// upload in a single call.
const RemoveAll = "all"

// MaxFileInfoIDs is the upstream limit for a single batched info call.
const MaxFileInfoIDs = 100

// UploadURLOptions scope a one-time upload URL request.
type UploadURLOptions struct {
	// Folder scopes the upload to a folder id. Empty means account root.
	Folder string
	// SHA256, when set, makes the upstream reject uploads whose content
	// hash does not match.
	SHA256 string
	// HTTPOnly asks for a plain-HTTP upload link.
	HTTPOnly bool
}

// RemoteUploadOptions describe a URL the upstream should fetch and store.
type RemoteUploadOptions struct {
	URL     string
	Folder  string
	Headers string
	Name    string
}
