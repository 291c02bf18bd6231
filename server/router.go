package server

import (
	"github.com/AuraHubTeam/AuraHub/internal/conf"
	"github.com/AuraHubTeam/AuraHub/internal/streamtape"
	"github.com/AuraHubTeam/AuraHub/server/handles"
	"github.com/AuraHubTeam/AuraHub/server/middlewares"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Init wires every route onto e. One handler per public operation; no
// handler calls another.
func Init(e *gin.Engine, cfg *conf.Config, client *streamtape.Client) {
	e.Use(middlewares.RequestID, middlewares.AccessLog, gin.Recovery())
	e.Use(Cors(cfg))

	h := handles.NewHandler(client)

	e.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "AuraHub API wrapper is running"})
	})

	st := e.Group("/streamtape")

	st.GET("/get_upload_url", h.GetUploadURL)

	remote := st.Group("/remote_upload")
	remote.GET("/add", h.RemoteUploadAdd)
	remote.GET("/remove/:id", h.RemoteUploadRemove)
	remote.GET("/status/:id", h.RemoteUploadStatus)

	fm := st.Group("/file_manager")
	fm.GET("/list_contents", h.ListContents)
	fm.POST("/create_folder", h.CreateFolder)
	fm.PUT("/rename_folder/:folder_id", h.RenameFolder)
	fm.DELETE("/delete_folder/:folder_id", h.DeleteFolder)
	fm.PUT("/rename_file/:file_id", h.RenameFile)
	fm.PUT("/move_file/:file_id", h.MoveFile)
	fm.DELETE("/delete_file/:file_id", h.DeleteFile)

	converts := st.Group("/converts")
	converts.GET("/running", h.RunningConverts)
	converts.GET("/failed", h.FailedConverts)
	st.GET("/thumbnail/:file_id", h.Thumbnail)

	stream := st.Group("/stream")
	stream.GET("/ticket/:file_id", h.StreamTicket)
	stream.GET("/link/:file_id", h.StreamLink)

	st.GET("/file_info/:file_ids", h.FileInfo)
}

func Cors(cfg *conf.Config) gin.HandlerFunc {
	config := cors.DefaultConfig()
	config.AllowHeaders = append(config.AllowHeaders, "Authorization", "X-Request-Id")
	origins := cfg.Origins()
	if len(origins) == 1 && origins[0] == "*" {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = origins
	}
	return cors.New(config)
}
