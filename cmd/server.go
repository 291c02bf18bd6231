package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AuraHubTeam/AuraHub/internal/bootstrap"
	"github.com/AuraHubTeam/AuraHub/internal/conf"
	"github.com/AuraHubTeam/AuraHub/internal/streamtape"
	"github.com/AuraHubTeam/AuraHub/server"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var ServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the AuraHub HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		if err := bootstrap.InitConfig(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		bootstrap.InitLog()

		client := streamtape.NewClient(conf.Conf.Upstream)

		gin.SetMode(gin.ReleaseMode)
		engine := gin.New()
		server.Init(engine, conf.Conf, client)

		addr := fmt.Sprintf("%s:%d", conf.Conf.Scheme.Address, conf.Conf.Scheme.HttpPort)
		srv := &http.Server{Addr: addr, Handler: engine}
		go func() {
			log.Infof("listening on %s", addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatalf("failed to start server: %v", err)
			}
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Info("shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Errorf("server forced to shutdown: %v", err)
		}
	},
}

func init() {
	RootCmd.AddCommand(ServerCmd)
}
