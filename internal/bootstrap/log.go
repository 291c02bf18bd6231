package bootstrap

import (
	"io"
	"os"

	"github.com/AuraHubTeam/AuraHub/internal/conf"
	"github.com/natefinch/lumberjack"
	log "github.com/sirupsen/logrus"
)

func InitLog() {
	cfg := conf.Conf.Log
	if !cfg.Enable {
		log.SetOutput(io.Discard)
		return
	}
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	if cfg.Name != "" {
		writer := &lumberjack.Logger{
			Filename:   cfg.Name,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
		log.SetOutput(io.MultiWriter(os.Stdout, writer))
	}
}
