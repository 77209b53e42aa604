package main

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/lifeofgurpreet/hr-document-generator/internal/app"
	"github.com/lifeofgurpreet/hr-document-generator/internal/bootstrap"
	"github.com/lifeofgurpreet/hr-document-generator/internal/shared/apperror"
)

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()
	r := gin.Default()

	auditLogger := bootstrap.NewStdoutAuditLogger()

	// build dependency + routes
	if err := app.BuildApp(r, app.DirsFromEnv(), auditLogger); err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "5001"
	}
	bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfig{
			Port:        port,
			ReadTimeout: 5 * time.Second,
			// The generation backend may take up to 30s before the
			// fallback path runs; the write timeout must outlast it.
			WriteTimeout: 60 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		auditLogger,
	)
}
