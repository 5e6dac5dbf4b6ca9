package server

import (
	"fmt"
	"log/slog"

	"cadpro-backend/config"
	"cadpro-backend/internal/global/database"
	"cadpro-backend/internal/global/logger"
	"cadpro-backend/internal/global/middleware"
	"cadpro-backend/internal/global/session"
	"cadpro-backend/internal/global/storage"
	"cadpro-backend/internal/global/webhook"
	"cadpro-backend/internal/module"
	"cadpro-backend/internal/repository"
	"cadpro-backend/tools"

	"github.com/gin-gonic/gin"
)

var log *slog.Logger

func Init() {
	config.Init()
	log = logger.New("Server")

	database.Init()
	repository.Init(database.DB)
	session.Init(session.NewRedisStore())
	storage.Init()
	webhook.Init()

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Module: %s", m.GetName()))
		m.Init()
	}
}

func Run() {
	gin.SetMode(string(config.Get().Mode))
	r := gin.New()

	switch config.Get().Mode {
	case config.ModeRelease:
		r.Use(middleware.Logger(logger.Get()))
	case config.ModeDebug:
		r.Use(gin.Logger())
	}
	r.Use(middleware.Cors())
	r.Use(middleware.Recovery())

	// em modo local os uploads são servidos direto do disco
	storageCfg := config.Get().Storage
	if storageCfg.Driver != "s3" {
		r.Static(storageCfg.BaseURL, storageCfg.Home)
	}

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Router: %s", m.GetName()))
		m.InitRouter(r.Group("/" + config.Get().Prefix))
	}
	err := r.Run(config.Get().Host + ":" + config.Get().Port)
	tools.PanicOnErr(err)
}
