package proposta

import (
	"cadpro-backend/internal/global/middleware"
	"cadpro-backend/internal/model"

	"github.com/gin-gonic/gin"
)

func (m *ModuleProposta) InitRouter(r *gin.RouterGroup) {
	// comunidade submete e acompanha; coordenador revisa tudo
	propostaGroup := r.Group("/propostas")
	propostaGroup.Use(middleware.Auth(model.RoleComunidade, model.RoleCoordenador))
	{
		propostaGroup.GET("", List)
		propostaGroup.POST("", Create)
		propostaGroup.GET("/export", Export)
		propostaGroup.GET("/:id", Get)
		propostaGroup.PUT("/:id", Update)
		propostaGroup.DELETE("/:id", Delete)
	}

	// decisão é exclusiva do coordenador
	decisaoGroup := r.Group("/propostas")
	decisaoGroup.Use(middleware.Auth(model.RoleCoordenador))
	{
		decisaoGroup.POST("/:id/aprovar", Aprovar)
		decisaoGroup.POST("/:id/rejeitar", Rejeitar)
	}
}
