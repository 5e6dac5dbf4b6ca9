package relatorio

import (
	"cadpro-backend/internal/global/middleware"
	"cadpro-backend/internal/model"

	"github.com/gin-gonic/gin"
)

func (m *ModuleRelatorio) InitRouter(r *gin.RouterGroup) {
	leituraGroup := r.Group("/relatorios")
	leituraGroup.Use(middleware.Auth())
	{
		leituraGroup.GET("", List)
		leituraGroup.GET("/:id", Get)
		leituraGroup.GET("/:id/download", Download)
	}

	escritaGroup := r.Group("/relatorios")
	escritaGroup.Use(middleware.Auth(model.RoleCoordenador, model.RoleProfessor))
	{
		escritaGroup.POST("", Create)
		escritaGroup.PUT("/:id", Update)
		escritaGroup.DELETE("/:id", Delete)
	}
}
