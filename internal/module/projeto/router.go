package projeto

import (
	"cadpro-backend/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

// Projetos nascem exclusivamente da aprovação de proposta; não há POST.
func (m *ModuleProjeto) InitRouter(r *gin.RouterGroup) {
	projetoGroup := r.Group("/projetos")
	projetoGroup.Use(middleware.Auth())
	{
		projetoGroup.GET("", List)
		projetoGroup.GET("/:id", Get)
		projetoGroup.PUT("/:id", Update)
		projetoGroup.DELETE("/:id", Delete)
		projetoGroup.GET("/:id/relatorios", Relatorios)
		projetoGroup.GET("/:id/atividades", Atividades)
	}
}
