package atividade

import (
	"cadpro-backend/internal/global/middleware"
	"cadpro-backend/internal/model"

	"github.com/gin-gonic/gin"
)

func (m *ModuleAtividade) InitRouter(r *gin.RouterGroup) {
	leituraGroup := r.Group("/atividades")
	leituraGroup.Use(middleware.Auth())
	{
		leituraGroup.GET("", List)
		leituraGroup.GET("/:id", Get)
	}

	escritaGroup := r.Group("/atividades")
	escritaGroup.Use(middleware.Auth(model.RoleCoordenador, model.RoleProfessor))
	{
		escritaGroup.POST("", Create)
		escritaGroup.PUT("/:id", Update)
		escritaGroup.DELETE("/:id", Delete)
	}
}
