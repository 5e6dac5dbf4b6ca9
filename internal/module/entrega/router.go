package entrega

import (
	"cadpro-backend/internal/global/middleware"
	"cadpro-backend/internal/model"

	"github.com/gin-gonic/gin"
)

func (m *ModuleEntrega) InitRouter(r *gin.RouterGroup) {
	leituraGroup := r.Group("/entregas")
	leituraGroup.Use(middleware.Auth())
	{
		leituraGroup.GET("", List)
		leituraGroup.GET("/:id", Get)
		leituraGroup.GET("/:id/download", Download)
	}

	escritaGroup := r.Group("/entregas")
	escritaGroup.Use(middleware.Auth(model.RoleCoordenador, model.RoleProfessor))
	{
		escritaGroup.POST("", Create)
		escritaGroup.PUT("/:id", Update)
		escritaGroup.DELETE("/:id", Delete)
	}
}
