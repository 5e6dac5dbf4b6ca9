package arquivo

import (
	"cadpro-backend/internal/global/middleware"
	"cadpro-backend/internal/model"

	"github.com/gin-gonic/gin"
)

func (m *ModuleArquivo) InitRouter(r *gin.RouterGroup) {
	arquivoGroup := r.Group("/arquivos")
	arquivoGroup.Use(middleware.Auth(model.RoleCoordenador, model.RoleProfessor))
	{
		arquivoGroup.POST("/presign", Presign)
	}
}
