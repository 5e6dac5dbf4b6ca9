package publico

import (
	"github.com/gin-gonic/gin"
)

// Projeções públicas: nenhuma rota exige autenticação.
func (m *ModulePublico) InitRouter(r *gin.RouterGroup) {
	publicoGroup := r.Group("/publico")

	publicoGroup.GET("/projetos", ListProjetos)
	publicoGroup.GET("/projetos/:id/detalhes", DetalhesProjeto)
	publicoGroup.GET("/relatorios", ListRelatorios)
}
