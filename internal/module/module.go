package module

import (
	"cadpro-backend/internal/module/arquivo"
	"cadpro-backend/internal/module/atividade"
	"cadpro-backend/internal/module/auth"
	"cadpro-backend/internal/module/entrega"
	"cadpro-backend/internal/module/ping"
	"cadpro-backend/internal/module/projeto"
	"cadpro-backend/internal/module/proposta"
	"cadpro-backend/internal/module/publico"
	"cadpro-backend/internal/module/relatorio"

	"github.com/gin-gonic/gin"
)

type Module interface {
	GetName() string
	Init()
	InitRouter(r *gin.RouterGroup)
}

var Modules []Module

func registerModule(m []Module) {
	Modules = append(Modules, m...)
}

func init() {
	registerModule([]Module{
		&ping.ModulePing{},
		&auth.ModuleAuth{},
		&proposta.ModuleProposta{},
		&projeto.ModuleProjeto{},
		&relatorio.ModuleRelatorio{},
		&atividade.ModuleAtividade{},
		&entrega.ModuleEntrega{},
		&publico.ModulePublico{},
		&arquivo.ModuleArquivo{},
	})
}
