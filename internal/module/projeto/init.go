package projeto

import (
	"log/slog"

	"cadpro-backend/internal/global/logger"
)

var log *slog.Logger

type ModuleProjeto struct{}

func (m *ModuleProjeto) GetName() string {
	return "Projeto"
}

func (m *ModuleProjeto) Init() {
	log = logger.New("Projeto")
}
