package atividade

import (
	"log/slog"

	"cadpro-backend/internal/global/logger"
)

var log *slog.Logger

type ModuleAtividade struct{}

func (m *ModuleAtividade) GetName() string {
	return "Atividade"
}

func (m *ModuleAtividade) Init() {
	log = logger.New("Atividade")
}
