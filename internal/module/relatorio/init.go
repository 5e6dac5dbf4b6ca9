package relatorio

import (
	"log/slog"

	"cadpro-backend/internal/global/logger"
)

var log *slog.Logger

type ModuleRelatorio struct{}

func (m *ModuleRelatorio) GetName() string {
	return "Relatorio"
}

func (m *ModuleRelatorio) Init() {
	log = logger.New("Relatorio")
}
