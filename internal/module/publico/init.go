package publico

import (
	"log/slog"

	"cadpro-backend/internal/global/logger"
)

var log *slog.Logger

type ModulePublico struct{}

func (m *ModulePublico) GetName() string {
	return "Publico"
}

func (m *ModulePublico) Init() {
	log = logger.New("Publico")
}
