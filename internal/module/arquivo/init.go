package arquivo

import (
	"log/slog"

	"cadpro-backend/internal/global/logger"
)

var log *slog.Logger

type ModuleArquivo struct{}

func (m *ModuleArquivo) GetName() string {
	return "Arquivo"
}

func (m *ModuleArquivo) Init() {
	log = logger.New("Arquivo")
}
