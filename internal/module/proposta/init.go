package proposta

import (
	"log/slog"

	"cadpro-backend/internal/global/logger"
)

var log *slog.Logger

type ModuleProposta struct{}

func (m *ModuleProposta) GetName() string {
	return "Proposta"
}

func (m *ModuleProposta) Init() {
	log = logger.New("Proposta")
}
