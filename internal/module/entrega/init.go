package entrega

import (
	"log/slog"

	"cadpro-backend/internal/global/logger"
)

var log *slog.Logger

type ModuleEntrega struct{}

func (m *ModuleEntrega) GetName() string {
	return "Entrega"
}

func (m *ModuleEntrega) Init() {
	log = logger.New("Entrega")
}
