package webhook

import (
	"log/slog"
	"time"

	"cadpro-backend/config"
	"cadpro-backend/internal/global/logger"

	"github.com/go-resty/resty/v2"
)

var (
	client *resty.Client
	log    *slog.Logger
)

func Init() {
	log = logger.New("Webhook")
	client = resty.New().
		SetTimeout(10 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(2 * time.Second)
}

// DecisaoPayload é o corpo enviado ao webhook quando uma proposta é decidida.
type DecisaoPayload struct {
	Evento     string `json:"evento"` // proposta_aprovada | proposta_rejeitada
	PropostaID uint   `json:"proposta_id"`
	Titulo     string `json:"titulo"`
	ProjetoID  uint   `json:"projeto_id,omitempty"`
	Decididor  string `json:"decidido_por"`
}

// NotifyDecisao dispara a notificação em background; falha só gera log,
// nunca afeta a resposta ao coordenador.
func NotifyDecisao(payload DecisaoPayload) {
	cfg := config.Get().Webhook
	if cfg.URL == "" {
		return
	}

	go func() {
		req := client.R().
			SetHeader("Content-Type", "application/json").
			SetBody(payload)
		if cfg.Secret != "" {
			req.SetHeader("X-Webhook-Secret", cfg.Secret)
		}
		resp, err := req.Post(cfg.URL)
		if err != nil {
			log.Error("falha ao notificar webhook", "error", err, "evento", payload.Evento)
			return
		}
		if resp.IsError() {
			log.Warn("webhook respondeu com erro",
				"status", resp.StatusCode(),
				"evento", payload.Evento,
			)
		}
	}()
}
