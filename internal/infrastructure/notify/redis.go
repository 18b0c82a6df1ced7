// Package notify publica os eventos de domínio num canal Redis. O frontend do
// PDV assina o canal para atualizar telas de estoque e caixa em tempo real.
package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/adegaplus/pdv-api/internal/application/ports"
	"github.com/adegaplus/pdv-api/pkg/config"
	"github.com/adegaplus/pdv-api/pkg/logger"
)

const canalEventos = "pdv:eventos"

var _ ports.Notificador = (*RedisNotifier)(nil)

// RedisNotifier publica eventos via PUB/SUB. Erro de publicação é logado e
// engolido: a transação já commitou, o evento é melhor-esforço.
type RedisNotifier struct {
	client *redis.Client
	log    *logger.Logger
}

// NewRedisNotifier conecta ao Redis e devolve o notificador.
func NewRedisNotifier(cfg config.RedisConfig, log *logger.Logger) (*RedisNotifier, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisNotifier{client: client, log: log}, nil
}

type envelope struct {
	Evento    string    `json:"evento"`
	EmitidoEm time.Time `json:"emitido_em"`
	Payload   any       `json:"payload"`
}

// Publicar serializa o evento e publica no canal. Nunca devolve erro.
func (n *RedisNotifier) Publicar(ctx context.Context, evento string, payload any) {
	body, err := json.Marshal(envelope{
		Evento:    evento,
		EmitidoEm: time.Now(),
		Payload:   payload,
	})
	if err != nil {
		n.log.Error().Err(err).Str("evento", evento).Msg("serializar evento")
		return
	}
	if err := n.client.Publish(ctx, canalEventos, body).Err(); err != nil {
		n.log.Warn().Err(err).Str("evento", evento).Msg("publicar evento no redis")
	}
}

// Close fecha a conexão.
func (n *RedisNotifier) Close() error {
	return n.client.Close()
}
