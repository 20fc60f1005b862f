package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"userhub/internal/pkg/logger"
	"userhub/internal/pkg/metrics"
)

// Aside implementa a estratégia Cache-Aside para um recurso.
// Falhas do cache são registradas no log e nunca interrompem a chamada ao repositório.
type Aside struct {
	client   Client
	ttl      time.Duration
	resource string
	log      logger.Logger
	metrics  *metrics.Metrics
}

// NewAside cria o helper de cache para um recurso (user, car, house, passport).
func NewAside(client Client, ttl time.Duration, resource string, log logger.Logger, m *metrics.Metrics) *Aside {
	return &Aside{client: client, ttl: ttl, resource: resource, log: log, metrics: m}
}

// Get tenta preencher dest com o valor em cache. Retorna true em caso de HIT.
func (a *Aside) Get(ctx context.Context, key string, dest interface{}) bool {
	cached, err := a.client.Get(ctx, key)
	if errors.Is(err, ErrCacheMiss) {
		a.metrics.ObserveCacheLookup(a.resource, "miss")
		return false
	}
	if err != nil {
		a.metrics.ObserveCacheLookup(a.resource, "error")
		a.log.Warn("Falha ao ler do cache", map[string]interface{}{"key": key, "error": err.Error()})
		return false
	}

	if err := json.Unmarshal([]byte(cached), dest); err != nil {
		// Entrada corrompida: descarta e segue para o banco.
		a.metrics.ObserveCacheLookup(a.resource, "error")
		a.log.Warn("Entrada de cache inválida, descartando", map[string]interface{}{"key": key, "error": err.Error()})
		_ = a.client.Delete(ctx, key)
		return false
	}

	a.metrics.ObserveCacheLookup(a.resource, "hit")
	return true
}

// Set serializa value em JSON e grava com o TTL configurado.
func (a *Aside) Set(ctx context.Context, key string, value interface{}) {
	payload, err := json.Marshal(value)
	if err != nil {
		a.log.Warn("Falha ao serializar valor para o cache", map[string]interface{}{"key": key, "error": err.Error()})
		return
	}
	if err := a.client.Set(ctx, key, payload, a.ttl); err != nil {
		a.log.Warn("Falha ao gravar no cache", map[string]interface{}{"key": key, "error": err.Error()})
	}
}

// Invalidate remove as chaves após update ou delete.
func (a *Aside) Invalidate(ctx context.Context, keys ...string) {
	if err := a.client.Delete(ctx, keys...); err != nil {
		a.log.Warn("Falha ao invalidar cache", map[string]interface{}{"keys": keys, "error": err.Error()})
	}
}
