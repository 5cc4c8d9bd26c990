package forecasting

import (
	"sync"
	"time"
)

// CooldownGuard controla o intervalo mínimo entre previsões bem-sucedidas
// por cliente. O relógio é injetável para os testes.
type CooldownGuard struct {
	mu       sync.Mutex
	interval time.Duration
	lastRun  map[string]time.Time
	now      func() time.Time
}

func NewCooldownGuard(interval time.Duration) *CooldownGuard {
	return &CooldownGuard{
		interval: interval,
		lastRun:  make(map[string]time.Time),
		now:      time.Now,
	}
}

// Check informa se o cliente pode disparar uma nova previsão e, quando não
// pode, quanto tempo falta para o fim do cooldown
func (g *CooldownGuard) Check(clientID string) (time.Duration, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	last, ok := g.lastRun[clientID]
	if !ok {
		return 0, true
	}

	elapsed := g.now().Sub(last)
	if elapsed >= g.interval {
		return 0, true
	}

	return g.interval - elapsed, false
}

// MarkSuccess registra o momento da última previsão bem-sucedida do
// cliente. Falhas não contam para o cooldown.
func (g *CooldownGuard) MarkSuccess(clientID string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.lastRun[clientID] = g.now()
}
