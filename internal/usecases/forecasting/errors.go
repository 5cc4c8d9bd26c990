package forecasting

import (
	"fmt"
	"time"

	"github.com/pkg/errors"

	forecastdomain "github.com/gestorpro/analytics-api/infrastructure/integrator/forecast/domain"
)

// Erros de validação do pedido de previsão
var (
	ErrInvalidPeriodCount = errors.New("quantidade de períodos fora do intervalo permitido")
	ErrNoHistory          = errors.New("sem histórico mensal suficiente para prever")
)

// CooldownError indica que o cliente ainda está dentro do intervalo mínimo
// entre previsões
type CooldownError struct {
	Remaining time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("aguarde %.0f segundos antes de pedir outra previsão", e.Remaining.Seconds())
}

// RemainingSeconds retorna o tempo restante arredondado para cima, nunca
// menor que 1, para exibição ao cliente
func (e *CooldownError) RemainingSeconds() int {
	secs := int((e.Remaining + time.Second - 1) / time.Second)
	if secs < 1 {
		secs = 1
	}
	return secs
}

// SuggestedActions devolve as ações sugeridas ao usuário para cada classe
// de falha do modelo externo
func SuggestedActions(kind forecastdomain.FailureKind) []string {
	switch kind {
	case forecastdomain.FailureUnavailable:
		return []string{
			"O serviço de previsão está temporariamente indisponível",
			"Tente novamente em alguns minutos",
		}
	case forecastdomain.FailureRateLimited:
		return []string{
			"O serviço de previsão está ocupado no momento",
			"Aguarde um minuto antes de tentar novamente",
		}
	case forecastdomain.FailureQuota:
		return []string{
			"A cota de previsões do período foi excedida",
			"Entre em contato com o suporte para ampliar o plano",
		}
	default:
		return []string{
			"Não foi possível gerar a previsão",
			"Tente novamente; se o erro persistir, contate o suporte",
		}
	}
}
