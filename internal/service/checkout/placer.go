package checkout

import (
	"context"
	"io"
	"log"

	"shopflow/internal/domain"
)

// LogPlacer is the default order-placement collaborator: it records the
// order in the log and nothing else. Payment processing and order
// persistence are out of scope.
type LogPlacer struct {
	logger *log.Logger
}

func NewLogPlacer(logger *log.Logger) *LogPlacer {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &LogPlacer{logger: logger}
}

func (p *LogPlacer) Place(_ context.Context, order domain.Order) error {
	p.logger.Printf("order placed id=%s email=%s method=%s", order.ID, order.Email, order.PaymentMethod)
	return nil
}
