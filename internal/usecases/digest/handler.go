package digest

import (
	"context"
	"errors"
	"time"

	"github.com/medeiros-dev/reseller-vault/internal/domain"
	"github.com/medeiros-dev/reseller-vault/internal/observability/metrics"
	"github.com/medeiros-dev/reseller-vault/pkg/logger"
	"go.uber.org/zap"
)

// DispatchDigestHandler wraps the use case with logging and metrics. It is
// the entry point for both the periodic tick and the explicit test-send.
type DispatchDigestHandler struct {
	dispatchDigestUseCase DispatchDigestUseCaseInterface
}

func NewDispatchDigestHandler(dispatchDigestUseCase DispatchDigestUseCaseInterface) *DispatchDigestHandler {
	return &DispatchDigestHandler{
		dispatchDigestUseCase: dispatchDigestUseCase,
	}
}

func (h *DispatchDigestHandler) Handle(ctx context.Context) (Result, error) {
	start := time.Now()
	traceID := logger.TraceIDFromContext(ctx)

	result, err := h.dispatchDigestUseCase.Execute(ctx)
	if err != nil {
		outcome := "store_error"
		switch {
		case errors.Is(err, domain.ErrNotConfigured):
			outcome = "config_error"
		case errors.Is(err, domain.ErrDeliveryFailed):
			outcome = "delivery_error"
		}
		metrics.DigestCycles.WithLabelValues(outcome).Inc()
		metrics.ObserveCycleDuration(false, start)
		logger.L().Error("Notification cycle failed",
			zap.String("outcome", outcome),
			zap.String("traceID", traceID),
			zap.Error(err),
		)
		return Result{}, err
	}

	if !result.Sent {
		metrics.DigestCycles.WithLabelValues("skipped").Inc()
		metrics.ObserveCycleDuration(true, start)
		logger.L().Info("Notification cycle finished, nothing to send",
			zap.String("traceID", traceID),
		)
		return result, nil
	}

	metrics.DigestCycles.WithLabelValues("sent").Inc()
	metrics.DigestAlerts.WithLabelValues("account").Add(float64(result.AccountAlerts))
	metrics.DigestAlerts.WithLabelValues("slot").Add(float64(result.SlotAlerts))
	metrics.ObserveCycleDuration(true, start)
	logger.L().Info("Notification digest sent",
		zap.Int("accountAlerts", result.AccountAlerts),
		zap.Int("slotAlerts", result.SlotAlerts),
		zap.String("traceID", traceID),
	)
	return result, nil
}

// Tick adapts Handle to the scheduler callback shape. Errors are logged and
// swallowed: a failed cycle must never take down the scheduler.
func (h *DispatchDigestHandler) Tick() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	_, _ = h.Handle(ctx)
}
