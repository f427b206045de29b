package runner

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/cloud-ru/homecost-go/internal/calculations"
	"github.com/cloud-ru/homecost-go/internal/metrics"
)

// Options управляет дополнительными частями результата
type Options struct {
	// Schedule добавляет помесячный график погашения
	Schedule bool
}

// Runner выполняет сценарии с трейсингом, метриками и логированием
type Runner struct {
	tracer trace.Tracer
	logger *zap.Logger
}

func New(tracer trace.Tracer, logger *zap.Logger) *Runner {
	return &Runner{tracer: tracer, logger: logger}
}

// Run рассчитывает сценарий и возвращает годовые снимки обоих счетов
func (r *Runner) Run(ctx context.Context, sc calculations.Scenario, opts Options) (*calculations.Result, error) {
	runID := uuid.NewString()
	logger := r.logger.With(zap.String("run_id", runID), zap.String("scenario", sc.Name))

	_, span := r.tracer.Start(ctx, "simulate_scenario")
	defer span.End()

	span.SetAttributes(
		attribute.String("run_id", runID),
		attribute.String("scenario", sc.Name),
		attribute.Int("years", sc.Loan.Years),
		attribute.Float64("purchase_price", sc.Loan.PurchasePrice),
		attribute.Float64("annual_rate", sc.Loan.AnnualRate),
		attribute.Float64("monthly_rent", sc.MonthlyRent),
		attribute.Bool("sale", sc.Loan.Sale != nil),
	)

	logger.Debug("simulation started",
		zap.Int("years", sc.Loan.Years),
		zap.Float64("purchase_price", sc.Loan.PurchasePrice),
		zap.Float64("annual_rate", sc.Loan.AnnualRate),
	)

	result, err := calculations.Run(sc)
	if err == nil && opts.Schedule {
		result.Schedule, err = calculations.AmortizationSchedule(sc.Loan)
	}
	if err != nil {
		errorType := "calculation"
		if errors.Is(err, calculations.ErrInvalidParameter) {
			errorType = "invalid_parameter"
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, errorType)
		metrics.SimulationRuns.WithLabelValues(sc.Name, "error").Inc()
		metrics.CalculationErrors.WithLabelValues(sc.Name, errorType).Inc()
		logger.Error("simulation failed", zap.String("error_type", errorType), zap.Error(err))
		return nil, fmt.Errorf("ошибка при выполнении расчета: %w", err)
	}

	span.SetAttributes(
		attribute.Bool("success", true),
		attribute.Float64("monthly_payment", result.Summary.MonthlyPayment),
		attribute.String("cheaper", result.Comparison.Cheaper),
	)
	metrics.SimulationRuns.WithLabelValues(sc.Name, "success").Inc()
	metrics.SimulatedMonths.WithLabelValues(sc.Name).Add(float64(12 * len(result.Years)))

	logger.Info("simulation finished",
		zap.Float64("monthly_payment", result.Summary.MonthlyPayment),
		zap.String("cheaper", result.Comparison.Cheaper),
		zap.Float64("savings", result.Comparison.Savings),
	)

	return result, nil
}
