package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SimulationRuns счетчик запусков сценариев
	SimulationRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "homecost_simulation_runs_total",
			Help: "Количество запусков сценариев",
		},
		[]string{"scenario", "status"},
	)

	// SimulatedMonths счетчик смоделированных месяцев ипотеки
	SimulatedMonths = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "homecost_simulated_months_total",
			Help: "Количество смоделированных месяцев ипотеки",
		},
		[]string{"scenario"},
	)

	// CalculationErrors счетчик ошибок расчетов
	CalculationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "homecost_calculation_errors_total",
			Help: "Количество ошибок расчетов",
		},
		[]string{"scenario", "error_type"},
	)
)

// WriteTextfile сохраняет текущие значения метрик в формате textfile-коллектора node_exporter
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("writing metrics textfile: %w", err)
	}
	return nil
}
