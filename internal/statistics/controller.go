package statistics

import (
	"github.com/markusressel/pid2go/internal/controller"
	"github.com/prometheus/client_golang/prometheus"
)

const controllerSubsystem = "controller"

// ControllerCollector exposes the health of the loop controllers
type ControllerCollector struct {
	running         *prometheus.Desc
	inputErrors     *prometheus.Desc
	outputErrors    *prometheus.Desc
	exportFailures  *prometheus.Desc
	scanDurationAvg *prometheus.Desc
	scanDurationMax *prometheus.Desc
}

func NewControllerCollector() *ControllerCollector {
	return &ControllerCollector{
		running: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "running"),
			"1 if the controller of this loop is running",
			[]string{"id"}, nil,
		),
		inputErrors: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "input_errors"),
			"Counter for failed reads of the PV and load inputs",
			[]string{"id"}, nil,
		),
		outputErrors: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "output_errors"),
			"Counter for failed writes of the output channels",
			[]string{"id"}, nil,
		),
		exportFailures: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "export_failures"),
			"Counter for failed trend exports",
			[]string{"id"}, nil,
		),
		scanDurationAvg: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "scan_duration_avg_seconds"),
			"Average duration of the most recent scans",
			[]string{"id"}, nil,
		),
		scanDurationMax: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "scan_duration_max_seconds"),
			"Maximum duration of the most recent scans",
			[]string{"id"}, nil,
		),
	}
}

func (collector *ControllerCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.running
	ch <- collector.inputErrors
	ch <- collector.outputErrors
	ch <- collector.exportFailures
	ch <- collector.scanDurationAvg
	ch <- collector.scanDurationMax
}

// Collect implements required collect function for all prometheus collectors
func (collector *ControllerCollector) Collect(ch chan<- prometheus.Metric) {
	for id, status := range controller.StatusMap.Items() {
		ch <- prometheus.MustNewConstMetric(collector.running, prometheus.GaugeValue, boolToFloat(status.Running), id)
		ch <- prometheus.MustNewConstMetric(collector.inputErrors, prometheus.CounterValue, float64(status.InputErrors), id)
		ch <- prometheus.MustNewConstMetric(collector.outputErrors, prometheus.CounterValue, float64(status.OutputErrors), id)
		ch <- prometheus.MustNewConstMetric(collector.exportFailures, prometheus.CounterValue, float64(status.ExportFailures), id)
		ch <- prometheus.MustNewConstMetric(collector.scanDurationAvg, prometheus.GaugeValue, status.ScanDurationAvg, id)
		ch <- prometheus.MustNewConstMetric(collector.scanDurationMax, prometheus.GaugeValue, status.ScanDurationMax, id)
	}
}
