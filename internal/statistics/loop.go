package statistics

import (
	"github.com/markusressel/pid2go/internal/controller"
	"github.com/markusressel/pid2go/internal/pid"
	"github.com/prometheus/client_golang/prometheus"
	"strconv"
)

const subsystemLoop = "loop"

// LoopCollector exposes the process values of all running loops
type LoopCollector struct {
	pv             *prometheus.Desc
	sp             *prometheus.Desc
	out            *prometheus.Desc
	bias           *prometheus.Desc
	ff             *prometheus.Desc
	load           *prometheus.Desc
	alarm          *prometheus.Desc
	automatic      *prometheus.Desc
	scansPerSecond *prometheus.Desc
	scanCount      *prometheus.Desc
	aout           *prometheus.Desc
}

func newLoopDesc(name string, help string, labels ...string) *prometheus.Desc {
	return prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystemLoop, name),
		help,
		append([]string{"id"}, labels...), nil,
	)
}

func NewLoopCollector() *LoopCollector {
	return &LoopCollector{
		pv:             newLoopDesc("pv", "Process variable in percent"),
		sp:             newLoopDesc("sp", "Setpoint in percent"),
		out:            newLoopDesc("out", "Controller output in percent"),
		bias:           newLoopDesc("bias", "Output bias in percent"),
		ff:             newLoopDesc("ff", "Feedforward term in percent"),
		load:           newLoopDesc("load", "Load variable in percent"),
		alarm:          newLoopDesc("alarm", "Alarm state of the process variable (0=none, 1=lo, 2=lolo, 3=hi, 4=hihi)"),
		automatic:      newLoopDesc("automatic", "1 if the loop is in automatic mode"),
		scansPerSecond: newLoopDesc("scans_per_second", "Measured scan rate of the loop"),
		scanCount:      newLoopDesc("scan_count", "Number of scans executed since startup"),
		aout:           newLoopDesc("aout", "Sequenced output channel signal", "channel"),
	}
}

func (collector *LoopCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.pv
	ch <- collector.sp
	ch <- collector.out
	ch <- collector.bias
	ch <- collector.ff
	ch <- collector.load
	ch <- collector.alarm
	ch <- collector.automatic
	ch <- collector.scansPerSecond
	ch <- collector.scanCount
	ch <- collector.aout
}

// Collect implements required collect function for all prometheus collectors
func (collector *LoopCollector) Collect(ch chan<- prometheus.Metric) {
	for id, status := range controller.StatusMap.Items() {
		loop := status.Loop
		ch <- prometheus.MustNewConstMetric(collector.pv, prometheus.GaugeValue, loop.PV, id)
		ch <- prometheus.MustNewConstMetric(collector.sp, prometheus.GaugeValue, loop.SP, id)
		ch <- prometheus.MustNewConstMetric(collector.out, prometheus.GaugeValue, loop.Out, id)
		ch <- prometheus.MustNewConstMetric(collector.bias, prometheus.GaugeValue, loop.Bias, id)
		ch <- prometheus.MustNewConstMetric(collector.ff, prometheus.GaugeValue, loop.FF, id)
		ch <- prometheus.MustNewConstMetric(collector.load, prometheus.GaugeValue, loop.Load, id)
		ch <- prometheus.MustNewConstMetric(collector.alarm, prometheus.GaugeValue, float64(alarmCode(loop.Alarm)), id)
		ch <- prometheus.MustNewConstMetric(collector.automatic, prometheus.GaugeValue, boolToFloat(loop.Mode == pid.ModeAutomatic.String()), id)
		ch <- prometheus.MustNewConstMetric(collector.scansPerSecond, prometheus.GaugeValue, status.Timebase.ScansPerSecond, id)
		ch <- prometheus.MustNewConstMetric(collector.scanCount, prometheus.CounterValue, float64(status.Timebase.ScanCount), id)
		for channel, signal := range status.Signals {
			ch <- prometheus.MustNewConstMetric(collector.aout, prometheus.GaugeValue, signal, id, strconv.Itoa(channel+1))
		}
	}
}

// alarmCode maps an alarm message back to its numeric state
func alarmCode(message string) pid.Alarm {
	for alarm := pid.AlarmNone; alarm <= pid.AlarmHiHi; alarm++ {
		if alarm.String() == message {
			return alarm
		}
	}
	return pid.AlarmNone
}

func boolToFloat(value bool) float64 {
	if value {
		return 1
	}
	return 0
}
