package esolang

import (
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var metrics = prom{}

var (
	promNamespace   = "esolang"
	promProgram     = "program"
	promInstruction = "instruction"

	promHostname, _ = os.Hostname()
	promConstLabels = prometheus.Labels{"host": promHostname}

	programUpTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace:   promNamespace,
		Subsystem:   promProgram,
		Name:        "up_timestamp",
		Help:        "The millisecond timestamp when the latest program run started",
		ConstLabels: promConstLabels,
	})

	numberOfRunningProgram = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace:   promNamespace,
		Subsystem:   promProgram,
		Name:        "running",
		Help:        "The number of currently running programs",
		ConstLabels: promConstLabels,
	})

	numberOfExecutedProgram = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   promNamespace,
		Subsystem:   promProgram,
		Name:        "executed_total",
		Help:        "The number of finished programs by terminal state",
		ConstLabels: promConstLabels,
	}, []string{"state"})

	totalStepsOfProgram = promauto.NewCounter(prometheus.CounterOpts{
		Namespace:   promNamespace,
		Subsystem:   promProgram,
		Name:        "steps_total",
		Help:        "The number of execution steps taken by all programs",
		ConstLabels: promConstLabels,
	})

	totalExecutionNumberOfOpCode = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   promNamespace,
		Subsystem:   promInstruction,
		Name:        "opcode_execution_number_total",
		Help:        "Instruction execution number statistics by opcode",
		ConstLabels: promConstLabels,
	}, []string{"opcode"})
)

type prom struct {
}

func (m prom) AddRunningProgram() {
	v := time.Now().UnixNano() / 1e6
	programUpTimestamp.Set(float64(v))
	numberOfRunningProgram.Inc()
}

func (m prom) RemoveRunningProgram(state State) {
	numberOfRunningProgram.Dec()
	numberOfExecutedProgram.WithLabelValues(string(state)).Inc()
}

func (m prom) Step() {
	totalStepsOfProgram.Inc()
}

func (m prom) ExecuteInstruction(in Instruction) {
	totalExecutionNumberOfOpCode.WithLabelValues(in.OpCode.String()).Inc()
}
