package pid

const (
	PercentMin = -5.0
	PercentMax = 105.0

	GainMax       = 50.0
	IntegralMax   = 400.0
	DerivativeMax = 99.0
	DeadbandMax   = 9.9
	FFGainMax     = 9.9
	FFBiasMax     = 99.0

	// FeedforwardThreshold is the smallest feedforward gain magnitude that is considered active
	FeedforwardThreshold = 0.05

	// DerivativeSpan is the number of scans the PV slope is measured over
	DerivativeSpan = 2
)

// Range describes the engineering unit scaling of the process variable.
// It is used for display purposes only.
type Range struct {
	URV  float64 `json:"urv"`
	LRV  float64 `json:"lrv"`
	Unit string  `json:"unit"`
}

// Loop holds the state of a single PID control loop.
// All percent values share the domain [PercentMin..PercentMax].
type Loop struct {
	ID   string
	Type LoopType

	PV   float64
	SP   float64
	Out  float64
	Bias float64

	KP        float64
	KI        float64 // repeats per minute
	KD        float64 // seconds
	IDeadband float64

	FFGain float64
	FFBias float64
	FFLoad float64
	FF     float64
	// Load is the display alias of FFLoad
	Load float64

	Action   Action
	Equation Equation
	Mode     Mode

	WindupHigh float64
	WindupLow  float64

	Alarms AlarmLimits
	Range  Range

	history History
}

// NewLoop creates a loop with the default settings of a freshly installed controller
func NewLoop(id string) *Loop {
	return &Loop{
		ID:         id,
		Type:       LoopTypeSingleLoop,
		SP:         50,
		Bias:       50,
		KP:         0.5,
		KI:         0,
		KD:         0,
		IDeadband:  0,
		Action:     ActionReverse,
		Equation:   EquationIdeal,
		Mode:       ModeManual,
		WindupHigh: 99,
		WindupLow:  1,
		Alarms: AlarmLimits{
			HiHi: 95,
			Hi:   75,
			Lo:   25,
			LoLo: 5,
		},
		Range: Range{
			URV:  12,
			LRV:  0,
			Unit: "PSI",
		},
	}
}

// History returns the PV samples used for derivative estimation
func (l *Loop) History() *History {
	return &l.history
}

// FeedforwardActive is true if the feedforward term takes part in the output sum
func (l *Loop) FeedforwardActive() bool {
	return l.FFGain >= FeedforwardThreshold || l.FFGain <= -FeedforwardThreshold
}

// Tuning is the operator adjustable part of a loop that survives restarts
type Tuning struct {
	KP        float64  `json:"kp"`
	KI        float64  `json:"ki"`
	KD        float64  `json:"kd"`
	IDeadband float64  `json:"iDeadband"`
	FFGain    float64  `json:"ffGain"`
	FFBias    float64  `json:"ffBias"`
	Action    Action   `json:"action"`
	Equation  Equation `json:"equation"`
}

func (l *Loop) Tuning() Tuning {
	return Tuning{
		KP:        l.KP,
		KI:        l.KI,
		KD:        l.KD,
		IDeadband: l.IDeadband,
		FFGain:    l.FFGain,
		FFBias:    l.FFBias,
		Action:    l.Action,
		Equation:  l.Equation,
	}
}

func (l *Loop) ApplyTuning(tuning Tuning) {
	l.KP = tuning.KP
	l.KI = tuning.KI
	l.KD = tuning.KD
	l.IDeadband = tuning.IDeadband
	l.FFGain = tuning.FFGain
	l.FFBias = tuning.FFBias
	l.Action = tuning.Action
	l.Equation = tuning.Equation
	l.normalize()
}

// Snapshot is a read-only copy of the loop state
type Snapshot struct {
	ID       string      `json:"id"`
	Type     string      `json:"type"`
	PV       float64     `json:"pv"`
	SP       float64     `json:"sp"`
	Out      float64     `json:"out"`
	Bias     float64     `json:"bias"`
	FF       float64     `json:"ff"`
	Load     float64     `json:"load"`
	Tuning   Tuning      `json:"tuning"`
	Action   string      `json:"action"`
	Equation string      `json:"equation"`
	Mode     string      `json:"mode"`
	Alarm    string      `json:"alarm"`
	Alarms   AlarmLimits `json:"alarms"`
	Range    Range       `json:"range"`
	History  []float64   `json:"history"`
}

func (l *Loop) Snapshot() Snapshot {
	return Snapshot{
		ID:       l.ID,
		Type:     l.Type.String(),
		PV:       l.PV,
		SP:       l.SP,
		Out:      l.Out,
		Bias:     l.Bias,
		FF:       l.FF,
		Load:     l.Load,
		Tuning:   l.Tuning(),
		Action:   l.Action.String(),
		Equation: l.Equation.String(),
		Mode:     l.Mode.String(),
		Alarm:    l.Alarm().String(),
		Alarms:   l.Alarms,
		Range:    l.Range,
		History:  l.history.Values(),
	}
}
