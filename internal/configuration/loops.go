package configuration

// LoopConfig describes a single control loop.
// Numeric settings that are not set fall back to the controller defaults.
type LoopConfig struct {
	ID   string        `json:"id"`
	Type LoopTypeValue `json:"type"`
	// Primary references the loop driving the setpoint of a cascade or ratio loop
	Primary string `json:"primary,omitempty"`

	SP   *float64 `json:"sp,omitempty"`
	Bias *float64 `json:"bias,omitempty"`

	KP        *float64 `json:"kp,omitempty"`
	KI        *float64 `json:"ki,omitempty"`
	KD        *float64 `json:"kd,omitempty"`
	IDeadband *float64 `json:"iDeadband,omitempty"`
	FFGain    *float64 `json:"ffGain,omitempty"`
	FFBias    *float64 `json:"ffBias,omitempty"`

	Action   ActionValue   `json:"action,omitempty"`
	Equation EquationValue `json:"equation,omitempty"`
	Mode     ModeValue     `json:"mode,omitempty"`

	TrendInterval *int `json:"trendInterval,omitempty"`

	Windup *WindupConfig `json:"windup,omitempty"`
	Alarms *AlarmConfig  `json:"alarms,omitempty"`
	Range  *RangeConfig  `json:"range,omitempty"`

	// Persist stores tuning changes in the database and restores them on startup
	Persist bool `json:"persist"`

	Input      LoopInputConfig   `json:"input"`
	Output     LoopOutputConfig  `json:"output"`
	Simulation *SimulationConfig `json:"simulation,omitempty"`
}

type WindupConfig struct {
	High float64 `json:"high"`
	Low  float64 `json:"low"`
}

type AlarmConfig struct {
	HiHi float64 `json:"hihi"`
	Hi   float64 `json:"hi"`
	Lo   float64 `json:"lo"`
	LoLo float64 `json:"lolo"`
}

type RangeConfig struct {
	URV  float64 `json:"urv"`
	LRV  float64 `json:"lrv"`
	Unit string  `json:"unit"`
}
