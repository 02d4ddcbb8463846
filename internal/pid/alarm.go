package pid

type Alarm int

const (
	AlarmNone Alarm = iota
	AlarmLo
	AlarmLoLo
	AlarmHi
	AlarmHiHi
)

var alarmMessages = map[Alarm]string{
	AlarmNone: "",
	AlarmLo:   "PV low alarm!",
	AlarmLoLo: "PV low-low alarm!",
	AlarmHi:   "PV high alarm!",
	AlarmHiHi: "PV high-high alarm!",
}

// AlarmLimits are PV alarm thresholds in percent, HiHi > Hi > Lo > LoLo
type AlarmLimits struct {
	HiHi float64 `json:"hihi"`
	Hi   float64 `json:"hi"`
	Lo   float64 `json:"lo"`
	LoLo float64 `json:"lolo"`
}

func (a Alarm) String() string {
	return alarmMessages[a]
}

// IsCritical is true for the high-high and low-low alarm states
func (a Alarm) IsCritical() bool {
	return a == AlarmHiHi || a == AlarmLoLo
}

// Alarm classifies the current PV against the alarm limits of this loop
func (l *Loop) Alarm() Alarm {
	switch {
	case l.PV > l.Alarms.HiHi:
		return AlarmHiHi
	case l.PV > l.Alarms.Hi:
		return AlarmHi
	case l.PV < l.Alarms.LoLo:
		return AlarmLoLo
	case l.PV < l.Alarms.Lo:
		return AlarmLo
	default:
		return AlarmNone
	}
}
