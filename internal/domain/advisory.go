package domain

// Level classifies a chemical reading against its safe range.
type Level string

const (
	LevelLow  Level = "low"
	LevelOK   Level = "ok"
	LevelHigh Level = "high"
)

// Safe ranges for pool chemistry. Readings outside them are still stored;
// advisories are informational only.
const (
	PHSafeMin       = 7.2
	PHSafeMax       = 7.8
	ChlorineSafeMin = 1.0
	ChlorineSafeMax = 3.0
)

// Advisory is a human-readable verdict on one reading.
type Advisory struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

// LogAdvisories groups the advisories for a single logbook entry.
type LogAdvisories struct {
	PH       Advisory `json:"pH"`
	Chlorine Advisory `json:"chlorine"`
}

// CheckPH compares a pH reading with the 7.2 to 7.8 safe range.
func CheckPH(v float64) Advisory {
	switch {
	case v < PHSafeMin:
		return Advisory{LevelLow, "pH level is too low. Add pH increaser."}
	case v > PHSafeMax:
		return Advisory{LevelHigh, "pH level is too high. Add pH reducer."}
	default:
		return Advisory{LevelOK, "pH level is within the safe range."}
	}
}

// CheckChlorine compares a free chlorine reading (ppm) with the 1.0 to 3.0 safe range.
func CheckChlorine(v float64) Advisory {
	switch {
	case v < ChlorineSafeMin:
		return Advisory{LevelLow, "Chlorine level is too low. Add chlorine."}
	case v > ChlorineSafeMax:
		return Advisory{LevelHigh, "Chlorine level is too high. Dilute with water or wait for natural reduction."}
	default:
		return Advisory{LevelOK, "Chlorine level is within the safe range."}
	}
}

// Advisories evaluates both readings of the entry.
func (l PoolLog) Advisories() LogAdvisories {
	return LogAdvisories{
		PH:       CheckPH(l.PHLevel),
		Chlorine: CheckChlorine(l.ChlorineLevel),
	}
}
