package config

import "time"

// SpeedPreset names a fixed drop interval.
type SpeedPreset string

const (
	SpeedSlow   SpeedPreset = "slow"
	SpeedNormal SpeedPreset = "normal"
	SpeedFast   SpeedPreset = "fast"
)

// PeriodForPreset returns the drop interval for a preset. The second result
// is false for the empty preset and for unknown names.
func PeriodForPreset(preset SpeedPreset) (time.Duration, bool) {
	switch preset {
	case SpeedSlow:
		return time.Second, true
	case SpeedNormal:
		return 700 * time.Millisecond, true
	case SpeedFast:
		return 350 * time.Millisecond, true
	default:
		return 0, false
	}
}

// ApplySpeedPreset sets the speed preset on cfg. An empty preset leaves cfg
// unchanged so the configured tick period stays in effect.
func ApplySpeedPreset(cfg *Config, preset SpeedPreset) {
	if preset == "" {
		return
	}
	cfg.Timing.Speed = preset
}
