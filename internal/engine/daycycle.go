package engine

import (
	"fmt"
	"log/slog"
	"time"
)

// DefaultDayLength is the real time a full day takes at the day rate.
const DefaultDayLength = 240 * time.Second

// TimeMode is the phase of the day cycle.
type TimeMode uint8

const (
	ModeDay     TimeMode = iota // Clock runs at 1x
	ModePending                 // Evening reached, waiting for the player to sleep
	ModeNight                   // Sleeping, clock runs at 24x
)

// Clock rates per mode.
const (
	dayRate   = 1.0
	nightRate = 24.0
)

// String returns a human-readable mode name.
func (m TimeMode) String() string {
	switch m {
	case ModeDay:
		return "Day"
	case ModePending:
		return "Pending"
	case ModeNight:
		return "Night"
	default:
		return "Unknown"
	}
}

// DayCycle is the in-game clock. Daytime runs from 0.0 (7 AM) through
// 0.5 (7 PM) to 1.0 (7 AM next day).
type DayCycle struct {
	Daytime float64
	Mode    TimeMode
	Day     int
	Length  time.Duration
}

// NewDayCycle starts day 1 at 7 AM.
func NewDayCycle(length time.Duration) *DayCycle {
	if length <= 0 {
		length = DefaultDayLength
	}
	return &DayCycle{Mode: ModeDay, Day: 1, Length: length}
}

// Advance moves the clock forward by dt of real time and reports whether a
// new day began.
func (d *DayCycle) Advance(dt time.Duration) bool {
	var rate float64
	switch d.Mode {
	case ModeDay:
		rate = dayRate
	case ModeNight:
		rate = nightRate
	}
	d.Daytime += rate * dt.Seconds() / d.Length.Seconds()

	if d.Mode == ModeDay && d.Daytime > 0.5 {
		slog.Info("evening reached, waiting for sleep", "day", d.Day)
		d.Daytime = 0.5
		d.Mode = ModePending
	}

	if d.Mode == ModeNight && d.Daytime > 1 {
		d.Daytime = 0
		d.Mode = ModeDay
		d.Day++
		slog.Info("daytime again", "day", d.Day)
		return true
	}
	return false
}

// Sleep fast-forwards through the night.
func (d *DayCycle) Sleep() {
	if d.Mode == ModeNight {
		return
	}
	slog.Info("sleeping", "day", d.Day)
	d.Mode = ModeNight
}

// Clock returns the time of day as "Day N, HH:MM".
func (d *DayCycle) Clock() string {
	minutes := int(d.Daytime*24*60) + 7*60
	return fmt.Sprintf("Day %d, %02d:%02d", d.Day, (minutes/60)%24, minutes%60)
}
