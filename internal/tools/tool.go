// Package tools defines the player's farming tools and what each does to a
// targeted tile.
package tools

import "github.com/yarml/farmer/internal/farm"

// Tool is the currently selected interaction mode.
type Tool uint8

const (
	Cultivate Tool = iota
	Plant
	Water
	Harvest

	numTools = 4
)

// All lists the tools in cycle order.
var All = [numTools]Tool{Cultivate, Plant, Water, Harvest}

// Name returns the tool's asset name.
func (t Tool) Name() string {
	switch t {
	case Cultivate:
		return "cultivate"
	case Plant:
		return "plant"
	case Water:
		return "water"
	case Harvest:
		return "harvest"
	default:
		return "unknown"
	}
}

// String implements fmt.Stringer.
func (t Tool) String() string {
	return t.Name()
}

// IconPath returns the HUD icon asset for the tool.
func (t Tool) IconPath() string {
	return "ui/" + t.Name() + ".png"
}

// Next returns the following tool in cycle order.
func (t Tool) Next() Tool {
	return (t + 1) % numTools
}

// Prev returns the preceding tool in cycle order.
func (t Tool) Prev() Tool {
	return (t + numTools - 1) % numTools
}

// Outcome reports what a tool application did.
type Outcome struct {
	Changed bool // Tile state changed
	Yield   int  // Crops collected (Harvest only)
}

// Activate applies the tool's primary effect to tile. Effects that do not
// apply to the tile's current state do nothing.
func (t Tool) Activate(tile *farm.Tile) Outcome {
	switch t {
	case Cultivate:
		return Outcome{Changed: tile.Cultivate()}
	case Plant:
		return Outcome{Changed: tile.Plant()}
	case Water:
		return Outcome{Changed: tile.Water()}
	case Harvest:
		y := tile.Harvest()
		return Outcome{Changed: y > 0, Yield: y}
	default:
		return Outcome{}
	}
}

// Deactivate applies the tool's secondary effect. Only Cultivate has one:
// it removes the farmland.
func (t Tool) Deactivate(tile *farm.Tile) Outcome {
	if t == Cultivate {
		return Outcome{Changed: tile.Decultivate()}
	}
	return Outcome{}
}

// Selector holds the session's single tool selection.
type Selector struct {
	current Tool
}

// NewSelector starts with Cultivate selected.
func NewSelector() *Selector {
	return &Selector{current: Cultivate}
}

// Current returns the selected tool.
func (s *Selector) Current() Tool {
	return s.current
}

// CycleForward selects the next tool and returns it.
func (s *Selector) CycleForward() Tool {
	s.current = s.current.Next()
	return s.current
}

// CycleBackward selects the previous tool and returns it.
func (s *Selector) CycleBackward() Tool {
	s.current = s.current.Prev()
	return s.current
}
