package ui

import (
	"fmt"

	"ca-stages/internal/rule"
	"ca-stages/internal/stages"
)

// Marker labels the time step where a rule starts applying.
type Marker struct {
	Row  int
	Rule int
}

// StageMarkers returns the rule changes of a run in time order. Stages that
// run zero steps are dropped.
func StageMarkers(original int, plan stages.Plan) []Marker {
	markers := []Marker{{Row: 0, Rule: original}}
	if plan.Steps184 > 0 {
		markers = append(markers, Marker{Row: plan.TimeSteps, Rule: rule.TrafficRule})
	}
	if plan.Steps232 > 0 {
		markers = append(markers, Marker{Row: plan.TimeSteps + plan.Steps184, Rule: rule.MajorityRule})
	}
	return markers
}

// Overlay annotates the space-time diagram with the rule in force.
type Overlay struct {
	markers []Marker
	scale   int
	visible bool
}

// NewOverlay constructs an overlay for the given markers.
func NewOverlay(markers []Marker, scale int) *Overlay {
	return &Overlay{markers: markers, scale: scale, visible: true}
}

// Toggle shows or hides the overlay.
func (o *Overlay) Toggle() { o.visible = !o.visible }

// Caption describes the newest visible time step given shown visible rows.
func (o *Overlay) Caption(shown int) string {
	t := shown - 1
	if t < 0 {
		return ""
	}
	current := -1
	for _, m := range o.markers {
		// A marker row is the last state of the previous rule.
		if m.Row < t || (m.Row == 0 && t == 0) {
			current = m.Rule
		}
	}
	if current < 0 {
		return fmt.Sprintf("t=%d", t)
	}
	return fmt.Sprintf("t=%d rule %d", t, current)
}
