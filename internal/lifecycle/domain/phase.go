package domain

// Criticality levels, matching the traffic-light scale used by the UI.
const (
	CriticalityNegative = 1
	CriticalityCritical = 2
	CriticalityPositive = 3
)

// Phase maps an entity to a display phase 1..3. The status table wins; a
// score buckets the rest. The identifier hash is only consulted in demo mode.
func (t EntityType) Phase(status string, score *int, id string, demo bool) int {
	if phase, ok := t.PhaseByStatus[status]; ok {
		return phase
	}
	if score != nil {
		return phaseForScore(*score)
	}
	if demo && id != "" {
		return DemoIndex(id, 3) + 1
	}
	return 1
}

func phaseForScore(score int) int {
	switch {
	case score >= 85:
		return 3
	case score >= 70:
		return 2
	default:
		return 1
	}
}

// PhaseCriticality maps a phase to its criticality level.
func PhaseCriticality(phase int) int {
	switch phase {
	case 3:
		return CriticalityPositive
	case 2:
		return CriticalityCritical
	default:
		return CriticalityNegative
	}
}

// PriorityTier buckets a score into 1..5. Monotonic non-decreasing in score.
func PriorityTier(score int) int {
	switch {
	case score >= 80:
		return 5
	case score >= 60:
		return 4
	case score >= 40:
		return 3
	case score >= 20:
		return 2
	default:
		return 1
	}
}

// PriorityColor is the display color of a priority tier. Unknown tiers yield "".
func PriorityColor(tier int) string {
	switch tier {
	case 5:
		return "red"
	case 4:
		return "orange"
	case 3:
		return "yellow"
	case 2:
		return "light green"
	case 1:
		return "dark green"
	default:
		return ""
	}
}

// DemoIndex picks a stable index in [0,n) from an identifier by summing its
// character codes. It has no business meaning and backs demo data only.
func DemoIndex(id string, n int) int {
	if n <= 0 {
		return 0
	}
	sum := 0
	for _, r := range id {
		sum += int(r)
	}
	return sum % n
}
