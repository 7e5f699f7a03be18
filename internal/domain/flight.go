package domain

// HomeTag owns legs flown back to (or hovering at) the home location.
const HomeTag = "home"

// StopKind records what a hover leg marks. Real moves carry StopNone.
type StopKind int

const (
	StopNone StopKind = iota
	StopPickup
	StopDropoff
	StopHome
)

func (k StopKind) String() string {
	switch k {
	case StopPickup:
		return "pickup"
	case StopDropoff:
		return "dropoff"
	case StopHome:
		return "home"
	}
	return "none"
}

// FlightLeg is one recorded move or hover. Legs are append-only.
type FlightLeg struct {
	OrderNo string
	From    Position
	Heading Heading
	To      Position
	Stop    StopKind
}

// IsHover reports whether the leg keeps the drone in place.
func (l FlightLeg) IsHover() bool { return l.Heading == Hover }

// Termination describes how a planning run ended.
type Termination int

const (
	TerminationCompleted Termination = iota
	TerminationBudget
	TerminationUnreachable
)

func (t Termination) String() string {
	switch t {
	case TerminationBudget:
		return "budget_exhausted"
	case TerminationUnreachable:
		return "unreachable"
	}
	return "completed"
}

// Journey is the complete output of one planning run: every visited
// position (home first) and every leg, in order.
type Journey struct {
	Positions   []Position
	Legs        []FlightLeg
	Termination Termination
}

// Moves is the number of legs flown, hovers included. It is what the
// move budget is charged for.
func (j *Journey) Moves() int { return len(j.Legs) }
