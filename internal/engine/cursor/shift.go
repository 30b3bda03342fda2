package cursor

// ShiftPolicy describes how a motion's target combines with the prior
// selection.
type ShiftPolicy uint8

const (
	// Jump collapses the selection onto the target.
	Jump ShiftPolicy = iota
	// Extend keeps the anchor and moves the active end to the target.
	Extend
	// Select starts a new range from the prior active end to the target.
	Select
)

// String returns the policy name.
func (p ShiftPolicy) String() string {
	switch p {
	case Jump:
		return "jump"
	case Extend:
		return "extend"
	case Select:
		return "select"
	default:
		return "unknown"
	}
}

// ParseShiftPolicy parses a policy name as returned by String.
func ParseShiftPolicy(name string) (ShiftPolicy, error) {
	switch name {
	case "jump", "":
		return Jump, nil
	case "extend":
		return Extend, nil
	case "select":
		return Select, nil
	}
	return Jump, &UnknownNameError{Kind: "shift policy", Name: name}
}

// Shift applies policy to move sel onto target. It never inspects the
// document; target must already be a valid position.
func Shift(sel Selection, target Position, policy ShiftPolicy) Selection {
	switch policy {
	case Extend:
		return Selection{Anchor: sel.Anchor, Active: target}
	case Select:
		return Selection{Anchor: sel.Active, Active: target}
	default:
		return Selection{Anchor: target, Active: target}
	}
}
