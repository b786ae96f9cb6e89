package tensor

import "strings"

// Index configurations annotate each tensor axis as contravariant
// ("upper", marker 'u') or covariant ("lower", marker 'l'). A rank-2
// covariant tensor has configuration "ll"; a mixed one "ul".

// ValidConfig reports whether config is a well-formed index
// configuration: non-empty and composed exclusively of 'u' and 'l'
// markers, one per axis.
func ValidConfig(config string) bool {
	if len(config) == 0 {
		return false
	}
	for i := 0; i < len(config); i++ {
		if config[i] != 'u' && config[i] != 'l' {
			return false
		}
	}
	return true
}

// LowerConfig returns the all-covariant configuration for the given
// rank: "ll" for rank 2, and so on.
func LowerConfig(rank int) string {
	return strings.Repeat("l", rank)
}

// Action is the per-axis step of a configuration change.
type Action int8

const (
	// NoOp leaves the axis untouched.
	NoOp Action = 0
	// Raise flips the axis to contravariant by contraction with the
	// contravariant metric form.
	Raise Action = 1
	// Lower flips the axis to covariant by contraction with the
	// covariant metric form.
	Lower Action = -1
)

func (a Action) String() string {
	switch a {
	case Raise:
		return "raise"
	case Lower:
		return "lower"
	}
	return "noop"
}

// diffActions produces one Action per axis position for converting
// oldcfg into newcfg. Both configurations must already be validated and
// of equal length; the caller checks that before invoking.
func diffActions(newcfg, oldcfg string) []Action {
	actions := make([]Action, len(newcfg))
	for i := range actions {
		switch {
		case newcfg[i] == oldcfg[i]:
			actions[i] = NoOp
		case newcfg[i] == 'u':
			actions[i] = Raise
		default:
			actions[i] = Lower
		}
	}
	return actions
}
