package scene

import "fmt"

// Mode is how shapes follow the text.
type Mode int

const (
	// Morph cross-fades one global shape.
	Morph Mode = iota
	// Cascade spawns one shape per character and lets it settle.
	Cascade
	// Bounce spawns like Cascade, then keeps settled shapes bouncing.
	Bounce
)

// Next cycles to the next mode.
func (m Mode) Next() Mode {
	switch m {
	case Morph:
		return Cascade
	case Cascade:
		return Bounce
	default:
		return Morph
	}
}

// String returns the name of the mode.
func (m Mode) String() string {
	switch m {
	case Cascade:
		return "cascade"
	case Bounce:
		return "bounce"
	default:
		return "morph"
	}
}

// Icon returns a short visual indicator for the mode.
func (m Mode) Icon() string {
	switch m {
	case Cascade:
		return "◇◆◇"
	case Bounce:
		return "◇↯◇"
	default:
		return "◇→◆"
	}
}

// PerCharacter reports whether the mode owns one shape per character.
func (m Mode) PerCharacter() bool { return m != Morph }

// ParseMode converts a mode name.
func ParseMode(name string) (Mode, error) {
	switch name {
	case "morph", "":
		return Morph, nil
	case "cascade":
		return Cascade, nil
	case "bounce":
		return Bounce, nil
	default:
		return Morph, fmt.Errorf("unknown mode %q (want morph, cascade or bounce)", name)
	}
}
