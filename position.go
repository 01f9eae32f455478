package llist

// Position fine tunes where Add links a node.
type Position int

const (
	PositionTail Position = iota
	PositionHead
	PositionBefore
	PositionAfter
)

// Parses a position token. Unknown or empty input is PositionTail; this
// never fails.
func ParsePosition(s string) Position {
	switch s {
	case "head":
		return PositionHead
	case "before":
		return PositionBefore
	case "after":
		return PositionAfter
	}
	return PositionTail
}

func (p Position) String() string {
	switch p {
	case PositionHead:
		return "head"
	case PositionBefore:
		return "before"
	case PositionAfter:
		return "after"
	}
	return "tail"
}

func (p Position) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Lenient, like ParsePosition: unknown text decodes to PositionTail.
func (p *Position) UnmarshalText(text []byte) error {
	*p = ParsePosition(string(text))
	return nil
}
