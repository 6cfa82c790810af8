package model

import "fmt"

// SOLOLevel is one of the five stages of the SOLO taxonomy.
type SOLOLevel string

const (
	PreStructural    SOLOLevel = "Pre-structural"
	UniStructural    SOLOLevel = "Uni-structural"
	MultiStructural  SOLOLevel = "Multi-structural"
	Relational       SOLOLevel = "Relational"
	ExtendedAbstract SOLOLevel = "Extended Abstract"
)

// AllSOLOLevels lists the stages in canonical order, shallow to deep.
var AllSOLOLevels = []SOLOLevel{
	PreStructural,
	UniStructural,
	MultiStructural,
	Relational,
	ExtendedAbstract,
}

var soloLevelOrder = map[SOLOLevel]int{
	PreStructural:    1,
	UniStructural:    2,
	MultiStructural:  3,
	Relational:       4,
	ExtendedAbstract: 5,
}

// Order returns the 1-based sequencing position of the level, 0 for unknown labels.
func (l SOLOLevel) Order() int {
	return soloLevelOrder[l]
}

func (l SOLOLevel) Valid() bool {
	_, ok := soloLevelOrder[l]
	return ok
}

func ParseSOLOLevel(s string) (SOLOLevel, error) {
	l := SOLOLevel(s)
	if !l.Valid() {
		return "", fmt.Errorf("unknown SOLO level %q", s)
	}
	return l, nil
}
