package stability

import "fmt"

// Kind is the broad progression phase of the creature.
type Kind int

const (
	KindEgg Kind = iota
	KindGrowing
	KindBranchA
	KindBranchB
	KindGameOver
)

func (k Kind) String() string {
	switch k {
	case KindEgg:
		return "egg"
	case KindGrowing:
		return "growing"
	case KindBranchA:
		return "branch_a"
	case KindBranchB:
		return "branch_b"
	case KindGameOver:
		return "game_over"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Stage is the creature's current progression stage. Ordinal is only
// meaningful for KindGrowing and the branch kinds, where it records the growth
// ordinal the branch was entered from.
type Stage struct {
	Kind    Kind
	Ordinal int
}

var (
	StageEgg      = Stage{Kind: KindEgg}
	StageBaby     = Stage{Kind: KindGrowing, Ordinal: 0}
	StageGameOver = Stage{Kind: KindGameOver}
)

// InBranch reports whether the stage is one of the alternate endings.
func (s Stage) InBranch() bool {
	return s.Kind == KindBranchA || s.Kind == KindBranchB
}

func (s Stage) String() string {
	switch s.Kind {
	case KindGrowing:
		return fmt.Sprintf("%s(%s)", s.Kind, ordinalName(s.Ordinal))
	case KindBranchA, KindBranchB:
		return fmt.Sprintf("%s@%d", s.Kind, s.Ordinal)
	default:
		return s.Kind.String()
	}
}

func ordinalName(ordinal int) string {
	switch ordinal {
	case 0:
		return "baby"
	case 1:
		return "infant"
	case 2:
		return "toddler"
	case 3:
		return "teen"
	case 4:
		return "adult"
	case 5:
		return "elder"
	default:
		return fmt.Sprintf("%d", ordinal)
	}
}
