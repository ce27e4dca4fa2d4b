package level

import "fmt"

// InteractorKind discriminates the closed set of interactor variants.
type InteractorKind uint8

const (
	Chain InteractorKind = iota
	Cocoon
)

func (k InteractorKind) String() string {
	switch k {
	case Chain:
		return "Chain"
	case Cocoon:
		return "Cocoon"
	default:
		return "Unknown"
	}
}

// Interactor is an attached behavior modifier on a slither. Interactors
// are order-independent within a slither.
type Interactor struct {
	Kind     InteractorKind
	HitCount int
}

// NewInteractor builds an interactor, rejecting hit counts below 1.
func NewInteractor(kind InteractorKind, hitCount int) (Interactor, error) {
	if kind != Chain && kind != Cocoon {
		return Interactor{}, fmt.Errorf("invalid interactor kind %d", kind)
	}
	if hitCount < 1 {
		return Interactor{}, fmt.Errorf("interactor hit count %d below minimum 1", hitCount)
	}
	return Interactor{Kind: kind, HitCount: hitCount}, nil
}
