package model

// State names one variant of a mutually exclusive family.
type State string

const (
	StateUp         State = "up"
	StateDownOpen   State = "downOpen"
	StateDownClosed State = "downClosed"
	StateDown       State = "down"
)

// Variant is one state of a family: the class that carries it in markup and
// the layer its primitives classify into.
type Variant struct {
	State State
	Class string
	Layer Layer
}

// Family is a set of mutually exclusive variants that share one physical
// container in the source markup. Exactly one variant is meant to be
// visible at a time; visibility is chosen by stylesheet, not by removal.
type Family struct {
	Name     string
	Variants []Variant
}

// HandFamily returns the three hand positions.
func HandFamily() Family {
	return Family{
		Name: "hands",
		Variants: []Variant{
			{State: StateDownClosed, Class: "gotchi-handsDownClosed", Layer: LayerHandsDownClosed},
			{State: StateDownOpen, Class: "gotchi-handsDownOpen", Layer: LayerHandsDownOpen},
			{State: StateUp, Class: "gotchi-handsUp", Layer: LayerHandsUp},
		},
	}
}

// SleeveFamily returns the two sleeve positions.
func SleeveFamily() Family {
	return Family{
		Name: "sleeves",
		Variants: []Variant{
			{State: StateUp, Class: "gotchi-sleeves-up", Layer: LayerSleeve},
			{State: StateDown, Class: "gotchi-sleeves-down", Layer: LayerSleeve},
		},
	}
}

// Variant looks up the variant for a state.
func (f Family) Variant(s State) (Variant, bool) {
	for _, v := range f.Variants {
		if v.State == s {
			return v, true
		}
	}
	return Variant{}, false
}

// States lists the family's states in declaration order.
func (f Family) States() []State {
	states := make([]State, len(f.Variants))
	for i, v := range f.Variants {
		states[i] = v.State
	}
	return states
}

// Visibility selects the one visible state of a family.
type Visibility struct {
	Family Family
	State  State
}
