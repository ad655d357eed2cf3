package neighborhood

// Swap occupies the fifth slot in the VND/RVND neighborhood list
// referenced by the original driver. Its intended semantics were not
// captured anywhere in the retrieved source: the class is referenced but
// never defined. Rather than silently diverging, Swap is implemented as an
// explicit alias of DirectSwap, so either reserved slot behaves
// identically and a reader can see the decision instead of having to
// reverse-engineer it.
type Swap struct {
	DirectSwap
}

var _ Neighborhood = Swap{}
