package types

// SearchState is the visibility of the search overlay
type SearchState int

const (
	// SearchHidden means the overlay is not drawn and keys go to the page
	SearchHidden SearchState = iota
	// SearchVisible means the overlay is drawn and owns keyboard input
	SearchVisible
)

// String returns the state name
func (s SearchState) String() string {
	if s == SearchVisible {
		return "visible"
	}
	return "hidden"
}
