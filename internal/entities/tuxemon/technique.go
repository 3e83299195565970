package tuxemon

// Technique is a technique definition loaded from the db
type Technique struct {
	Slug string `json:"slug" yaml:"slug"`

	// Types are the element tags; a technique has at least one
	Types []ElementType `json:"types" yaml:"types"`

	// Randomly marks the technique as learnable through random-learn items
	Randomly bool `json:"randomly" yaml:"randomly"`
}

// HasType reports whether the technique is tagged with element
func (t *Technique) HasType(element ElementType) bool {
	for _, e := range t.Types {
		if e == element {
			return true
		}
	}
	return false
}

// Clone returns a deep copy
func (t *Technique) Clone() *Technique {
	if t == nil {
		return nil
	}
	out := *t
	out.Types = append([]ElementType(nil), t.Types...)
	return &out
}

// SelectionResult is the outcome of a random technique selection.
// Slug is empty unless Success is true.
type SelectionResult struct {
	Success bool
	Slug    string
}
