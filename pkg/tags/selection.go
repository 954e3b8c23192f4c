package tags

// Selection is the ordered set of tag ids chosen in one filter view. It
// never holds the same id twice. Toggle and Clear return new values and
// leave their argument untouched.
type Selection []string

// Toggle removes id if it is selected and appends it otherwise. Applying it
// twice with the same id gives back the same set of ids; a removed id that
// comes back is appended, so its position may change.
func Toggle(sel Selection, id string) Selection {
	for i, existing := range sel {
		if existing == id {
			out := make(Selection, 0, len(sel)-1)
			out = append(out, sel[:i]...)
			return append(out, sel[i+1:]...)
		}
	}
	out := make(Selection, 0, len(sel)+1)
	out = append(out, sel...)
	return append(out, id)
}

// Clear returns the empty selection regardless of sel.
func Clear(Selection) Selection {
	return Selection{}
}

// Contains reports whether id is selected.
func (s Selection) Contains(id string) bool {
	for _, existing := range s {
		if existing == id {
			return true
		}
	}
	return false
}

// Len returns the number of selected ids.
func (s Selection) Len() int {
	return len(s)
}

// IDs returns the selected ids as a plain slice the caller may modify.
func (s Selection) IDs() []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
