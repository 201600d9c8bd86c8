// Package format linearizes a document model into indented,
// word-wrapped lines with footnote-style link references.
package format

// Refs is the anchor table: an insertion-ordered, deduplicated
// mapping from link target to 1-based reference number. One instance
// is shared across a whole formatting pass so a target reused in
// different subtrees resolves to the same number.
type Refs struct {
	nums    map[string]int
	targets []string
}

// NewRefs creates an empty anchor table.
func NewRefs() *Refs {
	return &Refs{nums: map[string]int{}}
}

// Ref returns the reference number for target, assigning the next
// sequential number on first sight. Targets are compared by exact
// string equality, no normalization.
func (r *Refs) Ref(target string) int {
	if n, ok := r.nums[target]; ok {
		return n
	}
	r.targets = append(r.targets, target)
	n := len(r.targets)
	r.nums[target] = n
	return n
}

// Len reports how many distinct targets have been seen.
func (r *Refs) Len() int {
	return len(r.targets)
}

// Target returns the target with reference number n.
func (r *Refs) Target(n int) string {
	return r.targets[n-1]
}
