package services

import "sort"

// VerificationSet is the transient checklist of items confirmed during one transition
// attempt. It is never persisted.
type VerificationSet struct {
	verified map[int]bool
}

func NewVerificationSet(indices ...int) *VerificationSet {
	v := &VerificationSet{verified: make(map[int]bool, len(indices))}
	for _, i := range indices {
		v.Verify(i)
	}
	return v
}

func (v *VerificationSet) Verify(i int) {
	if v.verified == nil {
		v.verified = make(map[int]bool)
	}
	v.verified[i] = true
}

func (v *VerificationSet) Unverify(i int) {
	delete(v.verified, i)
}

// Toggle flips item i and returns its new state.
func (v *VerificationSet) Toggle(i int) bool {
	if v.verified[i] {
		v.Unverify(i)
		return false
	}
	v.Verify(i)
	return true
}

// Reset clears the set; used when a dialog is cancelled or the order changes.
func (v *VerificationSet) Reset() {
	v.verified = make(map[int]bool)
}

func (v *VerificationSet) IsVerified(i int) bool {
	return v != nil && v.verified[i]
}

// Count returns how many of the first n items are verified.
func (v *VerificationSet) Count(n int) int {
	if v == nil {
		return 0
	}
	count := 0
	for i := range v.verified {
		if i >= 0 && i < n {
			count++
		}
	}
	return count
}

// AllVerified holds iff every index in [0, n) is verified. Out-of-range indices are ignored.
func (v *VerificationSet) AllVerified(n int) bool {
	return n > 0 && v.Count(n) == n
}

func (v *VerificationSet) Indices() []int {
	if v == nil {
		return nil
	}
	out := make([]int, 0, len(v.verified))
	for i := range v.verified {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}
