package util

import "github.com/hashicorp/go-set/v3"

// NewStringSet builds a hashicorp/go-set string set from a slice, used
// for the monomorphizer's locals and similar small membership checks.
func NewStringSet(elems []string) *set.Set[string] {
	return set.From(elems)
}
