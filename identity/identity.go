// Package identity defines the canonical package identity token shared by
// every component of the manifest registry core.
package identity

import "cmp"

// Identity is an opaque, comparable, sortable token denoting a logical
// package, independent of its origin (source control or registry). Two
// Identities are equal iff they denote the same logical package; equality is
// byte-exact on the canonical string form.
type Identity string

// String returns the canonical string form of the identity.
func (i Identity) String() string {
	return string(i)
}

// Compare orders two identities by their canonical string form. It is used
// as the tie-break when a registry lookup returns more than one candidate
// identity for a single URL: the lexicographically smallest wins.
func Compare(a, b Identity) int {
	return cmp.Compare(string(a), string(b))
}
