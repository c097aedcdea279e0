package tree

import "errors"

// ErrNotFound indicates that Remove was asked for an element the tree does
// not hold.
var ErrNotFound = errors.New("item not in tree")
