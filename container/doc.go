// Package container holds the small generic containers the tree traversals
// are built from: a slice-backed Stack and a Queue made of two stacks.
//
// Neither type is safe for concurrent use.
package container
