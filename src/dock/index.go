package dock

import "math/bits"

// Node addressing follows a complete binary tree stored in a slice, root at 0.

func LeftChild(i int) int  { return 2*i + 1 }
func RightChild(i int) int { return 2*i + 2 }

// Parent returns the parent index, or -1 for the root.
func Parent(i int) int {
	if i <= 0 {
		return -1
	}
	return (i - 1) / 2
}

// Level returns the depth of index i, 0 for the root.
func Level(i int) int {
	if i <= 0 {
		return 0
	}
	return bits.Len(uint(i+1)) - 1
}

// levelSize is the slice length needed to address every node down to level.
func levelSize(level int) int {
	return 1<<(level+1) - 1
}

// relocated maps index i, inside the subtree rooted at from, to the same
// position inside a subtree rooted at to.
func relocated(i, from, to int) int {
	k := Level(i) - Level(from)
	pos := i - ((from+1)<<k - 1)
	return (to+1)<<k - 1 + pos
}
