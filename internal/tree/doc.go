// Package tree generates stylized recursive fractal trees.
//
// A [Generator] performs one full binary recursion of depth D, drawing
// 2^D - 1 line segments into a [grid.Grid]. Segment length and
// thickness both scale with the remaining depth, deep segments are
// drawn in the trunk color and shallow ones ("leaves") in a random
// color. Branch angles carry an independent random jitter per child,
// so the two subtrees of a branch are generally not symmetric.
//
// Randomness comes from a seeded math/rand source, so the same
// [Config] always grows the same tree.
package tree
