// Package pvf trains and queries a path vector field: a triangular grid of
// 2D vectors learned incrementally from example trajectories, and a
// synthesizer that walks the grid from a start point to grow a pseudo-average
// trajectory.
package pvf
