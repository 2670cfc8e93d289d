// Package senseplan plans paths for an agent that only sees part of its world.
//
// 🚀 What is senseplan?
//
//	A small, pure-Go pipeline that turns a raw occupancy grid into a smooth,
//	knowledge-bounded trajectory:
//		• Grid model: obstacle / known-free / unknown cells (occgrid)
//		• Sensing: reveal free cells within a radius of the observer (sensing)
//		• Search: weighted best-first, 8-connected, no corner cutting (search)
//		• Curve fitting: least-squares smoothing B-splines (spline)
//		• Trajectory: sample the fitted curve, stop at unknown ground (trajectory)
//
// ✨ Around the core:
//
//   - scenario/ — YAML scenario files and the built-in 16×16 reference layout
//   - render/   — gonum/plot PNG/SVG rendering of grid, path and trajectory
//   - planner/  — the full pipeline with zap logging and parallel batches
//   - cmd/senseplan — the command line entry point
//
// Quick ASCII example (S start, G goal, # obstacle, ? unknown):
//
//	S . . ? ?
//	. # . ? ?
//	. . . ? G
//
// The search crosses unknown cells freely; the trajectory ends at the first
// sample that lands on a "?" cell.
//
//	go run github.com/katalvlaran/senseplan/cmd/senseplan plan --out plot.png
package senseplan
