// Package reindeer finds the cheapest route for an agent that occupies a
// cell and a facing on an obstacle grid, where stepping forward costs 1 and
// every 90° turn costs 1000.
//
// Under the hood, everything is organized under three subpackages:
//
//	grid/      - immutable obstacle map, positions, orientations, regions
//	route/     - Dijkstra over (position, facing) states, batch solving
//	mazefile/  - character-map parser, route renderer, YAML batch manifests
//
// and one command:
//
//	cmd/reindeer - solve maze files or whole manifests from the shell
//
// Quick ASCII example:
//
//	#####
//	#..E#
//	#S#.#
//	#####
//
// Starting on S facing East, the cheapest route turns North, steps, turns
// East and steps twice: 2003.
package reindeer
