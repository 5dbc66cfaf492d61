// Package world flattens evaluated rooms into the plain room graph the
// renderers consume: Extract picks the Room records out of the top-level
// results, and Build turns them into room summaries and directed edges.
package world
