// Package key defines keyboard event types for the grid: the navigation
// keys the engine reacts to and the modifier bitmask that selects
// between plain movement, range extension, and block jumps.
package key
