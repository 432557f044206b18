// Package world provides the adventure state core: the room graph, doors,
// items, the player inventory, and the action resolvers that mutate them.
package world

import "fmt"

// Direction represents one of the four compass directions.
type Direction string

// The four compass directions.
const (
	North Direction = "north"
	South Direction = "south"
	East  Direction = "east"
	West  Direction = "west"
)

// Directions contains all four compass directions.
var Directions = []Direction{North, South, East, West}

// IsValid reports whether d is one of the four compass directions.
func (d Direction) IsValid() bool {
	switch d {
	case North, South, East, West:
		return true
	}
	return false
}

// Opposite returns the opposing compass direction. It is an involution:
// d.Opposite().Opposite() == d for every valid direction.
//
// Precondition: d must be a valid direction for a meaningful result.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return ""
	}
}

// ParseDirection converts a string into a Direction.
//
// Postcondition: Returns a valid Direction or a non-nil error.
func ParseDirection(s string) (Direction, error) {
	d := Direction(s)
	if !d.IsValid() {
		return "", fmt.Errorf("unknown direction %q", s)
	}
	return d, nil
}
