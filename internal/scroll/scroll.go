// Package scroll holds the geometry behind a proportional scrollbar: thumb
// size and offset from a (position, visible ratio) pair, and the inverse
// mapping from a pointer coordinate back to a position.
//
// All lengths are in the caller's unit (cells, pixels); sizes and offsets
// returned as percentages are relative to the track length.
package scroll

import "math"

const (
	// MinVisibleRatio floors the thumb length so it stays graspable.
	MinVisibleRatio = 0.2

	// Step is the keyboard nudge applied per arrow key press.
	Step = 0.1
)

// Orientation is the scroll axis of a scrollbar.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return "unknown"
	}
}

// Clamp restricts v to [0,1]. NaN maps to 0 and infinities saturate.
func Clamp(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// ThumbSizePercent returns the thumb length as a percentage of the track.
func ThumbSizePercent(visibleRatio float64) float64 {
	return math.Max(Clamp(visibleRatio), MinVisibleRatio) * 100
}

// ThumbOffsetPercent returns the thumb start as a percentage of the track.
// offset + size never exceeds 100.
func ThumbOffsetPercent(position, visibleRatio float64) float64 {
	return Clamp(position) * (100 - ThumbSizePercent(visibleRatio))
}

// PositionAt maps a pointer coordinate along the scroll axis to a position.
// The thumb is centred under the pointer. When the track is no longer than
// the thumb the result snaps to 0 or 1 by the sign of the pointer offset.
func PositionAt(pointer, origin, trackLength, visibleRatio float64) float64 {
	thumb := ThumbSizePercent(visibleRatio) / 100 * trackLength
	available := trackLength - thumb
	relative := pointer - origin - thumb/2

	if math.IsNaN(relative) {
		return 0
	}
	if available <= 0 || math.IsNaN(available) || math.IsInf(available, 0) {
		if relative <= 0 {
			return 0
		}
		return 1
	}
	return Clamp(relative / available)
}

// Key is a keyboard action understood by Nudge.
type Key int

const (
	KeyNone Key = iota
	KeyDecrease
	KeyIncrease
	KeyHome
	KeyEnd
)

// KeyFor maps a key name ("up", "down", "left", "right", "home", "end") to
// an action for the given orientation. Arrow keys across the axis map to
// KeyNone.
func KeyFor(o Orientation, key string) Key {
	switch key {
	case "home":
		return KeyHome
	case "end":
		return KeyEnd
	}
	if o == Vertical {
		switch key {
		case "up":
			return KeyDecrease
		case "down":
			return KeyIncrease
		}
		return KeyNone
	}
	switch key {
	case "left":
		return KeyDecrease
	case "right":
		return KeyIncrease
	}
	return KeyNone
}

// Nudge applies a keyboard action to position.
func Nudge(position float64, k Key) float64 {
	switch k {
	case KeyDecrease:
		return Clamp(Clamp(position) - Step)
	case KeyIncrease:
		return Clamp(Clamp(position) + Step)
	case KeyHome:
		return 0
	case KeyEnd:
		return 1
	}
	return Clamp(position)
}

// Cells is a thumb rasterised onto a track of whole cells.
type Cells struct {
	Start int
	Size  int
}

// Rasterize converts the percentage geometry to cells for a track of
// length cells. The thumb is at least one cell and never overflows.
func Rasterize(position, visibleRatio float64, length int) Cells {
	if length <= 0 {
		return Cells{}
	}

	size := int(math.Round(ThumbSizePercent(visibleRatio) / 100 * float64(length)))
	if size < 1 {
		size = 1
	}
	if size > length {
		size = length
	}

	start := int(math.Round(ThumbOffsetPercent(position, visibleRatio) / 100 * float64(length)))
	if start+size > length {
		start = length - size
	}
	if start < 0 {
		start = 0
	}

	return Cells{Start: start, Size: size}
}

// Contains reports whether cell i is covered by the thumb.
func (c Cells) Contains(i int) bool {
	return i >= c.Start && i < c.Start+c.Size
}

// CellCenter returns the continuous coordinate of the centre of a cell.
func CellCenter(cell int) float64 {
	return float64(cell) + 0.5
}
