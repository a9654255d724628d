// Package pointer routes terminal mouse events to on-screen regions.
//
// Regions are registered each frame as hit rectangles. While a drag is in
// progress a single owner holds the capture and receives every motion and
// release event, including those outside its rectangle. The capture must be
// released when the drag ends and reset whenever the owning view is torn
// down.
package pointer

import tea "github.com/charmbracelet/bubbletea"

// Rect is a rectangle in terminal cells.
type Rect struct {
	X, Y int
	W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Offset returns r translated by (dx, dy).
func (r Rect) Offset(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Region is a named hit rectangle.
type Region struct {
	ID   string
	Rect Rect
}

// Router resolves mouse events to region IDs.
type Router struct {
	regions []Region
	owner   string
	active  bool
}

// NewRouter creates an empty Router.
func NewRouter() *Router {
	return &Router{}
}

// SetRegions replaces the hit rectangles. Later regions are on top.
func (r *Router) SetRegions(regions []Region) {
	r.regions = append(r.regions[:0], regions...)
}

// Register adds one hit rectangle on top of the existing ones.
func (r *Router) Register(id string, rect Rect) {
	if rect.Empty() {
		return
	}
	r.regions = append(r.regions, Region{ID: id, Rect: rect})
}

// Regions returns the registered regions, bottom first.
func (r *Router) Regions() []Region {
	return r.regions
}

// Lookup returns the region registered under id.
func (r *Router) Lookup(id string) (Rect, bool) {
	for i := len(r.regions) - 1; i >= 0; i-- {
		if r.regions[i].ID == id {
			return r.regions[i].Rect, true
		}
	}
	return Rect{}, false
}

// HitTest returns the topmost region containing (x, y).
func (r *Router) HitTest(x, y int) (string, bool) {
	for i := len(r.regions) - 1; i >= 0; i-- {
		if r.regions[i].Rect.Contains(x, y) {
			return r.regions[i].ID, true
		}
	}
	return "", false
}

// Acquire attaches the capture to owner. A previous owner is replaced.
func (r *Router) Acquire(owner string) {
	r.owner = owner
	r.active = true
}

// Release detaches the capture if owner holds it.
func (r *Router) Release(owner string) {
	if r.active && r.owner == owner {
		r.owner = ""
		r.active = false
	}
}

// Reset detaches any capture and returns the previous owner, if any.
func (r *Router) Reset() (string, bool) {
	owner, active := r.owner, r.active
	r.owner = ""
	r.active = false
	return owner, active
}

// Active reports whether a capture is attached.
func (r *Router) Active() bool {
	return r.active
}

// Owner returns the current capture owner.
func (r *Router) Owner() (string, bool) {
	return r.owner, r.active
}

// Target returns the region that should receive msg. A captured pointer
// delivers motion and release to its owner regardless of position; other
// events are hit-tested.
func (r *Router) Target(msg tea.MouseMsg) (string, bool) {
	if r.active {
		switch msg.Action {
		case tea.MouseActionMotion, tea.MouseActionRelease:
			return r.owner, true
		}
	}
	return r.HitTest(msg.X, msg.Y)
}

// IsPress reports whether msg is a left-button press.
func IsPress(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
}

// IsRelease reports whether msg ends a press.
func IsRelease(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionRelease
}

// IsDrag reports whether msg is motion with the left button held.
func IsDrag(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionMotion && msg.Button == tea.MouseButtonLeft
}
