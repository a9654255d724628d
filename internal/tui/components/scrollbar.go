package components

import (
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pablasso/tahoe/internal/scroll"
	"github.com/pablasso/tahoe/internal/tui/pointer"
	"github.com/pablasso/tahoe/internal/tui/styles"
)

// PositionChangeFunc receives a position in [0,1] requested by the user.
// It runs synchronously inside Update; the returned command is passed on.
type PositionChangeFunc func(position float64) tea.Cmd

// PositionChangeMsg carries a requested scrollbar position to its owner.
type PositionChangeMsg struct {
	ID       string
	Position float64
}

// EmitPosition returns a PositionChangeFunc that reports changes as a
// PositionChangeMsg tagged with id.
func EmitPosition(id string) PositionChangeFunc {
	return func(position float64) tea.Cmd {
		return func() tea.Msg {
			return PositionChangeMsg{ID: id, Position: position}
		}
	}
}

// Scrollbar is a proportional scrollbar over position and visible ratio
// owned by the caller. It never changes its own position: user input is
// reported through the change callback and the caller feeds the accepted
// value back with SetPosition.
//
// Track: │ (vertical) or ─ (horizontal)
// Thumb: █ (vertical) or ━ (horizontal)
type Scrollbar struct {
	id           string
	orientation  scroll.Orientation
	position     float64
	visibleRatio float64
	onChange     PositionChangeFunc

	track    pointer.Rect
	focused  bool
	dragging bool
}

// ScrollbarOption configures a Scrollbar at construction.
type ScrollbarOption func(*Scrollbar)

// WithOrientation sets the scroll axis. It cannot change afterwards.
func WithOrientation(o scroll.Orientation) ScrollbarOption {
	return func(s *Scrollbar) { s.orientation = o }
}

// WithPosition sets the initial position.
func WithPosition(p float64) ScrollbarOption {
	return func(s *Scrollbar) { s.position = scroll.Clamp(p) }
}

// WithVisibleRatio sets the initial visible ratio.
func WithVisibleRatio(v float64) ScrollbarOption {
	return func(s *Scrollbar) { s.visibleRatio = scroll.Clamp(v) }
}

// WithOnPositionChange makes the scrollbar interactive.
func WithOnPositionChange(fn PositionChangeFunc) ScrollbarOption {
	return func(s *Scrollbar) { s.onChange = fn }
}

// NewScrollbar creates a vertical scrollbar at position 0 showing half of
// the content, unless options say otherwise.
func NewScrollbar(id string, opts ...ScrollbarOption) Scrollbar {
	s := Scrollbar{
		id:           id,
		orientation:  scroll.Vertical,
		visibleRatio: 0.5,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// ID returns the scrollbar's identifier.
func (s Scrollbar) ID() string { return s.id }

// Orientation returns the scroll axis.
func (s Scrollbar) Orientation() scroll.Orientation { return s.orientation }

// Position returns the displayed position.
func (s Scrollbar) Position() float64 { return s.position }

// VisibleRatio returns the displayed visible ratio.
func (s Scrollbar) VisibleRatio() float64 { return s.visibleRatio }

// Dragging reports whether a drag session is open.
func (s Scrollbar) Dragging() bool { return s.dragging }

// Focused reports whether the thumb has keyboard focus.
func (s Scrollbar) Focused() bool { return s.focused }

// Interactive reports whether user input is reported anywhere.
func (s Scrollbar) Interactive() bool { return s.onChange != nil }

// SetPosition updates the displayed position, clamped to [0,1].
func (s *Scrollbar) SetPosition(p float64) { s.position = scroll.Clamp(p) }

// SetVisibleRatio updates the displayed visible ratio, clamped to [0,1].
func (s *Scrollbar) SetVisibleRatio(v float64) { s.visibleRatio = scroll.Clamp(v) }

// SetTrack places the track on screen. The track is one column wide for a
// vertical scrollbar and one row high for a horizontal one.
func (s *Scrollbar) SetTrack(r pointer.Rect) { s.track = r }

// Track returns the on-screen track rectangle.
func (s Scrollbar) Track() pointer.Rect { return s.track }

// Focus gives the thumb keyboard focus.
func (s *Scrollbar) Focus() { s.focused = true }

// Blur removes keyboard focus.
func (s *Scrollbar) Blur() { s.focused = false }

// CancelDrag closes a drag session without emitting. Owners call it when
// the scrollbar is torn down mid-drag.
func (s *Scrollbar) CancelDrag() { s.dragging = false }

// Length returns the track length in cells along the scroll axis.
func (s Scrollbar) Length() int {
	if s.orientation == scroll.Horizontal {
		return s.track.W
	}
	return s.track.H
}

// ThumbSizePercent returns the thumb length as a percentage of the track.
func (s Scrollbar) ThumbSizePercent() float64 {
	return scroll.ThumbSizePercent(s.visibleRatio)
}

// ThumbOffsetPercent returns the thumb start as a percentage of the track.
func (s Scrollbar) ThumbOffsetPercent() float64 {
	return scroll.ThumbOffsetPercent(s.position, s.visibleRatio)
}

// AccessibleValue is the slider value announced for the thumb (0-100).
func (s Scrollbar) AccessibleValue() int {
	return int(math.Round(s.position * 100))
}

// Label is the accessible name of the thumb.
func (s Scrollbar) Label() string {
	if s.orientation == scroll.Horizontal {
		return "Horizontal scrollbar"
	}
	return "Vertical scrollbar"
}

func (s Scrollbar) thumbCells() scroll.Cells {
	return scroll.Rasterize(s.position, s.visibleRatio, s.Length())
}

// axis returns the cell index of (x, y) along the track, relative to its
// origin.
func (s Scrollbar) axis(x, y int) int {
	if s.orientation == scroll.Horizontal {
		return x - s.track.X
	}
	return y - s.track.Y
}

// onThumb reports whether the cell (x, y) is covered by the thumb.
func (s Scrollbar) onThumb(x, y int) bool {
	if !s.track.Contains(x, y) {
		return false
	}
	return s.thumbCells().Contains(s.axis(x, y))
}

// positionAt maps a pointer cell to a position, centring the thumb under
// the pointer. The first and last cells of the track are the ends.
func (s Scrollbar) positionAt(x, y int) float64 {
	n, c := s.Length(), s.axis(x, y)
	switch {
	case c <= 0:
		return 0
	case c >= n-1:
		return 1
	}
	return scroll.PositionAt(scroll.CellCenter(c), 0, float64(n), s.visibleRatio)
}

func (s Scrollbar) emit(p float64) tea.Cmd {
	if s.onChange == nil {
		return nil
	}
	return s.onChange(scroll.Clamp(p))
}

// Update handles mouse events routed to the scrollbar and key presses while
// focused. Mouse events are expected in screen coordinates; while a drag is
// open the owner must route motion and release here even when the pointer
// has left the track.
func (s Scrollbar) Update(msg tea.Msg) (Scrollbar, tea.Cmd) {
	if s.onChange == nil {
		return s, nil
	}

	switch msg := msg.(type) {
	case tea.MouseMsg:
		switch {
		case pointer.IsPress(msg):
			if s.onThumb(msg.X, msg.Y) {
				s.dragging = true
				return s, nil
			}
			if s.track.Contains(msg.X, msg.Y) {
				return s, s.emit(s.positionAt(msg.X, msg.Y))
			}
		case pointer.IsRelease(msg):
			s.dragging = false
		case msg.Action == tea.MouseActionMotion:
			if s.dragging {
				return s, s.emit(s.positionAt(msg.X, msg.Y))
			}
		}

	case tea.KeyMsg:
		if !s.focused {
			return s, nil
		}
		if k := scroll.KeyFor(s.orientation, msg.String()); k != scroll.KeyNone {
			return s, s.emit(scroll.Nudge(s.position, k))
		}
	}

	return s, nil
}

func (s Scrollbar) glyphs() (track, thumb string) {
	if s.orientation == scroll.Horizontal {
		return "─", "━"
	}
	return "│", "█"
}

// View renders the track with the thumb. Vertical scrollbars render one
// cell per line; horizontal ones render a single line.
func (s Scrollbar) View() string {
	n := s.Length()
	if n <= 0 {
		return ""
	}

	p := styles.Current().Palette
	trackStyle := lipgloss.NewStyle().Foreground(p.Track)
	thumbStyle := lipgloss.NewStyle().Foreground(p.Thumb)
	switch {
	case s.dragging:
		thumbStyle = thumbStyle.Foreground(p.ThumbDrag)
	case s.focused:
		thumbStyle = thumbStyle.Foreground(p.Accent)
	}

	track, thumb := s.glyphs()
	cells := s.thumbCells()

	sep := "\n"
	if s.orientation == scroll.Horizontal {
		sep = ""
	}

	var b strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(sep)
		}
		if cells.Contains(i) {
			b.WriteString(thumbStyle.Render(thumb))
		} else {
			b.WriteString(trackStyle.Render(track))
		}
	}
	return b.String()
}

// SyncCapture attaches or detaches the router capture to match the
// scrollbar's drag state.
func SyncCapture(r *pointer.Router, s Scrollbar) {
	if s.dragging {
		r.Acquire(s.id)
		return
	}
	r.Release(s.id)
}
