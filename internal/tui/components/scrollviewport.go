package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/pablasso/tahoe/internal/tui/pointer"
)

const defaultScrollViewportMaxLines = 2000

// ScrollViewport wraps bubbles/viewport.Model with a draggable scrollbar,
// auto-scroll tracking and a ring buffer for line capping. The viewport owns
// the scroll offset; its scrollbar only requests changes.
type ScrollViewport struct {
	id         string
	viewport   viewport.Model
	scrollbar  Scrollbar
	autoScroll bool     // true = scroll to bottom on new content
	lines      []string // stored lines (ring buffer)
	maxLines   int      // ring buffer capacity
	width      int      // total width including scrollbar
	height     int      // viewport height
	origin     pointer.Rect
}

// NewScrollViewport creates a new ScrollViewport with the given dimensions.
// maxLines controls the ring buffer size (0 uses the default of 2000).
// The width includes 1 column for the scrollbar; the viewport content area
// is width-1.
func NewScrollViewport(id string, width, height, maxLines int) ScrollViewport {
	if maxLines <= 0 {
		maxLines = defaultScrollViewportMaxLines
	}

	contentWidth := width - 1 // 1 col reserved for scrollbar
	if contentWidth < 0 {
		contentWidth = 0
	}

	vp := viewport.New(contentWidth, height)
	vp.SetContent("")

	s := ScrollViewport{
		id:         id,
		viewport:   vp,
		scrollbar:  NewScrollbar(id+"/scrollbar", WithOnPositionChange(EmitPosition(id))),
		autoScroll: false,
		lines:      make([]string, 0, 64),
		maxLines:   maxLines,
		width:      width,
		height:     height,
	}
	s.syncScrollbar()
	return s
}

// ID returns the identifier carried by the viewport's PositionChangeMsg.
func (s ScrollViewport) ID() string { return s.id }

// ScrollbarID returns the identifier of the embedded scrollbar.
func (s ScrollViewport) ScrollbarID() string { return s.scrollbar.ID() }

// Scrollbar returns the embedded scrollbar.
func (s ScrollViewport) Scrollbar() Scrollbar { return s.scrollbar }

// SetOrigin places the viewport's top-left corner on screen so pointer
// events can be mapped onto the scrollbar track.
func (s *ScrollViewport) SetOrigin(x, y int) {
	s.origin = pointer.Rect{X: x, Y: y, W: s.width, H: s.height}
	s.syncScrollbar()
}

// Bounds returns the on-screen rectangle of the whole viewport.
func (s ScrollViewport) Bounds() pointer.Rect { return s.origin }

// SetSize updates the viewport dimensions. Width includes the scrollbar column.
func (s *ScrollViewport) SetSize(width, height int) {
	if s.width == width && s.height == height {
		return
	}

	s.width = width
	s.height = height
	s.origin.W = width
	s.origin.H = height

	contentWidth := width - 1
	if contentWidth < 0 {
		contentWidth = 0
	}

	s.viewport.Width = contentWidth
	s.viewport.Height = height

	// Re-set content to let viewport recalculate internal state.
	s.viewport.SetContent(strings.Join(s.lines, "\n"))

	if s.autoScroll {
		s.viewport.GotoBottom()
	} else {
		// Clamp y-offset after resize.
		s.viewport.SetYOffset(s.viewport.YOffset)
	}
	s.syncScrollbar()
}

// SetLines replaces the stored lines, applying ring buffer capping.
// When autoScroll is true, the viewport scrolls to the bottom.
// When autoScroll is false, the viewport preserves the current YOffset.
func (s *ScrollViewport) SetLines(lines []string) {
	if len(lines) > s.maxLines {
		lines = lines[len(lines)-s.maxLines:]
	}

	s.lines = make([]string, len(lines))
	copy(s.lines, lines)

	s.viewport.SetContent(strings.Join(s.lines, "\n"))

	if s.autoScroll {
		s.viewport.GotoBottom()
	} else {
		// Preserve current offset, clamping to valid range.
		s.viewport.SetYOffset(s.viewport.YOffset)
	}
	s.syncScrollbar()
}

// SetContent replaces the content with a multi-line string.
func (s *ScrollViewport) SetContent(content string) {
	s.SetLines(strings.Split(content, "\n"))
}

// maxOffset returns the largest valid YOffset.
func (s ScrollViewport) maxOffset() int {
	m := len(s.lines) - s.height
	if m < 0 {
		return 0
	}
	return m
}

// Position returns the scroll offset as a fraction of the scrollable range.
func (s ScrollViewport) Position() float64 {
	m := s.maxOffset()
	if m == 0 {
		return 0
	}
	return float64(s.viewport.YOffset) / float64(m)
}

// VisibleRatio returns the fraction of the content currently visible.
func (s ScrollViewport) VisibleRatio() float64 {
	if len(s.lines) == 0 || len(s.lines) <= s.height {
		return 1
	}
	return float64(s.height) / float64(len(s.lines))
}

// SetPosition scrolls to a fraction of the scrollable range.
func (s *ScrollViewport) SetPosition(p float64) {
	offset := int(math.Round(p * float64(s.maxOffset())))
	s.viewport.SetYOffset(offset)
	s.syncScrollbar()
}

// syncScrollbar pushes the viewport's offset and geometry into the scrollbar.
func (s *ScrollViewport) syncScrollbar() {
	s.scrollbar.SetTrack(pointer.Rect{
		X: s.origin.X + s.width - 1,
		Y: s.origin.Y,
		W: 1,
		H: s.height,
	})
	s.scrollbar.SetPosition(s.Position())
	s.scrollbar.SetVisibleRatio(s.VisibleRatio())
	if !s.Scrollable() {
		s.scrollbar.CancelDrag()
	}
}

// Scrollable reports whether the content exceeds the viewport height.
func (s ScrollViewport) Scrollable() bool {
	return len(s.lines) > s.height
}

// Update handles viewport key and mouse events. Mouse presses, drags and
// releases go to the scrollbar; the scrollbar's position requests come back
// as PositionChangeMsg and are applied here. Scrolling up pauses
// auto-scroll; returning to the bottom re-enables it.
func (s *ScrollViewport) Update(msg tea.Msg) (ScrollViewport, tea.Cmd) {
	switch msg := msg.(type) {
	case PositionChangeMsg:
		if msg.ID != s.id {
			return *s, nil
		}
		s.SetPosition(msg.Position)
		s.autoScroll = s.viewport.AtBottom()
		return *s, nil

	case tea.MouseMsg:
		if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
			var cmd tea.Cmd
			s.viewport, cmd = s.viewport.Update(msg)
			s.autoScroll = s.viewport.AtBottom()
			s.syncScrollbar()
			return *s, cmd
		}
		// releases always reach the scrollbar
		if !s.Scrollable() && !pointer.IsRelease(msg) {
			return *s, nil
		}
		var cmd tea.Cmd
		s.scrollbar, cmd = s.scrollbar.Update(msg)
		return *s, cmd

	case tea.KeyMsg:
		var cmd tea.Cmd
		s.viewport, cmd = s.viewport.Update(msg)

		switch msg.String() {
		case "up", "k", "pgup", "ctrl+u":
			s.autoScroll = false
		case "down", "j", "pgdown", "ctrl+d":
			if s.viewport.AtBottom() {
				s.autoScroll = true
			}
		case "end", "G":
			s.viewport.GotoBottom()
			s.autoScroll = true
		case "home", "g":
			s.viewport.GotoTop()
			s.autoScroll = false
		}
		s.syncScrollbar()
		return *s, cmd
	}

	return *s, nil
}

// View renders the viewport content with a 1-column scrollbar on the right.
// When the content fits, the scrollbar column is a blank gutter so the
// layout width stays stable.
func (s ScrollViewport) View() string {
	content := s.viewport.View()

	var scrollbarLines []string
	if s.Scrollable() {
		scrollbarLines = strings.Split(s.scrollbar.View(), "\n")
	}

	contentLines := strings.Split(content, "\n")
	contentWidth := s.ContentWidth()

	var b strings.Builder
	for i := 0; i < s.height; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}

		cl := ""
		if i < len(contentLines) {
			cl = contentLines[i]
		}
		sl := " "
		if i < len(scrollbarLines) {
			sl = scrollbarLines[i]
		}

		b.WriteString(cl)
		// Pad content to fill the content width so the scrollbar aligns.
		padding := contentWidth - ansi.StringWidth(cl)
		if padding > 0 {
			b.WriteString(strings.Repeat(" ", padding))
		}
		b.WriteString(sl)
	}

	return b.String()
}

// AtBottom returns true if the viewport is scrolled to the bottom.
func (s ScrollViewport) AtBottom() bool {
	return s.viewport.AtBottom()
}

// YOffset returns the first visible line.
func (s ScrollViewport) YOffset() int {
	return s.viewport.YOffset
}

// ContentWidth returns the width available for content (total width minus scrollbar).
func (s ScrollViewport) ContentWidth() int {
	w := s.width - 1
	if w < 0 {
		return 0
	}
	return w
}

// SetAutoScroll enables or disables auto-scroll. When enabled, the viewport
// scrolls to the bottom immediately.
func (s *ScrollViewport) SetAutoScroll(enabled bool) {
	s.autoScroll = enabled
	if enabled {
		s.viewport.GotoBottom()
	}
	s.syncScrollbar()
}

// AutoScroll returns whether auto-scroll is currently enabled.
func (s ScrollViewport) AutoScroll() bool {
	return s.autoScroll
}

// Focus gives keyboard focus to the embedded scrollbar.
func (s *ScrollViewport) Focus() { s.scrollbar.Focus() }

// Blur removes keyboard focus from the embedded scrollbar.
func (s *ScrollViewport) Blur() { s.scrollbar.Blur() }

// CancelDrag closes any drag session on the embedded scrollbar.
func (s *ScrollViewport) CancelDrag() { s.scrollbar.CancelDrag() }

// EnsureVisible scrolls the viewport so that lineIndex is visible. If center
// is true, the line is centered in the viewport; otherwise the viewport
// scrolls the minimum amount needed.
func (s *ScrollViewport) EnsureVisible(lineIndex int, center bool) {
	if lineIndex < 0 || lineIndex >= len(s.lines) {
		return
	}
	defer s.syncScrollbar()

	top := s.viewport.YOffset
	bottom := top + s.height - 1

	if center {
		target := lineIndex - s.height/2
		if target < 0 {
			target = 0
		}
		s.viewport.SetYOffset(target)
		return
	}

	// Minimum scroll: only move if the line is outside the visible range.
	if lineIndex < top {
		s.viewport.SetYOffset(lineIndex)
	} else if lineIndex > bottom {
		s.viewport.SetYOffset(lineIndex - s.height + 1)
	}
}
