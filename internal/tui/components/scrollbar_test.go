package components

import (
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/pablasso/tahoe/internal/scroll"
	"github.com/pablasso/tahoe/internal/tui/pointer"
)

// recorder collects positions reported by a scrollbar.
type recorder struct {
	positions []float64
}

func (r *recorder) onChange(p float64) tea.Cmd {
	r.positions = append(r.positions, p)
	return nil
}

func (r *recorder) last(t *testing.T) float64 {
	t.Helper()
	if len(r.positions) == 0 {
		t.Fatal("expected at least one position change")
	}
	return r.positions[len(r.positions)-1]
}

func newVerticalBar(rec *recorder, position, ratio float64) Scrollbar {
	sb := NewScrollbar("bar",
		WithPosition(position),
		WithVisibleRatio(ratio),
		WithOnPositionChange(rec.onChange),
	)
	sb.SetTrack(pointer.Rect{X: 5, Y: 2, W: 1, H: 10})
	return sb
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func drag(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
}

func TestNewScrollbar_Defaults(t *testing.T) {
	sb := NewScrollbar("s")

	if sb.Orientation() != scroll.Vertical {
		t.Errorf("expected vertical by default, got %s", sb.Orientation())
	}
	if sb.Position() != 0 {
		t.Errorf("expected position 0, got %v", sb.Position())
	}
	if sb.VisibleRatio() != 0.5 {
		t.Errorf("expected visible ratio 0.5, got %v", sb.VisibleRatio())
	}
	if sb.Interactive() {
		t.Error("expected scrollbar without callback to be display-only")
	}
}

func TestScrollbar_ClampsInputs(t *testing.T) {
	sb := NewScrollbar("s", WithPosition(1.7), WithVisibleRatio(-2))
	if sb.Position() != 1 {
		t.Errorf("expected position clamped to 1, got %v", sb.Position())
	}
	if sb.VisibleRatio() != 0 {
		t.Errorf("expected ratio clamped to 0, got %v", sb.VisibleRatio())
	}

	sb.SetPosition(math.NaN())
	if sb.Position() != 0 {
		t.Errorf("expected NaN position to clamp to 0, got %v", sb.Position())
	}
}

func TestScrollbar_ThumbGeometry(t *testing.T) {
	sb := NewScrollbar("s", WithPosition(0.5), WithVisibleRatio(0.4))

	if got := sb.ThumbSizePercent(); math.Abs(got-40) > 1e-9 {
		t.Errorf("expected thumb size 40%%, got %v", got)
	}
	if got := sb.ThumbOffsetPercent(); math.Abs(got-30) > 1e-9 {
		t.Errorf("expected thumb offset 30%%, got %v", got)
	}
	if sb.AccessibleValue() != 50 {
		t.Errorf("expected accessible value 50, got %d", sb.AccessibleValue())
	}
}

func TestScrollbar_TrackClick(t *testing.T) {
	rec := &recorder{}
	sb := newVerticalBar(rec, 0, 0.4)

	// Track starts at y=2; cell 9 is the last one.
	sb, _ = sb.Update(press(5, 11))
	if got := rec.last(t); got != 1 {
		t.Errorf("expected click on last cell to yield 1, got %v", got)
	}
	if sb.Dragging() {
		t.Error("a track click must not start a drag")
	}
	if sb.Position() != 0 {
		t.Error("scrollbar must not change its own position")
	}
}

func TestScrollbar_TrackClickMidpoint(t *testing.T) {
	rec := &recorder{}
	sb := NewScrollbar("bar", WithPosition(1), WithVisibleRatio(0.2), WithOnPositionChange(rec.onChange))
	sb.SetTrack(pointer.Rect{X: 0, Y: 0, W: 1, H: 11})

	// Thumb is 2.2 cells and sits at the bottom; clicking the centre cell
	// asks for the middle of the range.
	sb, _ = sb.Update(press(0, 5))
	if got := rec.last(t); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("expected 0.5, got %v", got)
	}
}

func TestScrollbar_ShortTrackEnds(t *testing.T) {
	tests := []struct {
		name     string
		position float64
		y        int
		want     float64
	}{
		{"first cell", 1, 0, 0},
		{"last cell", 0, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			// The floored thumb is 0.6 cells on a three cell track.
			sb := NewScrollbar("bar", WithPosition(tt.position), WithVisibleRatio(0), WithOnPositionChange(rec.onChange))
			sb.SetTrack(pointer.Rect{X: 0, Y: 0, W: 1, H: 3})

			sb, _ = sb.Update(press(0, tt.y))
			if sb.Dragging() {
				t.Fatal("expected a track click, not a drag")
			}
			if got := rec.last(t); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestScrollbar_DragLifecycle(t *testing.T) {
	rec := &recorder{}
	sb := newVerticalBar(rec, 0, 0.4)

	// Thumb covers cells 0-3 (y=2..5).
	sb, _ = sb.Update(press(5, 3))
	if !sb.Dragging() {
		t.Fatal("expected press on thumb to start a drag")
	}
	if len(rec.positions) != 0 {
		t.Error("pressing the thumb must not emit")
	}

	// Dragging far above the widget clamps to 0.
	sb, _ = sb.Update(drag(40, -20))
	if got := rec.last(t); got != 0 {
		t.Errorf("expected 0 when dragged past the start, got %v", got)
	}

	// Dragging far below the widget clamps to 1.
	sb, _ = sb.Update(drag(40, 200))
	if got := rec.last(t); got != 1 {
		t.Errorf("expected 1 when dragged past the end, got %v", got)
	}

	emitted := len(rec.positions)

	// Releasing outside the widget ends the drag without emitting.
	sb, _ = sb.Update(release(70, 70))
	if sb.Dragging() {
		t.Error("expected release to end the drag")
	}
	if len(rec.positions) != emitted {
		t.Error("release must not emit")
	}

	// Motion after release is ignored.
	sb, _ = sb.Update(drag(5, 8))
	if len(rec.positions) != emitted {
		t.Error("motion after release must not emit")
	}
}

func TestScrollbar_DragHorizontal(t *testing.T) {
	rec := &recorder{}
	sb := NewScrollbar("h",
		WithOrientation(scroll.Horizontal),
		WithVisibleRatio(0.5),
		WithOnPositionChange(rec.onChange),
	)
	sb.SetTrack(pointer.Rect{X: 10, Y: 4, W: 20, H: 1})

	sb, _ = sb.Update(press(12, 4))
	if !sb.Dragging() {
		t.Fatal("expected press on thumb to start a drag")
	}

	// Vertical motion is irrelevant for a horizontal bar.
	sb, _ = sb.Update(drag(9, 50))
	if got := rec.last(t); got != 0 {
		t.Errorf("expected 0, got %v", got)
	}

	sb, _ = sb.Update(drag(29, 0))
	if got := rec.last(t); got != 1 {
		t.Errorf("expected 1, got %v", got)
	}
}

func TestScrollbar_Keyboard(t *testing.T) {
	tests := []struct {
		name        string
		orientation scroll.Orientation
		position    float64
		key         tea.KeyMsg
		want        float64
		emits       bool
	}{
		{"down increases", scroll.Vertical, 0.5, tea.KeyMsg{Type: tea.KeyDown}, 0.6, true},
		{"up decreases", scroll.Vertical, 0.5, tea.KeyMsg{Type: tea.KeyUp}, 0.4, true},
		{"down clamps at one", scroll.Vertical, 0.95, tea.KeyMsg{Type: tea.KeyDown}, 1, true},
		{"up clamps at zero", scroll.Vertical, 0.05, tea.KeyMsg{Type: tea.KeyUp}, 0, true},
		{"right increases horizontal", scroll.Horizontal, 0.95, tea.KeyMsg{Type: tea.KeyRight}, 1, true},
		{"left decreases horizontal", scroll.Horizontal, 0.3, tea.KeyMsg{Type: tea.KeyLeft}, 0.2, true},
		{"home jumps to start", scroll.Vertical, 0.7, tea.KeyMsg{Type: tea.KeyHome}, 0, true},
		{"end jumps to end", scroll.Horizontal, 0.1, tea.KeyMsg{Type: tea.KeyEnd}, 1, true},
		{"cross-axis arrow ignored", scroll.Vertical, 0.5, tea.KeyMsg{Type: tea.KeyRight}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			sb := NewScrollbar("k",
				WithOrientation(tt.orientation),
				WithPosition(tt.position),
				WithOnPositionChange(rec.onChange),
			)
			sb.Focus()

			sb, _ = sb.Update(tt.key)

			if !tt.emits {
				if len(rec.positions) != 0 {
					t.Errorf("expected no emission, got %v", rec.positions)
				}
				return
			}
			if len(rec.positions) != 1 {
				t.Fatalf("expected exactly one emission, got %d", len(rec.positions))
			}
			if math.Abs(rec.positions[0]-tt.want) > 1e-9 {
				t.Errorf("expected %v, got %v", tt.want, rec.positions[0])
			}
		})
	}
}

func TestScrollbar_KeyboardRequiresFocus(t *testing.T) {
	rec := &recorder{}
	sb := NewScrollbar("k", WithOnPositionChange(rec.onChange))

	sb, _ = sb.Update(tea.KeyMsg{Type: tea.KeyDown})
	if len(rec.positions) != 0 {
		t.Error("unfocused scrollbar must ignore keys")
	}
}

func TestScrollbar_DisplayOnlyWithoutCallback(t *testing.T) {
	sb := NewScrollbar("ro", WithPosition(0.3))
	sb.SetTrack(pointer.Rect{X: 0, Y: 0, W: 1, H: 10})
	sb.Focus()

	sb, cmd := sb.Update(press(0, 0))
	if cmd != nil || sb.Dragging() {
		t.Error("display-only scrollbar must ignore presses")
	}
	sb, cmd = sb.Update(tea.KeyMsg{Type: tea.KeyEnd})
	if cmd != nil {
		t.Error("display-only scrollbar must ignore keys")
	}
	if sb.Position() != 0.3 {
		t.Errorf("position must not change, got %v", sb.Position())
	}
}

func TestScrollbar_EmitPosition(t *testing.T) {
	sb := NewScrollbar("emit", WithOnPositionChange(EmitPosition("content")))
	sb.Focus()

	_, cmd := sb.Update(tea.KeyMsg{Type: tea.KeyEnd})
	if cmd == nil {
		t.Fatal("expected a command")
	}

	msg, ok := cmd().(PositionChangeMsg)
	if !ok {
		t.Fatalf("expected PositionChangeMsg, got %T", cmd())
	}
	if msg.ID != "content" || msg.Position != 1 {
		t.Errorf("unexpected message %+v", msg)
	}
}

func TestScrollbar_ViewVertical(t *testing.T) {
	sb := NewScrollbar("v", WithPosition(1), WithVisibleRatio(0.3))
	sb.SetTrack(pointer.Rect{W: 1, H: 10})

	lines := strings.Split(ansi.Strip(sb.View()), "\n")
	if len(lines) != 10 {
		t.Fatalf("expected 10 lines, got %d", len(lines))
	}
	for i, line := range lines {
		want := "│"
		if i >= 7 {
			want = "█"
		}
		if line != want {
			t.Errorf("line %d: expected %q, got %q", i, want, line)
		}
	}
}

func TestScrollbar_ViewHorizontal(t *testing.T) {
	sb := NewScrollbar("h", WithOrientation(scroll.Horizontal), WithPosition(0), WithVisibleRatio(0.5))
	sb.SetTrack(pointer.Rect{W: 8, H: 1})

	got := ansi.Strip(sb.View())
	if got != "━━━━────" {
		t.Errorf("unexpected horizontal view %q", got)
	}
}

func TestScrollbar_ViewZeroLength(t *testing.T) {
	if NewScrollbar("z").View() != "" {
		t.Error("expected empty view without a track")
	}
}

func TestSyncCapture(t *testing.T) {
	rec := &recorder{}
	router := pointer.NewRouter()
	sb := newVerticalBar(rec, 0, 0.4)

	sb, _ = sb.Update(press(5, 2))
	SyncCapture(router, sb)
	if owner, ok := router.Owner(); !ok || owner != "bar" {
		t.Fatalf("expected capture by bar, got %q", owner)
	}

	sb, _ = sb.Update(release(0, 0))
	SyncCapture(router, sb)
	if router.Active() {
		t.Error("expected capture to be released after the drag")
	}
}
