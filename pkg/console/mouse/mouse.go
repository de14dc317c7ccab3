// Package mouse provides hit-region tracking and mouse event interpretation
// for the console. Regions are registered during rendering and tested in
// reverse insertion order, so surfaces drawn later (overlays) win hits over
// the background beneath them.
package mouse

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Rect is a rectangle in screen cells. Width and height are exclusive:
// a cell (x, y) is inside when X <= x < X+W and Y <= y < Y+H.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) falls inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Region is a named clickable area with optional associated data.
type Region struct {
	ID   string
	Rect Rect
	Data any
}

// HitMap holds the clickable regions for the current frame.
type HitMap struct {
	regions []Region
}

// NewHitMap returns an empty hit map.
func NewHitMap() *HitMap {
	return &HitMap{}
}

// AddRect registers a region. Later registrations take priority over
// earlier ones at the same coordinates.
func (hm *HitMap) AddRect(id string, x, y, w, h int, data any) {
	hm.regions = append(hm.regions, Region{
		ID:   id,
		Rect: Rect{X: x, Y: y, W: w, H: h},
		Data: data,
	})
}

// Test returns the highest-priority region containing (x, y), or nil.
func (hm *HitMap) Test(x, y int) *Region {
	for i := len(hm.regions) - 1; i >= 0; i-- {
		if hm.regions[i].Rect.Contains(x, y) {
			return &hm.regions[i]
		}
	}
	return nil
}

// Regions returns all registered regions.
func (hm *HitMap) Regions() []Region {
	return hm.regions
}

// Clear removes all regions. Call at the start of each render pass.
func (hm *HitMap) Clear() {
	hm.regions = hm.regions[:0]
}

// doubleClickWindow is the maximum delay between two clicks on the same
// region to count as a double-click.
const doubleClickWindow = 400 * time.Millisecond

// ClickResult describes the outcome of a click.
type ClickResult struct {
	Region        *Region
	IsDoubleClick bool
}

// ActionType classifies an interpreted mouse event.
type ActionType int

const (
	ActionNone ActionType = iota
	ActionClick
	ActionHover
	ActionScrollUp
	ActionScrollDown
	ActionScrollLeft
	ActionScrollRight
	ActionDrag
	ActionDragEnd
)

// Action is an interpreted mouse event.
type Action struct {
	Type          ActionType
	Region        *Region
	X, Y          int
	IsDoubleClick bool
	DragDX        int
	DragDY        int
}

// Handler interprets raw Bubble Tea mouse messages against a hit map and
// tracks click/drag state across events.
type Handler struct {
	HitMap *HitMap

	lastClickTime   time.Time
	lastClickRegion string

	dragging       bool
	dragStartX     int
	dragStartY     int
	dragRegion     string
	dragStartValue int
}

// NewHandler returns a handler with an empty hit map.
func NewHandler() *Handler {
	return &Handler{HitMap: NewHitMap()}
}

// HandleClick resolves a click at (x, y) and tracks double-click state.
func (h *Handler) HandleClick(x, y int) ClickResult {
	region := h.HitMap.Test(x, y)
	result := ClickResult{Region: region}

	if region != nil {
		now := time.Now()
		if h.lastClickRegion == region.ID && now.Sub(h.lastClickTime) <= doubleClickWindow {
			result.IsDoubleClick = true
			// Reset so a triple click does not read as two doubles.
			h.lastClickRegion = ""
			h.lastClickTime = time.Time{}
		} else {
			h.lastClickRegion = region.ID
			h.lastClickTime = now
		}
	} else {
		h.lastClickRegion = ""
	}

	return result
}

// StartDrag begins a drag gesture anchored at (x, y) for the named region,
// remembering value (e.g. a divider position) at drag start.
func (h *Handler) StartDrag(x, y int, region string, value int) {
	h.dragging = true
	h.dragStartX = x
	h.dragStartY = y
	h.dragRegion = region
	h.dragStartValue = value
}

// IsDragging reports whether a drag is in progress.
func (h *Handler) IsDragging() bool { return h.dragging }

// DragRegion returns the region the current drag started on.
func (h *Handler) DragRegion() string { return h.dragRegion }

// DragStartValue returns the value captured at drag start.
func (h *Handler) DragStartValue() int { return h.dragStartValue }

// DragDelta returns the offset of (x, y) from the drag anchor.
func (h *Handler) DragDelta(x, y int) (dx, dy int) {
	return x - h.dragStartX, y - h.dragStartY
}

// EndDrag finishes the current drag gesture.
func (h *Handler) EndDrag() {
	h.dragging = false
	h.dragRegion = ""
	h.dragStartValue = 0
}

// Clear resets the hit map for a new render pass.
func (h *Handler) Clear() {
	h.HitMap.Clear()
}

// HandleMouse interprets a raw mouse message into an Action.
func (h *Handler) HandleMouse(msg tea.MouseMsg) Action {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			result := h.HandleClick(msg.X, msg.Y)
			return Action{
				Type:          ActionClick,
				Region:        result.Region,
				X:             msg.X,
				Y:             msg.Y,
				IsDoubleClick: result.IsDoubleClick,
			}
		case tea.MouseButtonWheelUp:
			if msg.Shift {
				return Action{Type: ActionScrollLeft, X: msg.X, Y: msg.Y}
			}
			return Action{Type: ActionScrollUp, Region: h.HitMap.Test(msg.X, msg.Y), X: msg.X, Y: msg.Y}
		case tea.MouseButtonWheelDown:
			if msg.Shift {
				return Action{Type: ActionScrollRight, X: msg.X, Y: msg.Y}
			}
			return Action{Type: ActionScrollDown, Region: h.HitMap.Test(msg.X, msg.Y), X: msg.X, Y: msg.Y}
		}

	case tea.MouseActionMotion:
		if h.dragging {
			dx, dy := h.DragDelta(msg.X, msg.Y)
			return Action{Type: ActionDrag, X: msg.X, Y: msg.Y, DragDX: dx, DragDY: dy}
		}
		return Action{Type: ActionHover, Region: h.HitMap.Test(msg.X, msg.Y), X: msg.X, Y: msg.Y}

	case tea.MouseActionRelease:
		if h.dragging {
			h.EndDrag()
			return Action{Type: ActionDragEnd, X: msg.X, Y: msg.Y}
		}
	}

	return Action{Type: ActionNone, X: msg.X, Y: msg.Y}
}
