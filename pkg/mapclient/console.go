package mapclient

import (
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/paulmach/orb"
)

const maxZoom = 21

// ConsoleMap is a headless Map that records state and writes a line per change.
type ConsoleMap struct {
	mu      sync.Mutex
	out     io.Writer
	center  orb.Point
	zoom    int
	bounds  orb.Bound
	markers []*ConsoleMarker
	popup   *Popup
}

// Popup is the currently open popup
type Popup struct {
	Marker  *ConsoleMarker
	Details DisplayDetails
}

// NewConsoleMap creates a console map writing to out
func NewConsoleMap(out io.Writer) *ConsoleMap {
	if out == nil {
		out = io.Discard
	}
	return &ConsoleMap{out: out}
}

// SetCenter implements Map
func (m *ConsoleMap) SetCenter(center orb.Point) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.center = center
	fmt.Fprintf(m.out, "center  %.6f,%.6f\n", center.Lat(), center.Lon())
}

// Center returns the current center
func (m *ConsoleMap) Center() orb.Point {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.center
}

// Zoom implements Map
func (m *ConsoleMap) Zoom() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.zoom
}

// SetZoom implements Map
func (m *ConsoleMap) SetZoom(zoom int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.zoom = clampZoom(zoom)
	fmt.Fprintf(m.out, "zoom    %d\n", m.zoom)
}

// FitBounds implements Map. The zoom chosen is the largest at which the
// bounds span fits in one 256px tile width.
func (m *ConsoleMap) FitBounds(bounds orb.Bound) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.bounds = bounds
	m.center = bounds.Center()
	span := math.Max(bounds.Right()-bounds.Left(), bounds.Top()-bounds.Bottom())
	if span > 0 {
		m.zoom = clampZoom(int(math.Floor(math.Log2(360 / span))))
	}
	fmt.Fprintf(m.out, "fit     [%.6f,%.6f]-[%.6f,%.6f] zoom %d\n",
		bounds.Bottom(), bounds.Left(), bounds.Top(), bounds.Right(), m.zoom)
}

// Bounds returns the last fitted bounds
func (m *ConsoleMap) Bounds() orb.Bound {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bounds
}

// NewMarker implements Map
func (m *ConsoleMap) NewMarker(position orb.Point, label string) Marker {
	m.mu.Lock()
	defer m.mu.Unlock()

	marker := &ConsoleMarker{position: position, label: label, visible: true}
	m.markers = append(m.markers, marker)
	fmt.Fprintf(m.out, "marker  %-2s %.6f,%.6f\n", label, position.Lat(), position.Lon())
	return marker
}

// ShowPopup implements Map
func (m *ConsoleMap) ShowPopup(marker Marker, details DisplayDetails) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cm, _ := marker.(*ConsoleMarker)
	m.popup = &Popup{Marker: cm, Details: details}
	fmt.Fprintf(m.out, "popup   %s\n        %s\n        %s\n        %s\n        %s\n",
		details.Name, details.Address, details.Classification, details.Features, details.History)
}

// Popup returns the open popup, or nil
func (m *ConsoleMap) Popup() *Popup {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.popup
}

// VisibleMarkers returns markers that are currently shown
func (m *ConsoleMap) VisibleMarkers() []*ConsoleMarker {
	m.mu.Lock()
	defer m.mu.Unlock()

	var visible []*ConsoleMarker
	for _, marker := range m.markers {
		if marker.Visible() {
			visible = append(visible, marker)
		}
	}
	return visible
}

func clampZoom(zoom int) int {
	if zoom < 0 {
		return 0
	}
	if zoom > maxZoom {
		return maxZoom
	}
	return zoom
}

// ConsoleMarker is a marker on a ConsoleMap
type ConsoleMarker struct {
	mu       sync.Mutex
	position orb.Point
	label    string
	visible  bool
	onClick  func()
}

// Position implements Marker
func (mk *ConsoleMarker) Position() orb.Point {
	return mk.position
}

// Label implements Marker
func (mk *ConsoleMarker) Label() string {
	return mk.label
}

// SetVisible implements Marker
func (mk *ConsoleMarker) SetVisible(visible bool) {
	mk.mu.Lock()
	defer mk.mu.Unlock()
	mk.visible = visible
}

// Visible reports whether the marker is shown
func (mk *ConsoleMarker) Visible() bool {
	mk.mu.Lock()
	defer mk.mu.Unlock()
	return mk.visible
}

// OnClick implements Marker
func (mk *ConsoleMarker) OnClick(fn func()) {
	mk.mu.Lock()
	defer mk.mu.Unlock()
	mk.onClick = fn
}

// Click simulates a user click. It reports whether a handler ran.
func (mk *ConsoleMarker) Click() bool {
	mk.mu.Lock()
	fn := mk.onClick
	mk.mu.Unlock()

	if fn == nil {
		return false
	}
	fn()
	return true
}
