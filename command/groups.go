package command

import (
	"slices"

	"github.com/lixenwraith/text-rts/core"
	"github.com/lixenwraith/text-rts/parameter"
)

// ControlGroups holds the digit-addressed unit groups and camera bookmarks
// Groups record identity only; members are filtered against liveness on recall
type ControlGroups struct {
	groups [parameter.ControlGroupCount][]core.Entity

	cameras [parameter.CameraBookmarkCount]core.Point
	marked  [parameter.CameraBookmarkCount]bool
}

func validGroup(i int) bool {
	return i >= 0 && i < parameter.ControlGroupCount
}

// Bind replaces group i with es, dropping duplicates
// Returns false for an out-of-range index
func (g *ControlGroups) Bind(i int, es []core.Entity) bool {
	if !validGroup(i) {
		return false
	}
	g.groups[i] = appendUnique(nil, es)
	return true
}

// Add appends es to group i, skipping members already present
// Returns false for an out-of-range index
func (g *ControlGroups) Add(i int, es []core.Entity) bool {
	if !validGroup(i) {
		return false
	}
	g.groups[i] = appendUnique(g.groups[i], es)
	return true
}

// Recall returns the live members of group i in bind order
// Stale handles are pruned from the stored group
func (g *ControlGroups) Recall(i int, alive func(core.Entity) bool) ([]core.Entity, bool) {
	if !validGroup(i) {
		return nil, false
	}
	g.groups[i] = slices.DeleteFunc(g.groups[i], func(e core.Entity) bool { return !alive(e) })
	return slices.Clone(g.groups[i]), true
}

// Len returns the stored size of group i, including handles not yet pruned
func (g *ControlGroups) Len(i int) int {
	if !validGroup(i) {
		return 0
	}
	return len(g.groups[i])
}

// SetCamera stores a camera offset in bookmark slot i
func (g *ControlGroups) SetCamera(i int, p core.Point) bool {
	if i < 0 || i >= parameter.CameraBookmarkCount {
		return false
	}
	g.cameras[i] = p
	g.marked[i] = true
	return true
}

// Camera returns bookmark slot i, false if never stored
func (g *ControlGroups) Camera(i int) (core.Point, bool) {
	if i < 0 || i >= parameter.CameraBookmarkCount || !g.marked[i] {
		return core.Point{}, false
	}
	return g.cameras[i], true
}

func appendUnique(dst, src []core.Entity) []core.Entity {
	for _, e := range src {
		if !slices.Contains(dst, e) {
			dst = append(dst, e)
		}
	}
	return dst
}
