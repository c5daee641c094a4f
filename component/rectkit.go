package component

import (
	"github.com/physgun/territory/core"
)

// RectKit bundles one physical rectangle in the four coordinate frames a
// window layout cares about. Setting any single frame recomputes the rest,
// so the four rects are always mutually consistent for the window
// dimensions passed in.
//
// Frames:
//   - Screen: origin top-left, +x right, +y down. Min is the top-left corner.
//   - World: origin window center, +x right, +y up. Min is the bottom-left corner.
//   - ScreenRel: Screen rescaled so the window maps to [0,1] x [0,1].
//   - WorldRel: World rescaled so the window maps to [-0.5,0.5] x [-0.5,0.5].
type RectKit struct {
	Screen    core.Rect
	World     core.Rect
	ScreenRel core.Rect
	WorldRel  core.Rect
}

// validDims rejects window dimensions the linear maps cannot handle.
// Zero-sized windows show up transiently during OS window creation.
func validDims(w, h float64) bool {
	return w > 0 && h > 0 && !core.V(w, h).HasNaN()
}

// KitFromScreen builds a complete RectKit from a screen-frame rect
func KitFromScreen(rect core.Rect, w, h float64) RectKit {
	var k RectKit
	k.SetScreen(rect, w, h)
	return k
}

// KitFromWorld builds a complete RectKit from a world-frame rect
func KitFromWorld(rect core.Rect, w, h float64) RectKit {
	var k RectKit
	k.SetWorld(rect, w, h)
	return k
}

// KitFromScreenRel builds a complete RectKit from a normalized screen rect
func KitFromScreenRel(rect core.Rect, w, h float64) RectKit {
	var k RectKit
	k.SetScreenRel(rect, w, h)
	return k
}

// KitFromWorldRel builds a complete RectKit from a normalized world rect
func KitFromWorldRel(rect core.Rect, w, h float64) RectKit {
	var k RectKit
	k.SetWorldRel(rect, w, h)
	return k
}

// SetScreen overwrites the screen-frame rect and recomputes the other three.
// Silently rejected when the rect is malformed or the dims are unusable.
func (k *RectKit) SetScreen(rect core.Rect, w, h float64) {
	if rect.HasNaN() || !validDims(w, h) {
		return
	}
	k.Screen = rect
	k.screenToWorld(w, h)
	k.screenToRel(w, h)
	k.worldToRel(w, h)
}

// SetWorld overwrites the world-frame rect and recomputes the other three.
// Silently rejected when the rect is malformed or the dims are unusable.
func (k *RectKit) SetWorld(rect core.Rect, w, h float64) {
	if rect.HasNaN() || !validDims(w, h) {
		return
	}
	k.World = rect
	k.worldToScreen(w, h)
	k.worldToRel(w, h)
	k.screenToRel(w, h)
}

// SetScreenRel overwrites the normalized screen rect and recomputes the rest
func (k *RectKit) SetScreenRel(rect core.Rect, w, h float64) {
	if rect.HasNaN() || !validDims(w, h) {
		return
	}
	k.ScreenRel = rect
	k.relToScreen(w, h)
	k.screenToWorld(w, h)
	k.worldToRel(w, h)
}

// SetWorldRel overwrites the normalized world rect and recomputes the rest
func (k *RectKit) SetWorldRel(rect core.Rect, w, h float64) {
	if rect.HasNaN() || !validDims(w, h) {
		return
	}
	k.WorldRel = rect
	k.relToWorld(w, h)
	k.worldToScreen(w, h)
	k.screenToRel(w, h)
}

// MoveWorldPos translates the world rect by (dx, dy), size preserved
func (k *RectKit) MoveWorldPos(dx, dy float64, w, h float64) {
	k.SetWorld(k.World.Translate(core.V(dx, dy)), w, h)
}

// MoveWorldCorners shifts the world rect's min and max corners independently,
// which changes size. Corners are re-normalized if the deltas cross them over.
func (k *RectKit) MoveWorldCorners(deltaMin, deltaMax core.Vec2, w, h float64) {
	k.SetWorld(core.RectFromCorners(k.World.Min.Add(deltaMin), k.World.Max.Add(deltaMax)), w, h)
}

// MoveScreenPos translates the screen rect by (dx, dy), size preserved
func (k *RectKit) MoveScreenPos(dx, dy float64, w, h float64) {
	k.SetScreen(k.Screen.Translate(core.V(dx, dy)), w, h)
}

// MoveScreenCorners shifts the screen rect's min and max corners independently
func (k *RectKit) MoveScreenCorners(deltaMin, deltaMax core.Vec2, w, h float64) {
	k.SetScreen(core.RectFromCorners(k.Screen.Min.Add(deltaMin), k.Screen.Max.Add(deltaMax)), w, h)
}

// worldToScreen derives the screen rect from the world rect.
// screen center = (w/2 + world.center.x, h/2 - world.center.y), same size.
func (k *RectKit) worldToScreen(w, h float64) {
	c := k.World.Center()
	k.Screen = core.RectFromCenterSize(core.V(w/2+c.X, h/2-c.Y), k.World.Size())
}

// screenToWorld derives the world rect from the screen rect
func (k *RectKit) screenToWorld(w, h float64) {
	c := k.Screen.Center()
	k.World = core.RectFromCenterSize(core.V(c.X-w/2, h/2-c.Y), k.Screen.Size())
}

// worldToRel rescales the world rect into [-0.5,0.5] window coordinates
func (k *RectKit) worldToRel(w, h float64) {
	k.WorldRel = core.Rect{
		Min: core.V(k.World.Min.X/w, k.World.Min.Y/h),
		Max: core.V(k.World.Max.X/w, k.World.Max.Y/h),
	}
}

// relToWorld expands the normalized world rect back to world coordinates
func (k *RectKit) relToWorld(w, h float64) {
	k.World = core.Rect{
		Min: core.V(k.WorldRel.Min.X*w, k.WorldRel.Min.Y*h),
		Max: core.V(k.WorldRel.Max.X*w, k.WorldRel.Max.Y*h),
	}
}

// screenToRel rescales the screen rect into [0,1] window coordinates
func (k *RectKit) screenToRel(w, h float64) {
	k.ScreenRel = core.Rect{
		Min: core.V(k.Screen.Min.X/w, k.Screen.Min.Y/h),
		Max: core.V(k.Screen.Max.X/w, k.Screen.Max.Y/h),
	}
}

// relToScreen expands the normalized screen rect back to screen coordinates
func (k *RectKit) relToScreen(w, h float64) {
	k.Screen = core.Rect{
		Min: core.V(k.ScreenRel.Min.X*w, k.ScreenRel.Min.Y*h),
		Max: core.V(k.ScreenRel.Max.X*w, k.ScreenRel.Max.Y*h),
	}
}

// InsideWorldWindow reports whether the world rect lies fully inside a window
// of the given dimensions, centered at the world origin
func (k *RectKit) InsideWorldWindow(w, h float64) bool {
	bounds := core.RectFromCenterSize(core.Vec2Zero, core.V(w, h))
	return bounds.ContainsRect(k.World)
}

// InsideScreenWindow reports whether the screen rect lies fully inside a
// window of the given dimensions, anchored at the screen origin
func (k *RectKit) InsideScreenWindow(w, h float64) bool {
	bounds := core.RectFromCorners(core.Vec2Zero, core.V(w, h))
	return bounds.ContainsRect(k.Screen)
}
