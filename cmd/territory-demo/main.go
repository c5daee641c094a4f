// Interactive terminal demo for the territory layout engine. Territories
// render as boxes on the terminal cell grid; drag a box by its interior,
// resize it by its border, and watch the conflict pipeline keep the
// layout overlap-free.
package main

import (
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/physgun/territory/component"
	"github.com/physgun/territory/config"
	"github.com/physgun/territory/core"
	"github.com/physgun/territory/engine"
	"github.com/physgun/territory/event"
	"github.com/physgun/territory/manifest"
	"github.com/physgun/territory/status"
	"github.com/physgun/territory/vmath"
)

// gesture tracks an in-progress mouse drag or resize
type gesture struct {
	active    bool
	territory core.Entity
	kind      component.MoveKind
	origin    component.RectKit // Expanse at press time
	pressX    int
	pressY    int
	// Border edges grabbed for a resize
	left, right, top, bottom bool
}

type app struct {
	screen tcell.Screen
	world  *engine.World
	win    core.Entity

	width, height int
	grab          gesture
	mouseX        int
	mouseY        int
	lastOutcome   string
}

func newApp(settings config.Settings) (*app, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return newAppWithScreen(screen, settings)
}

// newAppWithScreen wires the world onto an initialized screen; tests pass
// a simulation screen here
func newAppWithScreen(screen tcell.Screen, settings config.Settings) (*app, error) {
	screen.EnableMouse()

	a := &app{
		screen: screen,
		world:  engine.NewWorld(settings),
	}
	a.width, a.height = screen.Size()

	manifest.RegisterSystems()
	if err := manifest.AttachSystems(a.world); err != nil {
		screen.Fini()
		return nil, err
	}

	a.win = a.world.CreateWindow(float64(a.width), float64(a.height))

	// Two starter boxes, side by side around the window center
	q := a.world.Resources.Events
	w, h := float64(a.width), float64(a.height)
	event.EmitSpawnRequest(q, a.win,
		component.KitFromWorldRel(core.NewRect(-0.3, -0.2, -0.05, 0.2), w, h),
		false, 0)
	event.EmitSpawnRequest(q, a.win,
		component.KitFromWorldRel(core.NewRect(0.05, -0.2, 0.3, 0.2), w, h),
		false, 0)

	return a, nil
}

func (a *app) handleResize() {
	newW, newH := a.screen.Size()
	if newW == a.width && newH == a.height {
		return
	}
	a.width, a.height = newW, newH
	a.world.SetWindowSize(a.win, float64(newW), float64(newH))

	// The remembered cursor may now point past the terminal edge
	a.mouseX = int(vmath.Clamp(float64(a.mouseX), 0, float64(newW-1)))
	a.mouseY = int(vmath.Clamp(float64(a.mouseY), 0, float64(newH-1)))

	// Re-anchor every box from its normalized world rect so the layout
	// scales with the terminal
	a.world.RunSafe(func() {
		a.world.Territories.Each(func(e core.Entity, t *component.Territory) {
			rel := t.Expanse.WorldRel
			t.Expanse.SetWorldRel(rel, float64(newW), float64(newH))
		})
	})
}

// territoryAt hit-tests the cell grid in top-down draw order
func (a *app) territoryAt(x, y int) (core.Entity, *component.Territory, bool) {
	var hitE core.Entity
	var hitT *component.Territory
	p := core.V(float64(x)+0.5, float64(y)+0.5)
	a.world.RunSafe(func() {
		a.world.Territories.Each(func(e core.Entity, t *component.Territory) {
			if t.Expanse.Screen.Contains(p) {
				hitE, hitT = e, t
			}
		})
	})
	return hitE, hitT, hitT != nil
}

// onBorder reports which box edges the cell sits on
func onBorder(rect core.Rect, x, y int) (left, right, top, bottom bool) {
	cellX, cellY := float64(x), float64(y)
	left = math.Abs(cellX-rect.Min.X) < 1.0
	right = math.Abs(cellX-(rect.Max.X-1)) < 1.0
	top = math.Abs(cellY-rect.Min.Y) < 1.0
	bottom = math.Abs(cellY-(rect.Max.Y-1)) < 1.0
	return
}

func (a *app) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	a.mouseX, a.mouseY = x, y
	buttons := ev.Buttons()

	switch {
	case buttons&tcell.Button1 != 0 && !a.grab.active:
		e, t, ok := a.territoryAt(x, y)
		if !ok {
			return
		}
		a.grab = gesture{
			active:    true,
			territory: e,
			origin:    t.Expanse,
			pressX:    x,
			pressY:    y,
		}
		l, r, tp, b := onBorder(t.Expanse.Screen, x, y)
		if l || r || tp || b {
			a.grab.kind = component.KindResize
			a.grab.left, a.grab.right, a.grab.top, a.grab.bottom = l, r, tp, b
		} else {
			a.grab.kind = component.KindDrag
		}

	case buttons&tcell.Button1 != 0 && a.grab.active:
		a.pushProposal(x, y)

	case buttons == tcell.ButtonNone && a.grab.active:
		a.pushProposal(x, y)
		a.grab = gesture{}
	}
}

// pushProposal converts the current mouse position into a move request
func (a *app) pushProposal(x, y int) {
	dx := float64(x - a.grab.pressX)
	dy := float64(y - a.grab.pressY)
	if vmath.NearZero(dx) && vmath.NearZero(dy) {
		return
	}
	w, h := float64(a.width), float64(a.height)

	var req component.MoveRequest
	if a.grab.kind == component.KindDrag {
		req = component.DragRequestFrom(a.grab.territory, a.grab.origin, dx, dy, w, h)
	} else {
		var dMin, dMax core.Vec2
		if a.grab.left {
			dMin.X = dx
		}
		if a.grab.right {
			dMax.X = dx
		}
		if a.grab.top {
			dMin.Y = dy
		}
		if a.grab.bottom {
			dMax.Y = dy
		}
		req = component.ResizeRequestFrom(a.grab.territory, a.grab.origin, dMin, dMax, w, h)
		// Keep boxes drawable: a frame needs at least a 2x2 cell footprint
		if req.Proposed.Screen.Width() < 2 || req.Proposed.Screen.Height() < 2 {
			return
		}
	}
	a.world.PushMoveRequest(req)
}

func (a *app) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return false
	}
	if ev.Key() != tcell.KeyRune {
		return true
	}

	q := a.world.Resources.Events
	switch ev.Rune() {
	case 'q':
		return false
	case 'n':
		// Zero expanse means the spawn system applies the default size
		event.EmitSpawnRequest(q, a.win, component.RectKit{}, false, a.world.Cycle())
	case 'x':
		if e, _, ok := a.territoryAt(a.mouseX, a.mouseY); ok {
			event.EmitDespawnRequest(q, e, a.world.Cycle())
		}
	case 'l':
		if _, t, ok := a.territoryAt(a.mouseX, a.mouseY); ok {
			a.world.RunSafe(func() {
				t.Locked = !t.Locked
			})
		}
	}
	return true
}

func (a *app) drainOutcomes() {
	for _, ev := range a.world.Resources.Outcomes.Consume() {
		switch p := ev.Payload.(type) {
		case *event.MoveOutcomePayload:
			a.lastOutcome = fmt.Sprintf("territory %d: %s %s",
				p.Territory, p.Kind, p.Outcome)
			event.ReleaseMoveOutcome(p)
		case event.ModeChangePayload:
			a.lastOutcome = fmt.Sprintf("mode: %s",
				engine.LayoutMode(p.To))
		}
	}
}

func (a *app) draw() {
	a.screen.Clear()

	a.world.RunSafe(func() {
		a.world.Territories.Each(func(e core.Entity, t *component.Territory) {
			a.drawBox(e, t)
		})
	})

	mode := a.world.Resources.Mode
	st := a.world.Resources.Status
	bar := fmt.Sprintf(" %s | boxes:%d committed:%d conflicts:%d | %s | n:new x:close l:lock q:quit",
		mode,
		a.world.Territories.Len(),
		st.Get(status.KeyCommitted),
		st.Get(status.KeyConflictsResolved),
		a.lastOutcome)
	barStyle := tcell.StyleDefault.Background(tcell.ColorDarkBlue).Foreground(tcell.ColorWhite)
	for i := 0; i < a.width; i++ {
		r := ' '
		if i < len(bar) {
			r = rune(bar[i])
		}
		a.screen.SetContent(i, a.height-1, r, nil, barStyle)
	}

	a.screen.Show()
}

func (a *app) drawBox(e core.Entity, t *component.Territory) {
	rect := t.Expanse.Screen
	x0, y0 := int(rect.Min.X), int(rect.Min.Y)
	x1, y1 := int(rect.Max.X)-1, int(rect.Max.Y)-1
	if x1 <= x0 || y1 <= y0 {
		return
	}

	style := tcell.StyleDefault.Foreground(tcell.ColorTeal)
	if t.Locked {
		style = tcell.StyleDefault.Foreground(tcell.ColorRed)
	}
	fill := tcell.StyleDefault.Foreground(tcell.ColorGray)

	for x := x0 + 1; x < x1; x++ {
		a.screen.SetContent(x, y0, '─', nil, style)
		a.screen.SetContent(x, y1, '─', nil, style)
		for y := y0 + 1; y < y1; y++ {
			a.screen.SetContent(x, y, '·', nil, fill)
		}
	}
	for y := y0 + 1; y < y1; y++ {
		a.screen.SetContent(x0, y, '│', nil, style)
		a.screen.SetContent(x1, y, '│', nil, style)
	}
	a.screen.SetContent(x0, y0, '┌', nil, style)
	a.screen.SetContent(x1, y0, '┐', nil, style)
	a.screen.SetContent(x0, y1, '└', nil, style)
	a.screen.SetContent(x1, y1, '┘', nil, style)

	label := fmt.Sprintf("#%d", e)
	if t.Locked {
		label += " locked"
	}
	for i, r := range label {
		if x0+2+i >= x1 {
			break
		}
		a.screen.SetContent(x0+2+i, y0, r, nil, style)
	}
}

func (a *app) run() {
	ticker := time.NewTicker(33 * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- a.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !a.handleKey(ev) {
					return
				}
			case *tcell.EventMouse:
				a.handleMouse(ev)
			case *tcell.EventResize:
				a.handleResize()
			}

		case <-ticker.C:
			a.world.Update()
			a.drainOutcomes()
			a.draw()
		}
	}
}

func main() {
	settings, err := config.Load()
	if err != nil {
		log.Printf("config: %v, using defaults", err)
		settings = config.DefaultSettings()
	}

	a, err := newApp(settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer a.screen.Fini()

	a.run()
}
