package component

// Window is a bounded rectangular container for territories. Width and
// height are owned by the OS/front-end collaborator and may change between
// update cycles; the layout engine only reads them.
type Window struct {
	Width, Height float64
}

// Valid reports whether the window has usable dimensions. Transform math
// is skipped entirely for invalid windows.
func (w Window) Valid() bool {
	return w.Width > 0 && w.Height > 0
}
