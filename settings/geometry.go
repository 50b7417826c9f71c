package settings

// Default window size of the desktop application.
const (
	DefaultWidth  = 120
	DefaultHeight = 600
)

// Geometry is the persisted window state.
type Geometry struct {
	Width     int
	Height    int
	Maximized bool
}

// Geometry serves a desktop front end; the CLI does not read it.
// It returns the stored window state, using the defaults for missing
// or non-positive sizes.
func (s *Store) Geometry() Geometry {
	g := Geometry{
		Width:     s.Int(KeyWidth, DefaultWidth),
		Height:    s.Int(KeyHeight, DefaultHeight),
		Maximized: s.Bool(KeyMaximized, false),
	}
	if g.Width <= 0 {
		g.Width = DefaultWidth
	}
	if g.Height <= 0 {
		g.Height = DefaultHeight
	}
	return g
}

func (s *Store) SetGeometry(g Geometry) {
	s.SetInt(KeyWidth, g.Width)
	s.SetInt(KeyHeight, g.Height)
	s.SetBool(KeyMaximized, g.Maximized)
}
