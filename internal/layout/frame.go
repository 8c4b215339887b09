package layout

import "github.com/interpretive-systems/codetrack/internal/appstate"

// Side marks a pane's position in the dual-pane layout.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

// Pane is one region of the screen.
type Pane struct {
	Side         Side
	WidthPercent int // 0 means full width
	Flex         int
	Content      any // view currently parented here, nil for the state view
}

// Frame is the visual tree the layout applier works on: a secondary pane
// holding the persistent list and a primary pane holding the active screen.
type Frame struct {
	Secondary Pane
	Primary   Pane
}

// Dual reports whether the dual-pane markers are set.
func (f *Frame) Dual() bool {
	return f.Secondary.Side == SideLeft && f.Primary.Side == SideRight
}

// Mount parents content into p, detaching it from the other pane first.
func (f *Frame) Mount(p *Pane, content any) {
	if f.Secondary.Content == content {
		f.Secondary.Content = nil
	}
	if f.Primary.Content == content {
		f.Primary.Content = nil
	}
	p.Content = content
}

// Visible reports whether content is parented into a displayed pane.
func (f *Frame) Visible(content any) bool {
	if content == nil {
		return false
	}
	if f.Dual() && f.Secondary.Content == content {
		return true
	}
	return f.Primary.Content == content
}

// Split returns the secondary and primary width fractions, in tenths, for
// a splitter location. They always sum to ten.
func Split(location int) (secondary, primary int) {
	secondary = appstate.ClampSplitter(location)
	return secondary, 10 - secondary
}

// ApplySplitter sets width and flex weight of the marked panes. Calling it
// repeatedly with the same location leaves the frame unchanged.
func (f *Frame) ApplySplitter(location int) {
	left, right := Split(location)
	for _, p := range []*Pane{&f.Secondary, &f.Primary} {
		switch p.Side {
		case SideLeft:
			p.WidthPercent, p.Flex = left*10, left
		case SideRight:
			p.WidthPercent, p.Flex = right*10, right
		}
	}
}

func (f *Frame) setDual() {
	f.Secondary.Side = SideLeft
	f.Primary.Side = SideRight
}

func (f *Frame) clearDual() {
	for _, p := range []*Pane{&f.Secondary, &f.Primary} {
		p.Side = SideNone
		p.WidthPercent, p.Flex = 0, 0
	}
}
