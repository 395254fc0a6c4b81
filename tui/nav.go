// Package tui provides a Bubble Tea terminal UI for browsing a parsed
// save file: its container metadata and the decoded value tree.
package tui

// frame is one level of the value tree the inspector is showing.
type frame struct {
	title  string
	rows   []row
	cursor int
	offset int
}

// NavStack tracks the descent into nested tables so backspace can climb
// back out, and renders the breadcrumb path for the status bar.
type NavStack struct {
	frames []frame
}

// NewNavStack creates a stack rooted at the given frame.
func NewNavStack(root frame) *NavStack {
	return &NavStack{frames: []frame{root}}
}

// Top returns the current frame.
func (n *NavStack) Top() *frame {
	return &n.frames[len(n.frames)-1]
}

// Push descends into a nested table.
func (n *NavStack) Push(f frame) {
	n.frames = append(n.frames, f)
}

// Pop climbs back out one level. The root frame is never popped.
func (n *NavStack) Pop() bool {
	if len(n.frames) <= 1 {
		return false
	}
	n.frames = n.frames[:len(n.frames)-1]
	return true
}

// Depth reports how many levels deep the inspector is, root included.
func (n *NavStack) Depth() int {
	return len(n.frames)
}

// Path renders the breadcrumb, e.g. "save / GameState / Resources".
func (n *NavStack) Path() string {
	path := ""
	for i, f := range n.frames {
		if i > 0 {
			path += " / "
		}
		path += f.title
	}
	return path
}
