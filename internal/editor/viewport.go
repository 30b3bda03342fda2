package editor

// Revealer is a view that can scroll to show a line.
type Revealer interface {
	Reveal(line, lineCount int)
}

// Viewport is a fixed-height window onto the document. It implements
// motion.View and Revealer.
type Viewport struct {
	Top       int
	Height    int
	ScrollOff int
}

// NewViewport creates a viewport showing height lines from the top.
func NewViewport(height, scrollOff int) *Viewport {
	return &Viewport{Height: max(height, 1), ScrollOff: max(scrollOff, 0)}
}

// VisibleLineRange returns the first and last visible line, inclusive.
func (v *Viewport) VisibleLineRange() (int, int) {
	return v.Top, v.Top + max(v.Height, 1) - 1
}

// Reveal scrolls so that line is visible with ScrollOff lines of context
// where the document allows.
func (v *Viewport) Reveal(line, lineCount int) {
	height := max(v.Height, 1)
	off := min(v.ScrollOff, (height-1)/2)

	if line-off < v.Top {
		v.Top = line - off
	}
	if line+off > v.Top+height-1 {
		v.Top = line + off - height + 1
	}

	v.Top = min(v.Top, max(lineCount-height, 0))
	v.Top = max(v.Top, 0)
}
