package renderer

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/stride/internal/engine/buffer"
	"github.com/dshills/stride/internal/engine/cursor"
)

// Draw renders the visible lines and the status line.
func (v *Viewer) Draw() {
	v.screen.Clear()
	w, h := v.screen.Size()

	doc := v.sess.Document()
	sels := v.sess.Selections()
	cursors := v.sess.Cursors()
	cols := v.sess.Columns()
	gw := v.gutterWidth()

	styleAt := func(p buffer.Position) tcell.Style {
		for _, c := range cursors {
			if c == p {
				return v.styles.Cursor
			}
		}
		for _, sel := range sels {
			if !sel.IsEmpty() && !p.Before(sel.Start()) && p.Before(sel.End()) {
				return v.styles.Selection
			}
		}
		return v.styles.Text
	}

	top, _ := v.vp.VisibleLineRange()
	for y := 0; y < v.vp.Height && y < h-1; y++ {
		line := top + y
		if line >= doc.LineCount() {
			v.screen.SetContent(0, y, '~', nil, v.styles.Gutter)
			continue
		}

		num := strconv.Itoa(line + 1)
		v.putString(gw-1-len(num), y, num, v.styles.Gutter)

		col, c := 0, 0
		for _, r := range doc.LineText(line) {
			next := cols.Advance(col, r)
			style := styleAt(buffer.Position{Line: line, Character: c})
			if r == '\t' {
				for x := col; x < next; x++ {
					v.screen.SetContent(gw+x, y, ' ', nil, style)
				}
			} else {
				v.screen.SetContent(gw+col, y, r, nil, style)
			}
			col = next
			c++
		}

		// The cell past the last character stands for the line break.
		if style := styleAt(buffer.Position{Line: line, Character: c}); style != v.styles.Text {
			v.screen.SetContent(gw+col, y, ' ', nil, style)
		}
	}

	v.drawStatus(w, h-1, sels)
	v.screen.Show()
}

func (v *Viewer) drawStatus(width, y int, sels []cursor.Selection) {
	if y < 0 {
		return
	}
	for x := 0; x < width; x++ {
		v.screen.SetContent(x, y, ' ', nil, v.styles.Status)
	}

	var text string
	switch {
	case v.prompt != nil:
		text = "goto: " + *v.prompt
	default:
		text = fmt.Sprintf(" %s | %d selection(s)", v.sess.Behavior().Name(), len(sels))
		if len(sels) > 0 {
			text += " | " + sels[0].String()
		}
		if v.count > 0 {
			text += " | " + strconv.Itoa(v.count)
		}
		if v.message != "" {
			text += " | " + v.message
		}
	}
	v.putString(0, y, text, v.styles.Status)
}

func (v *Viewer) putString(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
