package ui

import (
	"math"

	"fyne.io/fyne/v2"
)

// ScaleForWindow returns the scale factor for a window of the given width.
// The design width maps to 1.0; the result is clamped to [MinScale, MaxScale]
// and then multiplied by the user scale from settings.
func ScaleForWindow(width float32, userScale float64) float32 {
	if width <= 0 {
		width = DesignWidth
	}
	if userScale <= 0 {
		userScale = 1
	}
	s := width / DesignWidth
	if s < MinScale {
		s = MinScale
	}
	if s > MaxScale {
		s = MaxScale
	}
	return s * float32(userScale)
}

// ColumnsForWidth returns how many cells of cellWidth separated by gap fit
// in available. At least one column is always returned.
func ColumnsForWidth(available, cellWidth, gap float32) int {
	if cellWidth <= 0 {
		return 1
	}
	cols := int(math.Floor(float64((available + gap) / (cellWidth + gap))))
	if cols < 1 {
		return 1
	}
	return cols
}

// RowsFor returns the number of rows needed for n items in cols columns
func RowsFor(n, cols int) int {
	if n <= 0 {
		return 0
	}
	if cols < 1 {
		cols = 1
	}
	return (n + cols - 1) / cols
}

// cardGridLayout places equally sized cards left to right, wrapping to as
// many columns as the container width allows. Like fyne's grid wrap it
// remembers the column count of the last layout pass for MinSize.
type cardGridLayout struct {
	cellSize fyne.Size
	gap      float32
	cols     int
}

func newCardGridLayout(cellSize fyne.Size, gap float32) *cardGridLayout {
	return &cardGridLayout{cellSize: cellSize, gap: gap, cols: 1}
}

// SetScale resizes the cells for a new scale factor
func (l *cardGridLayout) SetScale(scale float32) {
	l.cellSize = fyne.NewSize(CardWidth*scale, CardHeight*scale)
	l.gap = CardGap * scale
}

// Layout is called to pack all child objects into a specified size
func (l *cardGridLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	l.cols = ColumnsForWidth(size.Width, l.cellSize.Width, l.gap)

	i := 0
	for _, o := range objects {
		if !o.Visible() {
			continue
		}
		row, col := i/l.cols, i%l.cols
		x := float32(col) * (l.cellSize.Width + l.gap)
		y := float32(row) * (l.cellSize.Height + l.gap)
		o.Move(fyne.NewPos(x, y))
		o.Resize(l.cellSize)
		i++
	}
}

// MinSize is one cell wide and tall enough for all rows at the last column count
func (l *cardGridLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	visible := 0
	for _, o := range objects {
		if o.Visible() {
			visible++
		}
	}

	rows := RowsFor(visible, l.cols)
	if rows == 0 {
		return fyne.NewSize(l.cellSize.Width, 0)
	}
	h := float32(rows)*l.cellSize.Height + float32(rows-1)*l.gap
	return fyne.NewSize(l.cellSize.Width, h)
}
