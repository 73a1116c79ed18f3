package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// NavBar is the side navigation listing the positions in display order.
// Its positions always come from the view model snapshot that produced
// the rendered groups.
type NavBar struct {
	positions []string
	selected  string

	title     *canvas.Text
	items     []*navItem
	list      *fyne.Container
	container *fyne.Container

	onSelect func(position string)
}

// NewNavBar creates an empty navigation bar
func NewNavBar(title string) *NavBar {
	nb := &NavBar{}

	nb.title = canvas.NewText(title, ColorNavText)
	nb.title.TextStyle = fyne.TextStyle{Bold: true}

	nb.list = container.NewVBox()

	bg := canvas.NewRectangle(ColorNavBackground)
	bg.SetMinSize(fyne.NewSize(NavWidth, 0))
	nb.container = container.NewStack(bg, container.NewBorder(
		container.NewPadded(nb.title), nil, nil, nil,
		container.NewVScroll(nb.list),
	))
	return nb
}

// SetOnSelect sets the callback invoked when the user picks a position
func (nb *NavBar) SetOnSelect(onSelect func(position string)) {
	nb.onSelect = onSelect
}

// SetTitle updates the heading text
func (nb *NavBar) SetTitle(title string) {
	nb.title.Text = title
	nb.title.Refresh()
}

// SetPositions replaces the listed positions. A selection that no longer
// exists is cleared.
func (nb *NavBar) SetPositions(positions []string) {
	nb.positions = append([]string(nil), positions...)
	if nb.indexOf(nb.selected) < 0 {
		nb.selected = ""
	}

	nb.items = make([]*navItem, 0, len(nb.positions))
	objects := make([]fyne.CanvasObject, 0, len(nb.positions))
	for _, position := range nb.positions {
		item := newNavItem(position, nb.Select)
		item.setSelected(position == nb.selected)
		nb.items = append(nb.items, item)
		objects = append(objects, item)
	}
	nb.list.Objects = objects
	nb.list.Refresh()
}

// Positions returns the listed positions
func (nb *NavBar) Positions() []string {
	return append([]string(nil), nb.positions...)
}

// Selected returns the highlighted position
func (nb *NavBar) Selected() string {
	return nb.selected
}

// SetSelected highlights position without invoking the callback
func (nb *NavBar) SetSelected(position string) {
	if nb.indexOf(position) < 0 {
		return
	}
	nb.selected = position
	for _, item := range nb.items {
		item.setSelected(item.position == position)
	}
}

// Select highlights position and invokes the callback as if tapped.
// Selecting the highlighted position again invokes the callback again.
func (nb *NavBar) Select(position string) {
	if nb.indexOf(position) < 0 {
		return
	}
	nb.SetSelected(position)
	if nb.onSelect != nil {
		nb.onSelect(position)
	}
}

// Container returns the canvas object for the sidebar
func (nb *NavBar) Container() *fyne.Container {
	return nb.container
}

func (nb *NavBar) indexOf(position string) int {
	if position == "" {
		return -1
	}
	for i, p := range nb.positions {
		if p == position {
			return i
		}
	}
	return -1
}

// navItem is one row of the navigation bar
type navItem struct {
	widget.BaseWidget

	position string
	selected bool
	hovered  bool
	onTap    func(position string)
}

func newNavItem(position string, onTap func(string)) *navItem {
	item := &navItem{position: position, onTap: onTap}
	item.ExtendBaseWidget(item)
	return item
}

func (n *navItem) setSelected(selected bool) {
	if n.selected == selected {
		return
	}
	n.selected = selected
	n.Refresh()
}

// Tapped is called when the row is clicked
func (n *navItem) Tapped(*fyne.PointEvent) {
	if n.onTap != nil {
		n.onTap(n.position)
	}
}

// MouseIn is called when a desktop pointer enters the row
func (n *navItem) MouseIn(*desktop.MouseEvent) {
	n.hovered = true
	n.Refresh()
}

// MouseMoved is called when a desktop pointer hovers over the row
func (n *navItem) MouseMoved(*desktop.MouseEvent) {}

// MouseOut is called when a desktop pointer leaves the row
func (n *navItem) MouseOut() {
	n.hovered = false
	n.Refresh()
}

func (n *navItem) backgroundColor() color.Color {
	switch {
	case n.selected:
		return ColorNavSelected
	case n.hovered:
		return ColorNavHover
	default:
		return Transparent
	}
}

// CreateRenderer creates the widget renderer
func (n *navItem) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(n.backgroundColor())
	label := canvas.NewText(n.position, ColorNavText)
	return &navItemRenderer{item: n, background: bg, label: label}
}

type navItemRenderer struct {
	item       *navItem
	background *canvas.Rectangle
	label      *canvas.Text
}

func (r *navItemRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	pad := theme.Padding() * 2
	textH := r.label.MinSize().Height
	r.label.Resize(fyne.NewSize(size.Width-2*pad, textH))
	r.label.Move(fyne.NewPos(pad, (size.Height-textH)/2))
}

func (r *navItemRenderer) MinSize() fyne.Size {
	return fyne.NewSize(NavWidth, NavItemHeight)
}

func (r *navItemRenderer) Refresh() {
	r.background.FillColor = r.item.backgroundColor()
	r.label.Text = r.item.position
	r.label.TextStyle = fyne.TextStyle{Bold: r.item.selected}
	r.background.Refresh()
	r.label.Refresh()
}

func (r *navItemRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.label}
}

func (r *navItemRenderer) Destroy() {}
