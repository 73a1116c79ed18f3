package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halalan-ph/candidate-overview/internal/model"
)

func TestNavBar_Select(t *testing.T) {
	test.NewApp()

	nav := NewNavBar("Positions")
	nav.SetPositions([]string{model.PositionPresident, model.PositionSenator, "Mayor"})

	var selected []string
	nav.SetOnSelect(func(position string) {
		selected = append(selected, position)
	})

	nav.Select(model.PositionSenator)
	assert.Equal(t, []string{model.PositionSenator}, selected)
	assert.Equal(t, model.PositionSenator, nav.Selected())

	// Unknown positions are ignored
	nav.Select("Barangay Captain")
	assert.Equal(t, []string{model.PositionSenator}, selected)
}

func TestNavBar_TapSameRowTwice(t *testing.T) {
	test.NewApp()

	nav := NewNavBar("Positions")
	nav.SetPositions([]string{model.PositionPresident, model.PositionSenator})

	var selected []string
	nav.SetOnSelect(func(position string) {
		selected = append(selected, position)
	})

	require.Len(t, nav.items, 2)
	test.Tap(nav.items[1])
	test.Tap(nav.items[1])
	assert.Equal(t, []string{model.PositionSenator, model.PositionSenator}, selected)
}

func TestNavBar_RowColors(t *testing.T) {
	test.NewApp()

	nav := NewNavBar("Positions")
	nav.SetPositions([]string{model.PositionPresident, model.PositionSenator})
	first, second := nav.items[0], nav.items[1]

	assert.Equal(t, Transparent, first.backgroundColor())

	first.MouseIn(nil)
	assert.Equal(t, ColorNavHover, first.backgroundColor())
	first.MouseOut()
	assert.Equal(t, Transparent, first.backgroundColor())

	nav.SetSelected(model.PositionSenator)
	assert.Equal(t, ColorNavSelected, second.backgroundColor())
	assert.Equal(t, Transparent, first.backgroundColor())
	assert.Equal(t, ColorNavText, nav.title.Color)
}

func TestNavBar_SetSelectedIsSilent(t *testing.T) {
	test.NewApp()

	nav := NewNavBar("Positions")
	nav.SetPositions([]string{model.PositionPresident, model.PositionSenator})

	called := false
	nav.SetOnSelect(func(string) { called = true })

	nav.SetSelected(model.PositionPresident)
	assert.False(t, called)
	assert.Equal(t, model.PositionPresident, nav.Selected())
}

func TestNavBar_SetPositionsClearsStaleSelection(t *testing.T) {
	test.NewApp()

	nav := NewNavBar("Positions")
	nav.SetPositions([]string{model.PositionPresident, "Mayor"})
	nav.SetSelected("Mayor")

	nav.SetPositions([]string{model.PositionPresident})
	assert.Empty(t, nav.Selected())
	assert.Equal(t, []string{model.PositionPresident}, nav.Positions())
}

func TestNavBar_SetPositionsKeepsSelection(t *testing.T) {
	test.NewApp()

	nav := NewNavBar("Positions")
	nav.SetPositions([]string{model.PositionPresident, "Mayor"})
	nav.SetSelected("Mayor")

	nav.SetPositions([]string{"Mayor", model.PositionSenator})
	assert.Equal(t, "Mayor", nav.Selected())
	assert.True(t, nav.items[0].selected)
}

func TestNavBar_PositionsIsCopy(t *testing.T) {
	test.NewApp()

	positions := []string{model.PositionPresident}
	nav := NewNavBar("Positions")
	nav.SetPositions(positions)
	positions[0] = "Mayor"

	got := nav.Positions()
	got[0] = "Governor"
	assert.Equal(t, []string{model.PositionPresident}, nav.Positions())
}
