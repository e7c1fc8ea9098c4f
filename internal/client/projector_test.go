package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bandroom/internal/domain"
	"bandroom/internal/pkg/slots"
)

var (
	sunday = time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)
	ten    = slots.Slot{Hour: 10}
	late   = slots.Slot{Hour: 24, Minute: 30}
	mine   = &domain.Band{ID: 2, Name: "Mine", Color: "#00f"}
)

func fixtureReservations() []domain.ReservationView {
	return []domain.ReservationView{
		{ID: 5, BandID: 2, BandName: "Mine", Color: "#00f", Date: "2024-01-07", StartTime: "10:00"},
		{ID: 6, BandID: 3, BandName: "Theirs", Color: "#f00", Date: "2024-01-07", StartTime: "10:30"},
		// legacy clock form for a past-midnight slot
		{ID: 7, BandID: 3, BandName: "Theirs", Color: "#f00", Date: "2024-01-07", StartTime: "00:30:00"},
	}
}

func TestProjectCell_Precedence(t *testing.T) {
	reserved := Index(fixtureReservations())
	pending := NewSelection()
	pending.Toggle(sunday, ten)
	pending.Toggle(sunday, slots.Slot{Hour: 11})

	c := ProjectCell(sunday, ten, reserved, mine, pending)
	assert.Equal(t, CellReserved, c.State, "reserved wins over a stale pick")
	assert.True(t, c.IsMine)
	assert.Equal(t, int64(5), c.ReservationID)

	c = ProjectCell(sunday, slots.Slot{Hour: 10, Minute: 30}, reserved, mine, pending)
	assert.Equal(t, CellReserved, c.State)
	assert.False(t, c.IsMine)
	assert.Equal(t, "Theirs", c.BandName)

	c = ProjectCell(sunday, slots.Slot{Hour: 11}, reserved, mine, pending)
	assert.Equal(t, CellSelected, c.State)
	assert.True(t, c.IsMine)
	assert.Equal(t, "#00f", c.Color)

	c = ProjectCell(sunday, slots.Slot{Hour: 12}, reserved, mine, pending)
	assert.Equal(t, CellEmpty, c.State)
	assert.False(t, c.IsMine)
}

func TestProjectCell_PastMidnightStaysOnDate(t *testing.T) {
	reserved := Index(fixtureReservations())

	c := ProjectCell(sunday, late, reserved, mine, nil)
	assert.Equal(t, CellReserved, c.State)

	c = ProjectCell(sunday.AddDate(0, 0, 1), late, reserved, mine, nil)
	assert.Equal(t, CellEmpty, c.State)
}

func TestProjectCell_NoBandIsNeverMine(t *testing.T) {
	c := ProjectCell(sunday, ten, Index(fixtureReservations()), nil, nil)
	assert.Equal(t, CellReserved, c.State)
	assert.False(t, c.IsMine)
}

func TestProject_Shape(t *testing.T) {
	dates := slots.Week(sunday)
	g := Project(dates, fixtureReservations(), mine, NewSelection())

	require.Len(t, g.Cells, 33)
	for _, row := range g.Cells {
		require.Len(t, row, 7)
	}
	assert.Equal(t, CellReserved, g.Cells[2][0].State)
	assert.Equal(t, "2024-01-07_10:00", g.Cells[2][0].Key())
	assert.Equal(t, CellEmpty, g.Cells[2][1].State)
}

func TestSelection(t *testing.T) {
	s := NewSelection()

	assert.True(t, s.Toggle(sunday, slots.Slot{Hour: 12}))
	assert.True(t, s.Toggle(sunday, ten))
	assert.True(t, s.Toggle(sunday, late))
	assert.Equal(t, []string{"2024-01-07_10:00", "2024-01-07_12:00", "2024-01-07_24:30"}, s.Keys())

	assert.False(t, s.Toggle(sunday, ten))
	assert.False(t, s.Has(sunday, ten))
	assert.Equal(t, 2, s.Len())

	s.Clear()
	assert.Zero(t, s.Len())
}

func TestGroupByWeek(t *testing.T) {
	groups, err := GroupByWeek([]string{
		"2024-01-15_10:00",
		"2024-01-07_10:00",
		"2024-01-07_00:30",
		"2024-01-07_24:30",
		"2024-01-07_10:00",
		"2024-01-13_09:00",
	})
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, "2024-01-07", groups[0].WeekStart.Format(slots.DateLayout))
	assert.Equal(t, []string{"2024-01-07_10:00", "2024-01-07_24:30", "2024-01-13_09:00"}, groups[0].Keys)
	assert.Equal(t, "2024-01-14", groups[1].WeekStart.Format(slots.DateLayout))
	assert.Equal(t, []string{"2024-01-15_10:00"}, groups[1].Keys)

	_, err = GroupByWeek([]string{"2024-01-07_10:15"})
	assert.ErrorIs(t, err, slots.ErrNotInCatalog)
}
