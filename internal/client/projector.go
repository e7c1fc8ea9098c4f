package client

import (
	"time"

	"bandroom/internal/domain"
	"bandroom/internal/pkg/slots"
)

type CellState string

const (
	CellEmpty    CellState = "empty"
	CellSelected CellState = "selected"
	CellReserved CellState = "reserved"
)

// Cell is what one (date, slot) position shows.
type Cell struct {
	Date          time.Time
	Slot          slots.Slot
	State         CellState
	IsMine        bool
	BandID        int64
	BandName      string
	Color         string
	ReservationID int64
}

// Key identifies the cell, see slots.Key.
func (c Cell) Key() string {
	return slots.Key(c.Date, c.Slot)
}

// Grid holds one row per catalog slot and one column per date.
type Grid struct {
	Dates []time.Time
	Slots []slots.Slot
	Cells [][]Cell
}

// Index maps reservations by cell key. Stored times may use either clock
// form, so they are normalised through the catalog parser.
func Index(reservations []domain.ReservationView) map[string]domain.ReservationView {
	out := make(map[string]domain.ReservationView, len(reservations))
	for _, r := range reservations {
		d, err := slots.ParseDate(r.Date)
		if err != nil {
			continue
		}
		s, err := slots.Parse(r.StartTime)
		if err != nil {
			continue
		}
		out[slots.Key(d, s)] = r
	}
	return out
}

// ProjectCell decides the state of a single cell: reserved beats selected,
// selected beats empty. band may be nil when no band is chosen.
func ProjectCell(date time.Time, slot slots.Slot, reserved map[string]domain.ReservationView, band *domain.Band, pending *Selection) Cell {
	c := Cell{Date: date, Slot: slot, State: CellEmpty}

	if r, ok := reserved[slots.Key(date, slot)]; ok {
		c.State = CellReserved
		c.ReservationID = r.ID
		c.BandID = r.BandID
		c.BandName = r.BandName
		c.Color = r.Color
		c.IsMine = band != nil && r.BandID == band.ID
		return c
	}

	if pending != nil && pending.Has(date, slot) {
		c.State = CellSelected
		c.IsMine = true
		if band != nil {
			c.BandID = band.ID
			c.BandName = band.Name
			c.Color = band.Color
		}
	}
	return c
}

// Project builds the whole grid from scratch. Nothing is cached between calls.
func Project(dates []time.Time, reservations []domain.ReservationView, band *domain.Band, pending *Selection) Grid {
	reserved := Index(reservations)
	catalog := slots.Catalog()

	g := Grid{Dates: dates, Slots: catalog, Cells: make([][]Cell, len(catalog))}
	for i, s := range catalog {
		row := make([]Cell, len(dates))
		for j, d := range dates {
			row[j] = ProjectCell(d, s, reserved, band, pending)
		}
		g.Cells[i] = row
	}
	return g
}
