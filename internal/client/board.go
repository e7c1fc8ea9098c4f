package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"bandroom/internal/domain"
	"bandroom/internal/pkg/slots"
)

// Backend is the part of the API a Board needs.
type Backend interface {
	Reservations(ctx context.Context, from, to time.Time) ([]domain.ReservationView, error)
	CreateReservation(ctx context.Context, bandID int64, date time.Time, s slots.Slot) (*domain.Reservation, error)
	DeleteReservation(ctx context.Context, id, bandID int64) error
}

type ClickResult string

const (
	ClickDeleted    ClickResult = "deleted"
	ClickKept       ClickResult = "kept"
	ClickRefused    ClickResult = "refused"
	ClickSelected   ClickResult = "selected"
	ClickDeselected ClickResult = "deselected"
)

var (
	ErrNoBand       = errors.New("choose a band first")
	ErrNotYours     = errors.New("this slot is reserved by another band")
	ErrGateClosed   = errors.New("reservations are not open yet")
	ErrNothingToAdd = errors.New("no slots selected")
)

// Board is one user's view of a week: the last server answer plus pending
// picks. The grid is always re-derived from those two.
type Board struct {
	backend      Backend
	band         *domain.Band
	weekStart    time.Time
	reservations []domain.ReservationView
	pending      *Selection
	gate         *Countdown
}

func NewBoard(backend Backend, weekStart time.Time) *Board {
	return &Board{
		backend:   backend,
		weekStart: slots.WeekStart(weekStart),
		pending:   NewSelection(),
	}
}

// SetBand switches the acting band. Picks made for another band are dropped.
func (b *Board) SetBand(band *domain.Band) {
	if b.band == nil || band == nil || b.band.ID != band.ID {
		b.pending.Clear()
	}
	b.band = band
}

// SetWeek moves to the week containing d and forgets pending picks.
func (b *Board) SetWeek(d time.Time) {
	b.weekStart = slots.WeekStart(d)
	b.pending.Clear()
}

// SetGate makes Submit refuse while the countdown is still running.
func (b *Board) SetGate(c *Countdown) {
	b.gate = c
}

func (b *Board) Dates() []time.Time {
	return slots.Week(b.weekStart)
}

func (b *Board) Pending() *Selection {
	return b.pending
}

// Refresh replaces the local copy with the server's reservations for the week.
// Picks the server now shows as reserved are dropped from the selection.
func (b *Board) Refresh(ctx context.Context) error {
	dates := b.Dates()
	rows, err := b.backend.Reservations(ctx, dates[0], dates[len(dates)-1])
	if err != nil {
		return fmt.Errorf("load reservations: %w", err)
	}
	b.reservations = rows

	taken := Index(rows)
	for _, k := range b.pending.Keys() {
		if _, ok := taken[k]; ok {
			b.pending.RemoveKey(k)
		}
	}
	return nil
}

func (b *Board) Grid() Grid {
	return Project(b.Dates(), b.reservations, b.band, b.pending)
}

func (b *Board) Cell(date time.Time, slot slots.Slot) Cell {
	return ProjectCell(date, slot, Index(b.reservations), b.band, b.pending)
}

// Click applies the cell's click behaviour. confirm is asked before deleting
// one of the band's own reservations; a nil confirm means yes.
func (b *Board) Click(ctx context.Context, date time.Time, slot slots.Slot, confirm func(Cell) bool) (ClickResult, error) {
	if b.band == nil {
		return "", ErrNoBand
	}

	c := b.Cell(date, slot)
	switch c.State {
	case CellReserved:
		if !c.IsMine {
			return ClickRefused, ErrNotYours
		}
		if confirm != nil && !confirm(c) {
			return ClickKept, nil
		}
		err := b.backend.DeleteReservation(ctx, c.ReservationID, b.band.ID)
		if rerr := b.Refresh(ctx); rerr != nil {
			zap.L().Warn("refresh after delete failed", zap.Error(rerr))
		}
		if err != nil {
			return ClickKept, err
		}
		return ClickDeleted, nil
	case CellSelected:
		b.pending.Remove(date, slot)
		return ClickDeselected, nil
	default:
		b.pending.Toggle(date, slot)
		return ClickSelected, nil
	}
}

// BatchResult reports a Submit. Failed is the key that stopped the batch.
type BatchResult struct {
	Created []domain.Reservation
	Failed  string
	Err     error
}

// Submit sends pending picks one create at a time in chronological order.
// It stops at the first rejection: earlier successes stay reserved and leave
// the selection, the failed and unsent picks stay pending. The board is
// re-synchronised with the server afterwards either way, which also drops a
// failed pick that another band now holds.
func (b *Board) Submit(ctx context.Context) (*BatchResult, error) {
	if b.band == nil {
		return nil, ErrNoBand
	}
	if b.pending.Len() == 0 {
		return nil, ErrNothingToAdd
	}
	if b.gate != nil && !b.gate.Open() {
		return nil, ErrGateClosed
	}

	res := &BatchResult{}
	for _, k := range b.pending.Keys() {
		date, slot, err := slots.ParseKey(k)
		if err != nil {
			res.Failed, res.Err = k, err
			break
		}
		r, err := b.backend.CreateReservation(ctx, b.band.ID, date, slot)
		if err != nil {
			res.Failed, res.Err = k, err
			break
		}
		res.Created = append(res.Created, *r)
		b.pending.Remove(date, slot)
	}

	if err := b.Refresh(ctx); err != nil {
		return res, err
	}
	return res, nil
}
