package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"bandroom/internal/domain"
	"bandroom/internal/pkg/slots"
)

const adminPasswordHeader = "X-Admin-Password"

// API is a typed wrapper over the /api routes.
type API struct {
	http *HTTPClient
}

func NewAPI(baseURL string) *API {
	return &API{http: NewHTTPClient(baseURL)}
}

// WithAdminPassword makes every request carry the admin secret.
func (a *API) WithAdminPassword(pw string) *API {
	a.http.SetHeader(adminPasswordHeader, pw)
	return a
}

type GateStatus struct {
	IsOpen bool       `json:"isOpen"`
	OpenAt *time.Time `json:"openAt"`
}

func (a *API) Bands(ctx context.Context) ([]domain.Band, error) {
	var out []domain.Band
	err := a.http.do(ctx, http.MethodGet, "/api/bands", nil, &out)
	return out, err
}

func (a *API) CreateBand(ctx context.Context, name, color string) (*domain.Band, error) {
	var out domain.Band
	body := map[string]string{"name": name, "color": color}
	if err := a.http.do(ctx, http.MethodPost, "/api/bands", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Reservations lists the inclusive date range [from, to].
func (a *API) Reservations(ctx context.Context, from, to time.Time) ([]domain.ReservationView, error) {
	q := url.Values{}
	q.Set("startDate", from.Format(slots.DateLayout))
	q.Set("endDate", to.Format(slots.DateLayout))

	var out []domain.ReservationView
	err := a.http.do(ctx, http.MethodGet, "/api/reservations?"+q.Encode(), nil, &out)
	return out, err
}

func (a *API) CreateReservation(ctx context.Context, bandID int64, date time.Time, s slots.Slot) (*domain.Reservation, error) {
	body := map[string]any{
		"band_id":    bandID,
		"date":       date.Format(slots.DateLayout),
		"start_time": s.String(),
		"end_time":   s.Next().String(),
	}
	var out domain.Reservation
	if err := a.http.do(ctx, http.MethodPost, "/api/reservations", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) DeleteReservation(ctx context.Context, id, bandID int64) error {
	path := fmt.Sprintf("/api/reservations/%d", id)
	return a.http.do(ctx, http.MethodDelete, path, map[string]int64{"band_id": bandID}, nil)
}

func (a *API) GateStatus(ctx context.Context) (*GateStatus, error) {
	var out GateStatus
	if err := a.http.do(ctx, http.MethodGet, "/api/settings/is-open", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) SetOpenTime(ctx context.Context, at time.Time) error {
	body := map[string]string{"open_at": at.UTC().Format(time.RFC3339)}
	return a.http.do(ctx, http.MethodPut, "/api/admin/settings/open-time", body, nil)
}

func (a *API) ClearOpenTime(ctx context.Context) error {
	return a.http.do(ctx, http.MethodDelete, "/api/admin/settings/open-time", nil, nil)
}
