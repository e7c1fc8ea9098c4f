package settings

import "time"

// SetOpenTimeRequest carries an RFC 3339 instant, or a local
// "2006-01-02T15:04" value read in the venue time zone.
type SetOpenTimeRequest struct {
	OpenAt string `json:"open_at"`
}

type GateStatus struct {
	IsOpen bool       `json:"isOpen"`
	OpenAt *time.Time `json:"openAt"`
}

type OpenTimeResponse struct {
	OpenAt *time.Time `json:"openAt"`
}

type VisibleDateRequest struct {
	Date       string `json:"date" validate:"required,slotdate"`
	WeekNumber int    `json:"week_number" validate:"gte=0"`
}
