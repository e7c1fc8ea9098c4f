package reservation

type CreateReservationRequest struct {
	BandID    int64  `json:"band_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time"`
}

type DeleteReservationRequest struct {
	BandID int64 `json:"band_id" form:"band_id"`
}

type ListQuery struct {
	Date      string `form:"date"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}

// DeletedEvent is published after a reservation is removed.
type DeletedEvent struct {
	ID        int64  `json:"id"`
	BandID    int64  `json:"band_id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	ByAdmin   bool   `json:"by_admin"`
}
