package blocking

// BlockedTimeRequest marks [start_time, end_time) on date as unavailable.
// end_time may be "01:30"; it is read as the end of the venue day.
type BlockedTimeRequest struct {
	Date      string  `json:"date" validate:"required,slotdate"`
	StartTime string  `json:"start_time" validate:"required,clock"`
	EndTime   string  `json:"end_time" validate:"required,clock"`
	Reason    *string `json:"reason"`
}
