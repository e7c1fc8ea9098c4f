package band

type BandRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type DeleteResult struct {
	BandID              int64 `json:"band_id"`
	RemovedReservations int64 `json:"removed_reservations"`
}
