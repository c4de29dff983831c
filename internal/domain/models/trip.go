package models

type Trip struct {
	ID        int64  `json:"id"`
	RouteID   int64  `json:"routeId"`
	BusID     int64  `json:"busId"`
	DriverID  int64  `json:"driverId"`
	Departure string `json:"departure"` // "YYYY-MM-DD HH:MM:SS"
	Arrival   string `json:"arrival"`
	Status    string `json:"status"`
}

// TripSummary is one dashboard row: the trip joined with its route, bus,
// class and driver, plus how many seats already sold.
type TripSummary struct {
	ID          int64  `json:"id"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Departure   string `json:"departure"`
	Arrival     string `json:"arrival"`
	Status      string `json:"status"`
	BusPlate    string `json:"busPlate"`
	Class       string `json:"class"`
	DriverName  string `json:"driverName"`
	Capacity    int    `json:"capacity"`
	SeatsSold   int    `json:"seatsSold"`
}

// SeatAvailability is the advisory seat map for one trip. Occupied and Free
// are ascending and duplicate-free; OutOfRange reports seat numbers found in
// tickets that fall outside [1, Capacity] so the caller can flag them.
type SeatAvailability struct {
	TripID     int64 `json:"tripId"`
	Capacity   int   `json:"capacity"`
	Occupied   []int `json:"occupied"`
	Free       []int `json:"free"`
	OutOfRange []int `json:"outOfRange,omitempty"`
}
