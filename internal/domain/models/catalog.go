package models

type Route struct {
	ID         int64   `json:"id"`
	Origin     string  `json:"origin"`
	Destination string `json:"destination"`
	DistanceKM float64 `json:"distanceKm"`
	Stops      []Stop  `json:"stops,omitempty"`
}

type Stop struct {
	ID      int64  `json:"id"`
	RouteID int64  `json:"routeId"`
	Name    string `json:"name"`
	Order   int    `json:"order"`
}

type ServiceClass struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	FixedSurcharge float64 `json:"fixedSurcharge"`
	PctSurcharge   float64 `json:"pctSurcharge"`
}

type Bus struct {
	ID       int64  `json:"id"`
	Plate    string `json:"plate"`
	Model    string `json:"model"`
	Capacity int    `json:"capacity"`
	ClassID  int64  `json:"classId"`
	Class    string `json:"class,omitempty"`
}

type Driver struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	License  string `json:"license"`
	Phone    string `json:"phone"`
	Active   bool   `json:"active"`
}

type Employee struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	Position string `json:"position"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Active   bool   `json:"active"`
}

type Passenger struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	Document string `json:"document"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}
