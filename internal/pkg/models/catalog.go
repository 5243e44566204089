package models

// Vehicle is a display-only catalog record
type Vehicle struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	FuelType     string  `json:"fuelType"`
	Transmission string  `json:"transmission"`
	Seating      int     `json:"seating"`
	Price        float64 `json:"price"`
	ImageURL     string  `json:"imageUrl"`
}

// Quote is a display-only price quote record
type Quote struct {
	ID          int     `json:"id"`
	VehicleName string  `json:"vehicleName"`
	Variant     string  `json:"variant"`
	Price       float64 `json:"price"`
	Status      string  `json:"status"`
	RequestedAt string  `json:"requestedAt"`
}

// TestDrive is a display-only test-drive booking record
type TestDrive struct {
	ID          int    `json:"id"`
	VehicleName string `json:"vehicleName"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Status      string `json:"status"`
}

// Profile is the account record served by the backend for the signed-in user
type Profile struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}
