package catalog

import "github.com/dealerhub/portal/internal/pkg/models"

// The catalog is display-only seed data; inventory management lives in the
// backend and is out of scope for the portal.

// Vehicles returns the showroom lineup
func Vehicles() []models.Vehicle {
	return []models.Vehicle{
		{ID: 1, Name: "Kia Seltos", Type: "SUV", FuelType: "Petrol", Transmission: "Automatic", Seating: 5, Price: 1099000, ImageURL: "/images/seltos.jpg"},
		{ID: 2, Name: "Kia Sonet", Type: "SUV", FuelType: "Diesel", Transmission: "Manual", Seating: 5, Price: 779000, ImageURL: "/images/sonet.jpg"},
		{ID: 3, Name: "Kia Carnival", Type: "MPV", FuelType: "Diesel", Transmission: "Automatic", Seating: 7, Price: 2499000, ImageURL: "/images/carnival.jpg"},
		{ID: 4, Name: "Kia EV6", Type: "EV", FuelType: "Electric", Transmission: "Automatic", Seating: 5, Price: 6095000, ImageURL: "/images/ev6.jpg"},
		{ID: 5, Name: "Kia Carens", Type: "MPV", FuelType: "Petrol", Transmission: "Manual", Seating: 6, Price: 1045000, ImageURL: "/images/carens.jpg"},
	}
}

// Quotes returns the customer's quote history
func Quotes() []models.Quote {
	return []models.Quote{
		{ID: 1, VehicleName: "Kia Seltos", Variant: "HTX 1.5", Price: 1450000, Status: "APPROVED", RequestedAt: "2025-07-14"},
		{ID: 2, VehicleName: "Kia EV6", Variant: "GT Line AWD", Price: 6495000, Status: "PENDING", RequestedAt: "2025-08-02"},
		{ID: 3, VehicleName: "Kia Carens", Variant: "Luxury Plus", Price: 1725000, Status: "EXPIRED", RequestedAt: "2025-05-21"},
	}
}

// TestDrives returns the customer's test-drive bookings
func TestDrives() []models.TestDrive {
	return []models.TestDrive{
		{ID: 1, VehicleName: "Kia Seltos", Date: "2025-08-28", Time: "10:30", Location: "Downtown Showroom", Status: "CONFIRMED"},
		{ID: 2, VehicleName: "Kia Sonet", Date: "2025-09-05", Time: "15:00", Location: "Airport Road Showroom", Status: "PENDING"},
	}
}

// Schedule returns the dealer's upcoming appointments
func Schedule() []models.TestDrive {
	return []models.TestDrive{
		{ID: 11, VehicleName: "Kia Carnival", Date: "2025-09-02", Time: "09:00", Location: "Downtown Showroom", Status: "CONFIRMED"},
		{ID: 12, VehicleName: "Kia EV6", Date: "2025-09-02", Time: "11:30", Location: "Downtown Showroom", Status: "CONFIRMED"},
		{ID: 13, VehicleName: "Kia Seltos", Date: "2025-09-03", Time: "14:00", Location: "Airport Road Showroom", Status: "PENDING"},
	}
}
