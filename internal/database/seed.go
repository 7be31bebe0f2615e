package database

import (
	"rentadmin/internal/logger"
	"rentadmin/internal/models"
)

// sampleListings is the demo catalog inserted on first start so the
// dashboard has something to moderate.
var sampleListings = []models.Listing{
	{Title: "Toyota Corolla", Description: "A reliable sedan."},
	{Title: "Honda Civic", Description: "Sporty and efficient."},
	{Title: "Ford Mustang", Description: "Classic American muscle."},
	{Title: "Chevrolet Camaro", Description: "A modern muscle car."},
	{Title: "Tesla Model 3", Description: "Electric and fast."},
	{Title: "BMW 3 Series", Description: "Luxury and performance."},
	{Title: "Audi A4", Description: "German engineering."},
	{Title: "Mercedes-Benz C-Class", Description: "Premium comfort."},
	{Title: "Volkswagen Golf", Description: "Compact and practical."},
	{Title: "Hyundai Elantra", Description: "Affordable and efficient."},
	{Title: "Kia Optima", Description: "Value and style."},
	{Title: "Nissan Altima", Description: "Smooth ride."},
	{Title: "Subaru Impreza", Description: "All-wheel drive."},
	{Title: "Mazda 3", Description: "Fun to drive."},
	{Title: "Dodge Charger", Description: "Powerful sedan."},
	{Title: "Jeep Wrangler", Description: "Off-road icon."},
	{Title: "Toyota Prius", Description: "Hybrid efficiency."},
	{Title: "Honda Accord", Description: "Spacious and reliable."},
	{Title: "Ford F-150", Description: "Best-selling truck."},
	{Title: "Chevrolet Silverado", Description: "Strong and capable."},
	{Title: "Ram 1500", Description: "Comfortable pickup."},
	{Title: "Porsche 911", Description: "Iconic sports car."},
	{Title: "Lexus RX", Description: "Luxury SUV."},
	{Title: "Acura MDX", Description: "Premium crossover."},
	{Title: "Infiniti Q50", Description: "Sporty luxury sedan."},
	{Title: "Cadillac Escalade", Description: "Full-size luxury SUV."},
	{Title: "GMC Sierra", Description: "Professional grade truck."},
	{Title: "Buick Enclave", Description: "Spacious and quiet."},
	{Title: "Chrysler Pacifica", Description: "Family minivan."},
	{Title: "Mini Cooper", Description: "Compact and fun."},
	{Title: "Volvo XC90", Description: "Swedish luxury SUV."},
	{Title: "Land Rover Discovery", Description: "Off-road luxury."},
	{Title: "Jaguar XF", Description: "British elegance."},
	{Title: "Alfa Romeo Giulia", Description: "Italian performance."},
	{Title: "Fiat 500", Description: "City car."},
	{Title: "Mitsubishi Outlander", Description: "Versatile SUV."},
	{Title: "Suzuki Swift", Description: "Agile hatchback."},
	{Title: "Peugeot 3008", Description: "French crossover."},
	{Title: "Renault Clio", Description: "Popular European hatchback."},
	{Title: "Citroën C3", Description: "Comfortable city car."},
	{Title: "Skoda Octavia", Description: "Spacious and efficient."},
	{Title: "Seat Leon", Description: "Spanish hatchback."},
	{Title: "Opel Astra", Description: "Reliable compact."},
	{Title: "Saab 9-3", Description: "Swedish classic."},
	{Title: "Dacia Duster", Description: "Affordable SUV."},
	{Title: "Tesla Model S", Description: "Luxury electric sedan."},
	{Title: "Lucid Air", Description: "High-end electric."},
	{Title: "Rivian R1T", Description: "Electric adventure truck."},
	{Title: "Polestar 2", Description: "Performance EV."},
	{Title: "BYD Han", Description: "Chinese electric sedan."},
	{Title: "Geely Emgrand", Description: "Popular in Asia."},
	{Title: "Great Wall Haval H6", Description: "Chinese SUV."},
	{Title: "Tata Nexon", Description: "Indian compact SUV."},
	{Title: "Mahindra XUV700", Description: "Indian family SUV."},
	{Title: "Proton X70", Description: "Malaysian SUV."},
	{Title: "Perodua Myvi", Description: "Malaysian hatchback."},
	{Title: "Holden Commodore", Description: "Australian classic."},
	{Title: "UAZ Patriot", Description: "Russian off-roader."},
	{Title: "Lada Niva", Description: "Russian 4x4."},
	{Title: "SsangYong Tivoli", Description: "Korean compact SUV."},
}

// seed inserts the sample catalog when the listings table is empty.
func (m *Manager) seed() error {
	var count int64
	if err := m.db.Model(&models.Listing{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	listings := make([]models.Listing, len(sampleListings))
	copy(listings, sampleListings)
	for i := range listings {
		listings[i].Status = models.StatusPending
	}

	if err := m.db.CreateInBatches(listings, 100).Error; err != nil {
		return err
	}

	logger.Get().Infof("Seeded %d sample listings", len(listings))
	return nil
}
