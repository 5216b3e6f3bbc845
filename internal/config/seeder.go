package config

import (
	"log"

	"gorm.io/gorm"

	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/adapters/persistence/models"
	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/core/domain"
	"github.com/King1Muhammad/masjid-nabawi-sub001/internal/pkg/password"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedGlobalAdmin(); err != nil {
		log.Printf("⚠️ Global admin seeder skipped: %v", err)
	}
	if err := s.seedDefaultSociety(); err != nil {
		log.Printf("⚠️ Society seeder skipped: %v", err)
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedGlobalAdmin seeds the bootstrap global admin account.
// This is for development/testing only.
// In production, create the global admin through a secure process.
func (s *Seeder) seedGlobalAdmin() error {
	var count int64
	s.db.Model(&models.User{}).Where("role = ?", string(domain.RoleGlobal)).Count(&count)
	if count > 0 {
		return nil // Global admin already exists
	}

	hashedPassword, err := password.Hash("admin123456")
	if err != nil {
		return err
	}

	admin := &models.User{
		Name:     "Global Administrator",
		Username: "admin",
		Email:    "admin@masjidenabawisub001.org",
		Password: hashedPassword,
		Role:     string(domain.RoleGlobal),
		Status:   models.UserStatusActive,
	}

	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("✅ Global admin created: %s", admin.Username)
	return nil
}

// seedDefaultSociety seeds the society with its blocks so contribution
// tracking works out of the box: 4 blocks, D with 26 flats, the rest 50 each.
func (s *Seeder) seedDefaultSociety() error {
	var count int64
	s.db.Model(&models.Society{}).Count(&count)
	if count > 0 {
		return nil // Society already seeded
	}

	society := &models.Society{
		Name:                "Masjid-e-Nabawi's Model Society",
		Description:         "Residential society attached to the masjid and madrasa",
		MonthlyContribution: 1500,
		TotalBlocks:         4,
		TotalFlats:          176,
	}

	if err := s.db.Create(society).Error; err != nil {
		return err
	}

	blocks := []models.SocietyBlock{
		{SocietyID: society.ID, Name: "A", FlatsCount: 50},
		{SocietyID: society.ID, Name: "B", FlatsCount: 50},
		{SocietyID: society.ID, Name: "C", FlatsCount: 50},
		{SocietyID: society.ID, Name: "D", FlatsCount: 26},
	}
	for i := range blocks {
		if err := s.db.Create(&blocks[i]).Error; err != nil {
			return err
		}
	}

	log.Printf("✅ Society created: %s (%d flats)", society.Name, society.TotalFlats)
	return nil
}
