package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/ClaudeMKA/Pulse-sub001/internal/models"
	"github.com/ClaudeMKA/Pulse-sub001/internal/repository/posgrest"
	"github.com/ClaudeMKA/Pulse-sub001/internal/service"
)

// SeedAdmin makes sure an administrator exists. Nothing is done when no
// credentials are configured.
func SeedAdmin(db *gorm.DB, email, password string) error {
	email = models.NormalizeEmail(email)
	if email == "" || password == "" {
		logrus.Info("admin credentials not configured, skipping admin seed")
		return nil
	}
	if len(password) < service.MinPasswordLength {
		return fmt.Errorf("admin password must be at least %d characters", service.MinPasswordLength)
	}

	hash, err := service.HashPassword(password)
	if err != nil {
		return err
	}
	admin := models.User{
		Name:         "Administrator",
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	}
	result := db.Where(models.User{Email: email}).Attrs(admin).FirstOrCreate(&admin)
	if result.Error != nil {
		return result.Error
	}
	if admin.Role != models.RoleAdmin {
		if err := db.Model(&admin).Update("role", models.RoleAdmin).Error; err != nil {
			return err
		}
	}

	logrus.WithField("email", email).Info("admin user seeded")
	return nil
}

// SeedSampleData fills an empty catalogue for local development.
func SeedSampleData(ctx context.Context, db *gorm.DB) error {
	artists := []models.Artist{
		{Name: "Nina Kraviz", Genre: "techno"},
		{Name: "Snarky Puppy", Genre: "jazz fusion"},
	}
	for i := range artists {
		if err := db.WithContext(ctx).Where(models.Artist{Name: artists[i].Name}).FirstOrCreate(&artists[i]).Error; err != nil {
			return err
		}
	}

	locations := []models.Location{
		{Name: "La Cigale", Address: "120 Bd de Rochechouart", City: "Paris", Capacity: 1400},
		{Name: "Le Bikini", Address: "Rue Théodore Monod", City: "Toulouse", Capacity: 1500},
	}
	for i := range locations {
		if err := db.WithContext(ctx).Where(models.Location{Name: locations[i].Name}).FirstOrCreate(&locations[i]).Error; err != nil {
			return err
		}
	}

	stand := models.Stand{Name: "Merch", Exhibitor: "Pulse", LocationID: &locations[0].ID, Price: 0}
	if err := db.WithContext(ctx).Where(models.Stand{Name: stand.Name}).FirstOrCreate(&stand).Error; err != nil {
		return err
	}

	start := time.Now().Add(7 * 24 * time.Hour).Truncate(time.Hour)
	events := []models.Event{
		{
			Title:      "Warehouse Night",
			Price:      25,
			Currency:   "EUR",
			StartDate:  start,
			Capacity:   800,
			LocationID: &locations[0].ID,
			ArtistID:   &artists[0].ID,
		},
		{
			Title:      "Open Jam Session",
			Price:      0,
			Currency:   "EUR",
			StartDate:  start.Add(48 * time.Hour),
			Capacity:   200,
			LocationID: &locations[1].ID,
			ArtistID:   &artists[1].ID,
		},
	}

	eventRepo := posgrest.NewEventRepository(db)
	for i := range events {
		var existing models.Event
		err := db.WithContext(ctx).Where("title = ?", events[i].Title).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if _, err := eventRepo.CreateWithReminders(ctx, &events[i]); err != nil {
			return err
		}
	}

	logrus.Info("sample data seeded")
	return nil
}
