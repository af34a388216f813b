// Command seed populates the database with the baseline users, rooms and
// subjects a fresh deployment needs. Existing records are left untouched,
// so running it twice is safe.
package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"gecos_backend/internal/config"
	"gecos_backend/internal/models"
	"gecos_backend/internal/storage"
)

func main() {
	_ = godotenv.Load(".env")

	log := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		log.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := storage.NewPostgresDB(cfg.DB.Host, cfg.DB.User, cfg.DB.Password, cfg.DB.Name, cfg.DB.Port)
	if err != nil {
		log.Error("failed to initialize database", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	if err := db.AutoMigrate(
		&models.User{},
		&models.Room{},
		&models.Reservation{},
		&models.Subject{},
		&models.RevokedToken{},
	); err != nil {
		log.Error("failed to auto migrate database", slog.Any("error", err))
		os.Exit(1)
	}

	seedUsers(db.DB, log)
	seedRooms(db.DB, log)
	seedSubjects(db.DB, log)

	log.Info("seed finished")
}

func seedUsers(db *gorm.DB, log *slog.Logger) {
	users := []struct {
		username string
		password string
		first    string
		last     string
		document string
		role     models.UserRole
	}{
		{"admin", "admin123", "System", "Administrator", "1000000001", models.RoleAdmin},
		{"jperez", "instructor123", "Juan", "Perez", "1000000002", models.RoleInstructor},
		{"mgarcia", "instructor123", "Maria", "Garcia", "1000000003", models.RoleInstructor},
	}

	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			log.Error("failed to hash password", slog.String("username", u.username), slog.Any("error", err))
			continue
		}
		user := models.User{
			Username:  u.username,
			Password:  string(hash),
			FirstName: u.first,
			LastName:  u.last,
			Email:     u.username + "@gecos.local",
			Document:  u.document,
			Role:      u.role,
			Active:    true,
		}
		res := db.Where("username = ?", u.username).FirstOrCreate(&user)
		if res.Error != nil {
			log.Error("failed to seed user", slog.String("username", u.username), slog.Any("error", res.Error))
			continue
		}
		if res.RowsAffected > 0 {
			log.Info("user created", slog.String("username", u.username), slog.String("role", string(u.role)))
		}
	}
}

func seedRooms(db *gorm.DB, log *slog.Logger) {
	rooms := []models.Room{
		{Name: "Room 101", Code: "A-101", Type: models.RoomTypeClassroom, Building: "A", Floor: "1", Capacity: 30, HasProjector: true, HasWifi: true, Status: models.RoomStatusAvailable},
		{Name: "Room 102", Code: "A-102", Type: models.RoomTypeClassroom, Building: "A", Floor: "1", Capacity: 25, HasProjector: true, HasAirConditioning: true, HasWifi: true, Status: models.RoomStatusAvailable},
		{Name: "Room 201", Code: "A-201", Type: models.RoomTypeClassroom, Building: "A", Floor: "2", Capacity: 35, HasSmartTV: true, HasWifi: true, Status: models.RoomStatusAvailable},
		{Name: "Systems Lab", Code: "B-101", Type: models.RoomTypeLaboratory, Building: "B", Floor: "1", Capacity: 20, HasComputers: true, HasProjector: true, HasAirConditioning: true, HasWifi: true, Status: models.RoomStatusAvailable},
		{Name: "Electronics Lab", Code: "B-102", Type: models.RoomTypeLaboratory, Building: "B", Floor: "1", Capacity: 18, HasComputers: true, HasAirConditioning: true, Status: models.RoomStatusMaintenance},
		{Name: "Main Auditorium", Code: "C-001", Type: models.RoomTypeAuditorium, Building: "C", Floor: "1", Capacity: 200, HasProjector: true, HasAudio: true, HasAirConditioning: true, Status: models.RoomStatusAvailable},
		{Name: "Conference Room", Code: "C-201", Type: models.RoomTypeConference, Building: "C", Floor: "2", Capacity: 15, HasSmartTV: true, HasAudio: true, HasAirConditioning: true, HasWifi: true, Status: models.RoomStatusAvailable},
	}

	for i := range rooms {
		room := rooms[i]
		res := db.Where("code = ?", room.Code).FirstOrCreate(&room)
		if res.Error != nil {
			log.Error("failed to seed room", slog.String("code", room.Code), slog.Any("error", res.Error))
			continue
		}
		if res.RowsAffected > 0 {
			log.Info("room created", slog.String("code", room.Code), slog.String("name", room.Name))
		}
	}
}

func seedSubjects(db *gorm.DB, log *slog.Logger) {
	subjects := []models.Subject{
		{Name: "Software Engineering", Semester: "2025-2"},
		{Name: "Databases", Semester: "2025-2"},
		{Name: "Operating Systems", Semester: "2025-2"},
	}

	for i := range subjects {
		subject := subjects[i]
		res := db.Where("name = ?", subject.Name).FirstOrCreate(&subject)
		if res.Error != nil {
			log.Error("failed to seed subject", slog.String("name", subject.Name), slog.Any("error", res.Error))
			continue
		}
		if res.RowsAffected > 0 {
			log.Info("subject created", slog.String("name", subject.Name), slog.String("code", subject.Code))
		}
	}
}
