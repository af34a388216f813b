package service

import (
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"gecos_backend/internal/booking"
	"gecos_backend/internal/models"
	"gecos_backend/internal/repository"
)

type RoomService struct {
	roomRepo        repository.RoomRepository
	reservationRepo repository.ReservationRepository
	clock           booking.Clock
	log             *slog.Logger
}

func NewRoomService(roomRepo repository.RoomRepository, reservationRepo repository.ReservationRepository, clock booking.Clock, log *slog.Logger) *RoomService {
	return &RoomService{
		roomRepo:        roomRepo,
		reservationRepo: reservationRepo,
		clock:           clock,
		log:             log,
	}
}

func (s *RoomService) CreateRoom(room *models.Room) error {
	return s.roomRepo.Create(room)
}

func (s *RoomService) GetRoom(id uint) (*models.Room, error) {
	room, err := s.roomRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return room, err
}

func (s *RoomService) ListRooms(filter repository.RoomFilter) ([]models.Room, error) {
	return s.roomRepo.FindAll(filter)
}

func (s *RoomService) AvailableRooms() ([]models.Room, error) {
	return s.roomRepo.FindAvailable()
}

func (s *RoomService) UpdateRoom(room *models.Room) error {
	return s.roomRepo.Update(room)
}

func (s *RoomService) DeleteRoom(id uint) error {
	if _, err := s.GetRoom(id); err != nil {
		return err
	}
	return s.roomRepo.Delete(id)
}

// RoomSchedule returns the room together with its hourly occupancy grid for
// the requested date. An empty or unparsable date falls back to today.
func (s *RoomService) RoomSchedule(id uint, rawDate string) (*models.Room, string, []booking.Slot, error) {
	room, err := s.GetRoom(id)
	if err != nil {
		return nil, "", nil, err
	}

	date := booking.ResolveDate(rawDate, s.clock.Now())
	reservations, err := s.reservationRepo.FindForRoomDate(room.ID, date)
	if err != nil {
		return nil, "", nil, err
	}

	return room, date, booking.BuildSchedule(room.ID, date, reservations), nil
}
