package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gecos_backend/internal/models"
	"gecos_backend/internal/storage"
)

// SlotCheck inspects the reservations currently holding a room/date and
// decides whether the pending write may proceed. It runs inside the same
// transaction as the write, over row-locked data, so a concurrent create on
// the same room and date cannot slip between check and insert.
type SlotCheck func(existing []models.Reservation) error

// ReservationFilter narrows reservation listings. Zero values mean "no filter".
type ReservationFilter struct {
	RoomID uint
	UserID uint
	Date   string
	Status string
}

type ReservationRepository interface {
	CreateInSlot(res *models.Reservation, check SlotCheck) error
	SaveInSlot(res *models.Reservation, check SlotCheck) error
	FindByID(id uint) (*models.Reservation, error)
	Update(res *models.Reservation) error
	FindAll(filter ReservationFilter) ([]models.Reservation, error)
	FindByUser(userID uint) ([]models.Reservation, error)
	FindForRoomDate(roomID uint, date string) ([]models.Reservation, error)
}

type reservationRepository struct {
	db *storage.PostgresDB
}

func NewReservationRepository(db *storage.PostgresDB) ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) CreateInSlot(res *models.Reservation, check SlotCheck) error {
	return r.inSlot(res, check, func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(res).Error
	})
}

func (r *reservationRepository) SaveInSlot(res *models.Reservation, check SlotCheck) error {
	return r.inSlot(res, check, func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Save(res).Error
	})
}

// inSlot locks the room/date's reservations, runs the check against that
// consistent snapshot, then performs the write. The composite unique index
// on (room_id, date, start_time) remains the storage-level backstop.
func (r *reservationRepository) inSlot(res *models.Reservation, check SlotCheck, write func(tx *gorm.DB) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing []models.Reservation
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("room_id = ? AND date = ?", res.RoomID, res.Date).
			Find(&existing).Error
		if err != nil {
			return err
		}
		if err := check(existing); err != nil {
			return err
		}
		return write(tx)
	})
}

func (r *reservationRepository) FindByID(id uint) (*models.Reservation, error) {
	var res models.Reservation
	err := r.db.Preload("Room").Preload("User").First(&res, id).Error
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *reservationRepository) Update(res *models.Reservation) error {
	return r.db.Omit(clause.Associations).Save(res).Error
}

func (r *reservationRepository) FindAll(filter ReservationFilter) ([]models.Reservation, error) {
	q := r.db.Model(&models.Reservation{}).Preload("Room").Preload("User")

	if filter.RoomID != 0 {
		q = q.Where("room_id = ?", filter.RoomID)
	}
	if filter.UserID != 0 {
		q = q.Where("user_id = ?", filter.UserID)
	}
	if filter.Date != "" {
		q = q.Where("date = ?", filter.Date)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var reservations []models.Reservation
	err := q.Order("date DESC, start_time DESC").Find(&reservations).Error
	return reservations, err
}

func (r *reservationRepository) FindByUser(userID uint) ([]models.Reservation, error) {
	return r.FindAll(ReservationFilter{UserID: userID})
}

func (r *reservationRepository) FindForRoomDate(roomID uint, date string) ([]models.Reservation, error) {
	return r.FindAll(ReservationFilter{RoomID: roomID, Date: date})
}
