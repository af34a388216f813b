package repository

import (
	"gecos_backend/internal/models"
	"gecos_backend/internal/storage"
)

// RoomFilter narrows room listings. Zero values mean "no filter".
type RoomFilter struct {
	Type               string
	Building           string
	Status             string
	HasProjector       *bool
	HasAirConditioning *bool
	Search             string
	OrderBy            string
}

type RoomRepository interface {
	Create(room *models.Room) error
	FindByID(id uint) (*models.Room, error)
	FindAll(filter RoomFilter) ([]models.Room, error)
	FindAvailable() ([]models.Room, error)
	Update(room *models.Room) error
	Delete(id uint) error
}

type roomRepository struct {
	db *storage.PostgresDB
}

func NewRoomRepository(db *storage.PostgresDB) RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) Create(room *models.Room) error {
	return r.db.Create(room).Error
}

func (r *roomRepository) FindByID(id uint) (*models.Room, error) {
	var room models.Room
	err := r.db.First(&room, id).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

var roomOrderings = map[string]string{
	"name":     "name ASC",
	"capacity": "capacity ASC",
	"building": "building ASC, floor ASC, name ASC",
}

func (r *roomRepository) FindAll(filter RoomFilter) ([]models.Room, error) {
	q := r.db.Model(&models.Room{})

	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.Building != "" {
		q = q.Where("building = ?", filter.Building)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.HasProjector != nil {
		q = q.Where("has_projector = ?", *filter.HasProjector)
	}
	if filter.HasAirConditioning != nil {
		q = q.Where("has_air_conditioning = ?", *filter.HasAirConditioning)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("name ILIKE ? OR code ILIKE ? OR description ILIKE ?", like, like, like)
	}

	order, ok := roomOrderings[filter.OrderBy]
	if !ok {
		order = roomOrderings["building"]
	}

	var rooms []models.Room
	err := q.Order(order).Find(&rooms).Error
	return rooms, err
}

func (r *roomRepository) FindAvailable() ([]models.Room, error) {
	return r.FindAll(RoomFilter{Status: string(models.RoomStatusAvailable)})
}

func (r *roomRepository) Update(room *models.Room) error {
	return r.db.Save(room).Error
}

func (r *roomRepository) Delete(id uint) error {
	return r.db.Delete(&models.Room{}, id).Error
}
