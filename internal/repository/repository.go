package repository

import "gecos_backend/internal/storage"

type Repositories struct {
	User        UserRepository
	Room        RoomRepository
	Reservation ReservationRepository
	Subject     SubjectRepository
	Token       TokenRepository
}

func NewRepositories(db *storage.PostgresDB) *Repositories {
	return &Repositories{
		User:        NewUserRepository(db),
		Room:        NewRoomRepository(db),
		Reservation: NewReservationRepository(db),
		Subject:     NewSubjectRepository(db),
		Token:       NewTokenRepository(db),
	}
}
