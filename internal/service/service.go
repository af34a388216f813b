package service

import (
	"log/slog"

	"gecos_backend/internal/booking"
	"gecos_backend/internal/repository"
)

type Services struct {
	User        *UserService
	Room        *RoomService
	Reservation *ReservationService
	Subject     *SubjectService
	Token       *TokenService
}

// Options carries the policy knobs services need beyond their repositories.
type Options struct {
	// AllowAnonymousCreate maps unauthenticated reservation creates to the
	// system default identity instead of rejecting them.
	AllowAnonymousCreate bool
}

func NewServices(repos *repository.Repositories, log *slog.Logger, clock booking.Clock, opts Options) *Services {
	return &Services{
		User:        NewUserService(repos.User, log),
		Room:        NewRoomService(repos.Room, repos.Reservation, clock, log),
		Reservation: NewReservationService(repos.Reservation, repos.Room, repos.User, clock, log, opts),
		Subject:     NewSubjectService(repos.Subject, log),
		Token:       NewTokenService(repos.Token, log),
	}
}
