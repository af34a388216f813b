package service

import (
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"gecos_backend/internal/booking"
	"gecos_backend/internal/models"
	"gecos_backend/internal/repository"
)

type ReservationService struct {
	reservationRepo repository.ReservationRepository
	roomRepo        repository.RoomRepository
	userRepo        repository.UserRepository
	clock           booking.Clock
	log             *slog.Logger
	allowAnonymous  bool
}

func NewReservationService(
	reservationRepo repository.ReservationRepository,
	roomRepo repository.RoomRepository,
	userRepo repository.UserRepository,
	clock booking.Clock,
	log *slog.Logger,
	opts Options,
) *ReservationService {
	return &ReservationService{
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
		userRepo:        userRepo,
		clock:           clock,
		log:             log,
		allowAnonymous:  opts.AllowAnonymousCreate,
	}
}

// CreateReservationInput is the candidate data for a new reservation.
type CreateReservationInput struct {
	RoomID      uint
	Date        string
	StartTime   string
	EndTime     string
	Motive      string
	Description string
	Attendees   int
}

// Create validates the candidate and persists it in pending status.
//
// callerID is 0 for unauthenticated requests; those are mapped to the
// system default identity when the relaxed-auth policy is enabled, and
// rejected with ErrAuthRequired otherwise. Validation and insert run inside
// one locked transaction so concurrent creates on the same room/date cannot
// both pass the overlap check.
func (s *ReservationService) Create(callerID uint, in CreateReservationInput) (*models.Reservation, error) {
	owner, err := s.resolveOwner(callerID)
	if err != nil {
		return nil, err
	}

	room, err := s.roomRepo.FindByID(in.RoomID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	res := &models.Reservation{
		UserID:      owner.ID,
		RoomID:      room.ID,
		Date:        in.Date,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		Motive:      in.Motive,
		Description: in.Description,
		Attendees:   in.Attendees,
		Status:      models.ReservationStatusPending,
	}

	candidate := booking.Candidate{
		Date:      in.Date,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		Attendees: in.Attendees,
	}

	err = s.reservationRepo.CreateInSlot(res, func(existing []models.Reservation) error {
		if errs := booking.Validate(candidate, room, existing, s.clock.Now(), 0); errs != nil {
			return errs
		}
		return nil
	})
	if err != nil {
		return nil, translateStorageError(err)
	}

	s.log.Info("reservation created",
		slog.Uint64("id", uint64(res.ID)),
		slog.Uint64("room_id", uint64(room.ID)),
		slog.String("date", res.Date),
		slog.Uint64("user_id", uint64(owner.ID)))
	return res, nil
}

// Cancel transitions a reservation to cancelled. Only the owner or an
// administrator may cancel. Cancelling an already-cancelled reservation is
// an accepted no-op; no re-validation runs because cancellation can only
// relax the invariants.
func (s *ReservationService) Cancel(id, callerID uint, role models.UserRole) (*models.Reservation, error) {
	res, err := s.get(id)
	if err != nil {
		return nil, err
	}

	if res.UserID != callerID && role != models.RoleAdmin {
		return nil, ErrForbidden
	}

	switch res.Status {
	case models.ReservationStatusCancelled:
		return res, nil
	case models.ReservationStatusCompleted:
		return nil, ErrInvalidTransition
	}

	res.Status = models.ReservationStatusCancelled
	if err := s.reservationRepo.Update(res); err != nil {
		return nil, err
	}

	s.log.Info("reservation cancelled", slog.Uint64("id", uint64(res.ID)), slog.Uint64("by", uint64(callerID)))
	return res, nil
}

// Confirm transitions a pending reservation to confirmed, administrators
// only. The slot's overlap rule is re-checked under lock at confirm time:
// another reservation may have been confirmed over this one since it was
// validated at creation. Confirming an already-confirmed reservation is an
// accepted no-op.
func (s *ReservationService) Confirm(id uint, role models.UserRole) (*models.Reservation, error) {
	if role != models.RoleAdmin {
		return nil, ErrForbidden
	}

	res, err := s.get(id)
	if err != nil {
		return nil, err
	}

	switch res.Status {
	case models.ReservationStatusConfirmed:
		return res, nil
	case models.ReservationStatusCancelled, models.ReservationStatusCompleted:
		return nil, ErrInvalidTransition
	}

	candidate := booking.Candidate{
		Date:      res.Date,
		StartTime: res.StartTime,
		EndTime:   res.EndTime,
		Attendees: res.Attendees,
	}

	res.Status = models.ReservationStatusConfirmed
	err = s.reservationRepo.SaveInSlot(res, func(existing []models.Reservation) error {
		if errs := booking.CheckOverlap(candidate, res.RoomID, existing, res.ID); errs != nil {
			return errs
		}
		return nil
	})
	if err != nil {
		res.Status = models.ReservationStatusPending
		return nil, translateStorageError(err)
	}

	s.log.Info("reservation confirmed", slog.Uint64("id", uint64(res.ID)))
	return res, nil
}

func (s *ReservationService) List(filter repository.ReservationFilter) ([]models.Reservation, error) {
	return s.reservationRepo.FindAll(filter)
}

// Mine returns the caller's own reservations.
func (s *ReservationService) Mine(userID uint) ([]models.Reservation, error) {
	return s.reservationRepo.FindByUser(userID)
}

func (s *ReservationService) Get(id uint) (*models.Reservation, error) {
	return s.get(id)
}

func (s *ReservationService) get(id uint) (*models.Reservation, error) {
	res, err := s.reservationRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s *ReservationService) resolveOwner(callerID uint) (*models.User, error) {
	if callerID != 0 {
		user, err := s.userRepo.FindByID(callerID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAuthRequired
		}
		return user, err
	}

	if !s.allowAnonymous {
		return nil, ErrAuthRequired
	}

	user, err := s.userRepo.FindDefault()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Relaxed-auth deployments still need at least one seeded user.
		return nil, ErrAuthRequired
	}
	return user, err
}

// translateStorageError turns a uniqueness violation on the
// (room, date, start_time) index into the same shape as an application-level
// validation failure. The constraint only fires when two requests race past
// the overlap check, and the caller should see a 400, not a raw 500.
func translateStorageError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		errs := booking.FieldErrors{}
		errs.Add(booking.NonFieldErrors, "a confirmed or pending reservation already exists in this time slot for this room")
		return errs
	}
	return err
}
