package service

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gecos_backend/internal/booking"
	"gecos_backend/internal/models"
	"gecos_backend/internal/repository"
)

var testNow = time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- in-memory fakes ---

type fakeUserRepo struct {
	users map[uint]models.User
}

func (r *fakeUserRepo) Create(user *models.User) error {
	user.ID = uint(len(r.users) + 1)
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) FindByID(id uint) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		return &u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByUsername(username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindAll() ([]models.User, error) { return nil, nil }

func (r *fakeUserRepo) Update(user *models.User) error {
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) Delete(id uint) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) FindDefault() (*models.User, error) {
	var oldest *models.User
	for id := range r.users {
		u := r.users[id]
		if !u.Active {
			continue
		}
		if oldest == nil || u.ID < oldest.ID {
			oldest = &u
		}
	}
	if oldest == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return oldest, nil
}

type fakeRoomRepo struct {
	rooms map[uint]models.Room
}

func (r *fakeRoomRepo) Create(room *models.Room) error {
	room.ID = uint(len(r.rooms) + 1)
	r.rooms[room.ID] = *room
	return nil
}

func (r *fakeRoomRepo) FindByID(id uint) (*models.Room, error) {
	if room, ok := r.rooms[id]; ok {
		return &room, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRoomRepo) FindAll(filter repository.RoomFilter) ([]models.Room, error) {
	var out []models.Room
	for _, room := range r.rooms {
		if filter.Status != "" && string(room.Status) != filter.Status {
			continue
		}
		out = append(out, room)
	}
	return out, nil
}

func (r *fakeRoomRepo) FindAvailable() ([]models.Room, error) {
	return r.FindAll(repository.RoomFilter{Status: string(models.RoomStatusAvailable)})
}

func (r *fakeRoomRepo) Update(room *models.Room) error {
	r.rooms[room.ID] = *room
	return nil
}

func (r *fakeRoomRepo) Delete(id uint) error {
	delete(r.rooms, id)
	return nil
}

type fakeReservationRepo struct {
	reservations map[uint]models.Reservation
	nextID       uint
	writeErr     error // forced error returned after a passing check
}

func (r *fakeReservationRepo) slot(roomID uint, date string) []models.Reservation {
	var out []models.Reservation
	for _, res := range r.reservations {
		if res.RoomID == roomID && res.Date == date {
			out = append(out, res)
		}
	}
	return out
}

func (r *fakeReservationRepo) CreateInSlot(res *models.Reservation, check repository.SlotCheck) error {
	if err := check(r.slot(res.RoomID, res.Date)); err != nil {
		return err
	}
	if r.writeErr != nil {
		return r.writeErr
	}
	r.nextID++
	res.ID = r.nextID
	r.reservations[res.ID] = *res
	return nil
}

func (r *fakeReservationRepo) SaveInSlot(res *models.Reservation, check repository.SlotCheck) error {
	if err := check(r.slot(res.RoomID, res.Date)); err != nil {
		return err
	}
	if r.writeErr != nil {
		return r.writeErr
	}
	r.reservations[res.ID] = *res
	return nil
}

func (r *fakeReservationRepo) FindByID(id uint) (*models.Reservation, error) {
	if res, ok := r.reservations[id]; ok {
		return &res, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeReservationRepo) Update(res *models.Reservation) error {
	r.reservations[res.ID] = *res
	return nil
}

func (r *fakeReservationRepo) FindAll(filter repository.ReservationFilter) ([]models.Reservation, error) {
	var out []models.Reservation
	for _, res := range r.reservations {
		if filter.RoomID != 0 && res.RoomID != filter.RoomID {
			continue
		}
		if filter.UserID != 0 && res.UserID != filter.UserID {
			continue
		}
		if filter.Date != "" && res.Date != filter.Date {
			continue
		}
		if filter.Status != "" && string(res.Status) != filter.Status {
			continue
		}
		out = append(out, res)
	}
	return out, nil
}

func (r *fakeReservationRepo) FindByUser(userID uint) ([]models.Reservation, error) {
	return r.FindAll(repository.ReservationFilter{UserID: userID})
}

func (r *fakeReservationRepo) FindForRoomDate(roomID uint, date string) ([]models.Reservation, error) {
	return r.slot(roomID, date), nil
}

// --- fixtures ---

func newFixture(allowAnonymous bool) (*ReservationService, *fakeReservationRepo) {
	admin := models.User{Username: "admin", Role: models.RoleAdmin, Active: true}
	admin.ID = 1
	owner := models.User{Username: "jperez", Role: models.RoleInstructor, Active: true}
	owner.ID = 2
	other := models.User{Username: "mgarcia", Role: models.RoleInstructor, Active: true}
	other.ID = 3

	room := models.Room{Name: "Room 101", Code: "A-101", Capacity: 20, Status: models.RoomStatusAvailable}
	room.ID = 1

	userRepo := &fakeUserRepo{users: map[uint]models.User{1: admin, 2: owner, 3: other}}
	roomRepo := &fakeRoomRepo{rooms: map[uint]models.Room{1: room}}
	resRepo := &fakeReservationRepo{reservations: map[uint]models.Reservation{}}

	svc := NewReservationService(resRepo, roomRepo, userRepo, fixedClock{testNow}, discardLogger(),
		Options{AllowAnonymousCreate: allowAnonymous})
	return svc, resRepo
}

func validInput() CreateReservationInput {
	return CreateReservationInput{
		RoomID:    1,
		Date:      "2025-06-01",
		StartTime: "08:00",
		EndTime:   "10:00",
		Motive:    "Software Engineering lecture",
		Attendees: 15,
	}
}

// --- tests ---

func TestCreateReservation(t *testing.T) {
	svc, _ := newFixture(false)

	res, err := svc.Create(2, validInput())
	require.NoError(t, err)
	assert.Equal(t, models.ReservationStatusPending, res.Status)
	assert.Equal(t, uint(2), res.UserID)
	assert.NotZero(t, res.ID)
}

func TestCreateReservationAnonymousUsesDefaultIdentity(t *testing.T) {
	svc, _ := newFixture(true)

	res, err := svc.Create(0, validInput())
	require.NoError(t, err)
	// the oldest active user is the system default identity
	assert.Equal(t, uint(1), res.UserID)
}

func TestCreateReservationAnonymousRejectedWhenPolicyOff(t *testing.T) {
	svc, _ := newFixture(false)

	_, err := svc.Create(0, validInput())
	assert.ErrorIs(t, err, ErrAuthRequired)
}

func TestCreateReservationUnknownRoom(t *testing.T) {
	svc, _ := newFixture(false)

	in := validInput()
	in.RoomID = 99
	_, err := svc.Create(2, in)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateReservationOverlapRejected(t *testing.T) {
	svc, _ := newFixture(false)

	_, err := svc.Create(2, validInput())
	require.NoError(t, err)

	in := validInput()
	in.StartTime = "09:00"
	in.EndTime = "11:00"
	_, err = svc.Create(3, in)

	var fieldErrs booking.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs, booking.NonFieldErrors)
}

func TestCreateReservationBackToBackAccepted(t *testing.T) {
	svc, _ := newFixture(false)

	_, err := svc.Create(2, validInput())
	require.NoError(t, err)

	in := validInput()
	in.StartTime = "10:00"
	in.EndTime = "11:00"
	_, err = svc.Create(3, in)
	assert.NoError(t, err)
}

func TestCreateReservationAfterCancellationFreesSlot(t *testing.T) {
	svc, _ := newFixture(false)

	first, err := svc.Create(2, validInput())
	require.NoError(t, err)

	in := validInput()
	in.StartTime = "09:00"
	in.EndTime = "11:00"
	_, err = svc.Create(3, in)
	require.Error(t, err)

	_, err = svc.Cancel(first.ID, 2, models.RoleInstructor)
	require.NoError(t, err)

	_, err = svc.Create(3, in)
	assert.NoError(t, err)
}

func TestCreateReservationDuplicateKeyBecomesFieldErrors(t *testing.T) {
	svc, repo := newFixture(false)
	repo.writeErr = gorm.ErrDuplicatedKey

	_, err := svc.Create(2, validInput())

	var fieldErrs booking.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs, booking.NonFieldErrors)
}

func TestCancelAuthorization(t *testing.T) {
	svc, _ := newFixture(false)

	res, err := svc.Create(2, validInput())
	require.NoError(t, err)

	// a different instructor may not cancel
	_, err = svc.Cancel(res.ID, 3, models.RoleInstructor)
	assert.ErrorIs(t, err, ErrForbidden)

	// the owner may
	cancelled, err := svc.Cancel(res.ID, 2, models.RoleInstructor)
	require.NoError(t, err)
	assert.Equal(t, models.ReservationStatusCancelled, cancelled.Status)
}

func TestCancelByAdmin(t *testing.T) {
	svc, _ := newFixture(false)

	res, err := svc.Create(2, validInput())
	require.NoError(t, err)

	cancelled, err := svc.Cancel(res.ID, 1, models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, models.ReservationStatusCancelled, cancelled.Status)
}

func TestCancelIsIdempotent(t *testing.T) {
	svc, _ := newFixture(false)

	res, err := svc.Create(2, validInput())
	require.NoError(t, err)

	_, err = svc.Cancel(res.ID, 2, models.RoleInstructor)
	require.NoError(t, err)

	again, err := svc.Cancel(res.ID, 2, models.RoleInstructor)
	require.NoError(t, err)
	assert.Equal(t, models.ReservationStatusCancelled, again.Status)
}

func TestCancelCompletedRejected(t *testing.T) {
	svc, repo := newFixture(false)

	res, err := svc.Create(2, validInput())
	require.NoError(t, err)

	stored := repo.reservations[res.ID]
	stored.Status = models.ReservationStatusCompleted
	repo.reservations[res.ID] = stored

	_, err = svc.Cancel(res.ID, 2, models.RoleInstructor)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestConfirmRequiresAdmin(t *testing.T) {
	svc, _ := newFixture(false)

	res, err := svc.Create(2, validInput())
	require.NoError(t, err)

	_, err = svc.Confirm(res.ID, models.RoleInstructor)
	assert.ErrorIs(t, err, ErrForbidden)

	confirmed, err := svc.Confirm(res.ID, models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, models.ReservationStatusConfirmed, confirmed.Status)
}

func TestConfirmIsIdempotent(t *testing.T) {
	svc, _ := newFixture(false)

	res, err := svc.Create(2, validInput())
	require.NoError(t, err)

	_, err = svc.Confirm(res.ID, models.RoleAdmin)
	require.NoError(t, err)

	again, err := svc.Confirm(res.ID, models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, models.ReservationStatusConfirmed, again.Status)
}

func TestConfirmCancelledRejected(t *testing.T) {
	svc, _ := newFixture(false)

	res, err := svc.Create(2, validInput())
	require.NoError(t, err)

	_, err = svc.Cancel(res.ID, 2, models.RoleInstructor)
	require.NoError(t, err)

	_, err = svc.Confirm(res.ID, models.RoleAdmin)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestConfirmRechecksOverlap(t *testing.T) {
	svc, repo := newFixture(false)

	res, err := svc.Create(2, validInput())
	require.NoError(t, err)

	// another reservation was confirmed over the same slot since creation
	rival := models.Reservation{
		UserID:    3,
		RoomID:    1,
		Date:      "2025-06-01",
		StartTime: "09:00",
		EndTime:   "11:00",
		Status:    models.ReservationStatusConfirmed,
	}
	rival.ID = 99
	repo.reservations[rival.ID] = rival

	_, err = svc.Confirm(res.ID, models.RoleAdmin)

	var fieldErrs booking.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs, booking.NonFieldErrors)

	// the reservation stays pending
	stored, err := svc.Get(res.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReservationStatusPending, stored.Status)
}

func TestMineFiltersByOwner(t *testing.T) {
	svc, _ := newFixture(false)

	_, err := svc.Create(2, validInput())
	require.NoError(t, err)

	in := validInput()
	in.StartTime = "10:00"
	in.EndTime = "11:00"
	_, err = svc.Create(3, in)
	require.NoError(t, err)

	mine, err := svc.Mine(2)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, uint(2), mine[0].UserID)
}
