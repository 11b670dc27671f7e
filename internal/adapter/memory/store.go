// Package memory provides mutex-guarded in-memory implementations of the
// repository, session and cache ports. It backs local development with
// DB_DRIVER=memory and the service and handler tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/sm8ta/salon_dealership_service/internal/core/domain"
	"github.com/sm8ta/salon_dealership_service/internal/core/ports"
)

type Store struct {
	mu      sync.RWMutex
	nextID  int64
	now     func() time.Time
	cars    map[int64]*domain.Car
	users   map[int64]*domain.User
	rentals map[int64]*domain.Rental
	salons  map[int64]*domain.Salon
}

var (
	_ ports.CarRepository    = (*Store)(nil)
	_ ports.UserRepository   = (*Store)(nil)
	_ ports.RentalRepository = (*Store)(nil)
	_ ports.SalonRepository  = (*Store)(nil)
)

func NewStore() *Store {
	return &Store{
		nextID:  1,
		now:     time.Now,
		cars:    make(map[int64]*domain.Car),
		users:   make(map[int64]*domain.User),
		rentals: make(map[int64]*domain.Rental),
		salons:  make(map[int64]*domain.Salon),
	}
}

func (s *Store) nextIDLocked() int64 {
	id := s.nextID
	s.nextID++
	return id
}

func cloneCar(c *domain.Car) *domain.Car {
	cp := *c
	if c.HorsePower != nil {
		hp := *c.HorsePower
		cp.HorsePower = &hp
	}
	cp.OwnerID = cloneID(c.OwnerID)
	cp.RenterID = cloneID(c.RenterID)
	cp.SalonID = cloneID(c.SalonID)
	return &cp
}

func cloneID(id *int64) *int64 {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

func cloneUser(u *domain.User) *domain.User {
	cp := *u
	return &cp
}

// Cars ------------------------------------------------------------------------

func (s *Store) CreateCar(_ context.Context, car *domain.Car) (*domain.Car, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.cars {
		if existing.VIN == car.VIN {
			return nil, domain.ErrVINTaken
		}
	}
	if car.SalonID != nil {
		if _, ok := s.salons[*car.SalonID]; !ok {
			return nil, domain.ErrSalonNotFound
		}
	}

	stored := cloneCar(car)
	stored.ID = s.nextIDLocked()
	stored.OwnerID, stored.RenterID = nil, nil
	stored.CreatedAt = s.now()
	stored.UpdatedAt = stored.CreatedAt
	s.cars[stored.ID] = stored
	return cloneCar(stored), nil
}

func (s *Store) GetCarByID(_ context.Context, carID int64) (*domain.Car, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	car, ok := s.cars[carID]
	if !ok {
		return nil, domain.ErrCarNotFound
	}
	return cloneCar(car), nil
}

func (s *Store) ListCars(_ context.Context, filter domain.CarFilter) ([]*domain.Car, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cars := []*domain.Car{}
	for _, car := range s.cars {
		if filter.Matches(car) {
			cars = append(cars, cloneCar(car))
		}
	}
	sort.Slice(cars, func(i, j int) bool { return cars[i].ID < cars[j].ID })
	return paginate(cars, filter.Limit, filter.Offset), nil
}

func paginate[T any](items []T, limit, offset int) []T {
	if limit <= 0 {
		return items
	}
	if offset >= len(items) {
		return items[:0]
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

func (s *Store) ListCarsByUser(_ context.Context, userID int64) ([]*domain.Car, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cars := []*domain.Car{}
	for _, car := range s.cars {
		if (car.OwnerID != nil && *car.OwnerID == userID) || car.RentedBy(userID) {
			cars = append(cars, cloneCar(car))
		}
	}
	sort.Slice(cars, func(i, j int) bool { return cars[i].ID < cars[j].ID })
	return cars, nil
}

func (s *Store) UpdateCar(_ context.Context, car *domain.Car) (*domain.Car, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.cars[car.ID]
	if !ok {
		return nil, domain.ErrCarNotFound
	}
	for id, existing := range s.cars {
		if id != car.ID && existing.VIN == car.VIN {
			return nil, domain.ErrVINTaken
		}
	}
	if car.SalonID != nil {
		if _, ok := s.salons[*car.SalonID]; !ok {
			return nil, domain.ErrSalonNotFound
		}
	}

	stored.Brand = car.Brand
	stored.Model = car.Model
	stored.Year = car.Year
	stored.VIN = car.VIN
	stored.Price = car.Price
	if car.HorsePower != nil {
		hp := *car.HorsePower
		stored.HorsePower = &hp
	} else {
		stored.HorsePower = nil
	}
	if stored.OwnerID == nil && stored.RenterID == nil {
		stored.IsAvailableForRent = car.IsAvailableForRent
	}
	stored.SalonID = cloneID(car.SalonID)
	stored.UpdatedAt = s.now()
	return cloneCar(stored), nil
}

func (s *Store) DeleteCar(_ context.Context, carID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cars[carID]; !ok {
		return domain.ErrCarNotFound
	}
	delete(s.cars, carID)
	for id, rental := range s.rentals {
		if rental.CarID == carID {
			delete(s.rentals, id)
		}
	}
	return nil
}

func (s *Store) RentCar(_ context.Context, carID, renterID int64) (*domain.Car, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	car, ok := s.cars[carID]
	if !ok {
		return nil, domain.ErrCarNotFound
	}
	if car.State() != domain.CarAvailable {
		return nil, domain.ErrCarUnavailable
	}
	car.IsAvailableForRent = false
	car.RenterID = &renterID
	car.UpdatedAt = s.now()
	return cloneCar(car), nil
}

func (s *Store) ReturnCar(_ context.Context, carID, renterID int64) (*domain.Car, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	car, ok := s.cars[carID]
	if !ok {
		return nil, domain.ErrCarNotFound
	}
	if car.RenterID == nil {
		return nil, domain.ErrCarAlreadyReturned
	}
	if *car.RenterID != renterID {
		return nil, domain.ErrNotRenter
	}
	car.IsAvailableForRent = true
	car.RenterID = nil
	car.UpdatedAt = s.now()
	return cloneCar(car), nil
}

func (s *Store) BuyCar(_ context.Context, carID, ownerID int64) (*domain.Car, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	car, ok := s.cars[carID]
	if !ok {
		return nil, domain.ErrCarNotFound
	}
	if car.State() != domain.CarAvailable {
		return nil, domain.ErrCarUnavailable
	}
	car.IsAvailableForRent = false
	car.OwnerID = &ownerID
	car.UpdatedAt = s.now()
	return cloneCar(car), nil
}

// Users -----------------------------------------------------------------------

func (s *Store) CreateUser(_ context.Context, user *domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == user.Username {
			return nil, domain.ErrUsernameTaken
		}
	}

	stored := cloneUser(user)
	stored.ID = s.nextIDLocked()
	stored.CreatedAt = s.now()
	stored.UpdatedAt = stored.CreatedAt
	s.users[stored.ID] = stored
	return cloneUser(stored), nil
}

func (s *Store) GetUserByID(_ context.Context, userID int64) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(user), nil
}

func (s *Store) GetUserByUsername(_ context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			return cloneUser(user), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *Store) ListCustomers(_ context.Context) ([]*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := []*domain.User{}
	for _, user := range s.users {
		if !user.IsDealer {
			users = append(users, cloneUser(user))
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (s *Store) UpdateUser(_ context.Context, user *domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.users[user.ID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	for id, existing := range s.users {
		if id != user.ID && existing.Username == user.Username {
			return nil, domain.ErrUsernameTaken
		}
	}

	stored.Username = user.Username
	stored.PasswordHash = user.PasswordHash
	stored.FirstName = user.FirstName
	stored.LastName = user.LastName
	stored.UpdatedAt = s.now()
	return cloneUser(stored), nil
}

func (s *Store) DeleteUser(_ context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[userID]; !ok {
		return domain.ErrUserNotFound
	}
	for _, car := range s.cars {
		if car.RentedBy(userID) {
			car.RenterID = nil
			car.IsAvailableForRent = true
		}
		if car.OwnerID != nil && *car.OwnerID == userID {
			car.OwnerID = nil
		}
	}
	for id, rental := range s.rentals {
		if rental.UserID == userID {
			delete(s.rentals, id)
		}
	}
	delete(s.users, userID)
	return nil
}

// Rentals ---------------------------------------------------------------------

func (s *Store) CreateRental(_ context.Context, rental *domain.Rental) (*domain.Rental, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cars[rental.CarID]; !ok {
		return nil, domain.ErrCarNotFound
	}
	if _, ok := s.users[rental.UserID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	for _, existing := range s.rentals {
		if existing.CarID == rental.CarID && existing.Overlaps(rental.StartDate, rental.EndDate) {
			return nil, domain.ErrRentalOverlap
		}
	}

	stored := *rental
	stored.ID = s.nextIDLocked()
	stored.CreatedAt = s.now()
	s.rentals[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (s *Store) GetRentalByID(_ context.Context, rentalID int64) (*domain.Rental, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rental, ok := s.rentals[rentalID]
	if !ok {
		return nil, domain.ErrRentalNotFound
	}
	out := *rental
	return &out, nil
}

func (s *Store) ListRentals(_ context.Context, carID *int64) ([]*domain.Rental, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rentals := []*domain.Rental{}
	for _, rental := range s.rentals {
		if carID != nil && rental.CarID != *carID {
			continue
		}
		out := *rental
		rentals = append(rentals, &out)
	}
	sort.Slice(rentals, func(i, j int) bool {
		if !rentals[i].StartDate.Equal(rentals[j].StartDate) {
			return rentals[i].StartDate.Before(rentals[j].StartDate)
		}
		return rentals[i].ID < rentals[j].ID
	})
	return rentals, nil
}

func (s *Store) DeleteRental(_ context.Context, rentalID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rentals[rentalID]; !ok {
		return domain.ErrRentalNotFound
	}
	delete(s.rentals, rentalID)
	return nil
}

// Salons ----------------------------------------------------------------------

func (s *Store) CreateSalon(_ context.Context, salon *domain.Salon) (*domain.Salon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := &domain.Salon{ID: s.nextIDLocked(), Name: salon.Name, Location: salon.Location}
	s.salons[stored.ID] = stored
	out := *stored
	return &out, nil
}

func (s *Store) GetSalonByID(_ context.Context, salonID int64) (*domain.Salon, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	salon, ok := s.salons[salonID]
	if !ok {
		return nil, domain.ErrSalonNotFound
	}
	out := *salon
	return &out, nil
}

func (s *Store) ListSalons(_ context.Context) ([]*domain.Salon, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	salons := []*domain.Salon{}
	for _, salon := range s.salons {
		out := *salon
		salons = append(salons, &out)
	}
	sort.Slice(salons, func(i, j int) bool { return salons[i].ID < salons[j].ID })
	return salons, nil
}

func (s *Store) UpdateSalon(_ context.Context, salon *domain.Salon) (*domain.Salon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.salons[salon.ID]
	if !ok {
		return nil, domain.ErrSalonNotFound
	}
	stored.Name = salon.Name
	stored.Location = salon.Location
	out := *stored
	return &out, nil
}

func (s *Store) DeleteSalon(_ context.Context, salonID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.salons[salonID]; !ok {
		return domain.ErrSalonNotFound
	}
	for _, car := range s.cars {
		if car.SalonID != nil && *car.SalonID == salonID {
			car.SalonID = nil
		}
	}
	delete(s.salons, salonID)
	return nil
}
