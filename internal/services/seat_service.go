package services

import (
	"fmt"
	"sort"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/utils"
)

// SeatStore is the read capability the availability resolver needs.
// Implemented by repositories.TripRepository; tests plug in fakes.
type SeatStore interface {
	LookupTripCapacity(tripID int64) (int, error)
	LookupOccupiedSeats(tripID int64) ([]int, error)
}

// SeatService derives the advisory seat map for a trip. It does not reserve
// anything; seat exclusivity is enforced by the conditional insert at sale
// time.
type SeatService struct {
	Store     SeatStore
	RequestID string
}

// ComputeAvailability resolves capacity and occupied seats and returns the
// free seats as the complement within 1..capacity. Duplicate seat numbers are
// collapsed; numbers outside [1, capacity] are reported in OutOfRange instead
// of being silently dropped.
func (s SeatService) ComputeAvailability(tripID int64) (models.SeatAvailability, error) {
	var out models.SeatAvailability

	capacity, err := s.Store.LookupTripCapacity(tripID)
	if err != nil {
		return out, err
	}
	if capacity < 1 {
		return out, domain.DataIntegrityError{
			Resource: "bus",
			Msg:      fmt.Sprintf("capacity %d is not positive", capacity),
		}
	}

	seats, err := s.Store.LookupOccupiedSeats(tripID)
	if err != nil {
		return out, err
	}

	seen := map[int]bool{}
	occupied := []int{}
	outOfRange := []int{}
	for _, seat := range seats {
		if seen[seat] {
			continue
		}
		seen[seat] = true
		if seat < 1 || seat > capacity {
			outOfRange = append(outOfRange, seat)
			continue
		}
		occupied = append(occupied, seat)
	}
	sort.Ints(occupied)
	sort.Ints(outOfRange)

	free := make([]int, 0, capacity-len(occupied))
	for n := 1; n <= capacity; n++ {
		if !seen[n] {
			free = append(free, n)
		}
	}

	out.TripID = tripID
	out.Capacity = capacity
	out.Occupied = occupied
	out.Free = free
	out.OutOfRange = outOfRange

	utils.LogEvent(s.RequestID, "seats", "availability",
		fmt.Sprintf("trip_id=%d capacity=%d occupied=%d free=%d", tripID, capacity, len(occupied), len(free)))
	return out, nil
}
