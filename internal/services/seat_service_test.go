package services

import (
	"reflect"
	"testing"

	"backoffice/internal/domain"
)

type fakeSeatStore struct {
	capacity    int
	capacityErr error
	seats       []int
	seatsErr    error
}

func (f fakeSeatStore) LookupTripCapacity(tripID int64) (int, error) {
	return f.capacity, f.capacityErr
}

func (f fakeSeatStore) LookupOccupiedSeats(tripID int64) ([]int, error) {
	return f.seats, f.seatsErr
}

func TestComputeAvailabilityDeduplicatesAndSorts(t *testing.T) {
	svc := SeatService{Store: fakeSeatStore{capacity: 40, seats: []int{3, 7, 7, 40}}}

	got, err := svc.ComputeAvailability(1)
	if err != nil {
		t.Fatalf("ComputeAvailability returned error: %v", err)
	}
	if !reflect.DeepEqual(got.Occupied, []int{3, 7, 40}) {
		t.Fatalf("occupied mismatch: %v", got.Occupied)
	}
	if len(got.Free) != 37 {
		t.Fatalf("free length mismatch: got %d want 37", len(got.Free))
	}
	for _, seat := range got.Free {
		if seat == 3 || seat == 7 || seat == 40 {
			t.Fatalf("free contains occupied seat %d", seat)
		}
	}
}

func TestComputeAvailabilityComplement(t *testing.T) {
	svc := SeatService{Store: fakeSeatStore{capacity: 12, seats: []int{1, 5, 12}}}

	got, err := svc.ComputeAvailability(1)
	if err != nil {
		t.Fatalf("ComputeAvailability returned error: %v", err)
	}

	union := map[int]bool{}
	for _, s := range got.Occupied {
		union[s] = true
	}
	for _, s := range got.Free {
		if union[s] {
			t.Fatalf("seat %d in both occupied and free", s)
		}
		union[s] = true
	}
	if len(union) != got.Capacity {
		t.Fatalf("occupied+free do not cover 1..capacity: %d seats covered of %d", len(union), got.Capacity)
	}
	for n := 1; n <= got.Capacity; n++ {
		if !union[n] {
			t.Fatalf("seat %d missing from occupied and free", n)
		}
	}
}

func TestComputeAvailabilityAllFree(t *testing.T) {
	svc := SeatService{Store: fakeSeatStore{capacity: 4}}

	got, err := svc.ComputeAvailability(1)
	if err != nil {
		t.Fatalf("ComputeAvailability returned error: %v", err)
	}
	if !reflect.DeepEqual(got.Free, []int{1, 2, 3, 4}) {
		t.Fatalf("free mismatch: %v", got.Free)
	}
	if len(got.Occupied) != 0 {
		t.Fatalf("occupied should be empty, got %v", got.Occupied)
	}
}

func TestComputeAvailabilityReportsOutOfRange(t *testing.T) {
	svc := SeatService{Store: fakeSeatStore{capacity: 10, seats: []int{0, 2, 11}}}

	got, err := svc.ComputeAvailability(1)
	if err != nil {
		t.Fatalf("ComputeAvailability returned error: %v", err)
	}
	if !reflect.DeepEqual(got.OutOfRange, []int{0, 11}) {
		t.Fatalf("out-of-range mismatch: %v", got.OutOfRange)
	}
	if !reflect.DeepEqual(got.Occupied, []int{2}) {
		t.Fatalf("occupied mismatch: %v", got.Occupied)
	}
	if len(got.Free) != 9 {
		t.Fatalf("free length mismatch: got %d want 9", len(got.Free))
	}
}

func TestComputeAvailabilityMissingTrip(t *testing.T) {
	svc := SeatService{Store: fakeSeatStore{
		capacityErr: domain.NotFoundError{Resource: "trip"},
	}}

	_, err := svc.ComputeAvailability(99)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFound for missing trip, got %v", err)
	}
}

func TestComputeAvailabilityBadCapacity(t *testing.T) {
	svc := SeatService{Store: fakeSeatStore{capacity: 0}}

	_, err := svc.ComputeAvailability(1)
	if !domain.IsDataIntegrity(err) {
		t.Fatalf("expected DataIntegrity for non-positive capacity, got %v", err)
	}
}

func TestComputeAvailabilityIdempotent(t *testing.T) {
	svc := SeatService{Store: fakeSeatStore{capacity: 8, seats: []int{2, 4}}}

	first, err := svc.ComputeAvailability(1)
	if err != nil {
		t.Fatalf("first call error: %v", err)
	}
	second, err := svc.ComputeAvailability(1)
	if err != nil {
		t.Fatalf("second call error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated calls differ: %v vs %v", first, second)
	}
}
