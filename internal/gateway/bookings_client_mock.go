package gateway

import (
	"context"
	"sync"
)

// BookingsClientMock records forwarded payloads instead of calling the
// reservations API. Err, when set, fails every submission.
type BookingsClientMock struct {
	mu sync.Mutex

	Err error

	attempts        int
	BikeBookings    []any
	VehicleBookings []any
	Contacts        []any
}

func (m *BookingsClientMock) SubmitBikeBooking(_ context.Context, payload any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.attempts++
	if m.Err != nil {
		return m.Err
	}
	m.BikeBookings = append(m.BikeBookings, payload)
	return nil
}

func (m *BookingsClientMock) SubmitVehicleBooking(_ context.Context, payload any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.attempts++
	if m.Err != nil {
		return m.Err
	}
	m.VehicleBookings = append(m.VehicleBookings, payload)
	return nil
}

func (m *BookingsClientMock) SubmitContact(_ context.Context, payload any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.attempts++
	if m.Err != nil {
		return m.Err
	}
	m.Contacts = append(m.Contacts, payload)
	return nil
}

// Calls is the number of outbound requests issued, accepted or not.
func (m *BookingsClientMock) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.attempts
}
