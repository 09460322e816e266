// README: Vehicle registration tests (awards per type, validation).
package vehicle

import (
	"context"
	"errors"
	"testing"

	"greenroute/internal/modules/points"
	"greenroute/internal/types"
)

type fakeStore struct {
	vehicles map[types.ID][]Vehicle
	nextID   int
}

func (f *fakeStore) Add(_ context.Context, userID types.ID, v *Vehicle) (types.ID, error) {
	if f.vehicles == nil {
		f.vehicles = map[types.ID][]Vehicle{}
	}
	f.nextID++
	cp := *v
	cp.ID = types.ID(string(rune('0' + f.nextID)))
	f.vehicles[userID] = append(f.vehicles[userID], cp)
	return cp.ID, nil
}

func (f *fakeStore) ListByUser(_ context.Context, userID types.ID) ([]Vehicle, error) {
	return f.vehicles[userID], nil
}

type awardCall struct {
	userID types.ID
	pts    int
	reason string
}

type fakeAwarder struct {
	calls []awardCall
	err   error
}

func (f *fakeAwarder) Award(_ context.Context, userID types.ID, pts int, reason string) error {
	if f.err != nil {
		return f.err
	}
	f.calls = append(f.calls, awardCall{userID, pts, reason})
	return nil
}

func TestRegister_AwardsByType(t *testing.T) {
	tests := []struct {
		vehicleType points.VehicleType
		wantPoints  int
	}{
		{points.VehicleElectric, 100},
		{points.VehicleHybrid, 50},
		{points.VehicleFuelEfficient, 25},
		{points.VehicleStandard, 0},
		{points.VehicleType("steam"), 0},
	}
	for _, tt := range tests {
		t.Run(string(tt.vehicleType), func(t *testing.T) {
			awarder := &fakeAwarder{}
			svc := NewService(&fakeStore{}, awarder)
			res, err := svc.Register(context.Background(), RegisterCommand{
				UserID: "u1", Type: tt.vehicleType, Make: "Tesla", Model: "3", Year: 2024,
			})
			if err != nil {
				t.Fatalf("register: %v", err)
			}
			if res.PointsEarned != tt.wantPoints {
				t.Errorf("points earned = %d, want %d", res.PointsEarned, tt.wantPoints)
			}
			if tt.wantPoints > 0 {
				if len(awarder.calls) != 1 || awarder.calls[0].pts != tt.wantPoints {
					t.Errorf("expected one award of %d, got %+v", tt.wantPoints, awarder.calls)
				}
			} else if len(awarder.calls) != 0 {
				t.Errorf("zero score must not touch the ledger, got %+v", awarder.calls)
			}
		})
	}
}

func TestRegister_Validation(t *testing.T) {
	svc := NewService(&fakeStore{}, &fakeAwarder{})
	_, err := svc.Register(context.Background(), RegisterCommand{UserID: "u1", Type: points.VehicleElectric})
	if !errors.Is(err, ErrBadRequest) {
		t.Errorf("missing make/model: got %v, want ErrBadRequest", err)
	}
	_, err = svc.Register(context.Background(), RegisterCommand{Type: points.VehicleElectric, Make: "a", Model: "b"})
	if !errors.Is(err, ErrBadRequest) {
		t.Errorf("missing user: got %v, want ErrBadRequest", err)
	}
}

func TestRegister_AwardFailureSurfaces(t *testing.T) {
	awarder := &fakeAwarder{err: errors.New("transport down")}
	svc := NewService(&fakeStore{}, awarder)
	_, err := svc.Register(context.Background(), RegisterCommand{
		UserID: "u1", Type: points.VehicleElectric, Make: "Nissan", Model: "Leaf",
	})
	if err == nil {
		t.Fatal("award failure must surface to the caller")
	}
}
