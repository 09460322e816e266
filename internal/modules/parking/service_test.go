// README: Parking service tests (efficient vs standard, validation).
package parking

import (
	"context"
	"errors"
	"testing"

	"greenroute/internal/modules/points"
	"greenroute/internal/types"
)

type fakeStore struct {
	records map[types.ID]map[types.ID]*Record
	nextID  int
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: map[types.ID]map[types.ID]*Record{}}
}

func (f *fakeStore) Add(_ context.Context, userID types.ID, r *Record) (types.ID, error) {
	f.nextID++
	id := types.ID(string(rune('0' + f.nextID)))
	cp := *r
	cp.ID = id
	if f.records[userID] == nil {
		f.records[userID] = map[types.ID]*Record{}
	}
	f.records[userID][id] = &cp
	return id, nil
}

func (f *fakeStore) SetPointsAwarded(_ context.Context, userID, recordID types.ID, pts int) error {
	r, ok := f.records[userID][recordID]
	if !ok {
		return errors.New("record not found")
	}
	r.PointsAwarded = pts
	return nil
}

func (f *fakeStore) ListByUser(_ context.Context, userID types.ID) ([]Record, error) {
	var out []Record
	for _, r := range f.records[userID] {
		out = append(out, *r)
	}
	return out, nil
}

type fakeAwarder struct {
	total int
	calls int
}

func (f *fakeAwarder) Award(_ context.Context, _ types.ID, pts int, _ string) error {
	f.total += pts
	f.calls++
	return nil
}

func TestLog_EfficientAwardsTen(t *testing.T) {
	store := newFakeStore()
	awarder := &fakeAwarder{}
	svc := NewService(store, awarder)

	res, err := svc.Log(context.Background(), LogCommand{
		UserID: "u1", Type: points.ParkingEfficient, Location: "Central Garage",
		DurationMinutes: 90, Date: "2026-08-28",
	})
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	if res.PointsEarned != 10 {
		t.Errorf("points earned = %d, want 10", res.PointsEarned)
	}
	if awarder.total != 10 || awarder.calls != 1 {
		t.Errorf("awarder got %d points over %d calls, want 10 over 1", awarder.total, awarder.calls)
	}
	if got := store.records["u1"][res.RecordID].PointsAwarded; got != 10 {
		t.Errorf("record pointsAwarded = %d, want 10", got)
	}
}

func TestLog_StandardAwardsNothing(t *testing.T) {
	store := newFakeStore()
	awarder := &fakeAwarder{}
	svc := NewService(store, awarder)

	res, err := svc.Log(context.Background(), LogCommand{
		UserID: "u1", Type: points.ParkingStandard, Location: "Street",
	})
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	if res.PointsEarned != 0 {
		t.Errorf("points earned = %d, want 0", res.PointsEarned)
	}
	if awarder.calls != 0 {
		t.Errorf("standard parking must not touch the ledger, got %d calls", awarder.calls)
	}
	if got := store.records["u1"][res.RecordID].PointsAwarded; got != 0 {
		t.Errorf("record pointsAwarded = %d, want 0", got)
	}
}

func TestLog_Validation(t *testing.T) {
	svc := NewService(newFakeStore(), &fakeAwarder{})
	cases := []LogCommand{
		{Type: points.ParkingEfficient, Location: "x"},
		{UserID: "u1", Location: "x"},
		{UserID: "u1", Type: points.ParkingEfficient},
		{UserID: "u1", Type: points.ParkingEfficient, Location: "x", DurationMinutes: -5},
	}
	for i, cmd := range cases {
		if _, err := svc.Log(context.Background(), cmd); !errors.Is(err, ErrBadRequest) {
			t.Errorf("case %d: got %v, want ErrBadRequest", i, err)
		}
	}
}
