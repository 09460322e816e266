// README: HTTP tests for the ride completion and verification endpoints.
package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"greenroute/internal/http/handlers"
	"greenroute/internal/http/middleware"
	"greenroute/internal/infra"
	"greenroute/internal/modules/ride"
	"greenroute/internal/modules/trip"
	"greenroute/internal/types"
)

type fakeRideStore struct {
	rides map[types.ID]*ride.Ride
}

func newFakeRideStore() *fakeRideStore {
	return &fakeRideStore{rides: map[types.ID]*ride.Ride{}}
}

func (f *fakeRideStore) Get(_ context.Context, id types.ID) (*ride.Ride, error) {
	r, ok := f.rides[id]
	if !ok {
		return nil, ride.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRideStore) CreateOffer(_ context.Context, r *ride.Ride) (types.ID, error) {
	id := types.ID("ride-new")
	r.ID = id
	f.rides[id] = r
	return id, nil
}

func (f *fakeRideStore) CreateCompleted(_ context.Context, r *ride.Ride) error {
	f.rides[r.ID] = r
	return nil
}

func (f *fakeRideStore) MarkCompleted(_ context.Context, rideID, driverID types.ID) error {
	r, ok := f.rides[rideID]
	if !ok {
		return ride.ErrNotFound
	}
	if r.Status == ride.StatusCompleted {
		return ride.ErrAlreadyCompleted
	}
	now := time.Now()
	r.Status = ride.StatusCompleted
	r.CompletedBy = driverID
	r.CompletedAt = &now
	return nil
}

func (f *fakeRideStore) AddVerifiedPassenger(_ context.Context, rideID, passengerID types.ID) error {
	r, ok := f.rides[rideID]
	if !ok {
		return ride.ErrNotFound
	}
	if !r.HasVerified(passengerID) {
		r.PassengerVerified = append(r.PassengerVerified, passengerID)
	}
	return nil
}

func (f *fakeRideStore) Book(_ context.Context, rideID, passengerID types.ID) error {
	r, ok := f.rides[rideID]
	if !ok {
		return ride.ErrNotFound
	}
	if r.HasPassenger(passengerID) {
		return ride.ErrAlreadyBooked
	}
	if r.SeatsAvailable < 1 {
		return ride.ErrRideFull
	}
	r.PassengerIDs = append(r.PassengerIDs, passengerID)
	r.SeatsAvailable--
	return nil
}

func (f *fakeRideStore) ListOpen(_ context.Context) ([]ride.Ride, error) {
	var out []ride.Ride
	for _, r := range f.rides {
		if r.Status == ride.StatusActive {
			out = append(out, *r)
		}
	}
	return out, nil
}

type fakeTripRecorder struct {
	commands []trip.RecordCommand
}

func (f *fakeTripRecorder) Record(_ context.Context, cmd trip.RecordCommand) (*trip.RecordResult, error) {
	f.commands = append(f.commands, cmd)
	return &trip.RecordResult{TripID: types.ID("trip-" + cmd.UserID)}, nil
}

type fixedVerifier struct {
	uid string
}

func (v *fixedVerifier) VerifyIDToken(_ context.Context, _ string) (*infra.FirebaseToken, error) {
	return &infra.FirebaseToken{UID: v.uid, Claims: map[string]interface{}{}}, nil
}

func newRideRouter(uid string, store ride.Store, recorder ride.TripRecorder) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := ride.NewService(store, recorder)
	h := handlers.NewRideHandler(svc)
	r := gin.New()
	api := r.Group("/api")
	api.Use(middleware.Auth(&fixedVerifier{uid: uid}))
	api.POST("/rides/:id/complete", h.Complete)
	api.POST("/rides/:id/verify-location", h.VerifyLocation)
	api.POST("/rides/:id/bookings", h.Book)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer test-token")
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRideComplete_RecordsTrips(t *testing.T) {
	store := newFakeRideStore()
	store.rides["ride1"] = &ride.Ride{
		ID:            "ride1",
		DriverID:      "driver1",
		Status:        ride.StatusActive,
		DepartureTime: time.Now().Add(-time.Hour),
	}
	recorder := &fakeTripRecorder{}
	r := newRideRouter("driver1", store, recorder)

	w := doJSON(t, r, http.MethodPost, "/api/rides/ride1/complete",
		`{"passengerIds":["p1","p2"],"distanceKm":20}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var res ride.CompletionResult
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.DriverTripID == "" || res.DriverError != "" {
		t.Errorf("driver trip missing: %+v", res)
	}
	if len(res.PassengerResults) != 2 {
		t.Fatalf("expected 2 passenger results, got %d", len(res.PassengerResults))
	}
	if len(recorder.commands) != 3 {
		t.Fatalf("expected 3 trips recorded, got %d", len(recorder.commands))
	}
	if store.rides["ride1"].Status != ride.StatusCompleted {
		t.Errorf("ride not completed")
	}
}

func TestRideComplete_AlreadyCompletedIsConflict(t *testing.T) {
	store := newFakeRideStore()
	store.rides["ride1"] = &ride.Ride{ID: "ride1", DriverID: "driver1", Status: ride.StatusCompleted}
	r := newRideRouter("driver1", store, &fakeTripRecorder{})

	w := doJSON(t, r, http.MethodPost, "/api/rides/ride1/complete", `{"distanceKm":5}`)
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}
}

func TestVerifyLocation_NonParticipantIsConflict(t *testing.T) {
	store := newFakeRideStore()
	store.rides["ride1"] = &ride.Ride{
		ID:           "ride1",
		DriverID:     "driver1",
		Status:       ride.StatusActive,
		PassengerIDs: []types.ID{"p1"},
	}
	r := newRideRouter("stranger", store, &fakeTripRecorder{})

	w := doJSON(t, r, http.MethodPost, "/api/rides/ride1/verify-location", "")
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d: %s", w.Code, w.Body.String())
	}
}

func TestVerifyLocation_Idempotent(t *testing.T) {
	store := newFakeRideStore()
	store.rides["ride1"] = &ride.Ride{
		ID:           "ride1",
		DriverID:     "driver1",
		Status:       ride.StatusActive,
		PassengerIDs: []types.ID{"p1"},
	}
	r := newRideRouter("p1", store, &fakeTripRecorder{})

	w := doJSON(t, r, http.MethodPost, "/api/rides/ride1/verify-location", "")
	if w.Code != http.StatusOK {
		t.Fatalf("first verify: expected 200, got %d", w.Code)
	}
	w = doJSON(t, r, http.MethodPost, "/api/rides/ride1/verify-location", "")
	if w.Code != http.StatusOK {
		t.Fatalf("second verify: expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"alreadyVerified":true`) {
		t.Errorf("expected alreadyVerified flag: %s", w.Body.String())
	}
	if got := len(store.rides["ride1"].PassengerVerified); got != 1 {
		t.Errorf("verified set grew to %d", got)
	}
}

func TestBook_OwnRideIsConflict(t *testing.T) {
	store := newFakeRideStore()
	store.rides["ride1"] = &ride.Ride{
		ID:             "ride1",
		DriverID:       "driver1",
		Status:         ride.StatusActive,
		SeatsAvailable: 2,
	}
	r := newRideRouter("driver1", store, &fakeTripRecorder{})

	w := doJSON(t, r, http.MethodPost, "/api/rides/ride1/bookings", "")
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}
}
