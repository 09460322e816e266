// README: API gateway; registers HTTP routes and delegates to module services.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"greenroute/internal/http/handlers"
	"greenroute/internal/http/middleware"
	"greenroute/internal/infra"
	"greenroute/internal/modules/location"
	"greenroute/internal/modules/parking"
	"greenroute/internal/modules/points"
	"greenroute/internal/modules/ride"
	"greenroute/internal/modules/trip"
	"greenroute/internal/modules/vehicle"
)

type ServerDeps struct {
	Points    *points.Service
	Vehicles  *vehicle.Service
	Parking   *parking.Service
	Trips     *trip.Service
	Rides     *ride.Service
	Proximity *location.Service
	Geocoder  *location.Geocoder
	Verifier  infra.TokenVerifier
	Logger    *slog.Logger
}

func NewRouter(deps ServerDeps) http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.Logging(deps.Logger), middleware.Recovery(deps.Logger))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := r.Group("/api")
	api.Use(middleware.Auth(deps.Verifier))

	profileHandler := handlers.NewProfileHandler(deps.Points)
	api.GET("/profile", profileHandler.Get)
	api.PUT("/profile", profileHandler.Update)

	pointsHandler := handlers.NewPointsHandler(deps.Points)
	api.GET("/points", pointsHandler.Total)
	api.GET("/points/history", pointsHandler.History)
	api.POST("/points", pointsHandler.Award)

	vehicleHandler := handlers.NewVehicleHandler(deps.Vehicles)
	api.POST("/vehicles", vehicleHandler.Register)
	api.GET("/vehicles", vehicleHandler.List)

	parkingHandler := handlers.NewParkingHandler(deps.Parking)
	api.POST("/parking", parkingHandler.Log)
	api.GET("/parking", parkingHandler.History)

	tripHandler := handlers.NewTripHandler(deps.Trips)
	api.POST("/trips", tripHandler.Record)
	api.POST("/trips/:id/verify", tripHandler.Verify)
	api.GET("/trips", tripHandler.History)

	rideHandler := handlers.NewRideHandler(deps.Rides)
	api.POST("/rides", rideHandler.Offer)
	api.GET("/rides", rideHandler.List)
	api.GET("/rides/:id", rideHandler.Get)
	api.POST("/rides/:id/bookings", rideHandler.Book)
	api.POST("/rides/:id/complete", rideHandler.Complete)
	api.POST("/rides/:id/verify-location", rideHandler.VerifyLocation)

	locationHandler := handlers.NewLocationHandler(deps.Proximity, deps.Geocoder)
	api.POST("/location/arrival-check", locationHandler.CheckArrival)
	api.GET("/location/reverse-geocode", locationHandler.ReverseGeocode)

	return r
}
