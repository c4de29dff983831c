package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"backoffice/internal/domain/models"
	"backoffice/internal/http/middleware"
	"backoffice/internal/repositories"
	"backoffice/internal/services"
	"backoffice/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/trips?date=YYYY-MM-DD (defaults to today)
func GetTrips(c *gin.Context) {
	date := strings.TrimSpace(c.Query("date"))
	if date == "" {
		date = utils.FormatDate(time.Now())
	} else if _, err := utils.ParseDate(date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	repo := repositories.TripRepository{}
	trips, err := repo.ListByDate(date)
	if err != nil {
		respondError(c, err, "failed to list trips")
		return
	}

	c.JSON(http.StatusOK, gin.H{"date": date, "trips": trips})
}

// GET /api/trips/:id
func GetTripByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	trip, err := repositories.TripRepository{}.GetByID(id)
	if err != nil {
		respondError(c, err, "failed to load trip")
		return
	}
	c.JSON(http.StatusOK, trip)
}

// POST /api/trips
func CreateTrip(c *gin.Context) {
	var input models.Trip
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if _, err := utils.ParseDateTime(input.Departure); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid departure, expected YYYY-MM-DD HH:MM:SS"})
		return
	}

	id, err := repositories.TripRepository{}.Create(input)
	if err != nil {
		respondError(c, err, "failed to create trip")
		return
	}
	input.ID = id
	c.JSON(http.StatusCreated, input)
}

// PUT /api/trips/:id
func UpdateTrip(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var input models.Trip
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	input.ID = id

	if err := (repositories.TripRepository{}).Update(input); err != nil {
		respondError(c, err, "failed to update trip")
		return
	}
	c.JSON(http.StatusOK, input)
}

// DELETE /api/trips/:id
func DeleteTrip(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := (repositories.TripRepository{}).Delete(id); err != nil {
		respondError(c, err, "failed to delete trip")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "trip deleted"})
}

// GET /api/trips/:id/seats
func GetTripSeats(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	svc := services.SeatService{
		Store:     repositories.TripRepository{},
		RequestID: middleware.GetRequestID(c),
	}
	availability, err := svc.ComputeAvailability(id)
	if err != nil {
		respondError(c, err, "failed to compute availability")
		return
	}
	c.JSON(http.StatusOK, availability)
}

// GET /api/trips/:id/fare
func GetTripFare(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	svc := services.FareService{
		Store:     repositories.FareRepository{},
		RequestID: middleware.GetRequestID(c),
	}
	quote, err := svc.ComputeFare(id)
	if err != nil {
		respondError(c, err, "failed to compute fare")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tripId":     id,
		"fareId":     quote.FareID,
		"finalPrice": quote.FinalPrice.InexactFloat64(),
	})
}
