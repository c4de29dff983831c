package handlers

import (
	"net/http"
	"strconv"

	"backoffice/internal/domain/models"
	"backoffice/internal/repositories"
	"backoffice/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/fares
func GetFares(c *gin.Context) {
	fares, err := (repositories.FareRepository{}).ListFares()
	if err != nil {
		respondError(c, err, "failed to list fares")
		return
	}
	c.JSON(http.StatusOK, fares)
}

func validateFare(f models.Fare) string {
	if f.RouteID < 1 {
		return "routeId is required"
	}
	if f.BasePrice < 0 || f.Tax < 0 {
		return "basePrice and tax must be non-negative"
	}
	if _, err := utils.ParseDate(f.ValidFrom); err != nil {
		return "invalid validFrom, expected YYYY-MM-DD"
	}
	if f.ValidTo != nil {
		if _, err := utils.ParseDate(*f.ValidTo); err != nil {
			return "invalid validTo, expected YYYY-MM-DD"
		}
		if f.ValidFrom > *f.ValidTo {
			return "validity window starts after it ends"
		}
	}
	return ""
}

// POST /api/fares
func CreateFare(c *gin.Context) {
	var input models.Fare
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if msg := validateFare(input); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	id, err := (repositories.FareRepository{}).CreateFare(input)
	if err != nil {
		respondError(c, err, "failed to create fare")
		return
	}
	input.ID = id
	c.JSON(http.StatusCreated, input)
}

// PUT /api/fares/:id
func UpdateFare(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var input models.Fare
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if msg := validateFare(input); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	input.ID = id

	if err := (repositories.FareRepository{}).UpdateFare(input); err != nil {
		respondError(c, err, "failed to update fare")
		return
	}
	c.JSON(http.StatusOK, input)
}

// DELETE /api/fares/:id
func DeleteFare(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := (repositories.FareRepository{}).DeleteFare(id); err != nil {
		respondError(c, err, "failed to delete fare")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "fare deleted"})
}
