package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	intconfig "backoffice/internal/config"
	"backoffice/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// GET /api/passengers?q=<name or document>
func GetPassengers(c *gin.Context) {
	query := `
		SELECT id_pasajero, nombre, COALESCE(documento, ''), COALESCE(telefono, ''), COALESCE(email, '')
		FROM Pasajero
	`
	args := []any{}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		query += " WHERE nombre LIKE ? OR documento LIKE ?"
		like := "%" + q + "%"
		args = append(args, like, like)
	}
	query += " ORDER BY nombre"

	rows, err := intconfig.DB.Query(query, args...)
	if err != nil {
		log.Println("GetPassengers query error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list passengers: " + err.Error()})
		return
	}
	defer rows.Close()

	passengers := []models.Passenger{}
	for rows.Next() {
		var p models.Passenger
		if err := rows.Scan(&p.ID, &p.FullName, &p.Document, &p.Phone, &p.Email); err != nil {
			log.Println("GetPassengers scan error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read passengers: " + err.Error()})
			return
		}
		passengers = append(passengers, p)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read passengers: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, passengers)
}

// POST /api/passengers
func CreatePassenger(c *gin.Context) {
	var input models.Passenger
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if strings.TrimSpace(input.FullName) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fullName is required"})
		return
	}

	res, err := intconfig.DB.Exec(`
		INSERT INTO Pasajero (nombre, documento, telefono, email)
		VALUES (?, ?, ?, ?)
	`, input.FullName, input.Document, input.Phone, input.Email)
	if err != nil {
		log.Println("CreatePassenger insert error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create passenger: " + err.Error()})
		return
	}

	input.ID, _ = res.LastInsertId()
	c.JSON(http.StatusCreated, input)
}

// PUT /api/passengers/:id
func UpdatePassenger(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var input models.Passenger
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	res, err := intconfig.DB.Exec(`
		UPDATE Pasajero
		SET nombre = ?, documento = ?, telefono = ?, email = ?
		WHERE id_pasajero = ?
	`, input.FullName, input.Document, input.Phone, input.Email, id)
	if err != nil {
		log.Println("UpdatePassenger update error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update passenger: " + err.Error()})
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "passenger not found"})
		return
	}

	input.ID = id
	c.JSON(http.StatusOK, input)
}

// DELETE /api/passengers/:id
func DeletePassenger(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	res, err := intconfig.DB.Exec(`DELETE FROM Pasajero WHERE id_pasajero = ?`, id)
	if err != nil {
		log.Println("DeletePassenger delete error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete passenger: " + err.Error()})
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "passenger not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "passenger deleted"})
}
