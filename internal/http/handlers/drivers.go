package handlers

import (
	"log"
	"net/http"
	"strconv"

	intconfig "backoffice/internal/config"
	"backoffice/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// GET /api/drivers
func GetDrivers(c *gin.Context) {
	rows, err := intconfig.DB.Query(`
		SELECT
			id_chofer,
			nombre_completo,
			COALESCE(licencia, ''),
			COALESCE(telefono, ''),
			activo
		FROM Chofer
		ORDER BY nombre_completo
	`)
	if err != nil {
		log.Println("GetDrivers query error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list drivers: " + err.Error()})
		return
	}
	defer rows.Close()

	drivers := []models.Driver{}
	for rows.Next() {
		var d models.Driver
		if err := rows.Scan(&d.ID, &d.FullName, &d.License, &d.Phone, &d.Active); err != nil {
			log.Println("GetDrivers scan error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read drivers: " + err.Error()})
			return
		}
		drivers = append(drivers, d)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read drivers: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, drivers)
}

// POST /api/drivers
func CreateDriver(c *gin.Context) {
	var input models.Driver
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if input.FullName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fullName is required"})
		return
	}

	res, err := intconfig.DB.Exec(`
		INSERT INTO Chofer (nombre_completo, licencia, telefono, activo)
		VALUES (?, ?, ?, 1)
	`, input.FullName, input.License, input.Phone)
	if err != nil {
		log.Println("CreateDriver insert error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create driver: " + err.Error()})
		return
	}

	input.ID, _ = res.LastInsertId()
	input.Active = true
	c.JSON(http.StatusCreated, input)
}

// PUT /api/drivers/:id
func UpdateDriver(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var input models.Driver
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	res, err := intconfig.DB.Exec(`
		UPDATE Chofer
		SET nombre_completo = ?, licencia = ?, telefono = ?, activo = ?
		WHERE id_chofer = ?
	`, input.FullName, input.License, input.Phone, input.Active, id)
	if err != nil {
		log.Println("UpdateDriver update error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update driver: " + err.Error()})
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "driver not found"})
		return
	}

	input.ID = id
	c.JSON(http.StatusOK, input)
}

// DELETE /api/drivers/:id
func DeleteDriver(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	res, err := intconfig.DB.Exec(`DELETE FROM Chofer WHERE id_chofer = ?`, id)
	if err != nil {
		log.Println("DeleteDriver delete error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete driver: " + err.Error()})
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "driver not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "driver deleted"})
}
