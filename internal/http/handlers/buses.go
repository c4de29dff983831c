package handlers

import (
	"log"
	"net/http"
	"strconv"

	intconfig "backoffice/internal/config"
	"backoffice/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// GET /api/buses
func GetBuses(c *gin.Context) {
	rows, err := intconfig.DB.Query(`
		SELECT
			a.id_autobus,
			a.placa,
			COALESCE(a.modelo, ''),
			a.capacidad,
			COALESCE(a.id_clase, 0),
			COALESCE(cs.nombre, '')
		FROM Autobus a
		LEFT JOIN ClaseServicio cs ON a.id_clase = cs.id_clase
		ORDER BY a.placa
	`)
	if err != nil {
		log.Println("GetBuses query error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list buses: " + err.Error()})
		return
	}
	defer rows.Close()

	buses := []models.Bus{}
	for rows.Next() {
		var b models.Bus
		if err := rows.Scan(&b.ID, &b.Plate, &b.Model, &b.Capacity, &b.ClassID, &b.Class); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read buses: " + err.Error()})
			return
		}
		buses = append(buses, b)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read buses: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, buses)
}

// POST /api/buses
func CreateBus(c *gin.Context) {
	var input models.Bus
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if input.Plate == "" || input.Capacity < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "plate and a positive capacity are required"})
		return
	}

	var classID any
	if input.ClassID > 0 {
		classID = input.ClassID
	}

	res, err := intconfig.DB.Exec(`
		INSERT INTO Autobus (placa, modelo, capacidad, id_clase)
		VALUES (?, ?, ?, ?)
	`, input.Plate, input.Model, input.Capacity, classID)
	if err != nil {
		log.Println("CreateBus insert error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create bus: " + err.Error()})
		return
	}

	input.ID, _ = res.LastInsertId()
	c.JSON(http.StatusCreated, input)
}

// PUT /api/buses/:id
func UpdateBus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var input models.Bus
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if input.Capacity < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "capacity must be positive"})
		return
	}

	var classID any
	if input.ClassID > 0 {
		classID = input.ClassID
	}

	res, err := intconfig.DB.Exec(`
		UPDATE Autobus
		SET placa = ?, modelo = ?, capacidad = ?, id_clase = ?
		WHERE id_autobus = ?
	`, input.Plate, input.Model, input.Capacity, classID, id)
	if err != nil {
		log.Println("UpdateBus update error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update bus: " + err.Error()})
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "bus not found"})
		return
	}

	input.ID = id
	c.JSON(http.StatusOK, input)
}

// DELETE /api/buses/:id
func DeleteBus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	res, err := intconfig.DB.Exec(`DELETE FROM Autobus WHERE id_autobus = ?`, id)
	if err != nil {
		log.Println("DeleteBus delete error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete bus: " + err.Error()})
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "bus not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "bus deleted"})
}

// GET /api/service-classes
func GetServiceClasses(c *gin.Context) {
	rows, err := intconfig.DB.Query(`
		SELECT id_clase, nombre, COALESCE(recargo_fijo, 0), COALESCE(recargo_pct, 0)
		FROM ClaseServicio
		ORDER BY nombre
	`)
	if err != nil {
		log.Println("GetServiceClasses query error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list service classes: " + err.Error()})
		return
	}
	defer rows.Close()

	classes := []models.ServiceClass{}
	for rows.Next() {
		var sc models.ServiceClass
		if err := rows.Scan(&sc.ID, &sc.Name, &sc.FixedSurcharge, &sc.PctSurcharge); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read service classes: " + err.Error()})
			return
		}
		classes = append(classes, sc)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read service classes: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, classes)
}

// POST /api/service-classes
func CreateServiceClass(c *gin.Context) {
	var input models.ServiceClass
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if input.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	res, err := intconfig.DB.Exec(`
		INSERT INTO ClaseServicio (nombre, recargo_fijo, recargo_pct)
		VALUES (?, ?, ?)
	`, input.Name, input.FixedSurcharge, input.PctSurcharge)
	if err != nil {
		log.Println("CreateServiceClass insert error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create service class: " + err.Error()})
		return
	}

	input.ID, _ = res.LastInsertId()
	c.JSON(http.StatusCreated, input)
}
