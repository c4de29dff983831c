package handlers

import (
	"log"
	"net/http"
	"strconv"

	intconfig "backoffice/internal/config"
	"backoffice/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// GET /api/routes
func GetRoutes(c *gin.Context) {
	rows, err := intconfig.DB.Query(`
		SELECT id_ruta, origen, destino, COALESCE(distancia_km, 0)
		FROM Ruta
		ORDER BY origen, destino
	`)
	if err != nil {
		log.Println("GetRoutes query error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list routes: " + err.Error()})
		return
	}
	defer rows.Close()

	routes := []models.Route{}
	for rows.Next() {
		var r models.Route
		if err := rows.Scan(&r.ID, &r.Origin, &r.Destination, &r.DistanceKM); err != nil {
			log.Println("GetRoutes scan error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read routes: " + err.Error()})
			return
		}
		routes = append(routes, r)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read routes: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, routes)
}

// GET /api/routes/:id/stops
func GetRouteStops(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	rows, err := intconfig.DB.Query(`
		SELECT id_parada, id_ruta, nombre, orden
		FROM Parada
		WHERE id_ruta = ?
		ORDER BY orden ASC
	`, id)
	if err != nil {
		log.Println("GetRouteStops query error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list stops: " + err.Error()})
		return
	}
	defer rows.Close()

	stops := []models.Stop{}
	for rows.Next() {
		var s models.Stop
		if err := rows.Scan(&s.ID, &s.RouteID, &s.Name, &s.Order); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read stops: " + err.Error()})
			return
		}
		stops = append(stops, s)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read stops: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, stops)
}

// POST /api/routes
func CreateRoute(c *gin.Context) {
	var input models.Route
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if input.Origin == "" || input.Destination == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "origin and destination are required"})
		return
	}

	res, err := intconfig.DB.Exec(`
		INSERT INTO Ruta (origen, destino, distancia_km)
		VALUES (?, ?, ?)
	`, input.Origin, input.Destination, input.DistanceKM)
	if err != nil {
		log.Println("CreateRoute insert error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create route: " + err.Error()})
		return
	}

	id, _ := res.LastInsertId()
	input.ID = id

	for i := range input.Stops {
		stop := &input.Stops[i]
		stop.RouteID = id
		stopRes, err := intconfig.DB.Exec(`
			INSERT INTO Parada (id_ruta, nombre, orden)
			VALUES (?, ?, ?)
		`, id, stop.Name, stop.Order)
		if err != nil {
			log.Println("CreateRoute stop insert error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create stop: " + err.Error()})
			return
		}
		stop.ID, _ = stopRes.LastInsertId()
	}

	c.JSON(http.StatusCreated, input)
}

// PUT /api/routes/:id
func UpdateRoute(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var input models.Route
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	res, err := intconfig.DB.Exec(`
		UPDATE Ruta
		SET origen = ?, destino = ?, distancia_km = ?
		WHERE id_ruta = ?
	`, input.Origin, input.Destination, input.DistanceKM, id)
	if err != nil {
		log.Println("UpdateRoute update error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update route: " + err.Error()})
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
		return
	}

	input.ID = id
	c.JSON(http.StatusOK, input)
}

// DELETE /api/routes/:id
func DeleteRoute(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	res, err := intconfig.DB.Exec(`DELETE FROM Ruta WHERE id_ruta = ?`, id)
	if err != nil {
		log.Println("DeleteRoute delete error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete route: " + err.Error()})
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "route deleted"})
}
