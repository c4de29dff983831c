package handlers

import (
	"log"
	"net/http"
	"strconv"

	intconfig "backoffice/internal/config"
	"backoffice/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// GET /api/employees
func GetEmployees(c *gin.Context) {
	rows, err := intconfig.DB.Query(`
		SELECT
			id_empleado,
			nombre_completo,
			COALESCE(puesto, ''),
			COALESCE(telefono, ''),
			COALESCE(email, ''),
			activo
		FROM Empleado
		ORDER BY nombre_completo
	`)
	if err != nil {
		log.Println("GetEmployees query error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list employees: " + err.Error()})
		return
	}
	defer rows.Close()

	employees := []models.Employee{}
	for rows.Next() {
		var e models.Employee
		if err := rows.Scan(&e.ID, &e.FullName, &e.Position, &e.Phone, &e.Email, &e.Active); err != nil {
			log.Println("GetEmployees scan error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read employees: " + err.Error()})
			return
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read employees: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, employees)
}

// POST /api/employees
func CreateEmployee(c *gin.Context) {
	var input models.Employee
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if input.FullName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fullName is required"})
		return
	}

	res, err := intconfig.DB.Exec(`
		INSERT INTO Empleado (nombre_completo, puesto, telefono, email, activo)
		VALUES (?, ?, ?, ?, 1)
	`, input.FullName, input.Position, input.Phone, input.Email)
	if err != nil {
		log.Println("CreateEmployee insert error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create employee: " + err.Error()})
		return
	}

	input.ID, _ = res.LastInsertId()
	input.Active = true
	c.JSON(http.StatusCreated, input)
}

// PUT /api/employees/:id
func UpdateEmployee(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var input models.Employee
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	res, err := intconfig.DB.Exec(`
		UPDATE Empleado
		SET nombre_completo = ?, puesto = ?, telefono = ?, email = ?, activo = ?
		WHERE id_empleado = ?
	`, input.FullName, input.Position, input.Phone, input.Email, input.Active, id)
	if err != nil {
		log.Println("UpdateEmployee update error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update employee: " + err.Error()})
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
		return
	}

	input.ID = id
	c.JSON(http.StatusOK, input)
}

// DELETE /api/employees/:id
func DeleteEmployee(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	res, err := intconfig.DB.Exec(`DELETE FROM Empleado WHERE id_empleado = ?`, id)
	if err != nil {
		log.Println("DeleteEmployee delete error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete employee: " + err.Error()})
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "employee deleted"})
}
