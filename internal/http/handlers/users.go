package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	intconfig "backoffice/internal/config"
	"backoffice/internal/domain/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// GET /api/users
func GetUsers(c *gin.Context) {
	rows, err := intconfig.DB.Query(`
		SELECT id_usuario, nombre_completo, email, rol, activo
		FROM Usuario
		ORDER BY nombre_completo
	`)
	if err != nil {
		log.Println("GetUsers query error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list users: " + err.Error()})
		return
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.FullName, &u.Email, &u.Role, &u.Active); err != nil {
			log.Println("GetUsers scan error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read users: " + err.Error()})
			return
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		log.Println("GetUsers rows error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read users: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, users)
}

type createUserRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// POST /api/users
func CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = strings.TrimSpace(req.Email)
	if req.FullName == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fullName, email and password are required"})
		return
	}
	if len(req.Password) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password must be at least 6 characters"})
		return
	}
	role := req.Role
	if role == "" {
		role = models.RoleEmployee
	}

	var exists int
	if err := intconfig.DB.QueryRow(`SELECT COUNT(*) FROM Usuario WHERE email = ?`, req.Email).Scan(&exists); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check email: " + err.Error()})
		return
	}
	if exists > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
		return
	}

	res, err := intconfig.DB.Exec(`
		INSERT INTO Usuario (nombre_completo, email, password_hash, rol, activo)
		VALUES (?, ?, ?, ?, 1)
	`, req.FullName, req.Email, string(hash), role)
	if err != nil {
		log.Println("CreateUser insert error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user: " + err.Error()})
		return
	}

	id, _ := res.LastInsertId()
	c.JSON(http.StatusCreated, models.User{
		ID:       id,
		FullName: req.FullName,
		Email:    req.Email,
		Role:     role,
		Active:   true,
	})
}

type updateUserRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Active   *bool  `json:"active"`
}

// PUT /api/users/:id
func UpdateUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = strings.TrimSpace(req.Email)
	if req.FullName == "" || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fullName and email are required"})
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	res, err := intconfig.DB.Exec(`
		UPDATE Usuario
		SET nombre_completo = ?, email = ?, rol = ?, activo = ?
		WHERE id_usuario = ?
	`, req.FullName, req.Email, req.Role, active, id)
	if err != nil {
		log.Println("UpdateUser update error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update user: " + err.Error()})
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, models.User{ID: id, FullName: req.FullName, Email: req.Email, Role: req.Role, Active: active})
}

// PUT /api/users/:id/toggle
func ToggleUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	res, err := intconfig.DB.Exec(`UPDATE Usuario SET activo = NOT activo WHERE id_usuario = ?`, id)
	if err != nil {
		log.Println("ToggleUser update error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to toggle user: " + err.Error()})
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user status updated"})
}

type changePasswordRequest struct {
	NewPassword string `json:"newPassword"`
}

// PUT /api/users/:id/password
func ChangeUserPassword(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if len(req.NewPassword) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password must be at least 6 characters"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
		return
	}

	res, err := intconfig.DB.Exec(`UPDATE Usuario SET password_hash = ? WHERE id_usuario = ?`, string(hash), id)
	if err != nil {
		log.Println("ChangeUserPassword update error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to change password: " + err.Error()})
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}
