package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	intconfig "dispatchboard/internal/config"
	"dispatchboard/internal/domain/models"

	"github.com/gin-gonic/gin"
)

type driverPayload struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// GET /api/drivers
func GetDrivers(c *gin.Context) {
	rows, err := intconfig.DB.Query(`
		SELECT
			id,
			COALESCE(name, ''),
			COALESCE(role, ''),
			COALESCE(phone, ''),
			COALESCE(email, '')
		FROM drivers
		ORDER BY name ASC, id ASC
	`)
	if err != nil {
		log.Println("GetDrivers query error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load drivers: " + err.Error()})
		return
	}
	defer rows.Close()

	drivers := []models.Driver{}
	for rows.Next() {
		var d models.Driver
		var role string
		if err := rows.Scan(&d.ID, &d.Name, &role, &d.Phone, &d.Email); err != nil {
			log.Println("GetDrivers scan error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read drivers: " + err.Error()})
			return
		}
		if parsed, ok := models.ParseDriverRole(role); ok {
			d.Role = parsed
		}
		drivers = append(drivers, d)
	}

	if err := rows.Err(); err != nil {
		log.Println("GetDrivers rows error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read drivers: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, drivers)
}

// POST /api/drivers
func CreateDriver(c *gin.Context) {
	var input driverPayload
	if !BindJSONOrError(c, &input) {
		return
	}

	role, ok := models.ParseDriverRole(input.Role)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "role must be ADMIN, DRIVER or PARTNER"})
		return
	}
	if strings.TrimSpace(input.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name must not be empty"})
		return
	}

	id := strings.TrimSpace(input.ID)
	if id == "" {
		id = fmt.Sprintf("drv-%d", time.Now().UnixNano())
	}

	if _, err := intconfig.DB.Exec(`
		INSERT INTO drivers (id, name, role, phone, email)
		VALUES (?, ?, ?, ?, ?)
	`, id, strings.TrimSpace(input.Name), string(role), input.Phone, input.Email); err != nil {
		log.Println("CreateDriver insert error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create driver: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, models.Driver{
		ID:    id,
		Name:  strings.TrimSpace(input.Name),
		Role:  role,
		Phone: input.Phone,
		Email: input.Email,
	})
}

// PUT /api/drivers/:id
func UpdateDriver(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var input driverPayload
	if !BindJSONOrError(c, &input) {
		return
	}
	role, ok := models.ParseDriverRole(input.Role)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "role must be ADMIN, DRIVER or PARTNER"})
		return
	}

	res, err := intconfig.DB.Exec(`
		UPDATE drivers
		SET name = ?, role = ?, phone = ?, email = ?
		WHERE id = ?
	`, strings.TrimSpace(input.Name), string(role), input.Phone, input.Email, id)
	if err != nil {
		log.Println("UpdateDriver update error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update driver: " + err.Error()})
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists int
		if err := intconfig.DB.QueryRow(`SELECT COUNT(*) FROM drivers WHERE id = ?`, id).Scan(&exists); err == nil && exists == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "driver not found"})
			return
		}
	}

	c.JSON(http.StatusOK, models.Driver{
		ID:    id,
		Name:  strings.TrimSpace(input.Name),
		Role:  role,
		Phone: input.Phone,
		Email: input.Email,
	})
}

// DELETE /api/drivers/:id
func DeleteDriver(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	res, err := intconfig.DB.Exec(`DELETE FROM drivers WHERE id = ?`, id)
	if err != nil {
		log.Println("DeleteDriver delete error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete driver: " + err.Error()})
		return
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "driver not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "driver deleted"})
}
