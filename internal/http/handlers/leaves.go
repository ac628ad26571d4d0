package handlers

import (
	"net/http"
	"strings"
	"time"

	"dispatchboard/internal/http/middleware"
	"dispatchboard/internal/repositories"
	"dispatchboard/internal/services"
	"dispatchboard/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/drivers/:id/leaves?month=YYYY-MM
func GetDriverLeaves(c *gin.Context) {
	driverID := strings.TrimSpace(c.Param("id"))

	ref := time.Now()
	if s := strings.TrimSpace(c.Query("month")); s != "" {
		m, err := utils.ParseMonth(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "month must be YYYY-MM"})
			return
		}
		ref = m
	}

	svc := services.LeaveService{
		LeaveRepo: repositories.LeaveRepository{},
		RequestID: middleware.GetRequestID(c),
	}
	_, days, err := svc.MonthLedger(driverID, ref)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	out := make([]string, 0, len(days))
	for _, d := range days {
		out = append(out, utils.FormatDate(d))
	}
	c.JSON(http.StatusOK, gin.H{
		"driverId": driverID,
		"month":    ref.Format("2006-01"),
		"days":     out,
	})
}

type toggleLeaveRequest struct {
	Date string `json:"date"`
}

// POST /api/drivers/:id/leaves/toggle
func ToggleDriverLeave(c *gin.Context) {
	driverID := strings.TrimSpace(c.Param("id"))

	var req toggleLeaveRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	day, err := utils.ParseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	svc := services.LeaveService{
		LeaveRepo: repositories.LeaveRepository{},
		RequestID: middleware.GetRequestID(c),
	}
	onLeave, err := svc.Toggle(driverID, day)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"driverId": driverID,
		"date":     utils.FormatDate(day),
		"onLeave":  onLeave,
	})
}
