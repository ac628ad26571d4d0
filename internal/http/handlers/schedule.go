package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"dispatchboard/internal/http/middleware"
	"dispatchboard/internal/repositories"
	"dispatchboard/internal/schedule"
	"dispatchboard/internal/services"
	"dispatchboard/internal/utils"

	"github.com/gin-gonic/gin"
)

func viewUnit(c *gin.Context) schedule.ViewUnit {
	switch strings.ToLower(strings.TrimSpace(c.DefaultQuery("view", "month"))) {
	case "week":
		return schedule.UnitWeek
	case "day":
		return schedule.UnitDay
	default:
		return schedule.UnitMonth
	}
}

func refDate(c *gin.Context) (time.Time, bool) {
	s := strings.TrimSpace(c.Query("date"))
	if s == "" {
		return schedule.Today(time.Now()), true
	}
	d, err := utils.ParseDate(s)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return time.Time{}, false
	}
	return d, true
}

// GET /api/schedule?view=month|week|day&date=&driver_id=&start_hour=&row_height=
func GetSchedule(c *gin.Context) {
	ref, ok := refDate(c)
	if !ok {
		return
	}

	svc := services.ScheduleService{
		BookingRepo: repositories.BookingRepository{},
		LeaveRepo:   repositories.LeaveRepository{},
		RequestID:   middleware.GetRequestID(c),
	}
	if s := strings.TrimSpace(c.Query("start_hour")); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			svc.GridStartHour = v
		}
	}
	if s := strings.TrimSpace(c.Query("row_height")); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			svc.RowHeightPx = v
		}
	}

	view, err := svc.BuildView(viewUnit(c), ref, strings.TrimSpace(c.Query("driver_id")))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GET /api/schedule/header?view=&date=
func GetScheduleHeader(c *gin.Context) {
	ref, ok := refDate(c)
	if !ok {
		return
	}
	unit := viewUnit(c)
	c.JSON(http.StatusOK, gin.H{
		"view":  unit,
		"date":  utils.FormatDate(ref),
		"label": schedule.HeaderLabel(ref, unit),
	})
}

// GET /api/schedule/navigate?view=&date=&dir=1|-1
func NavigateSchedule(c *gin.Context) {
	ref, ok := refDate(c)
	if !ok {
		return
	}

	dir := 1
	if s := strings.TrimSpace(c.Query("dir")); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || (v != 1 && v != -1) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "dir must be 1 or -1"})
			return
		}
		dir = v
	}

	unit := viewUnit(c)
	next := schedule.Advance(ref, unit, dir)
	c.JSON(http.StatusOK, gin.H{
		"view":  unit,
		"date":  utils.FormatDate(next),
		"label": schedule.HeaderLabel(next, unit),
	})
}
