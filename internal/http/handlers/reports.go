package handlers

import (
	"net/http"

	"dispatchboard/internal/repositories"
	"dispatchboard/internal/services"

	"github.com/gin-gonic/gin"
)

func reportsService() services.ReportsService {
	return services.ReportsService{
		BookingRepo: repositories.BookingRepository{},
		DriverRepo:  repositories.DriverRepository{},
	}
}

// GET /api/reports/drivers
func GetDriverReports(c *gin.Context) {
	reports, err := reportsService().AllDriverSummaries()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

// GET /api/reports/drivers/:id/summary
func GetDriverSummary(c *gin.Context) {
	summary, err := reportsService().DriverSummary(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
