package handlers

import (
	"net/http"

	"dispatchboard/internal/http/middleware"
	"dispatchboard/internal/repositories"
	"dispatchboard/internal/services"

	"github.com/gin-gonic/gin"
)

func manifestService(c *gin.Context) services.ManifestService {
	return services.ManifestService{
		BookingRepo: repositories.BookingRepository{},
		DriverRepo:  repositories.DriverRepository{},
		RequestID:   middleware.GetRequestID(c),
	}
}

// GET /api/manifests/:driverId?date=&q=
func GetManifest(c *gin.Context) {
	day, ok := refDate(c)
	if !ok {
		return
	}

	svc := manifestService(c)
	manifest, err := svc.DailyManifest(c.Param("driverId"), day, c.Query("q"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, manifest)
}

// GET /api/manifests/:driverId/share-text?date=
func GetManifestShareText(c *gin.Context) {
	day, ok := refDate(c)
	if !ok {
		return
	}

	svc := manifestService(c)
	text, err := svc.ShareText(c.Param("driverId"), day)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.String(http.StatusOK, text)
}
