package handlers

import (
	"net/http"

	"dispatchboard/internal/http/middleware"
	"dispatchboard/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/manifests/:driverId/pdf?date=
func GetManifestPDF(c *gin.Context) {
	day, ok := refDate(c)
	if !ok {
		return
	}

	svc := services.DocsService{
		Manifests: manifestService(c),
		RequestID: middleware.GetRequestID(c),
	}
	pdf, filename, err := svc.GenerateManifestPDF(c.Param("driverId"), day)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
