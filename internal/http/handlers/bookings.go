package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"dispatchboard/internal/domain"
	"dispatchboard/internal/domain/models"
	"dispatchboard/internal/repositories"
	"dispatchboard/internal/schedule"
	"dispatchboard/internal/utils"

	"github.com/gin-gonic/gin"
)

type bookingPayload struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title"`
	StartTime          string   `json:"startTime"`
	EndTime            string   `json:"endTime"`
	DriverID           string   `json:"driverId"`
	PartnerID          string   `json:"partnerId"`
	PassengersAdults   *int     `json:"passengersAdults"`
	PassengersKids     *int     `json:"passengersKids"`
	NumberOfPassengers *int     `json:"numberOfPassengers"`
	PaymentMethod      string   `json:"paymentMethod"`
	ClientPrice        *float64 `json:"clientPrice"`
	Deposit            *float64 `json:"deposit"`
	PaymentStatus      string   `json:"clientPaymentStatus"`
	PickupAddress      string   `json:"pickupAddress"`
	StopAddress        string   `json:"stopAddress"`
	DropoffAddress     string   `json:"dropoffAddress"`
	ClientName         string   `json:"clientName"`
	Notes              string   `json:"notes"`
	Color              string   `json:"color"`
}

func (p bookingPayload) toModel() (models.Booking, error) {
	start, err := utils.ParseDateTime(p.StartTime)
	if err != nil {
		return models.Booking{}, domain.ValidationError{Field: "startTime", Msg: "expected YYYY-MM-DD HH:MM:SS", Err: err}
	}

	b := models.Booking{
		ID:                  strings.TrimSpace(p.ID),
		Title:               strings.TrimSpace(p.Title),
		StartTime:           start,
		PassengersAdults:    p.PassengersAdults,
		PassengersKids:      p.PassengersKids,
		NumberOfPassengers:  p.NumberOfPassengers,
		PaymentMethod:       models.ParsePaymentMethod(p.PaymentMethod),
		ClientPrice:         p.ClientPrice,
		Deposit:             p.Deposit,
		ClientPaymentStatus: models.ParsePaymentStatus(p.PaymentStatus),
		PickupAddress:       strings.TrimSpace(p.PickupAddress),
		StopAddress:         strings.TrimSpace(p.StopAddress),
		DropoffAddress:      strings.TrimSpace(p.DropoffAddress),
		ClientName:          strings.TrimSpace(p.ClientName),
		Notes:               p.Notes,
		Color:               strings.TrimSpace(p.Color),
	}

	if s := strings.TrimSpace(p.EndTime); s != "" {
		end, err := utils.ParseDateTime(s)
		if err != nil {
			return models.Booking{}, domain.ValidationError{Field: "endTime", Msg: "expected YYYY-MM-DD HH:MM:SS", Err: err}
		}
		b.EndTime = &end
	}
	if s := strings.TrimSpace(p.DriverID); s != "" {
		b.DriverID = &s
	}
	if s := strings.TrimSpace(p.PartnerID); s != "" {
		b.PartnerID = &s
	}
	return b, nil
}

// GET /api/bookings?driver_id=&date=&unassigned=&q=
func GetBookings(c *gin.Context) {
	repo := repositories.BookingRepository{}
	all, err := repo.ListAll()
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	driverID := strings.TrimSpace(c.Query("driver_id"))
	query := c.Query("q")
	unassigned := strings.EqualFold(strings.TrimSpace(c.Query("unassigned")), "true")

	var day *time.Time
	if s := strings.TrimSpace(c.Query("date")); s != "" {
		d, err := utils.ParseDate(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		day = &d
	}

	if driverID != "" && day != nil {
		out := schedule.FilterSearch(schedule.DailyManifest(driverID, *day, all), query)
		c.JSON(http.StatusOK, out)
		return
	}

	out := make([]models.Booking, 0, len(all))
	for _, b := range all {
		if driverID != "" && (b.DriverID == nil || *b.DriverID != driverID) {
			continue
		}
		if unassigned && !b.IsUnassigned() {
			continue
		}
		if day != nil && !utils.SameDay(b.StartTime, *day) {
			continue
		}
		if !schedule.MatchesSearch(b, query) {
			continue
		}
		out = append(out, b)
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/bookings/:id
func GetBookingByID(c *gin.Context) {
	repo := repositories.BookingRepository{}
	b, err := repo.GetByID(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// POST /api/bookings
func CreateBooking(c *gin.Context) {
	var input bookingPayload
	if !BindJSONOrError(c, &input) {
		return
	}
	b, err := input.toModel()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if b.ID == "" {
		b.ID = fmt.Sprintf("bkg-%d", time.Now().UnixNano())
	}

	repo := repositories.BookingRepository{}
	if err := repo.Create(b); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// PUT /api/bookings/:id
func UpdateBooking(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	var input bookingPayload
	if !BindJSONOrError(c, &input) {
		return
	}
	b, err := input.toModel()
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	repo := repositories.BookingRepository{}
	if err := repo.Update(id, b); err != nil {
		RespondDomainError(c, err)
		return
	}
	b.ID = id
	c.JSON(http.StatusOK, b)
}

// DELETE /api/bookings/:id
func DeleteBooking(c *gin.Context) {
	repo := repositories.BookingRepository{}
	if err := repo.Delete(c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking deleted"})
}
