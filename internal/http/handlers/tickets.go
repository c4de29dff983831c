package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"backoffice/internal/http/middleware"
	"backoffice/internal/repositories"
	"backoffice/internal/services"
	"backoffice/internal/utils"

	"github.com/gin-gonic/gin"
)

func ticketService(c *gin.Context) services.TicketService {
	reqID := middleware.GetRequestID(c)
	return services.TicketService{
		Fare:      services.FareService{Store: repositories.FareRepository{}, RequestID: reqID},
		Seats:     services.SeatService{Store: repositories.TripRepository{}, RequestID: reqID},
		Tickets:   repositories.TicketRepository{},
		RequestID: reqID,
	}
}

// POST /api/tickets
func SellTicket(c *gin.Context) {
	var req services.SaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	req.SoldByID = middleware.GetUserID(c)

	ticket, err := ticketService(c).SellTicket(req)
	if err != nil {
		respondError(c, err, "failed to sell ticket")
		return
	}
	c.JSON(http.StatusCreated, ticket)
}

// GET /api/trips/:id/tickets
func GetTripTickets(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	tickets, err := (repositories.TicketRepository{}).ListByTrip(id)
	if err != nil {
		respondError(c, err, "failed to list tickets")
		return
	}
	c.JSON(http.StatusOK, tickets)
}

// PUT /api/tickets/:id/cancel
func CancelTicket(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := ticketService(c).CancelTicket(id); err != nil {
		respondError(c, err, "failed to cancel ticket")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ticket cancelled"})
}

// GET /api/tickets/:id/pdf
func GetTicketPDF(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	svc := services.DocsService{
		Tickets:   repositories.TicketRepository{},
		RequestID: middleware.GetRequestID(c),
	}
	pdf, filename, err := svc.GenerateTicketPDF(id)
	if err != nil {
		respondError(c, err, "failed to generate ticket PDF")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// GET /api/sales?date=YYYY-MM-DD&trip_id=N
func GetSales(c *gin.Context) {
	date := strings.TrimSpace(c.Query("date"))
	if date == "" {
		date = utils.FormatDate(time.Now())
	} else if _, err := utils.ParseDate(date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	var tripID int64
	if raw := strings.TrimSpace(c.Query("trip_id")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid trip_id"})
			return
		}
		tripID = id
	}

	sales, err := (repositories.TicketRepository{}).ListSales(date, tripID)
	if err != nil {
		respondError(c, err, "failed to list sales")
		return
	}

	var total float64
	for _, s := range sales {
		total += s.Amount
	}

	c.JSON(http.StatusOK, gin.H{"date": date, "sales": sales, "total": total})
}
