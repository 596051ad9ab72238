package server

import (
	"net/http"
	"strconv"
	"time"

	invoicedomain "github.com/a13312860897-create/invomate-sub001/internal/invoice/domain"
	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type invoiceRequest struct {
	ClientID *int64               `json:"client_id"`
	Number   string               `json:"number"`
	Status   invoicedomain.Status `json:"status"`
	Amount   float64              `json:"amount"`
	Currency string               `json:"currency"`

	IssueDate *time.Time `json:"issue_date"`
	DueDate   *time.Time `json:"due_date"`
	PaidDate  *time.Time `json:"paid_date"`

	Metadata datatypes.JSONMap `json:"metadata"`
}

func (r invoiceRequest) toDomain(ownerID snowflake.ID) invoicedomain.Invoice {
	invoice := invoicedomain.Invoice{
		OwnerID:  ownerID,
		Number:   r.Number,
		Status:   r.Status,
		Amount:   r.Amount,
		Currency: r.Currency,
		DueDate:  r.DueDate,
		PaidDate: r.PaidDate,
		Metadata: r.Metadata,
	}
	if r.ClientID != nil {
		clientID := snowflake.ID(*r.ClientID)
		invoice.ClientID = &clientID
	}
	if r.IssueDate != nil {
		invoice.IssueDate = r.IssueDate.UTC()
	}
	return invoice
}

func parseInvoiceID(c *gin.Context) (snowflake.ID, error) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, invoicedomain.ErrNotFound
	}
	return snowflake.ID(id), nil
}

func (s *Server) CreateInvoice(c *gin.Context) {
	ownerID, err := parseOwnerID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var req invoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, errMalformedBody)
		return
	}

	invoice := req.toDomain(ownerID)
	if err := s.invoiceSvc.Create(c.Request.Context(), &invoice); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, invoice)
}

func (s *Server) ListInvoices(c *gin.Context) {
	ownerID, err := parseOwnerID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	invoices, err := s.invoiceSvc.List(c.Request.Context(), ownerID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"invoices": invoices})
}

func (s *Server) GetInvoice(c *gin.Context) {
	ownerID, err := parseOwnerID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	id, err := parseInvoiceID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	invoice, err := s.invoiceSvc.Get(c.Request.Context(), ownerID, id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, invoice)
}

func (s *Server) UpdateInvoice(c *gin.Context) {
	ownerID, err := parseOwnerID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	id, err := parseInvoiceID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var req invoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, errMalformedBody)
		return
	}

	invoice := req.toDomain(ownerID)
	invoice.ID = id
	if err := s.invoiceSvc.Update(c.Request.Context(), &invoice); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, invoice)
}

func (s *Server) DeleteInvoice(c *gin.Context) {
	ownerID, err := parseOwnerID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	id, err := parseInvoiceID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if err := s.invoiceSvc.Delete(c.Request.Context(), ownerID, id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
