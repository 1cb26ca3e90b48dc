package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/purchasing-admin/backend-go/internal/domain"
	"github.com/purchasing-admin/backend-go/internal/order"
	"github.com/purchasing-admin/backend-go/internal/service"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type OrderHandler struct {
	orderService *service.OrderService
}

func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

type createDraftRequest struct {
	VendorID       string `json:"vendor_id" binding:"required"`
	Description    string `json:"description"`
	Classification string `json:"classification"`
	Urgent         bool   `json:"urgent"`
	HasPO          bool   `json:"has_po"`
}

type updateLineRequest struct {
	Name      *string          `json:"name"`
	Quantity  *int64           `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
	Surcharge *struct {
		Name   string           `json:"name"`
		Amount *decimal.Decimal `json:"amount"`
	} `json:"surcharge"`
}

type submitRequest struct {
	Fee      decimal.Decimal `json:"fee"`
	Category string          `json:"category"`
}

type draftResponse struct {
	ID         string          `json:"id"`
	Order      order.Order     `json:"order"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}

func newDraftResponse(id string, o order.Order) draftResponse {
	return draftResponse{ID: id, Order: o, GrandTotal: o.GrandTotal()}
}

// CreateDraft opens a new draft order with one default line.
func (h *OrderHandler) CreateDraft(c *gin.Context) {
	var req createDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	id, o := h.orderService.CreateDraft(service.Header{
		VendorID:       req.VendorID,
		Description:    req.Description,
		Classification: req.Classification,
		Urgent:         req.Urgent,
		HasPO:          req.HasPO,
	})

	c.JSON(http.StatusCreated, newDraftResponse(id, o))
}

// GetDraft returns the current state of a draft order.
func (h *OrderHandler) GetDraft(c *gin.Context) {
	id := c.Param("id")

	o, err := h.orderService.Draft(id)
	if err != nil {
		h.writeOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, newDraftResponse(id, o))
}

// AddLine appends a default line item to a draft order.
func (h *OrderHandler) AddLine(c *gin.Context) {
	id := c.Param("id")

	o, err := h.orderService.AddLine(id)
	if err != nil {
		h.writeOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, newDraftResponse(id, o))
}

// RemoveLine removes a line item, honoring the one-line minimum.
func (h *OrderHandler) RemoveLine(c *gin.Context) {
	id := c.Param("id")
	lineID, err := strconv.Atoi(c.Param("lineID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid line id"})
		return
	}

	o, err := h.orderService.RemoveLine(id, lineID)
	if err != nil {
		h.writeOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, newDraftResponse(id, o))
}

// UpdateLine applies a field change to one line item and recomputes its
// total.
func (h *OrderHandler) UpdateLine(c *gin.Context) {
	id := c.Param("id")
	lineID, err := strconv.Atoi(c.Param("lineID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid line id"})
		return
	}

	var req updateLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	change := order.LineChange{
		Name:      req.Name,
		Quantity:  req.Quantity,
		UnitPrice: req.UnitPrice,
	}
	if req.Surcharge != nil {
		change.Surcharge = &order.SurchargeChange{
			Name:   req.Surcharge.Name,
			Amount: req.Surcharge.Amount,
		}
	}

	o, err := h.orderService.UpdateLine(id, lineID, change)
	if err != nil {
		h.writeOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, newDraftResponse(id, o))
}

// Submit finalizes a draft order into a purchase record.
func (h *OrderHandler) Submit(c *gin.Context) {
	id := c.Param("id")

	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	category := domain.CategoryPurchase
	if req.Category != "" {
		parsed, ok := domain.ParsePurchaseCategory(req.Category)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category value"})
			return
		}
		category = parsed
	}

	record, err := h.orderService.Submit(c.Request.Context(), id, req.Fee, category)
	if err != nil {
		h.writeOrderError(c, err)
		return
	}

	log.Info().Str("purchase_id", record.ID).Str("vendor_id", record.VendorID).Msg("order submitted")
	c.JSON(http.StatusCreated, record)
}

func (h *OrderHandler) writeOrderError(c *gin.Context, err error) {
	var invalid *order.InvalidAmountError

	switch {
	case errors.Is(err, service.ErrDraftNotFound), errors.Is(err, order.ErrLineNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, order.ErrMinimumLine):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Error().Err(err).Msg("order operation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "order operation failed"})
	}
}
