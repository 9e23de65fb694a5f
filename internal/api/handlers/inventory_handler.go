// internal/api/handlers/inventory_handler.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/andresuchdata/smart-reorder/internal/domain"
	"github.com/andresuchdata/smart-reorder/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("criticality", func(fl validator.FieldLevel) bool {
			return domain.IsValidCriticality(fl.Field().String())
		})
	}
}

// InventoryHandler is the HTTP boundary: it binds requests, calls the
// services and maps domain errors to status codes.
type InventoryHandler struct {
	inventory *service.InventoryService
	exports   *service.ExportService
}

func NewInventoryHandler(inventory *service.InventoryService, exports *service.ExportService) *InventoryHandler {
	return &InventoryHandler{
		inventory: inventory,
		exports:   exports,
	}
}

type addProductRequest struct {
	ProductID         string   `json:"product_id" binding:"required"`
	CurrentStock      *int     `json:"current_stock" binding:"required,gte=0"`
	IncomingStock     *int     `json:"incoming_stock" binding:"omitempty,gte=0"`
	AverageDailySales *float64 `json:"average_daily_sales" binding:"required,gt=0"`
	LeadTimeDays      *int     `json:"lead_time_days" binding:"required,gte=0"`
	MinReorderQty     *int     `json:"min_reorder_quantity" binding:"required,gte=0"`
	CostPerUnit       *float64 `json:"cost_per_unit" binding:"required,gt=0"`
	Criticality       string   `json:"criticality" binding:"required,criticality"`
}

type createOrderRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  *int   `json:"quantity" binding:"required,gt=0"`
}

type simulateSpikeRequest struct {
	ProductID  string  `json:"product_id" binding:"required"`
	Multiplier float64 `json:"multiplier" binding:"omitempty,gt=0"`
	Days       int     `json:"days" binding:"omitempty,gt=0"`
}

type exportRequest struct {
	Format string `json:"format" binding:"required"`
}

// Health reports liveness.
func (h *InventoryHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// ListProducts returns all products with derived reorder fields.
func (h *InventoryHandler) ListProducts(c *gin.Context) {
	products, err := h.inventory.ListProducts(c.Request.Context())
	if err != nil {
		h.internalError(c, err, "failed to list products")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products":    products,
		"total_count": len(products),
		"timestamp":   time.Now().Format(time.RFC3339),
	})
}

// AddProduct creates a new product in the collection.
func (h *InventoryHandler) AddProduct(c *gin.Context) {
	var req addProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request: %v", err)})
		return
	}

	incoming := 0
	if req.IncomingStock != nil {
		incoming = *req.IncomingStock
	}

	product, err := domain.NewProduct(
		req.ProductID,
		*req.CurrentStock,
		incoming,
		*req.AverageDailySales,
		*req.LeadTimeDays,
		*req.MinReorderQty,
		*req.CostPerUnit,
		req.Criticality,
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.inventory.AddProduct(c.Request.Context(), product); err != nil {
		if errors.Is(err, domain.ErrProductExists) {
			c.JSON(http.StatusConflict, gin.H{
				"error": fmt.Sprintf("Product ID '%s' already exists.", req.ProductID),
			})
			return
		}
		h.internalError(c, err, "failed to add product")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("Product '%s' added successfully.", req.ProductID),
	})
}

// DeleteProduct removes a product from the collection.
func (h *InventoryHandler) DeleteProduct(c *gin.Context) {
	productID := c.Param("product_id")

	if err := h.inventory.DeleteProduct(c.Request.Context(), productID); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found."})
			return
		}
		h.internalError(c, err, "failed to delete product")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Product '%s' deleted successfully.", productID),
	})
}

// CreateOrder raises a product's incoming stock.
func (h *InventoryHandler) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product_id and quantity are required"})
		return
	}

	newIncoming, err := h.inventory.CreateOrder(c.Request.Context(), req.ProductID, *req.Quantity)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		h.internalError(c, err, "failed to create order")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":            fmt.Sprintf("Order for %d units of %s created successfully. Incoming stock updated.", *req.Quantity, req.ProductID),
		"product_id":         req.ProductID,
		"new_incoming_stock": newIncoming,
	})
}

// GetRecommendations returns the current reorder recommendations.
func (h *InventoryHandler) GetRecommendations(c *gin.Context) {
	recommendations, err := h.inventory.Recommendations(c.Request.Context())
	if err != nil {
		h.internalError(c, err, "failed to generate recommendations")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recommendations": recommendations,
		"timestamp":       time.Now().Format(time.RFC3339),
	})
}

// SimulateSpike runs a what-if demand spike against a snapshot of the
// collection.
func (h *InventoryHandler) SimulateSpike(c *gin.Context) {
	var req simulateSpikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product_id is required"})
		return
	}

	result, err := h.inventory.SimulateSpike(c.Request.Context(), req.ProductID, req.Multiplier, req.Days)
	if err != nil {
		h.internalError(c, err, "failed to run simulation")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"simulation":      result.Params,
		"target_found":    result.TargetFound,
		"recommendations": result.Recommendations,
		"timestamp":       time.Now().Format(time.RFC3339),
	})
}

// GetAnalytics returns the aggregate dashboard view.
func (h *InventoryHandler) GetAnalytics(c *gin.Context) {
	report, err := h.inventory.Analytics(c.Request.Context())
	if err != nil {
		h.internalError(c, err, "failed to compute analytics")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"criticality_breakdown": report.CriticalityBreakdown,
		"stock_levels":          report.StockLevels,
		"urgency_levels":        report.UrgencyLevels,
		"total_inventory_value": report.TotalInventoryValue,
		"timestamp":             time.Now().Format(time.RFC3339),
	})
}

// Export returns recommendation data shaped for csv or json download.
func (h *InventoryHandler) Export(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "format is required"})
		return
	}

	payload, err := h.exports.Export(c.Request.Context(), req.Format)
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedFormat) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported export format"})
			return
		}
		h.internalError(c, err, "failed to export recommendations")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"format":    payload.Format,
		"data":      payload.Data,
		"filename":  payload.Filename,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *InventoryHandler) internalError(c *gin.Context, err error, message string) {
	log.Error().Err(err).Str("path", c.Request.URL.Path).Msg(message)
	c.JSON(http.StatusInternalServerError, gin.H{"error": message})
}
