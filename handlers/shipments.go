package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shipment-proof-service/models"
	"shipment-proof-service/services"
)

type ShipmentHandler struct {
	lifecycle *services.LifecycleService
}

func NewShipmentHandler(lifecycle *services.LifecycleService) *ShipmentHandler {
	return &ShipmentHandler{lifecycle: lifecycle}
}

type createShipmentRequest struct {
	AWB string `json:"awb" binding:"required"`
}

func (h *ShipmentHandler) HandleCreate(c *gin.Context) {
	var req createShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	shipment, err := h.lifecycle.CreateShipment(
		c.GetString("organization_id"), c.GetString("user_id"), req.AWB)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, shipment)
}

func (h *ShipmentHandler) HandleList(c *gin.Context) {
	shipments, err := h.lifecycle.ListShipments(c.GetString("organization_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, shipments)
}

func (h *ShipmentHandler) HandleGet(c *gin.Context) {
	shipment, err := h.lifecycle.GetShipment(c.GetString("organization_id"), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, shipment)
}

type updateShipmentRequest struct {
	AWB string `json:"awb" binding:"required"`
}

func (h *ShipmentHandler) HandleUpdate(c *gin.Context) {
	var req updateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	shipment, err := h.lifecycle.UpdateShipment(
		c.GetString("organization_id"), c.Param("id"), req.AWB)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, shipment)
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *ShipmentHandler) HandleUpdateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	shipment, err := h.lifecycle.RequestTransition(
		c.GetString("organization_id"), c.Param("id"), models.ShipmentStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, shipment)
}
