package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"shipment-proof-service/services"
)

type ProofHandler struct {
	proofs *services.ProofService
}

func NewProofHandler(proofs *services.ProofService) *ProofHandler {
	return &ProofHandler{proofs: proofs}
}

func (h *ProofHandler) HandleAttach(c *gin.Context) {
	fileHeader, err := c.FormFile("video")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("failed to get video file: %v", err)})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("failed to open uploaded file: %v", err)})
		return
	}
	defer file.Close()

	video, err := h.proofs.AttachProof(
		c.Request.Context(),
		c.GetString("organization_id"),
		c.Param("id"),
		c.GetString("user_id"),
		file,
		fileHeader.Filename,
	)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, video)
}
