package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shipment-proof-service/services"
)

type ShareLinkHandler struct {
	links *services.ShareLinkService
}

func NewShareLinkHandler(links *services.ShareLinkService) *ShareLinkHandler {
	return &ShareLinkHandler{links: links}
}

type issueShareLinkRequest struct {
	ProofVideoID   string `json:"proofVideoId" binding:"required"`
	ExpiresInHours int    `json:"expiresInHours" binding:"required"`
}

func (h *ShareLinkHandler) HandleIssue(c *gin.Context) {
	var req issueShareLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	link, err := h.links.Issue(c.GetString("organization_id"), req.ProofVideoID, req.ExpiresInHours)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, link)
}

func (h *ShareLinkHandler) HandleRevoke(c *gin.Context) {
	if err := h.links.Revoke(c.GetString("organization_id"), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// HandleValidate is the one unauthenticated read path. It exposes the video
// and a narrow view of its shipment, nothing more.
func (h *ShareLinkHandler) HandleValidate(c *gin.Context) {
	video, err := h.links.Validate(c.Param("token"))
	if err != nil {
		respondError(c, err)
		return
	}

	body := gin.H{
		"video": gin.H{
			"id":        video.ID,
			"videoUrl":  video.VideoURL,
			"createdAt": video.CreatedAt,
		},
	}
	if video.Shipment != nil {
		body["shipment"] = gin.H{
			"awb":    video.Shipment.AWB,
			"status": video.Shipment.Status,
		}
	}
	c.JSON(http.StatusOK, body)
}
