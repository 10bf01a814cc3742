package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "lottery-data-backend/internal/common/errors"
	"lottery-data-backend/internal/features/lottery/models"
	"lottery-data-backend/internal/features/lottery/service"
)

type LotteryHandler struct {
	service service.LotteryService
}

func NewLotteryHandler(service service.LotteryService) *LotteryHandler {
	return &LotteryHandler{
		service: service,
	}
}

func (h *LotteryHandler) RegisterRoutes(router *gin.RouterGroup) {
	lottery := router.Group("/lottery")
	{
		lottery.PUT("/data", h.saveData)
		lottery.GET("/data", h.loadData)
		lottery.POST("/backups", h.backupData)
		lottery.POST("/restore", h.restoreFromBackup)
		lottery.GET("/validate", h.validateData)
	}
}

// RestoreRequest names the backup file to restore from.
type RestoreRequest struct {
	BackupPath string `json:"backupPath" binding:"required"`
}

// BackupResponse carries the path of a freshly written backup file.
type BackupResponse struct {
	BackupPath string `json:"backupPath"`
}

// ValidateResponse carries the overall data-health flag.
type ValidateResponse struct {
	Valid bool `json:"valid"`
}

// @Summary Save lottery data
// @Description Replaces the persisted lottery state with the request body.
// @Tags lottery
// @Accept json
// @Produce json
// @Param state body models.State true "Full lottery state"
// @Success 204 "Saved"
// @Failure 400 {object} gin.H "Malformed request body"
// @Failure 500 {object} gin.H "Storage error"
// @Router /lottery/data [put]
func (h *LotteryHandler) saveData(c *gin.Context) {
	var state models.State
	if err := c.ShouldBindJSON(&state); err != nil {
		respondError(c, apperrors.Wrap(err, apperrors.ErrCodeBadRequest, "invalid state payload"))
		return
	}

	if err := h.service.SaveLotteryData(c.Request.Context(), &state); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Load lottery data
// @Description Returns the persisted lottery state, or the default state on a fresh installation.
// @Tags lottery
// @Produce json
// @Success 200 {object} models.State
// @Failure 422 {object} gin.H "Data file is corrupted"
// @Failure 500 {object} gin.H "Storage error"
// @Router /lottery/data [get]
func (h *LotteryHandler) loadData(c *gin.Context) {
	state, err := h.service.LoadLotteryData(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// @Summary Back up lottery data
// @Description Copies the live data file to a timestamped backup next to it.
// @Tags lottery
// @Produce json
// @Success 201 {object} BackupResponse
// @Failure 404 {object} gin.H "No data file to back up"
// @Failure 500 {object} gin.H "Storage error"
// @Router /lottery/backups [post]
func (h *LotteryHandler) backupData(c *gin.Context) {
	path, err := h.service.BackupData(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, BackupResponse{BackupPath: path})
}

// @Summary Restore from backup
// @Description Replaces the live data file with a named backup after verifying the backup decodes.
// @Tags lottery
// @Accept json
// @Success 204 "Restored"
// @Failure 404 {object} gin.H "Backup file not found"
// @Failure 422 {object} gin.H "Backup file does not decode"
// @Failure 500 {object} gin.H "Storage error"
// @Router /lottery/restore [post]
func (h *LotteryHandler) restoreFromBackup(c *gin.Context) {
	var req RestoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.Wrap(err, apperrors.ErrCodeBadRequest, "invalid restore request"))
		return
	}

	if err := h.service.RestoreFromBackup(c.Request.Context(), req.BackupPath); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Validate lottery data
// @Description Reports whether the persisted state is readable, decodable and logically consistent.
// @Tags lottery
// @Produce json
// @Success 200 {object} ValidateResponse
// @Router /lottery/validate [get]
func (h *LotteryHandler) validateData(c *gin.Context) {
	valid, err := h.service.ValidateData(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ValidateResponse{Valid: valid})
}
