package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"landscape-api/internal/database"
	"landscape-api/internal/models"
)

// QueryService is what the HTTP layer needs from the curated store.
type QueryService interface {
	GetRandomImage() (*models.ImageRecord, error)
	GetRandomImageWithLocation() (*models.ImageRecord, error)
	GetStats() (*models.StatsData, error)
}

type ImagesHandler struct {
	store QueryService
	log   *zap.Logger
}

func NewImagesHandler(store QueryService, log *zap.Logger) *ImagesHandler {
	return &ImagesHandler{store: store, log: log}
}

// GetRandom returns one image drawn uniformly from the whole store.
func (h *ImagesHandler) GetRandom(c *gin.Context) {
	img, err := h.store.GetRandomImage()
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.NewErrorResponse("no images found"))
		return
	}
	if err != nil {
		h.log.Error("failed to fetch random image", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.NewErrorResponse("internal server error"))
		return
	}

	c.JSON(http.StatusOK, models.NewSuccessResponse(toRandomImageData(img)))
}

// GetRandomWithLocation returns one image drawn uniformly from the subset
// that has a location name.
func (h *ImagesHandler) GetRandomWithLocation(c *gin.Context) {
	img, err := h.store.GetRandomImageWithLocation()
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.NewErrorResponse("no images with location found"))
		return
	}
	if err != nil {
		h.log.Error("failed to fetch random image with location", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.NewErrorResponse("internal server error"))
		return
	}

	c.JSON(http.StatusOK, models.NewSuccessResponse(toRandomImageData(img)))
}

func toRandomImageData(img *models.ImageRecord) models.RandomImageData {
	photographer := models.Photographer{
		Name: img.PhotographerName,
	}
	if img.PhotographerUsername.Valid {
		photographer.Username = img.PhotographerUsername.String
		photographer.Profile = "https://unsplash.com/@" + img.PhotographerUsername.String
	}

	return models.RandomImageData{
		ID:           img.ID,
		ImageURL:     img.ImageURL,
		Caption:      img.Caption(),
		Photographer: photographer,
		UnsplashLink: img.PageURL.String,
	}
}
