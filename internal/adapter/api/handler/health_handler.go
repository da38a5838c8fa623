package handler

import (
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"google.golang.org/api/iterator"
)

type HealthHandler struct {
	fsClient *firestore.Client
}

func NewHealthHandler(fsClient *firestore.Client) *HealthHandler {
	return &HealthHandler{
		fsClient: fsClient,
	}
}

func (h *HealthHandler) CheckHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "Server is running",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// CheckFirestoreHealth does one cheap round trip to Firestore. An empty
// database is healthy; only a transport error counts as down.
func (h *HealthHandler) CheckFirestoreHealth(c echo.Context) error {
	_, err := h.fsClient.Collections(c.Request().Context()).Next()
	if err != nil && err != iterator.Done {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"status": "Firestore connection failed",
			"error":  err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "Firestore connected successfully",
	})
}
