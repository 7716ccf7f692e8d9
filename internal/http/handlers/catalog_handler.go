// README: Catalog handler; exposes the current reference-data snapshot.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roamcost/internal/modules/catalog"
)

type CatalogHandler struct {
	catalog *catalog.Service
}

func NewCatalogHandler(svc *catalog.Service) *CatalogHandler {
	return &CatalogHandler{catalog: svc}
}

func (h *CatalogHandler) Get(c *gin.Context) {
	snap, err := h.catalog.Snapshot(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}
