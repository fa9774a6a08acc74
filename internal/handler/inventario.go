package handler

import (
	"net/http"
	"strconv"

	"github.com/marco2712/POS-PROCESOS/internal/apierror"
	"github.com/marco2712/POS-PROCESOS/internal/middleware"
	"github.com/marco2712/POS-PROCESOS/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InventarioHandler struct{ svc service.InventarioService }

func NewInventarioHandler(svc service.InventarioService) *InventarioHandler {
	return &InventarioHandler{svc: svc}
}

// Listar returns the derived inventory view for the organization.
func (h *InventarioHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context(), middleware.GetScope(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al consultar el inventario"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ValidarStock answers whether a quantity of a product can be sold right
// now. Used by the sale form before submitting.
func (h *InventarioHandler) ValidarStock(c *gin.Context) {
	productoID, err := uuid.Parse(c.Param("producto_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	cantidad, err := strconv.Atoi(c.DefaultQuery("cantidad", "1"))
	if err != nil || cantidad < 1 {
		c.JSON(http.StatusBadRequest, apierror.New("Cantidad invalida"))
		return
	}

	snap, err := h.svc.Snapshot(c.Request.Context(), middleware.GetScope(c))
	if err != nil {
		snap = nil // the validator answers "cannot validate right now"
	}
	c.JSON(http.StatusOK, h.svc.ValidarStock(snap, productoID, cantidad))
}
