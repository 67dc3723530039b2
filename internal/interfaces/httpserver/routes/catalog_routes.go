package routes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	catalogdomain "github.com/DanielBarbieri21/Chatbot-Auto-Pecas/internal/domain/catalog"
	"github.com/DanielBarbieri21/Chatbot-Auto-Pecas/internal/interfaces/httpserver/dto"
	"github.com/DanielBarbieri21/Chatbot-Auto-Pecas/internal/interfaces/httpserver/handlers"
)

func registerCatalogRoutes(router gin.IRoutes, handler *handlers.CatalogHandler) {
	router.GET("/catalog", listCatalog(handler))
	router.GET("/catalog/:id", getCatalogItem(handler))
}

func listCatalog(handler *handlers.CatalogHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := handler.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "erro ao carregar o catálogo"})
			return
		}
		c.JSON(http.StatusOK, dto.FromProducts(products))
	}
}

func getCatalogItem(handler *handlers.CatalogHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: catalogdomain.ErrProductNotFound.Error()})
			return
		}

		product, err := handler.Get(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, catalogdomain.ErrProductNotFound) {
				c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: catalogdomain.ErrProductNotFound.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "erro ao carregar o catálogo"})
			return
		}
		c.JSON(http.StatusOK, dto.FromProduct(product))
	}
}
