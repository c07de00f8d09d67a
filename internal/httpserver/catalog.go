package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"shopflow/internal/catalog"
	"shopflow/internal/domain"
)

// listProductsHandler derives one catalog page from the query string. The
// view-state is reconstructed from the URL on every request; the handler
// holds no state of its own.
func listProductsHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := catalog.ParseQuery(c.Request.URL.Query())
		res, err := svc.Browse(c.Request.Context(), q)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list products"})
			return
		}
		if res.Products == nil {
			res.Products = []domain.Product{}
		}
		c.JSON(http.StatusOK, res)
	}
}

func getProductHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get product"})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func listCategoriesHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cats, err := svc.Categories(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list categories"})
			return
		}
		if cats == nil {
			cats = []domain.Category{}
		}
		c.JSON(http.StatusOK, gin.H{"categories": cats})
	}
}
