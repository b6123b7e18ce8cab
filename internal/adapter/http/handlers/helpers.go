package handlers

import (
	"net/http"
	"strconv"

	"cake_calculator/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidID = pkg.NewDomainErrorSimple("INVALID_ID", "Invalid id", http.StatusBadRequest)

// parseIDParam reads the :id path parameter. On a non-numeric value it
// answers 400 itself and reports false.
func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(errInvalidID.HTTPStatus, errInvalidID.ToHTTPError())
		return 0, false
	}
	return id, true
}
