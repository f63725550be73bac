// Package handlers maps HTTP requests onto the storage contract. Handlers
// receive their store by constructor injection; they never reach for a
// package-level instance.
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apierrors "github.com/workflowhq/workflow-api/internal/errors"
)

// parseIDParam reads a positive integer path parameter. On failure it writes
// a 400 response and returns false.
func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		apierrors.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return id, true
}
