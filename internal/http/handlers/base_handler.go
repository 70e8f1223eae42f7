// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tabela/internal/modules/fare"
	"tabela/internal/modules/longtrip"
	"tabela/internal/modules/pricing"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writeDomainError maps module errors to status codes. Unknown errors are
// hidden behind a generic 500.
func writeDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, fare.ErrBadRequest), errors.Is(err, longtrip.ErrBadRequest), errors.Is(err, pricing.ErrInvalidRate):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, fare.ErrNotFound), errors.Is(err, longtrip.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	default:
		_ = c.Error(err)
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

// decimalInput accepts a JSON number or a string such as "2,75".
type decimalInput string

func (d *decimalInput) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*d = decimalInput(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*d = decimalInput(n.String())
	return nil
}

func (d decimalInput) String() string {
	return strings.TrimSpace(string(d))
}
