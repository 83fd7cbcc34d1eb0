package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/statement-processor/internal/domain/error"
)

// fail hands err to the error middleware and stops the chain
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

func invalidRequest(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domainerr.ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// queryInt reads a positive integer query parameter, def when absent
func queryInt(c *gin.Context, name string, def int) (int, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, invalidRequest("%s must be a positive integer", name)
	}
	return v, nil
}

// splitTerms accepts repeated and comma separated values
func splitTerms(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
