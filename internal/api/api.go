// Package api holds the gin handlers for the REST API under /api.
package api

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/pageza/mealrank/backend/internal/middleware"
	"github.com/pageza/mealrank/backend/internal/service"
)

const msgValidationFailed = "Validation failed"

// Issue describes one failed field.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func init() {
	// Report fields by their JSON names.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func respondError(c *gin.Context, status int, msg string) {
	c.JSON(status, middleware.ErrorResponse{Error: msg})
}

// bindJSON decodes and validates the body, answering 400 on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, middleware.ErrorResponse{Error: msgValidationFailed, Issues: issuesFrom(err)})
		return false
	}
	return true
}

func issuesFrom(err error) []Issue {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []Issue{{Field: "body", Message: err.Error()}}
	}
	issues := make([]Issue, 0, len(verrs))
	for _, fe := range verrs {
		issues = append(issues, Issue{Field: fieldPath(fe), Message: ruleMessage(fe)})
	}
	return issues
}

// fieldPath drops the request type from the namespace, leaving e.g.
// "ingredients[0].name".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, found := strings.Cut(ns, "."); found {
		return rest
	}
	return ns
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "url":
		return "must be a valid URL"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "nefield":
		return fmt.Sprintf("must differ from %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// idParam parses a positive numeric path parameter, answering 400 otherwise.
func idParam(c *gin.Context, name, what string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 0)
	if err != nil || id == 0 {
		respondError(c, http.StatusBadRequest, fmt.Sprintf("Invalid %s ID", what))
		return 0, false
	}
	return uint(id), true
}

// serviceError maps a service failure to a response. Unknown errors are
// logged and reported as 500.
func serviceError(c *gin.Context, logger *zap.Logger, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		respondError(c, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, service.ErrInvalidImage), errors.Is(err, service.ErrInvalidVote):
		c.JSON(http.StatusBadRequest, middleware.ErrorResponse{
			Error:  msgValidationFailed,
			Issues: []Issue{{Field: "body", Message: err.Error()}},
		})
	default:
		logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		respondError(c, http.StatusInternalServerError, middleware.MsgInternalError)
	}
}
