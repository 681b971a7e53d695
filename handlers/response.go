package handlers

import (
	"Market/service"
	"errors"
	"fmt"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"log"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"
)

var registerOnce sync.Once

// RegisterJSONFieldNames makes binding errors report json field names
// ("serialNumber") instead of Go field names ("SerialNumber").
func RegisterJSONFieldNames() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return field.Name
			}
			return name
		})
	})
}

func bindingError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		// drop the top-level struct name
		field := fieldErr.Namespace()
		if i := strings.IndexByte(field, '.'); i >= 0 {
			field = field[i+1:]
		}
		if fieldErr.Param() != "" {
			messages = append(messages, fmt.Sprintf("%s failed on %s=%s", field, fieldErr.Tag(), fieldErr.Param()))
		} else {
			messages = append(messages, fmt.Sprintf("%s failed on %s", field, fieldErr.Tag()))
		}
	}
	return strings.Join(messages, "; ")
}

func badRequest(c *gin.Context, message string, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"message": message,
		"error":   bindingError(err),
	})
}

// parseID reads the :id path parameter and answers 400 when it is not an
// unsigned integer.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "invalid id",
			"error":   err.Error(),
		})
		return 0, false
	}
	return uint(id), true
}

// respondError maps service errors onto status codes.
func respondError(c *gin.Context, err error) {
	var notFound *service.NotFoundError
	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{
			"message": notFound.Error(),
			"error":   "not found",
		})
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "invalid request",
			"error":   err.Error(),
		})
	default:
		requestID, _ := c.Get("RequestID")
		log.Printf("request %v failed: %v", requestID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "internal error",
			"error":   err.Error(),
		})
	}
}
