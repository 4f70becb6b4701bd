package controller

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/hivebackit/hivebackit-api/internal/dto"
	"github.com/hivebackit/hivebackit-api/internal/repository"
	"github.com/hivebackit/hivebackit-api/internal/service"
	"github.com/hivebackit/hivebackit-api/internal/storage"
	"github.com/rs/zerolog/log"
)

// RouteRegistrar is implemented by every handler set; the application mounts each one on
// the root router.
type RouteRegistrar interface {
	RegisterRoutes(r gin.IRouter)
}

var fieldNamesOnce sync.Once

// useJSONFieldNames makes validation errors report the JSON name of a field.
func useJSONFieldNames() {
	fieldNamesOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})
	})
}

func bindJSON(ctx *gin.Context, req any) bool {
	useJSONFieldNames()
	err := ctx.ShouldBindJSON(req)
	if err == nil {
		return true
	}
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Fields: fieldErrors(validationErrs)})
		return false
	}
	// Malformed JSON or a value of the wrong type.
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
	return false
}

func uintParam(ctx *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: "Invalid path parameter",
			Fields:  map[string]string{name: "must be a positive integer"},
		})
		return 0, false
	}
	return uint(value), true
}

func uuidParam(ctx *gin.Context, name string) (uuid.UUID, bool) {
	value, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: "Invalid path parameter",
			Fields:  map[string]string{name: "must be a UUID"},
		})
		return uuid.Nil, false
	}
	return value, true
}

// respondError writes the error response matching err's kind. Anything unclassified is a 500
// carrying the error text.
func respondError(ctx *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: message})
	case errors.Is(err, service.ErrExtractionUnavailable), errors.Is(err, storage.ErrNotConfigured):
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Message: message, Details: []string{err.Error()}})
	case errors.Is(err, storage.ErrInvalidKey):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: message, Fields: map[string]string{"path": err.Error()}})
	default:
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg(message)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: message, Details: []string{err.Error()}})
	}
}

func fieldErrors(errs validator.ValidationErrors) map[string]string {
	fields := make(map[string]string, len(errs))
	for _, fe := range errs {
		fields[fe.Field()] = fieldMessage(fe)
	}
	return fields
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "hexcolor":
		return "must be a hex color such as #00DF82"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	default:
		return "is invalid"
	}
}
