package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	middlewares "reclaimme/middleware"
	"reclaimme/models"
	"reclaimme/services"
	"reclaimme/utils"
)

var (
	generator services.DocumentGenerator
	logger    = zap.NewNop()
)

// InitDocuments wires the generator used by GenerateDocuments.
func InitDocuments(g services.DocumentGenerator, l *zap.Logger) {
	generator = g
	if l != nil {
		logger = l
	}
}

// GenerateDocuments handles POST /generate-documents/. It returns a police
// report draft, a bank complaint email and a next-steps checklist.
func GenerateDocuments(c *gin.Context) {
	var req models.ScamReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindError(err))
		return
	}

	docs, err := generator.Generate(c.Request.Context(), req.Report())
	if err != nil {
		respondError(c, utils.AsAppError(err))
		return
	}

	c.JSON(http.StatusOK, docs)
}

func respondError(c *gin.Context, appErr *utils.AppError) {
	_ = c.Error(appErr)
	c.AbortWithStatusJSON(appErr.Status, models.NewErrorResponse(appErr, c.GetString(middlewares.RequestIDKey)))
}

// bindError separates absent report fields from bodies that are not a
// decodable report at all. Both are 422.
func bindError(err error) *utils.AppError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		logger.Debug("invalid request body", zap.Error(err))
		return utils.NewInvalidRequestBodyError(err)
	}

	fields := make([]utils.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		msg := "field required"
		if fe.Tag() != "required" {
			msg = fmt.Sprintf("failed on the '%s' rule", fe.Tag())
		}
		fields = append(fields, utils.FieldError{
			Field:   jsonFieldName(fe.StructField()),
			Message: msg,
		})
	}
	return utils.NewReportValidationError(fields)
}

var reportType = reflect.TypeOf(models.ScamReportRequest{})

func jsonFieldName(structField string) string {
	f, ok := reportType.FieldByName(structField)
	if !ok {
		return structField
	}
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return structField
	}
	return name
}
