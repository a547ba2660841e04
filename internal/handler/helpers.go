package handler

import (
	"errors"
	"mime/multipart"
	"net/http"
	"reflect"

	"github.com/MaxiBlanc/Krevo-control/internal/apierror"
	"github.com/MaxiBlanc/Krevo-control/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// required, gt=0 work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	return validateStruct(c, req)
}

// validateStruct runs validator tags on an already-populated request struct.
// Validation failures are reported with a field map and never reach the
// services.
func validateStruct(c *gin.Context, req interface{}) bool {
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// abrirArchivos opens multipart file headers as service files. The returned
// closer must run after the service call — the readers stream straight into
// the upload request bodies.
func abrirArchivos(headers []*multipart.FileHeader) ([]service.Archivo, func(), error) {
	archivos := make([]service.Archivo, 0, len(headers))
	abiertos := make([]multipart.File, 0, len(headers))
	cerrar := func() {
		for _, f := range abiertos {
			f.Close()
		}
	}
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			cerrar()
			return nil, nil, err
		}
		abiertos = append(abiertos, f)
		archivos = append(archivos, service.Archivo{Nombre: fh.Filename, Datos: f})
	}
	return archivos, cerrar, nil
}

// writeServiceError maps service errors onto responses. Business errors keep
// their message; anything else (store failure, upload failure) collapses to
// the one generic save error, with the cause only in the logs.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCategoriaNoEncontrada),
		errors.Is(err, service.ErrProductoNoEncontrado):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
	case errors.Is(err, service.ErrNombreDuplicado),
		errors.Is(err, service.ErrCategoriaRequerida):
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	default:
		log.Error().
			Str("request_id", c.GetString("request_id")).
			Err(err).
			Msg("save failed")
		c.JSON(http.StatusInternalServerError, apierror.Generic())
	}
}
