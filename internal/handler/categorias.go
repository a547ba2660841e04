package handler

import (
	"mime/multipart"
	"net/http"

	"github.com/MaxiBlanc/Krevo-control/internal/apierror"
	"github.com/MaxiBlanc/Krevo-control/internal/dto"
	"github.com/MaxiBlanc/Krevo-control/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CategoriasHandler exposes the category manager. Create and update accept
// multipart forms because the optional image travels with the fields, exactly
// as the panel's modal submits them.
type CategoriasHandler struct{ svc service.CategoriaService }

func NewCategoriasHandler(svc service.CategoriaService) *CategoriasHandler {
	return &CategoriasHandler{svc: svc}
}

// Listar GET /v1/categorias
func (h *CategoriasHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar categorías"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Crear POST /v1/categorias (multipart: nombre, imagen?)
func (h *CategoriasHandler) Crear(c *gin.Context) {
	req, archivo, cerrar, ok := h.leerFormulario(c)
	if !ok {
		return
	}
	defer cerrar()

	resp, err := h.svc.Crear(c.Request.Context(), req, archivo)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Actualizar PUT /v1/categorias/:id (multipart: nombre, imagen?)
func (h *CategoriasHandler) Actualizar(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	req, archivo, cerrar, ok := h.leerFormulario(c)
	if !ok {
		return
	}
	defer cerrar()

	resp, svcErr := h.svc.Actualizar(c.Request.Context(), id, req, archivo)
	if svcErr != nil {
		writeServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar DELETE /v1/categorias/:id
// Cascades onto every product of the category; the panel asks for
// confirmation before calling this.
func (h *CategoriasHandler) Eliminar(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if svcErr := h.svc.Eliminar(c.Request.Context(), id); svcErr != nil {
		writeServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

func (h *CategoriasHandler) leerFormulario(c *gin.Context) (dto.GuardarCategoriaRequest, *service.Archivo, func(), bool) {
	req := dto.GuardarCategoriaRequest{Nombre: c.PostForm("nombre")}
	if !validateStruct(c, &req) {
		return req, nil, nil, false
	}

	cerrar := func() {}
	var archivo *service.Archivo
	if fh, err := c.FormFile("imagen"); err == nil && fh != nil {
		archivos, cerrarTodos, err := abrirArchivos([]*multipart.FileHeader{fh})
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("No se pudo leer la imagen"))
			return req, nil, nil, false
		}
		archivo = &archivos[0]
		cerrar = cerrarTodos
	}
	return req, archivo, cerrar, true
}
