package model_test

import (
	"testing"

	"github.com/MaxiBlanc/Krevo-control/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestImagenesEfectivasConGaleria(t *testing.T) {
	p := model.Producto{
		Imagenes: []string{"a.jpg", "b.jpg"},
		Imagen:   "a.jpg",
	}
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, p.ImagenesEfectivas())
}

func TestImagenesEfectivasDocumentoLegado(t *testing.T) {
	p := model.Producto{Imagen: "unica.jpg"}
	assert.Equal(t, []string{"unica.jpg"}, p.ImagenesEfectivas())
}

func TestImagenesEfectivasSinImagenes(t *testing.T) {
	assert.Nil(t, model.Producto{}.ImagenesEfectivas())
}
