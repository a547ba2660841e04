package infra_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MaxiBlanc/Krevo-control/internal/infra"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadDevuelveSecureURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "krevo-unsigned", r.FormValue("upload_preset"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "remera.jpg", header.Filename)

		contenido, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "bytes-de-imagen", string(contenido))

		fmt.Fprint(w, `{"secure_url":"https://res.cloudinary.com/demo/remera.jpg","bytes":15}`)
	}))
	defer srv.Close()

	client := infra.NewUploadClient(srv.URL, "krevo-unsigned")
	url, err := client.Upload(context.Background(), "remera.jpg", strings.NewReader("bytes-de-imagen"))
	require.NoError(t, err)
	assert.Equal(t, "https://res.cloudinary.com/demo/remera.jpg", url)
}

func TestUploadErrorHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":{"message":"Upload preset not found"}}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	client := infra.NewUploadClient(srv.URL, "preset-inexistente")
	_, err := client.Upload(context.Background(), "x.jpg", strings.NewReader("x"))
	assert.ErrorContains(t, err, "400")
}

func TestUploadRespuestaSinSecureURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"public_id":"abc"}`)
	}))
	defer srv.Close()

	client := infra.NewUploadClient(srv.URL, "krevo-unsigned")
	_, err := client.Upload(context.Background(), "x.jpg", strings.NewReader("x"))
	assert.ErrorContains(t, err, "secure_url")
}

func TestUploadContextoCancelado(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"secure_url":"https://res.cloudinary.com/demo/x.jpg"}`)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := infra.NewUploadClient(srv.URL, "krevo-unsigned")
	_, err := client.Upload(ctx, "x.jpg", strings.NewReader("x"))
	assert.Error(t, err)
}
