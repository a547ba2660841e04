package handler

import (
	"net/http"

	"github.com/MaxiBlanc/Krevo-control/internal/dto"
	"github.com/MaxiBlanc/Krevo-control/internal/middleware"
	"github.com/MaxiBlanc/Krevo-control/internal/realtime"
	"github.com/MaxiBlanc/Krevo-control/internal/service"

	"github.com/gin-gonic/gin"
)

// PanelHandler serves the HTML views: the login screen and the admin panel.
// The panel renders from the hub's snapshot — the same state the websocket
// pushes — so the HTML view and live clients always agree on what the store
// last looked like.
type PanelHandler struct {
	auth service.AuthService
	hub  *realtime.Hub
}

func NewPanelHandler(auth service.AuthService, hub *realtime.Hub) *PanelHandler {
	return &PanelHandler{auth: auth, hub: hub}
}

// LoginForm GET /login
func (h *PanelHandler) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Error": c.Query("error") != "",
	})
}

// Login POST /login (form: clave)
// A mismatch redirects back with the fixed inline message and a cleared
// input; a match sets the session cookie and opens the panel.
func (h *PanelHandler) Login(c *gin.Context) {
	req := dto.LoginRequest{Clave: c.PostForm("clave")}
	resp, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		c.Redirect(http.StatusFound, "/login?error=1")
		return
	}
	c.SetCookie(middleware.SessionCookie, resp.AccessToken, resp.ExpiresIn, "/", "", false, true)
	c.Redirect(http.StatusFound, "/panel")
}

// Logout GET /logout
func (h *PanelHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login")
}

type panelData struct {
	Categorias []dto.CategoriaResponse
	Activa     *dto.CategoriaResponse
	Productos  []dto.ProductoResponse
}

// Panel GET /panel?cat=<id>
// Renders the category tab strip and the product list of the active
// category. With no ?cat (or a stale one) the first category in name order
// becomes active, mirroring the default-activation rule of the live view.
func (h *PanelHandler) Panel(c *gin.Context) {
	snap := h.hub.Snapshot()
	data := panelData{Categorias: snap.Categorias}

	activaID := c.Query("cat")
	for i := range snap.Categorias {
		if snap.Categorias[i].ID == activaID {
			data.Activa = &snap.Categorias[i]
			break
		}
	}
	if data.Activa == nil && len(snap.Categorias) > 0 {
		data.Activa = &snap.Categorias[0]
	}

	if data.Activa != nil {
		for _, p := range snap.Productos {
			if p.Categoria == data.Activa.Nombre {
				data.Productos = append(data.Productos, p)
			}
		}
	}

	c.HTML(http.StatusOK, "panel.html", data)
}
