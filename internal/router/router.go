package router

import (
	"net/http"
	"time"

	"github.com/MaxiBlanc/Krevo-control/internal/config"
	"github.com/MaxiBlanc/Krevo-control/internal/handler"
	"github.com/MaxiBlanc/Krevo-control/internal/infra"
	"github.com/MaxiBlanc/Krevo-control/internal/middleware"
	"github.com/MaxiBlanc/Krevo-control/internal/realtime"
	"github.com/MaxiBlanc/Krevo-control/internal/repository"
	"github.com/MaxiBlanc/Krevo-control/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← Mongo/Redis
func New(cfg *config.Config, db *mongo.Database, rdb *redis.Client, hub *realtime.Hub, uploader infra.Uploader) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.LoadHTMLGlob("templates/*.html")

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	categoriaRepo := repository.NewCategoriaRepository(db)
	productoRepo := repository.NewProductoRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(cfg)
	categoriaSvc := service.NewCategoriaService(categoriaRepo, uploader, hub)
	productoSvc := service.NewProductoService(productoRepo, uploader, hub)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	categoriasH := handler.NewCategoriasHandler(categoriaSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	wsH := handler.NewCatalogoWSHandler(hub)
	panelH := handler.NewPanelHandler(authSvc, hub)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))
	r.POST("/v1/auth/login", authH.Login)

	// HTML panel — login is public, everything else sits behind the gate
	r.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, "/panel") })
	r.GET("/login", panelH.LoginForm)
	r.POST("/login", panelH.Login)
	r.GET("/logout", panelH.Logout)
	r.GET("/panel", middleware.SessionAuth(cfg.JWTSecret, true), panelH.Panel)

	// Protected API
	v1 := r.Group("/v1", middleware.SessionAuth(cfg.JWTSecret, false))
	{
		v1.GET("/catalogo/ws", wsH.Stream)

		v1.GET("/categorias", categoriasH.Listar)
		v1.POST("/categorias", categoriasH.Crear)
		v1.PUT("/categorias/:id", categoriasH.Actualizar)
		v1.DELETE("/categorias/:id", categoriasH.Eliminar)

		v1.GET("/productos", productosH.Listar)
		v1.POST("/productos", productosH.Crear)
		v1.PUT("/productos/:id", productosH.Actualizar)
		v1.DELETE("/productos/:id", productosH.Eliminar)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
