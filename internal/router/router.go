package router

import (
	"time"

	"github.com/marco2712/POS-PROCESOS/internal/config"
	"github.com/marco2712/POS-PROCESOS/internal/handler"
	"github.com/marco2712/POS-PROCESOS/internal/infra"
	"github.com/marco2712/POS-PROCESOS/internal/middleware"
	"github.com/marco2712/POS-PROCESOS/internal/repository"
	"github.com/marco2712/POS-PROCESOS/internal/service"
	"github.com/marco2712/POS-PROCESOS/internal/tenant"
	"github.com/marco2712/POS-PROCESOS/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, smtpCB *infra.CircuitBreaker) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	ventaRepo := repository.NewVentaRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	clienteSvc := service.NewClienteService(clienteRepo)
	productoSvc := service.NewProductoService(productoRepo)
	inventarioSvc := service.NewInventarioService(productoRepo, ventaRepo)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	ventaSvc := service.NewVentaService(ventaRepo, clienteRepo, inventarioSvc, dispatcher)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	ventasH := handler.NewVentasHandler(ventaSvc)
	inventarioH := handler.NewInventarioHandler(inventarioSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb, smtpCB))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	}

	jwtMW := middleware.JWTAuth(cfg.JWTSecret)

	// Org listing needs identity but no resolved organization yet
	r.GET("/v1/orgs", jwtMW, authH.ListarOrgs)

	// Protected routes — every request carries a resolved tenant scope
	v1 := r.Group("/v1", jwtMW, middleware.TenantScope(usuarioRepo))
	{
		// Roles: admin, manager, cashier — declared per-endpoint
		lectura := middleware.RequireRol(tenant.RolAdmin, tenant.RolManager, tenant.RolCashier)
		escritura := middleware.RequireRol(tenant.RolAdmin, tenant.RolManager)
		soloAdmin := middleware.RequireRol(tenant.RolAdmin)

		v1.GET("/clientes", lectura, clientesH.Listar)
		v1.GET("/clientes/:id", lectura, clientesH.ObtenerPorID)
		v1.POST("/clientes", escritura, clientesH.Crear)
		v1.PUT("/clientes/:id", escritura, clientesH.Actualizar)
		v1.DELETE("/clientes/:id", soloAdmin, clientesH.Eliminar)

		v1.GET("/productos", lectura, productosH.Listar)
		v1.GET("/productos/:id", lectura, productosH.ObtenerPorID)
		v1.POST("/productos", escritura, productosH.Crear)
		v1.PUT("/productos/:id", escritura, productosH.Actualizar)
		v1.DELETE("/productos/:id", soloAdmin, productosH.Eliminar)

		// Any role that can sell needs to see and validate stock
		v1.GET("/inventario", lectura, inventarioH.Listar)
		v1.GET("/inventario/:producto_id/validar", lectura, inventarioH.ValidarStock)

		v1.POST("/ventas", lectura, ventasH.RegistrarVenta)
		v1.GET("/ventas", lectura, ventasH.ListarVentas)
		v1.GET("/ventas/:id", lectura, ventasH.ObtenerPorID)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
