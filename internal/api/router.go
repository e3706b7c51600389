package api

import (
	"fmt"
	"net"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/bandsite/cms-api/internal/api/handler"
	"github.com/bandsite/cms-api/internal/api/middleware"
	"github.com/bandsite/cms-api/internal/core/ports"
	ops "github.com/bandsite/cms-api/internal/infrastructure/http"
	"github.com/bandsite/cms-api/internal/infrastructure/http/handlers"
)

const metricsSubsystem = "bandsite"

// multipartOverhead is added to the upload limit for the request body limit.
const multipartOverhead = 1 << 20

// Dependencies is everything the router wires into routes.
type Dependencies struct {
	Log            zerolog.Logger
	Development    bool
	CORSOrigins    []string
	UploadMaxBytes int64
	Policy         Policy
	// TrustedProxies enables X-Forwarded-For parsing for requests arriving
	// from these ranges. Empty means the peer address is used as is.
	TrustedProxies []*net.IPNet

	// Registry receives the HTTP metrics; nil means the default registry.
	Registry *prometheus.Registry

	Verifier ports.TokenVerifier
	// Limiter may be nil, which disables rate limiting.
	Limiter middleware.Limiter
	Checks  map[string]handlers.Check

	Auth      ports.AuthService
	Users     ports.UserService
	Members   ports.MemberService
	Gigs      ports.GigService
	Songs     ports.SongService
	Gallery   ports.GalleryService
	News      ports.NewsService
	Contact   ports.ContactService
	Guestbook ports.GuestbookService
	Uploads   ports.UploadService
}

// ipExtractor decides what c.RealIP returns, which keys the rate limits.
func ipExtractor(proxies []*net.IPNet) echo.IPExtractor {
	if len(proxies) == 0 {
		return echo.ExtractIPDirect()
	}
	opts := []echo.TrustOption{
		echo.TrustLoopback(false),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(false),
	}
	for _, n := range proxies {
		opts = append(opts, echo.TrustIPRange(n))
	}
	return echo.ExtractIPFromXFFHeader(opts...)
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log, d.Development)
	e.IPExtractor = ipExtractor(d.TrustedProxies)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.RequestLogger(d.Log))
	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if d.Registry != nil {
		registerer, gatherer = d.Registry, d.Registry
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  metricsSubsystem,
		Registerer: registerer,
	}))
	e.Use(echomiddleware.Secure())
	if len(d.CORSOrigins) > 0 {
		e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{AllowOrigins: d.CORSOrigins}))
	}
	if d.UploadMaxBytes > 0 {
		e.Use(echomiddleware.BodyLimit(fmt.Sprintf("%dK", (d.UploadMaxBytes+multipartOverhead)>>10)))
	}

	ops.RegisterOps(e, d.Checks, gatherer)

	policy := d.Policy
	if policy == nil {
		policy = DefaultPolicy()
	}
	authn := middleware.Authenticate(d.Verifier)
	// gate is the middleware chain of a protected route. Middleware is set
	// per route, never per group: group middleware would also run for
	// unknown paths under the group and turn their 404 into a 401.
	gate := func(name string) []echo.MiddlewareFunc {
		return []echo.MiddlewareFunc{authn, middleware.Authorize(policy.Roles(name)...)}
	}
	limit := func(scope string) echo.MiddlewareFunc {
		if d.Limiter == nil {
			return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
		}
		return middleware.RateLimit(d.Limiter, scope, d.Log)
	}

	// --- Auth ---
	authHandler := handler.NewAuthHandler(d.Auth)
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register, limit("register"))
	auth.POST("/login", authHandler.Login, limit("login"))
	auth.GET("/me", authHandler.Me, gate(PolicyAccount)...)
	auth.PUT("/password", authHandler.ChangePassword, gate(PolicyAccount)...)

	// --- Users ---
	userHandler := handler.NewUserHandler(d.Users)
	users := e.Group("/api/users")
	users.GET("", userHandler.List, gate(PolicyUsersManage)...)
	users.GET("/:id", userHandler.Get, gate(PolicyUsersManage)...)
	users.PATCH("/:id/role", userHandler.UpdateRole, gate(PolicyUsersManage)...)
	users.DELETE("/:id", userHandler.Delete, gate(PolicyUsersManage)...)

	// --- Band content ---
	write := gate(PolicyContentWrite)
	registerCatalog(e.Group("/api/members"), handler.NewMemberHandler(d.Members), write)
	registerCatalog(e.Group("/api/gigs"), handler.NewGigHandler(d.Gigs), write)
	registerCatalog(e.Group("/api/songs"), handler.NewSongHandler(d.Songs), write)
	registerCatalog(e.Group("/api/gallery"), handler.NewGalleryHandler(d.Gallery), write)

	newsHandler := handler.NewNewsHandler(d.News)
	news := e.Group("/api/news")
	news.GET("", newsHandler.List)
	news.GET("/all", newsHandler.ListAll, write...)
	news.GET("/:id", newsHandler.Get)
	news.POST("", newsHandler.Create, write...)
	news.PUT("/:id", newsHandler.Update, write...)
	news.DELETE("/:id", newsHandler.Delete, write...)

	// --- Inbox ---
	contactHandler := handler.NewContactHandler(d.Contact)
	contact := e.Group("/api/contact")
	contact.POST("", contactHandler.Submit, limit("contact"))
	contact.GET("", contactHandler.List, gate(PolicyInboxRead)...)
	contact.PATCH("/:id/read", contactHandler.MarkRead, gate(PolicyInboxRead)...)
	contact.DELETE("/:id", contactHandler.Delete, gate(PolicyInboxRead)...)

	guestbookHandler := handler.NewGuestbookHandler(d.Guestbook)
	guestbook := e.Group("/api/guestbook")
	guestbook.GET("", guestbookHandler.List)
	guestbook.POST("", guestbookHandler.Sign, append(gate(PolicyGuestbookWrite), limit("guestbook"))...)
	guestbook.GET("/pending", guestbookHandler.Pending, gate(PolicyGuestbookModerate)...)
	guestbook.PATCH("/:id/approve", guestbookHandler.Approve, gate(PolicyGuestbookModerate)...)
	guestbook.DELETE("/:id", guestbookHandler.Delete, gate(PolicyGuestbookModerate)...)

	// --- Uploads ---
	uploadHandler := handler.NewUploadHandler(d.Uploads)
	e.POST("/api/upload", uploadHandler.Upload, gate(PolicyUploads)...)

	return e
}

// catalogHandler is the route surface shared by the band content handlers.
type catalogHandler interface {
	List(echo.Context) error
	Get(echo.Context) error
	Create(echo.Context) error
	Update(echo.Context) error
	Delete(echo.Context) error
}

// registerCatalog mounts public reads and gated writes of one collection.
func registerCatalog(g *echo.Group, h catalogHandler, write []echo.MiddlewareFunc) {
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", h.Create, write...)
	g.PUT("/:id", h.Update, write...)
	g.DELETE("/:id", h.Delete, write...)
}
