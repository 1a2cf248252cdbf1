// internal/adapters/http/router.go
package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mahabubulhasibshawon/doorrush/internal/application"
	"github.com/mahabubulhasibshawon/doorrush/internal/domain"
	"github.com/mahabubulhasibshawon/doorrush/internal/logger"
)

// Deps is everything the page handlers call into. The session, order form
// and effects outbox are process wide, so the server is single-user: every
// client that reaches it acts as the signed-in customer. Bind it to loopback.
type Deps struct {
	Session     *application.SessionManager
	Auth        *application.AuthService
	Profiles    *application.ProfileService
	Orders      *application.OrderService
	Workflow    *application.OrderWorkflow
	Agents      *application.AgentDirectory
	AgentList   *application.AgentList
	Messenger   *application.Messenger
	Preferences *application.PreferencesService
	Feedback    *application.FeedbackService
	Tips        *application.TipService
	Effects     *Outbox
	Log         *logger.Logger
	FilesDir    string
}

type Handler struct {
	Deps
}

type routeClass int

const (
	public routeClass = iota
	guestOnly
	protected
)

// NewRouter builds the page routes over one shared customer session.
func NewRouter(d Deps) *gin.Engine {
	h := &Handler{Deps: d}
	r := gin.New()
	r.Use(gin.Recovery(), h.requestLog())

	if d.FilesDir != "" {
		r.Static("/files", d.FilesDir)
	}

	r.GET("/", h.guard(public), h.landing)

	guest := r.Group("/", h.guard(guestOnly))
	{
		guest.GET("/login", h.loginPage)
		guest.POST("/login", h.login)
		guest.GET("/register", h.registerPage)
		guest.POST("/register", h.register)
	}

	app := r.Group("/", h.guard(protected))
	{
		app.GET("/dashboard", h.dashboard)
		app.GET("/place-order", h.placeOrderPage)
		app.POST("/place-order", h.placeOrder)
		app.GET("/order-confirmation", h.confirmation)
		app.GET("/order-history", h.history)
		app.GET("/order/:id", h.orderDetail)
		app.POST("/order/:id", h.orderAction)
		app.GET("/profile", h.profile)
		app.POST("/profile", h.profileAction)
		app.GET("/notifications", h.notifications)
		app.GET("/notification-preferences", h.preferences)
		app.POST("/notification-preferences", h.savePreferences)
		app.GET("/change-password", h.changePasswordPage)
		app.POST("/change-password", h.changePassword)
		app.GET("/feedback", h.feedbackPage)
		app.POST("/feedback", h.submitFeedback)
	}

	r.NoRoute(func(c *gin.Context) {
		h.render(c, http.StatusNotFound, "not-found", gin.H{"path": c.Request.URL.Path})
	})
	return r
}

// guard answers with the loading view while the session check is pending
// and redirects when the route class does not fit the session.
func (h *Handler) guard(class routeClass) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap := h.Session.Snapshot()
		if snap.State == application.StateChecking {
			c.AbortWithStatusJSON(http.StatusAccepted, gin.H{"view": "loading"})
			return
		}
		switch class {
		case guestOnly:
			if snap.Authenticated() {
				h.redirect(c, "/dashboard")
				return
			}
		case protected:
			if !snap.Authenticated() {
				h.redirect(c, "/login")
				return
			}
		}
		c.Next()
	}
}

func (h *Handler) redirect(c *gin.Context, to string) {
	c.Header("Location", to)
	c.AbortWithStatusJSON(http.StatusSeeOther, gin.H{"redirect": to, "effects": h.Effects.Drain()})
}

func (h *Handler) render(c *gin.Context, status int, view string, data any) {
	c.JSON(status, gin.H{"view": view, "data": data, "effects": h.Effects.Drain()})
}

// fail maps err to a status code and a message safe to show.
func (h *Handler) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	var pub *domain.PublicError
	switch {
	case errors.Is(err, domain.ErrNotAuthenticated), errors.Is(err, domain.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrPhoneRegistered), errors.Is(err, domain.ErrNoAgentsAvailable):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrMissingDetails), errors.Is(err, domain.ErrInvalidStep), errors.As(err, &pub):
		status = http.StatusUnprocessableEntity
	}
	if status == http.StatusInternalServerError {
		h.Log.Error("http."+c.FullPath(), err, nil)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": domain.UserMessage(err), "effects": h.Effects.Drain()})
}

func (h *Handler) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		h.Log.Debug("http.request", logger.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": c.Writer.Status(),
		})
	}
}

func (h *Handler) customer(c *gin.Context) (*domain.Customer, bool) {
	customer := h.Session.Customer()
	if customer == nil {
		h.fail(c, domain.ErrNotAuthenticated)
		return nil, false
	}
	return customer, true
}
