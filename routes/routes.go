package routes

import (
	"fmt"

	"bistro-api/handlers"
	"bistro-api/middleware"
	"bistro-api/policy"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the engine with recovery, request logging and CORS, then
// mounts every route. An empty origins list allows all origins.
func NewRouter(h *handlers.Handler, origins []string) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(), middleware.RequestLogger())

	corsCfg := cors.DefaultConfig()
	corsCfg.AddAllowHeaders("Authorization")
	if len(origins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = origins
	}
	r.Use(cors.New(corsCfg))

	SetupRoutes(r, h)
	return r
}

// Endpoints maps each access-table key to its handler.
func Endpoints(h *handlers.Handler) map[string]gin.HandlerFunc {
	return map[string]gin.HandlerFunc{
		"GET /menu":                   h.ListMenu,
		"POST /menu":                  h.CreateMenuItem,
		"DELETE /menu/:id":            h.DeleteMenuItem,
		"GET /reviews":                h.ListReviews,
		"GET /cart":                   h.ListCart,
		"POST /cart":                  h.AddToCart,
		"DELETE /cart/:id":            h.RemoveFromCart,
		"GET /users":                  h.ListUsers,
		"POST /users":                 h.CreateUser,
		"GET /users/admin/:email":     h.IsAdmin,
		"PATCH /users/admin/:id":      h.PromoteToAdmin,
		"POST /jwt":                   h.IssueToken,
		"POST /create-payment-intent": h.CreatePaymentIntent,
		"POST /payments":              h.RecordPayment,
	}
}

// SetupRoutes mounts the informational routes and then every rule of the
// access table behind the gates it names.
func SetupRoutes(r *gin.Engine, h *handlers.Handler) {
	r.GET("/", h.Root)
	r.GET("/health", h.Health)
	r.GET("/access-rules", h.AccessRules)

	authGate := middleware.AuthRequired(h.TokenSecret)
	adminGate := middleware.AdminRequired(h.Store)
	endpoints := Endpoints(h)

	for _, rule := range policy.Rules() {
		handler, ok := endpoints[rule.Key()]
		if !ok {
			panic(fmt.Sprintf("routes: no handler for %s", rule.Key()))
		}

		chain := make([]gin.HandlerFunc, 0, 3)
		if rule.Auth {
			chain = append(chain, authGate)
		}
		if rule.Admin {
			chain = append(chain, adminGate)
		}
		chain = append(chain, handler)
		r.Handle(rule.Method, rule.Path, chain...)
	}
}
