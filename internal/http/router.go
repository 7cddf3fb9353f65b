package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/zazzlife/zazz-api/internal/album"
	"github.com/zazzlife/zazz-api/internal/apiauth"
	"github.com/zazzlife/zazz-api/internal/auth"
	"github.com/zazzlife/zazz-api/internal/comment"
	"github.com/zazzlife/zazz-api/internal/config"
	"github.com/zazzlife/zazz-api/internal/event"
	"github.com/zazzlife/zazz-api/internal/feed"
	"github.com/zazzlife/zazz-api/internal/follow"
	"github.com/zazzlife/zazz-api/internal/httputil"
	"github.com/zazzlife/zazz-api/internal/logging"
	"github.com/zazzlife/zazz-api/internal/notification"
	"github.com/zazzlife/zazz-api/internal/photo"
	"github.com/zazzlife/zazz-api/internal/post"
	"github.com/zazzlife/zazz-api/internal/reward"
	"github.com/zazzlife/zazz-api/internal/user"
	"github.com/zazzlife/zazz-api/internal/vote"
	"github.com/zazzlife/zazz-api/internal/weekly"
)

// Handlers groups the HTTP handlers mounted under /api/v1
type Handlers struct {
	Auth          *auth.Handler
	Users         *user.Handler
	Posts         *post.Handler
	Events        *event.Handler
	Photos        *photo.Handler
	Comments      *comment.Handler
	Votes         *vote.Handler
	Follows       *follow.Handler
	Notifications *notification.Handler
	Feed          *feed.Handler
	Rewards       *reward.Handler
	Albums        *album.Handler
	Weeklies      *weekly.Handler
}

// route binds a method and pattern to a handler and the policy guarding it
type route struct {
	method  string
	pattern string
	policy  apiauth.Policy
	handler http.HandlerFunc
}

// routes is the single table of API endpoints. Only account bootstrap
// endpoints accept a client signature without an access token.
func routes(h Handlers) []route {
	clientOnly := apiauth.PolicyClient
	signedIn := apiauth.PolicyUser

	return []route{
		{http.MethodPost, "/auth/register", clientOnly, h.Auth.Register},
		{http.MethodPost, "/auth/login", clientOnly, h.Auth.Login},
		{http.MethodPost, "/auth/refresh", clientOnly, h.Auth.Refresh},
		{http.MethodGet, "/auth/verify-email", clientOnly, h.Auth.VerifyEmail},
		{http.MethodPost, "/auth/forgot-password", clientOnly, h.Auth.ForgotPassword},
		{http.MethodPost, "/auth/reset-password", clientOnly, h.Auth.ResetPassword},
		{http.MethodPost, "/auth/resend-verification", clientOnly, h.Auth.ResendVerificationEmail},
		{http.MethodPost, "/auth/logout", signedIn, h.Auth.Logout},

		{http.MethodGet, "/users/me", signedIn, h.Users.Me},
		{http.MethodGet, "/users/{username}", signedIn, h.Users.GetByUsername},
		{http.MethodPost, "/users/{id}/follow", signedIn, h.Follows.Follow},
		{http.MethodDelete, "/users/{id}/follow", signedIn, h.Follows.Unfollow},
		{http.MethodGet, "/users/{id}/followers", signedIn, h.Follows.Followers},

		{http.MethodGet, "/feed", signedIn, h.Feed.Home},

		{http.MethodPost, "/posts", signedIn, h.Posts.Create},
		{http.MethodGet, "/posts/{id}", signedIn, h.Posts.Get},
		{http.MethodPut, "/posts/{id}", signedIn, h.Posts.Edit},
		{http.MethodDelete, "/posts/{id}", signedIn, h.Posts.Remove},
		{http.MethodGet, "/posts/{id}/comments", signedIn, h.Comments.ListForPost},

		{http.MethodPost, "/events", signedIn, h.Events.Create},
		{http.MethodGet, "/events", signedIn, h.Events.ListByUser},
		{http.MethodGet, "/events/{id}", signedIn, h.Events.Get},
		{http.MethodPut, "/events/{id}", signedIn, h.Events.Update},
		{http.MethodDelete, "/events/{id}", signedIn, h.Events.Delete},
		{http.MethodGet, "/events/{id}/comments", signedIn, h.Comments.ListForEvent},

		{http.MethodPost, "/photos", signedIn, h.Photos.Create},
		{http.MethodGet, "/photos/{id}", signedIn, h.Photos.Get},
		{http.MethodDelete, "/photos/{id}", signedIn, h.Photos.Remove},
		{http.MethodGet, "/photos/{id}/comments", signedIn, h.Comments.ListForPhoto},
		{http.MethodGet, "/photos/{id}/votes", signedIn, h.Votes.Get},
		{http.MethodPost, "/photos/{id}/votes", signedIn, h.Votes.Add},
		{http.MethodDelete, "/photos/{id}/votes", signedIn, h.Votes.Remove},

		{http.MethodPost, "/albums", signedIn, h.Albums.Create},
		{http.MethodGet, "/albums", signedIn, h.Albums.ListByUser},
		{http.MethodGet, "/albums/{id}", signedIn, h.Albums.Get},
		{http.MethodPut, "/albums/{id}", signedIn, h.Albums.Rename},
		{http.MethodDelete, "/albums/{id}", signedIn, h.Albums.Delete},

		{http.MethodPost, "/comments", signedIn, h.Comments.Create},
		{http.MethodPut, "/comments/{id}", signedIn, h.Comments.Edit},
		{http.MethodDelete, "/comments/{id}", signedIn, h.Comments.Remove},

		{http.MethodGet, "/notifications", signedIn, h.Notifications.List},
		{http.MethodGet, "/notifications/unread-count", signedIn, h.Notifications.UnreadCount},
		{http.MethodPost, "/notifications/read", signedIn, h.Notifications.MarkAllRead},
		{http.MethodDelete, "/notifications/{id}", signedIn, h.Notifications.Remove},

		{http.MethodGet, "/clubs/{id}/scenarios", signedIn, h.Rewards.ListScenarios},
		{http.MethodGet, "/clubs/{id}/rewards", signedIn, h.Rewards.ListRewards},
		{http.MethodGet, "/clubs/{id}/points", signedIn, h.Rewards.Points},
		{http.MethodPost, "/rewards/scenarios", signedIn, h.Rewards.AddScenario},
		{http.MethodPut, "/rewards/scenarios/{id}", signedIn, h.Rewards.ChangeScenarioAmount},
		{http.MethodDelete, "/rewards/scenarios/{id}", signedIn, h.Rewards.RemoveScenario},
		{http.MethodPost, "/rewards", signedIn, h.Rewards.AddReward},
		{http.MethodPut, "/rewards/{id}", signedIn, h.Rewards.UpdateReward},
		{http.MethodDelete, "/rewards/{id}", signedIn, h.Rewards.RemoveReward},
		{http.MethodPost, "/rewards/{id}/enable", signedIn, h.Rewards.EnableReward},
		{http.MethodPost, "/rewards/{id}/disable", signedIn, h.Rewards.DisableReward},
		{http.MethodPost, "/rewards/{id}/redeem", signedIn, h.Rewards.Redeem},
		{http.MethodPost, "/points/award", signedIn, h.Rewards.Award},
		{http.MethodDelete, "/user-rewards/{id}", signedIn, h.Rewards.RemoveUserReward},

		{http.MethodPost, "/weeklies", signedIn, h.Weeklies.Create},
		{http.MethodGet, "/weeklies", signedIn, h.Weeklies.ListByUser},
		{http.MethodGet, "/weeklies/{id}", signedIn, h.Weeklies.Get},
		{http.MethodPut, "/weeklies/{id}", signedIn, h.Weeklies.Edit},
		{http.MethodDelete, "/weeklies/{id}", signedIn, h.Weeklies.Delete},
	}
}

// NewRouter creates and configures the HTTP router
func NewRouter(cfg *config.Config, h Handlers, authMiddleware *apiauth.Middleware, logger *logging.Logger) *chi.Mux {
	r := chi.NewRouter()

	// CORS - must be first
	if len(cfg.Server.TrustedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.Server.TrustedOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{
				"Accept",
				"Content-Type",
				apiauth.HeaderAuthorization,
				apiauth.HeaderDate,
				apiauth.HeaderNonce,
				apiauth.HeaderAccessToken,
			},
			ExposedHeaders: []string{"Content-Length"},
			MaxAge:         300, // 5 minutes
		}))
	}

	// Global middleware
	// Security headers on all responses, HSTS outside development
	r.Use(SecurityHeaders(!cfg.Server.IsDevelopment()))
	r.Use(middleware.Recoverer)          // Recover from panics
	r.Use(middleware.RequestID)          // Add request ID
	r.Use(middleware.RealIP)             // Set RemoteAddr to real IP
	r.Use(logging.RequestLogger(logger)) // Structured logging with request context
	r.Use(middleware.Compress(5))        // Compress responses

	r.Get("/health", handleHealth)

	// Swagger UI - only in development
	if cfg.Server.IsDevelopment() {
		logger.Info("swagger UI enabled", "path", "/swagger/*")
		r.Get("/swagger/*", httpSwagger.WrapHandler)
	}

	r.Route("/api/v1", func(r chi.Router) {
		for _, rt := range routes(h) {
			r.With(authMiddleware.Require(rt.policy)).Method(rt.method, rt.pattern, rt.handler)
		}
	})

	return r
}

// handleHealth is a simple health check endpoint
// @Summary      Health check
// @Description  Check if the API is running
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /health [get]
func handleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, map[string]string{"status": "api is running"}, http.StatusOK)
}
