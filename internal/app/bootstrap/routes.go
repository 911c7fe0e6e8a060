// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"strings"

	authfeature "github.com/dalemusser/riskintel/internal/app/features/auth"
	healthfeature "github.com/dalemusser/riskintel/internal/app/features/health"
	propertiesfeature "github.com/dalemusser/riskintel/internal/app/features/properties"
	proposalsfeature "github.com/dalemusser/riskintel/internal/app/features/proposals"
	seedfeature "github.com/dalemusser/riskintel/internal/app/features/seed"
	uwrcfeature "github.com/dalemusser/riskintel/internal/app/features/uwrc"
	sessionstore "github.com/dalemusser/riskintel/internal/app/store/sessions"
	"github.com/dalemusser/riskintel/internal/app/system/auth"
	"github.com/dalemusser/riskintel/internal/app/system/httpjson"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. The dashboard frontend talks to
// everything under /api; /health stays outside that prefix for load
// balancers and orchestrators.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	db := deps.RiskIntelMongoDatabase

	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   splitOrigins(appCfg.CORSOrigins),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// Global auth middleware: resolves a bearer token to a user in context.
	// Requests without a valid token stay anonymous; individual routes
	// decide whether that is acceptable.
	verifier := auth.NewVerifier(sessionstore.NewFetcher(db), logger)
	r.Use(verifier.LoadBearerUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.RiskIntelMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	r.Route("/api", func(api chi.Router) {
		api.Get("/", func(w http.ResponseWriter, r *http.Request) {
			httpjson.Write(w, http.StatusOK, map[string]any{"message": "Risk Intel Pro API"})
		})

		authHandler := authfeature.NewHandler(db, logger)
		api.Mount("/auth", authfeature.Routes(authHandler))

		proposalsHandler := proposalsfeature.NewHandler(db, logger)
		api.Mount("/proposals", proposalsfeature.Routes(proposalsHandler))
		api.Get("/statistics", proposalsHandler.Statistics)

		uwrcHandler := uwrcfeature.NewHandler(db, logger)
		api.Mount("/uwrc", uwrcfeature.Routes(uwrcHandler))

		propertiesHandler := propertiesfeature.NewHandler(db, logger)
		api.Mount("/properties", propertiesfeature.Routes(propertiesHandler))

		seedHandler := seedfeature.NewHandler(db, logger)
		api.Mount("/seed", seedfeature.Routes(seedHandler))
	})

	return r, nil
}

// splitOrigins turns the comma-separated cors_origins value into the list
// the CORS middleware expects, trimming whitespace and dropping empties.
func splitOrigins(s string) []string {
	var out []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		out = []string{"*"}
	}
	return out
}
