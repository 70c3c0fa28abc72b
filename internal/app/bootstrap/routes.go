// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	departmentsfeature "github.com/rotahub/rotahub/internal/app/features/departments"
	depteamsfeature "github.com/rotahub/rotahub/internal/app/features/depteams"
	healthfeature "github.com/rotahub/rotahub/internal/app/features/health"
	locationsfeature "github.com/rotahub/rotahub/internal/app/features/locations"
	modulesfeature "github.com/rotahub/rotahub/internal/app/features/modules"
	organisationsfeature "github.com/rotahub/rotahub/internal/app/features/organisations"
	rotafeature "github.com/rotahub/rotahub/internal/app/features/rota"
	"github.com/rotahub/rotahub/internal/app/features/shared"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: any DB or backend clients bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// RotaHub mounts JSON feature routers for organisations, departments,
// teams, hospital locations, the module catalogue, and the weekly rota,
// plus a health endpoint for load balancers and orchestrators.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	db := deps.RotaHubMongoDatabase

	shared.SetDefaultActor(appCfg.DefaultActorID)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.RotaHubMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	orgHandler := organisationsfeature.NewHandler(db, logger)
	r.Mount("/organisations", organisationsfeature.Routes(orgHandler))

	depHandler := departmentsfeature.NewHandler(db, logger)
	r.Mount("/departments", departmentsfeature.Routes(depHandler))

	// Teams are created and listed inside a department, but addressed
	// individually under /teams.
	teamsHandler := depteamsfeature.NewHandler(db, logger)
	r.Mount("/departments/{depID}/teams", depteamsfeature.DepartmentRoutes(teamsHandler))
	r.Mount("/teams", depteamsfeature.Routes(teamsHandler))

	locHandler := locationsfeature.NewHandler(db, logger)
	r.Mount("/locations", locationsfeature.Routes(locHandler))

	modHandler := modulesfeature.NewHandler(db, logger)
	r.Mount("/modules", modulesfeature.Routes(modHandler))

	rotaHandler := rotafeature.NewHandler(db, logger)
	r.Mount("/rota", rotafeature.Routes(rotaHandler))

	return r, nil
}
