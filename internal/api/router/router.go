package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "userhub/docs" // registra o documento OpenAPI servido em /swagger/doc.json

	"userhub/internal/api/car"
	"userhub/internal/api/house"
	"userhub/internal/api/passport"
	"userhub/internal/api/user"
	"userhub/internal/pkg/logger"
	"userhub/internal/pkg/metrics"
	"userhub/internal/pkg/middleware"
)

// Handlers reúne os handlers já inicializados por injeção de dependências.
type Handlers struct {
	User     *user.Handler
	Car      *car.Handler
	House    *house.Handler
	Passport *passport.Handler
}

// NewRouter configura e retorna o roteador HTTP principal.
// gatherer é o registro Prometheus exposto em /metrics.
func NewRouter(h Handlers, m *metrics.Metrics, gatherer prometheus.Gatherer, log logger.Logger) http.Handler {
	r := chi.NewRouter()

	// --- 1. Middlewares globais ---
	// Recoverer fica dentro de Instrument para que o 500 de um panic seja medido.
	r.Use(middleware.RequestID)
	r.Use(middleware.Instrument(m, log))
	r.Use(chimw.Recoverer)

	// --- 2. Rotas operacionais ---
	r.Get("/ping", PingHandler)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// --- 3. Rotas de recursos ---
	// Rotas estáticas têm precedência sobre os parâmetros no chi,
	// então /users/sort não colide com /users/{id}.
	r.Route("/users", func(r chi.Router) {
		r.Get("/", h.User.GetAllHandler)
		r.Post("/", h.User.CreateHandler)
		r.Delete("/", h.User.DeleteHandler)
		r.Get("/sort", h.User.GetAllSortedHandler)
		r.Get("/count", h.User.CountHandler)
		r.Get("/filter", h.User.FilterHandler)
		r.Get("/{id}", h.User.GetByIDHandler)
		r.Put("/{id}", h.User.UpdateHandler)

		r.Route("/car", func(r chi.Router) {
			r.Get("/", h.Car.GetAllHandler)
			r.Post("/", h.Car.CreateHandler)
			r.Get("/graduationYear/{year}", h.Car.GetByGraduationYearHandler)
			r.Get("/userName/{name}/email/{email}", h.Car.GetByUserNameAndEmailHandler)
			r.Get("/brancCar/{brand}/model/{model}", h.Car.GetByBrandAndModelHandler)
			r.Put("/update/{vinCode}", h.Car.UpdateByVinCodeHandler)
			r.Delete("/delete/{vinCode}", h.Car.DeleteByVinCodeHandler)
			r.Get("/{vinCode}", h.Car.GetByVinCodeHandler)
		})

		r.Route("/house", func(r chi.Router) {
			r.Get("/", h.House.GetAllHandler)
			r.Post("/add", h.House.CreateHandler)
			r.Get("/town/{town}", h.House.GetByTownHandler)
			r.Get("/country/{country}", h.House.GetByCountryHandler)
			r.Put("/update/houseNumber/{h}/flatNumber/{f}", h.House.UpdateHandler)
			r.Get("/{houseNumber}/{flatNumber}", h.House.GetByHouseAndFlatHandler)
			r.Delete("/{houseNumber}/{flatNumber}", h.House.DeleteHandler)
		})

		r.Route("/passport", func(r chi.Router) {
			r.Get("/", h.Passport.GetAllHandler)
			r.Post("/", h.Passport.CreateHandler)
			r.Delete("/", h.Passport.DeleteByNumberHandler)
			r.Get("/nationality", h.Passport.GetByNationalityHandler)
			r.Get("/valid", h.Passport.GetValidHandler)
			r.Get("/expired", h.Passport.GetExpiredHandler)
			r.Get("/{passportNumber}", h.Passport.GetByNumberHandler)
			r.Put("/{passportNumber}", h.Passport.UpdateByNumberHandler)
		})
	})

	return r
}

// PingHandler é uma função utilitária para o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
