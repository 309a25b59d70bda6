// Package app wires the read-only JSON views onto an HTTP mux.
package app

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/mytheresa/product-categories/app/catalog"
	"github.com/mytheresa/product-categories/app/categories"
	"github.com/mytheresa/product-categories/app/users"
	"github.com/mytheresa/product-categories/models"
)

// Repositories bundles the stores built once at startup.
type Repositories struct {
	Products   *models.ProductsRepository
	Categories *models.CategoriesRepository
	Users      *models.UsersRepository
}

// NewRepositories joins dataset once. A data integrity error is fatal
// and no repository is returned.
func NewRepositories(dataset models.Dataset) (*Repositories, error) {
	products, err := models.NewProductsRepository(dataset)
	if err != nil {
		return nil, err
	}
	return &Repositories{
		Products:   products,
		Categories: models.NewCategoriesRepository(dataset),
		Users:      models.NewUsersRepository(dataset),
	}, nil
}

// NewRouter registers every handler and wraps the mux in request
// logging.
func NewRouter(repos *Repositories, logger *slog.Logger) http.Handler {
	catalogHandler := catalog.NewCatalogHandler(repos.Products)
	categoryHandler := categories.NewCategoryHandler(repos.Categories, repos.Users)
	userHandler := users.NewUserHandler(repos.Users)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /catalog", catalogHandler.HandleGet)
	mux.HandleFunc("GET /catalog/{id}", catalogHandler.HandleGetProduct)
	mux.HandleFunc("GET /categories", categoryHandler.HandleGetAll)
	mux.HandleFunc("GET /users", userHandler.HandleGetAll)

	return logRequests(mux, logger)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

func logRequests(next http.Handler, logger *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)
		logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", recorder.status,
			"duration", time.Since(start),
		)
	})
}
