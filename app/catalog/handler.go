package catalog

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/mytheresa/product-categories/app/respond"
	"github.com/mytheresa/product-categories/models"
)

type Response struct {
	Total    int       `json:"total"`
	Products []Product `json:"products"`
	Filters  Filters   `json:"filters"`
}

type Category struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
	Icon  string `json:"icon"`
}

type User struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Sex  string `json:"sex"`
}

type Product struct {
	ID       uint     `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
	User     User     `json:"user"`
}

// Filters echoes the filter state the response was computed for.
type Filters struct {
	UserID      *uint  `json:"userId"`
	Query       string `json:"query"`
	CategoryIDs []uint `json:"categoryIds"`
}

type ProductProvider interface {
	GetFilteredProducts(filters models.ProductFilters) []models.EnrichedProduct
	GetByID(id uint) (*models.EnrichedProduct, error)
}

type CatalogHandler struct {
	repo ProductProvider
}

func NewCatalogHandler(r ProductProvider) *CatalogHandler {
	return &CatalogHandler{
		repo: r,
	}
}

// ParseFilters builds filter state from query parameters. Unparsable
// ids are ignored; category may be repeated or comma separated.
func ParseFilters(r *http.Request) models.ProductFilters {
	var filters models.ProductFilters
	query := r.URL.Query()

	if uStr := query.Get("user"); uStr != "" {
		if id, err := strconv.ParseUint(uStr, 10, 0); err == nil {
			filters.SelectUser(uint(id))
		}
	}

	filters.SetSearchQuery(query.Get("query"))

	for _, value := range query["category"] {
		for _, cStr := range strings.Split(value, ",") {
			id, err := strconv.ParseUint(strings.TrimSpace(cStr), 10, 0)
			if err != nil || filters.IsCategorySelected(uint(id)) {
				continue
			}
			filters.ToggleCategory(uint(id))
		}
	}

	return filters
}

func toProduct(p models.EnrichedProduct) Product {
	return Product{
		ID:   p.ID,
		Name: p.Name,
		Category: Category{
			ID:    p.Category.ID,
			Title: p.Category.Title,
			Icon:  p.Category.Icon,
		},
		User: User{
			ID:   p.User.ID,
			Name: p.User.Name,
			Sex:  string(p.User.Sex),
		},
	}
}

func (h *CatalogHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	filters := ParseFilters(r)

	res := h.repo.GetFilteredProducts(filters)

	products := make([]Product, len(res))
	for i, p := range res {
		products[i] = toProduct(p)
	}

	categoryIDs := filters.SelectedCategoryIDs
	if categoryIDs == nil {
		categoryIDs = []uint{}
	}

	respond.JSON(w, http.StatusOK, Response{
		Total:    len(products),
		Products: products,
		Filters: Filters{
			UserID:      filters.SelectedUserID,
			Query:       filters.SearchQuery,
			CategoryIDs: categoryIDs,
		},
	})
}

func (h *CatalogHandler) HandleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 0)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	product, err := h.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			respond.Error(w, http.StatusNotFound, "Product not found")
			return
		}
		respond.Error(w, http.StatusInternalServerError, "Failed to retrieve product")
		return
	}

	respond.JSON(w, http.StatusOK, toProduct(*product))
}
