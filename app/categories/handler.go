package categories

import (
	"net/http"

	"github.com/mytheresa/product-categories/app/respond"
	"github.com/mytheresa/product-categories/models"
)

type Owner struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Sex  string `json:"sex"`
}

type CategoryResponse struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
	Icon  string `json:"icon"`
	Owner Owner  `json:"owner"`
}

type CategoryProvider interface {
	GetAllCategories() []models.Category
}

type OwnerProvider interface {
	GetByID(id uint) (*models.User, error)
}

type CategoryHandler struct {
	repo   CategoryProvider
	owners OwnerProvider
}

func NewCategoryHandler(r CategoryProvider, owners OwnerProvider) *CategoryHandler {
	return &CategoryHandler{repo: r, owners: owners}
}

func (h *CategoryHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	categories := h.repo.GetAllCategories()

	response := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		owner, err := h.owners.GetByID(c.OwnerID)
		if err != nil {
			respond.Error(w, http.StatusInternalServerError, "failed to resolve category owner")
			return
		}
		response[i] = CategoryResponse{
			ID:    c.ID,
			Title: c.Title,
			Icon:  c.Icon,
			Owner: Owner{
				ID:   owner.ID,
				Name: owner.Name,
				Sex:  string(owner.Sex),
			},
		}
	}

	respond.JSON(w, http.StatusOK, response)
}
