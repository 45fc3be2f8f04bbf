package catalog

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/glamour-aluminium/catalogue/internal/platform/httpx"
)

// maxUploadBytes bounds the multipart form held in memory per request.
const maxUploadBytes = 24 << 20

// Handler wires the catalogue JSON API.
type Handler struct {
	logger       *slog.Logger
	service      *Service
	adminKeyHash string
}

// NewHandler constructs a Handler instance. adminKeyHash is the bcrypt
// hash guarding the admin surface; when empty the admin routes reject
// every request.
func NewHandler(logger *slog.Logger, service *Service, adminKeyHash string) *Handler {
	return &Handler{
		logger:       logger,
		service:      service,
		adminKeyHash: adminKeyHash,
	}
}

// MountRoutes registers catalogue routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/products", h.list)
	r.Get("/products/{slug}", h.show)
	r.Get("/categories", h.categories)
	r.Route("/admin", func(r chi.Router) {
		r.Use(h.requireAdminKey)
		r.Post("/products", h.create)
		r.Put("/products/{id}", h.update)
		r.Delete("/products/{id}", h.remove)
	})
}

type listResponse struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
}

type categoriesResponse struct {
	Categories []Category `json:"categories"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	q := Query{
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("search"),
		Sort:     r.URL.Query().Get("sort"),
	}

	products, err := h.service.List(r.Context(), q)
	if err != nil {
		h.logger.Error("list products", slog.Any("error", err))
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, listResponse{Products: products, Total: len(products)})
}

func (h *Handler) show(w http.ResponseWriter, r *http.Request) {
	product, err := h.service.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		if errors.Is(err, ErrStoreUnavailable) {
			h.logger.Error("load product", slog.Any("error", err))
		}
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, product)
}

func (h *Handler) categories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.service.Categories(r.Context())
	if err != nil {
		h.logger.Error("list categories", slog.Any("error", err))
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, categoriesResponse{Categories: cats})
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	form, image, err := h.parseProductForm(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", err.Error())
		return
	}
	id, err := h.service.Create(r.Context(), form, image)
	if err != nil {
		h.logger.Error("create product", slog.Any("error", err))
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	form, image, err := h.parseProductForm(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", err.Error())
		return
	}
	id := chi.URLParam(r, "id")
	if err := h.service.Update(r.Context(), id, form, image); err != nil {
		h.logger.Error("update product", slog.String("id", id), slog.Any("error", err))
		h.respondError(w, err)
		return
	}
	httpx.NoContent(w)
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.service.Delete(r.Context(), id); err != nil {
		h.logger.Error("delete product", slog.String("id", id), slog.Any("error", err))
		h.respondError(w, err)
		return
	}
	httpx.NoContent(w)
}

// parseProductForm reads the multipart admin payload: a "product" field
// holding the JSON form, plus an optional "image" file part.
func (h *Handler) parseProductForm(r *http.Request) (ProductForm, *ImageUpload, error) {
	var form ProductForm
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return form, nil, err
	}
	if err := httpx.DecodeJSONString(r.FormValue("product"), &form); err != nil {
		return form, nil, err
	}

	file, header, err := r.FormFile("image")
	if err == http.ErrMissingFile {
		return form, nil, nil
	}
	if err != nil {
		return form, nil, err
	}
	return form, &ImageUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Reader:      file,
	}, nil
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidSlug):
		httpx.Problem(w, http.StatusBadRequest, "Invalid Product URL", err.Error())
	case errors.Is(err, ErrNotFound):
		httpx.Problem(w, http.StatusNotFound, "Product Not Found", err.Error())
	case errors.Is(err, ErrValidation):
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
	case errors.Is(err, ErrStoreUnavailable):
		httpx.Problem(w, http.StatusBadGateway, "Store Unavailable", ErrStoreUnavailable.Error())
	default:
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}

// requireAdminKey gates the admin surface behind a bearer key checked
// against the configured bcrypt hash.
func (h *Handler) requireAdminKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || key == "" || h.adminKeyHash == "" {
			httpx.Problem(w, http.StatusUnauthorized, "Unauthorized", "admin key required")
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(h.adminKeyHash), []byte(key)); err != nil {
			h.logger.Warn("admin key rejected", slog.String("path", r.URL.Path))
			httpx.Problem(w, http.StatusUnauthorized, "Unauthorized", "admin key rejected")
			return
		}
		next.ServeHTTP(w, r)
	})
}
