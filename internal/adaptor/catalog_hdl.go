package adaptor

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"farm-storefront/internal/dto/request"
	"farm-storefront/internal/usecase"
	"farm-storefront/pkg/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	service   usecase.CatalogService
	maxUpload int64
	errs      errorMapper
	log       *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, uploadMaxMB int64, errs errorMapper, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service:   service,
		maxUpload: uploadMaxMB << 20,
		errs:      errs,
		log:       log.With(zap.String("handler", "catalog")),
	}
}

// List handles GET /api/products?category=
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		h.errs.handleServiceError(w, r, h.log, err, "list products")
		return
	}

	utils.ResponseSuccess(w, "Products retrieved successfully", products)
}

// Get handles GET /api/products/{id}
func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	product, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.errs.handleServiceError(w, r, h.log, err, "get product")
		return
	}

	utils.ResponseSuccess(w, "Product retrieved successfully", product)
}

// Create handles POST /api/staff/products (multipart/form-data, optional "image")
func (h *CatalogHandler) Create(w http.ResponseWriter, r *http.Request) {
	// form fields plus the image, with 1MB headroom for the other parts
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload+1<<20)
	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.ResponseBadRequest(w, "Image is too large", nil)
			return
		}
		utils.ResponseBadRequest(w, "Invalid form data", nil)
		return
	}
	defer r.MultipartForm.RemoveAll()

	req, fieldErrs := productForm(r)
	if len(fieldErrs) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", fieldErrs)
		return
	}

	file, header, err := r.FormFile("image")
	switch {
	case err == nil:
		defer file.Close()
		req.Image = &request.ImageFile{Filename: header.Filename, Size: header.Size, Content: file}
	case !errors.Is(err, http.ErrMissingFile):
		utils.ResponseBadRequest(w, "Invalid image upload", nil)
		return
	}

	if !validateRequest(w, req) {
		return
	}

	product, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.errs.handleServiceError(w, r, h.log, err, "create product")
		return
	}

	utils.ResponseCreated(w, "Product added successfully", product)
}

// productForm reads the text fields; numbers that fail to parse are reported
// per field like validator errors.
func productForm(r *http.Request) (*request.CreateProductRequest, map[string]string) {
	fieldErrs := make(map[string]string)
	req := &request.CreateProductRequest{
		Name:        strings.TrimSpace(r.FormValue("name")),
		Description: strings.TrimSpace(r.FormValue("description")),
		Category:    r.FormValue("category"),
	}

	price, err := decimal.NewFromString(strings.TrimSpace(r.FormValue("price")))
	if err != nil {
		fieldErrs["price"] = "Must be a valid number"
	}
	req.Price = price

	if raw := strings.TrimSpace(r.FormValue("delivery_time")); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil {
			fieldErrs["delivery_time"] = "Must be a whole number"
		}
		req.DeliveryTime = days
	}

	switch strings.ToLower(r.FormValue("is_available")) {
	case "", "true", "on", "1":
		req.IsAvailable = true
	}

	return req, fieldErrs
}
