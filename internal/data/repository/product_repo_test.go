package repository_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"farm-storefront/internal/data/entity"
	"farm-storefront/internal/data/repository"
	"farm-storefront/internal/testutil"
	"farm-storefront/pkg/upstream"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRepo(t *testing.T) (*repository.Repository, *testutil.Upstream) {
	t.Helper()
	up := testutil.NewUpstream(t)
	api := upstream.New(up.URL(), zap.NewNop(), upstream.WithTimeout(5*time.Second))
	return repository.NewRepository(testutil.NewMemorySessions(), api, zap.NewNop()), up
}

func TestProductCreateSendsMultipart(t *testing.T) {
	repo, up := newRepo(t)

	var fields map[string]string
	var imageName, imageBody string
	up.Router.Post("/products/create/", func(w http.ResponseWriter, r *http.Request) {
		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		fields = map[string]string{}
		for k, v := range r.MultipartForm.Value {
			fields[k] = v[0]
		}
		file, header, err := r.FormFile("image")
		if err == nil {
			raw, _ := io.ReadAll(file)
			imageName, imageBody = header.Filename, string(raw)
		}
		testutil.WriteJSON(w, http.StatusCreated, map[string]any{
			"success": true,
			"data":    map[string]any{"id": 9, "name": fields["name"], "price": fields["price"]},
		})
	})

	product, err := repo.Product.Create(context.Background(), entity.NewProduct{
		Name:         "Buffalo Milk",
		Description:  "Fresh, 1L",
		Price:        decimal.RequireFromString("60.5"),
		Category:     entity.CategoryMilk,
		DeliveryTime: 1,
		IsAvailable:  true,
	}, &repository.ImageUpload{Filename: "milk.png", Content: strings.NewReader("png-bytes")})
	require.NoError(t, err)

	assert.Equal(t, int64(9), product.ID)
	assert.Equal(t, "60.50", fields["price"])
	assert.Equal(t, "milk", fields["category"])
	assert.Equal(t, "1", fields["delivery_time"])
	assert.Equal(t, "true", fields["is_available"])
	assert.Equal(t, "milk.png", imageName)
	assert.Equal(t, "png-bytes", imageBody)
}

func TestProductDetailWithoutDataIsNotFound(t *testing.T) {
	repo, up := newRepo(t)
	up.JSON(http.MethodGet, "/products/detail/3", http.StatusOK, map[string]any{"data": nil})

	_, err := repo.Product.FindByID(context.Background(), 3)
	apiErr, ok := upstream.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
}

func TestProductListEmbeddedFailure(t *testing.T) {
	repo, up := newRepo(t)
	up.JSON(http.MethodGet, "/products/get/", http.StatusOK, map[string]any{"success": false, "message": "catalog offline"})

	_, err := repo.Product.FindAll(context.Background())
	apiErr, ok := upstream.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "catalog offline", apiErr.Message)
}
