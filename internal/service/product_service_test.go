package service

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/ImperialKoi/Candit/internal/dto"
	"github.com/ImperialKoi/Candit/pkg/errs"
	"github.com/stretchr/testify/assert"
)

type fakeObjectStorage struct {
	uploadedName string
	deletedPath  string
	uploadErr    error
}

func (f *fakeObjectStorage) Upload(ctx context.Context, file io.Reader, name string) (string, string, error) {
	f.uploadedName = name
	if f.uploadErr != nil {
		return "", "", f.uploadErr
	}
	return "https://res.cloudinary.com/demo/image/upload/v1/product_images/" + name + ".png", "product_images/" + name, nil
}

func (f *fakeObjectStorage) Delete(ctx context.Context, path string) error {
	f.deletedPath = path
	return nil
}

func TestAddProductValidation(t *testing.T) {
	type TestCase struct {
		Name        string
		Request     dto.ProductRequest
		ExpectedErr error
	}

	testCases := []TestCase{
		{
			Name:    "Valid request",
			Request: dto.ProductRequest{Name: "Walnut Phone Stand", PriceCents: 999, Category: "desk", Stock: 5, Rating: 4.5},
		},
		{
			Name:        "Missing name",
			Request:     dto.ProductRequest{PriceCents: 999, Category: "desk"},
			ExpectedErr: errs.ErrIncompleteInput,
		},
		{
			Name:        "Non-positive price",
			Request:     dto.ProductRequest{Name: "Walnut Phone Stand", PriceCents: 0, Category: "desk"},
			ExpectedErr: errs.ErrIncompleteInput,
		},
		{
			Name:        "Negative stock",
			Request:     dto.ProductRequest{Name: "Walnut Phone Stand", PriceCents: 999, Category: "desk", Stock: -1},
			ExpectedErr: errs.ErrClient,
		},
		{
			Name:        "Rating out of range",
			Request:     dto.ProductRequest{Name: "Walnut Phone Stand", PriceCents: 999, Category: "desk", Rating: 5.1},
			ExpectedErr: errs.ErrClient,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			repo := &fakeProductRepository{}
			svc := CreateProductService(repo, &fakeObjectStorage{})

			err := svc.AddProduct(context.Background(), tc.Request, nil, "")

			if tc.ExpectedErr != nil {
				assert.ErrorIs(t, err, tc.ExpectedErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestAddProductRejectsNonImageUpload(t *testing.T) {
	svc := CreateProductService(&fakeProductRepository{}, &fakeObjectStorage{})

	err := svc.AddProduct(context.Background(), dto.ProductRequest{
		Name:       "Walnut Phone Stand",
		PriceCents: 999,
		Category:   "desk",
	}, strings.NewReader("not an image"), "malware.exe")

	assert.ErrorIs(t, err, errs.ErrNotAnImage)
}

func TestAddProductUploadsImage(t *testing.T) {
	storage := &fakeObjectStorage{}
	svc := CreateProductService(&fakeProductRepository{}, storage)

	err := svc.AddProduct(context.Background(), dto.ProductRequest{
		Name:       "Walnut Phone Stand",
		PriceCents: 999,
		Category:   "desk",
	}, strings.NewReader("fake image bytes"), "stand.png")

	assert.NoError(t, err)
	assert.NotEmpty(t, storage.uploadedName)
}

func TestStoragePathFromURL(t *testing.T) {
	type TestCase struct {
		Name     string
		URL      string
		Expected string
		OK       bool
	}

	testCases := []TestCase{
		{
			Name:     "Versioned delivery URL",
			URL:      "https://res.cloudinary.com/demo/image/upload/v1712/product_images/abc.png",
			Expected: "product_images/abc",
			OK:       true,
		},
		{
			Name:     "URL without version segment",
			URL:      "https://res.cloudinary.com/demo/image/upload/product_images/abc.jpg",
			Expected: "product_images/abc",
			OK:       true,
		},
		{
			Name: "Foreign URL",
			URL:  "https://example.com/images/abc.png",
			OK:   false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			got, ok := storagePathFromURL(tc.URL)
			assert.Equal(t, tc.OK, ok)
			assert.Equal(t, tc.Expected, got)
		})
	}
}
