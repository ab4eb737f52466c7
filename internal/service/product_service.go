package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ImperialKoi/Candit/internal/domain"
	"github.com/ImperialKoi/Candit/internal/dto"
	objectstorage "github.com/ImperialKoi/Candit/internal/infrastructure/object-storage"
	"github.com/ImperialKoi/Candit/internal/repository"
	pkgdto "github.com/ImperialKoi/Candit/pkg/dto"
	"github.com/ImperialKoi/Candit/pkg/errs"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
)

type ProductServiceImpl struct {
	repo    repository.ProductRepository
	storage objectstorage.ObjectStorage
}

func CreateProductService(repo repository.ProductRepository, storage objectstorage.ObjectStorage) ProductService {
	return &ProductServiceImpl{repo: repo, storage: storage}
}

func (s *ProductServiceImpl) GetProducts(ctx context.Context, filter pkgdto.Filter) (response pkgdto.PaginationResponse, err error) {
	data, err := s.repo.GetProducts(ctx, filter)
	if err != nil {
		return
	}

	total, err := s.repo.CountProducts(ctx, filter)
	if err != nil {
		return
	}

	records := make([]dto.ProductResponse, 0, len(data))
	for _, product := range data {
		records = append(records, toProductResponse(product))
	}

	response.Records = records
	response.Metadata.TotalCount = uint64(total)
	response.Metadata.Limit = filter.Limit
	response.Metadata.Page = uint64(filter.Page)

	return
}

func (s *ProductServiceImpl) GetProduct(ctx context.Context, id int64) (response dto.ProductResponse, err error) {
	data, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return
	}

	return toProductResponse(data), nil
}

func (s *ProductServiceImpl) AddProduct(ctx context.Context, req dto.ProductRequest, image io.Reader, imageName string) (err error) {
	if req.Name == "" || req.PriceCents <= 0 || req.Category == "" {
		return errs.ErrIncompleteInput
	}

	if err = validateProductNumbers(req); err != nil {
		return
	}

	imageURL := req.ImageURL
	if image != nil {
		imageURL, _, err = s.uploadImage(ctx, image, imageName)
		if err != nil {
			return err
		}
	}

	product := domain.Product{
		Name:           req.Name,
		PriceCents:     req.PriceCents,
		Category:       req.Category,
		Stock:          req.Stock,
		Rating:         req.Rating,
		IsFreeShipping: req.IsFreeShipping,
	}
	if req.Description != "" {
		product.Description = &req.Description
	}
	if imageURL != "" {
		product.ImageURL = &imageURL
	}

	_, err = s.repo.AddProduct(ctx, product)

	return
}

func (s *ProductServiceImpl) UpdateProduct(ctx context.Context, req dto.ProductRequest, image io.Reader, imageName string) (err error) {
	existing, err := s.repo.GetProductByID(ctx, req.ID)
	if err != nil {
		return
	}

	if req.Name == "" || req.PriceCents <= 0 || req.Category == "" {
		return errs.ErrIncompleteInput
	}

	if err = validateProductNumbers(req); err != nil {
		return
	}

	imageURL := ""
	if existing.ImageURL != nil {
		imageURL = *existing.ImageURL
	}
	if image != nil {
		imageURL, _, err = s.uploadImage(ctx, image, imageName)
		if err != nil {
			return err
		}
	} else if req.ImageURL != "" {
		imageURL = req.ImageURL
	}

	product := domain.Product{
		ID:             req.ID,
		Name:           req.Name,
		PriceCents:     req.PriceCents,
		Category:       req.Category,
		Stock:          req.Stock,
		Rating:         req.Rating,
		IsFreeShipping: req.IsFreeShipping,
	}
	if req.Description != "" {
		product.Description = &req.Description
	}
	if imageURL != "" {
		product.ImageURL = &imageURL
	}

	return s.repo.UpdateProduct(ctx, product)
}

func (s *ProductServiceImpl) DeleteProduct(ctx context.Context, id int64) (err error) {
	existing, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return
	}

	if err = s.repo.DeleteProduct(ctx, id); err != nil {
		return
	}

	// Best effort: a leftover image is not worth failing the delete over.
	if existing.ImageURL != nil && s.storage != nil {
		if path, ok := storagePathFromURL(*existing.ImageURL); ok {
			if delErr := s.storage.Delete(ctx, path); delErr != nil {
				log.Warn().Err(delErr).Str("component", "DeleteProduct").Msg("failed to delete product image")
			}
		}
	}

	return nil
}

func (s *ProductServiceImpl) uploadImage(ctx context.Context, image io.Reader, imageName string) (string, string, error) {
	ext := ""
	if idx := strings.LastIndex(imageName, "."); idx >= 0 {
		ext = strings.ToLower(imageName[idx+1:])
	}

	switch ext {
	case "jpg", "jpeg", "png", "gif", "webp":
	default:
		return "", "", errs.ErrNotAnImage
	}

	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), ulid.Make().String())
	url, path, err := s.storage.Upload(ctx, image, name)
	if err != nil {
		return "", "", errs.ErrInternalServer
	}

	return url, path, nil
}

func validateProductNumbers(req dto.ProductRequest) error {
	if req.Stock < 0 {
		return errs.ErrClient
	}
	if req.Rating < 0 || req.Rating > 5 {
		return errs.ErrClient
	}
	return nil
}

// storagePathFromURL recovers the storage public id from a delivery URL,
// e.g. .../upload/v123/product_images/abc.png -> product_images/abc.
func storagePathFromURL(url string) (string, bool) {
	idx := strings.Index(url, "/upload/")
	if idx < 0 {
		return "", false
	}

	path := url[idx+len("/upload/"):]
	if slash := strings.Index(path, "/"); slash >= 0 && strings.HasPrefix(path, "v") {
		path = path[slash+1:]
	}
	if dot := strings.LastIndex(path, "."); dot >= 0 {
		path = path[:dot]
	}

	if path == "" {
		return "", false
	}
	return path, true
}

func toProductResponse(product domain.Product) dto.ProductResponse {
	resp := dto.ProductResponse{
		ID:             product.ID,
		Name:           product.Name,
		PriceCents:     product.PriceCents,
		Category:       product.Category,
		Stock:          product.Stock,
		Rating:         product.Rating,
		IsFreeShipping: product.IsFreeShipping,
		CreatedAt:      product.CreatedAt,
	}
	if product.Description != nil {
		resp.Description = *product.Description
	}
	if product.ImageURL != nil {
		resp.ImageURL = *product.ImageURL
	}

	return resp
}
