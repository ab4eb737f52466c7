package controller

import (
	"io"
	"strconv"

	"github.com/ImperialKoi/Candit/internal/dto"
	"github.com/ImperialKoi/Candit/internal/service"
	pkgdto "github.com/ImperialKoi/Candit/pkg/dto"
	"github.com/ImperialKoi/Candit/pkg/errs"
	"github.com/ImperialKoi/Candit/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type ProductController struct {
	service service.ProductService
}

func CreateProductController(e *echo.Group, service service.ProductService, isLoggedIn echo.MiddlewareFunc, isAdmin echo.MiddlewareFunc) {
	c := ProductController{
		service: service,
	}

	e.GET("/products", c.GetProducts)
	e.GET("/products/:id", c.GetProduct)
	e.POST("/products", c.AddProduct, isLoggedIn, isAdmin)
	e.PUT("/products/:id", c.UpdateProduct, isLoggedIn, isAdmin)
	e.DELETE("/products/:id", c.DeleteProduct, isLoggedIn, isAdmin)
}

func (c *ProductController) GetProducts(e echo.Context) error {
	filter := pkgdto.Filter{}
	err := e.Bind(&filter)
	if err != nil {
		log.Error().Err(err).Str("component", "GetProducts").Msg("")
	}

	responsePayload, err := c.service.GetProducts(e.Request().Context(), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfuly retrieved products record", responsePayload)
}

func (c *ProductController) GetProduct(e echo.Context) error {
	id, err := strconv.ParseInt(e.Param("id"), 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	responsePayload, err := c.service.GetProduct(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", responsePayload)
}

func (c *ProductController) AddProduct(e echo.Context) error {
	payload := dto.ProductRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
	}

	image, imageName, err := openUploadedImage(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}
	if image != nil {
		defer image.Close()
	}

	err = c.service.AddProduct(e.Request().Context(), payload, readerOrNil(image), imageName)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}

func (c *ProductController) UpdateProduct(e echo.Context) error {
	id, err := strconv.ParseInt(e.Param("id"), 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	payload := dto.ProductRequest{}
	err = e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProduct").Msg("")
	}
	payload.ID = id

	image, imageName, err := openUploadedImage(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}
	if image != nil {
		defer image.Close()
	}

	err = c.service.UpdateProduct(e.Request().Context(), payload, readerOrNil(image), imageName)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}

func (c *ProductController) DeleteProduct(e echo.Context) error {
	id, err := strconv.ParseInt(e.Param("id"), 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	err = c.service.DeleteProduct(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}

func openUploadedImage(e echo.Context) (io.ReadCloser, string, error) {
	fileHeader, err := e.FormFile("image")
	if err != nil {
		// The image is optional on both create and update.
		return nil, "", nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Error().Err(err).Str("component", "openUploadedImage").Msg("")
		return nil, "", errs.ErrClient
	}

	return file, fileHeader.Filename, nil
}

func readerOrNil(r io.ReadCloser) io.Reader {
	if r == nil {
		return nil
	}
	return r
}
