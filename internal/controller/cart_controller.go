package controller

import (
	"strconv"

	"github.com/ImperialKoi/Candit/internal/dto"
	"github.com/ImperialKoi/Candit/internal/service"
	"github.com/ImperialKoi/Candit/pkg/errs"
	"github.com/ImperialKoi/Candit/pkg/response"
	"github.com/ImperialKoi/Candit/pkg/utils"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type CartController struct {
	service service.CartService
}

func CreateCartController(e *echo.Group, service service.CartService, isLoggedIn echo.MiddlewareFunc) {
	c := CartController{
		service: service,
	}

	e.GET("/cart", c.GetCart, isLoggedIn)
	e.POST("/cart", c.AddCartItem, isLoggedIn)
	e.PUT("/cart/:id", c.UpdateCartItemQuantity, isLoggedIn)
	e.DELETE("/cart/:id", c.RemoveCartItem, isLoggedIn)
}

func (c *CartController) GetCart(e echo.Context) error {
	userID, _, _, _ := utils.ExtractTokenUser(e)

	responsePayload, err := c.service.GetCart(e.Request().Context(), userID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", responsePayload)
}

func (c *CartController) AddCartItem(e echo.Context) error {
	userID, _, _, _ := utils.ExtractTokenUser(e)

	payload := dto.CartItemRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddCartItem").Msg("")
	}

	payload.UserID = userID
	err = c.service.AddCartItem(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}

func (c *CartController) UpdateCartItemQuantity(e echo.Context) error {
	userID, _, _, _ := utils.ExtractTokenUser(e)

	id, err := strconv.ParseInt(e.Param("id"), 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	payload := dto.CartItemRequest{}
	err = e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateCartItemQuantity").Msg("")
	}

	payload.ID = id
	payload.UserID = userID
	err = c.service.UpdateCartItemQuantity(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}

func (c *CartController) RemoveCartItem(e echo.Context) error {
	userID, _, _, _ := utils.ExtractTokenUser(e)

	id, err := strconv.ParseInt(e.Param("id"), 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	err = c.service.RemoveCartItem(e.Request().Context(), id, userID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}
