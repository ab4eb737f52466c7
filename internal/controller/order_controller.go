package controller

import (
	"github.com/ImperialKoi/Candit/internal/dto"
	"github.com/ImperialKoi/Candit/internal/service"
	"github.com/ImperialKoi/Candit/pkg/response"
	"github.com/ImperialKoi/Candit/pkg/utils"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type OrderController struct {
	service service.OrderService
}

func CreateOrderController(e *echo.Group, service service.OrderService, isLoggedIn echo.MiddlewareFunc) {
	c := OrderController{
		service: service,
	}

	e.POST("/checkout", c.Checkout, isLoggedIn)
	e.GET("/orders", c.GetOrders, isLoggedIn)
}

func (c *OrderController) Checkout(e echo.Context) error {
	userID, _, _, _ := utils.ExtractTokenUser(e)

	payload := dto.CheckoutRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Checkout").Msg("")
	}

	payload.UserID = userID
	responsePayload, err := c.service.Checkout(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "order placed", responsePayload)
}

func (c *OrderController) GetOrders(e echo.Context) error {
	userID, _, _, _ := utils.ExtractTokenUser(e)

	responsePayload, err := c.service.GetOrders(e.Request().Context(), userID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfuly retrieved orders record", responsePayload)
}
