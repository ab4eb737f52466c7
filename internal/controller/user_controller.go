package controller

import (
	"github.com/ImperialKoi/Candit/internal/dto"
	"github.com/ImperialKoi/Candit/internal/service"
	"github.com/ImperialKoi/Candit/pkg/response"
	"github.com/ImperialKoi/Candit/pkg/utils"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type UserController struct {
	service service.UserService
}

func CreateUserController(e *echo.Group, service service.UserService, isLoggedIn echo.MiddlewareFunc) {
	c := UserController{
		service: service,
	}

	e.POST("/users/register", c.AddUser)
	e.POST("/users/login", c.Login)
	e.GET("/users/profile", c.GetProfile, isLoggedIn)
	e.PUT("/users/profile", c.UpdateProfile, isLoggedIn)
}

func (c *UserController) AddUser(e echo.Context) error {
	payload := dto.UserRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddUser").Msg("")
	}

	err = c.service.AddUser(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}

func (c *UserController) Login(e echo.Context) error {
	payload := dto.UserRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Login").Msg("")
	}

	responsePayload, err := c.service.Login(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", responsePayload)
}

func (c *UserController) GetProfile(e echo.Context) error {
	userID, _, _, _ := utils.ExtractTokenUser(e)

	responsePayload, err := c.service.GetProfile(e.Request().Context(), userID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", responsePayload)
}

func (c *UserController) UpdateProfile(e echo.Context) error {
	userID, _, _, _ := utils.ExtractTokenUser(e)

	payload := dto.UserRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProfile").Msg("")
	}

	payload.ID = userID
	err = c.service.UpdateProfile(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}
