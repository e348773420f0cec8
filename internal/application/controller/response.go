package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/vmihailenco/msgpack/v5"

	"go-weather/internal/domain/model"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"

	"go.uber.org/zap"
)

const mimeMsgpack = "application/msgpack"

// respond writes data as JSON, or as MessagePack when the request carries format=msgpack
func respond(c echo.Context, status int, data any) error {
	if c.QueryParam("format") != "msgpack" {
		return c.JSON(status, data)
	}

	body, err := msgpack.Marshal(data)
	if err != nil {
		return err
	}
	return c.Blob(status, mimeMsgpack, body)
}

// errorStatus maps a use case error to the HTTP status and the message shown to the user
func errorStatus(err error, city string) (int, string) {
	switch {
	case errors.Is(err, model.ErrEmptyCity):
		return http.StatusBadRequest, msg.GetMessage("weather.city-required")
	case errors.Is(err, model.ErrCityNotFound):
		return http.StatusNotFound, msg.GetMessage("weather.city-not-found", city)
	case model.IsTransportError(err):
		log.Error("Weather provider call failed", zap.String("city", city), zap.Error(err))
		return http.StatusBadGateway, msg.GetMessage("weather.transport-error")
	default:
		log.Error("Unexpected weather error", zap.String("city", city), zap.Error(err))
		return http.StatusInternalServerError, err.Error()
	}
}
