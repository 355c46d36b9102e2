package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/webstore/store-api/internal/api/middleware"
	"github.com/webstore/store-api/internal/core/domain"
)

// currentIdentity returns the caller resolved by the route guard. Reaching a
// handler without one means the route was registered without a guard.
func currentIdentity(c echo.Context) (*domain.Identity, error) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		return nil, domain.ErrUnauthenticated
	}
	return id, nil
}

// pathID parses the :id path parameter, which must be a positive integer.
// Ids are INTEGER columns, so a well-formed id beyond that range cannot
// exist and yields notFound.
func pathID(c echo.Context, notFound error) (int64, error) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) && !strings.HasPrefix(raw, "-") {
			return 0, notFound
		}
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id must be a positive integer")
	}
	if id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id must be a positive integer")
	}
	return id, nil
}

// bindAndValidate decodes the request body into req and runs struct validation.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return c.Validate(req)
}
