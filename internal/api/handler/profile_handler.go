package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/webstore/store-api/internal/api/metrics"
	"github.com/webstore/store-api/internal/core/ports"
)

// ProfileHandler serves the caller's own account. The username always comes
// from the resolved identity, never from the request.
type ProfileHandler struct {
	service ports.UserService
}

func NewProfileHandler(service ports.UserService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Get handles GET /api/profile.
//
// @Summary      Current user
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  errorResponse
// @Router       /api/profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	id, err := currentIdentity(c)
	if err != nil {
		return err
	}
	user, err := h.service.Get(c.Request().Context(), id.Username)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Roles handles GET /api/profile/roles.
//
// @Summary      Current user's roles
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  rolesResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/profile/roles [get]
func (h *ProfileHandler) Roles(c echo.Context) error {
	id, err := currentIdentity(c)
	if err != nil {
		return err
	}
	roles, err := h.service.Roles(c.Request().Context(), id.Username)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rolesResponse{Username: id.Username, Roles: roles})
}

// ChangePassword handles PUT /api/profile/change-password.
//
// @Summary      Change own password
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      passwordRequest  true  "New password"
// @Success      200   {object}  domain.User
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/profile/change-password [put]
func (h *ProfileHandler) ChangePassword(c echo.Context) error {
	id, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var req passwordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.service.UpdatePassword(c.Request().Context(), id.Username, req.Password)
	if err != nil {
		return err
	}
	metrics.RecordMutation("user", metrics.OpUpdate)
	return c.JSON(http.StatusOK, user)
}
