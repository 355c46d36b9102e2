package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/webstore/store-api/internal/api/metrics"
	"github.com/webstore/store-api/internal/core/ports"
)

// UserHandler serves account administration under /api/users.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List handles GET /api/users.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Get handles GET /api/users/:username.
//
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  domain.User
// @Failure      404       {object}  errorResponse
// @Router       /api/users/{username} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.Get(c.Request().Context(), c.Param("username"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Create handles POST /api/users.
//
// @Summary      Register a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "Credentials"
// @Success      201   {object}  domain.User
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.service.Create(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}
	metrics.RecordMutation("user", metrics.OpCreate)
	return c.JSON(http.StatusCreated, user)
}

// UpdatePassword handles PUT /api/users/:username/password.
//
// @Summary      Set a user's password
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string           true  "Username"
// @Param        body      body      passwordRequest  true  "New password"
// @Success      200       {object}  domain.User
// @Failure      404       {object}  errorResponse
// @Failure      422       {object}  errorResponse
// @Router       /api/users/{username}/password [put]
func (h *UserHandler) UpdatePassword(c echo.Context) error {
	var req passwordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.service.UpdatePassword(c.Request().Context(), c.Param("username"), req.Password)
	if err != nil {
		return err
	}
	metrics.RecordMutation("user", metrics.OpUpdate)
	return c.JSON(http.StatusOK, user)
}

// Delete handles DELETE /api/users/:username.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  deletedResponse
// @Failure      404       {object}  errorResponse
// @Failure      409       {object}  errorResponse
// @Router       /api/users/{username} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	n, err := h.service.Delete(c.Request().Context(), c.Param("username"))
	if err != nil {
		return err
	}
	metrics.RecordMutation("user", metrics.OpDelete)
	return c.JSON(http.StatusOK, deletedResponse{Deleted: n})
}

// Roles handles GET /api/users/:username/roles.
//
// @Summary      List a user's roles
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  rolesResponse
// @Failure      404       {object}  errorResponse
// @Router       /api/users/{username}/roles [get]
func (h *UserHandler) Roles(c echo.Context) error {
	username := c.Param("username")
	roles, err := h.service.Roles(c.Request().Context(), username)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rolesResponse{Username: username, Roles: roles})
}

// AddRole handles POST /api/users/:username/roles.
//
// @Summary      Grant a role
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string       true  "Username"
// @Param        body      body      roleRequest  true  "Role"
// @Success      200       {object}  rolesResponse
// @Failure      404       {object}  errorResponse
// @Failure      422       {object}  errorResponse
// @Router       /api/users/{username}/roles [post]
func (h *UserHandler) AddRole(c echo.Context) error {
	var req roleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	username := c.Param("username")
	roles, err := h.service.AddRole(c.Request().Context(), username, req.Role)
	if err != nil {
		return err
	}
	metrics.RecordMutation("role", metrics.OpCreate)
	return c.JSON(http.StatusOK, rolesResponse{Username: username, Roles: roles})
}

// RemoveRole handles DELETE /api/users/:username/roles/:role.
//
// @Summary      Revoke a role
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Username"
// @Param        role      path      string  true  "Role"
// @Success      200       {object}  deletedResponse
// @Failure      404       {object}  errorResponse
// @Router       /api/users/{username}/roles/{role} [delete]
func (h *UserHandler) RemoveRole(c echo.Context) error {
	n, err := h.service.RemoveRole(c.Request().Context(), c.Param("username"), c.Param("role"))
	if err != nil {
		return err
	}
	metrics.RecordMutation("role", metrics.OpDelete)
	return c.JSON(http.StatusOK, deletedResponse{Deleted: n})
}
