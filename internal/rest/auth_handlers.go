package rest

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/site-admin/internal/auth"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Login handles POST /api/v1/auth/login
// @Summary Log in
// @Description Exchanges email and password for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body rest.LoginRequest true "Credentials"
// @Success 200 {object} rest.Response
// @Failure 400,401,500 {object} rest.Response
// @Router /api/v1/auth/login [post]
func (h *Handler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return fail(c, http.StatusBadRequest, "email and password are required")
	}

	user, err := h.uc.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return h.handleError(c, err)
	}

	ttl := time.Duration(h.auth.TokenTTL()) * time.Hour
	token, err := auth.GenerateToken(user.ID, user.Role, h.auth.Secret, ttl)
	if err != nil {
		return h.handleError(c, err)
	}

	return ok(c, LoginResponse{Token: token, User: NewUser(*user)})
}

// Register handles POST /api/v1/auth/register
// @Summary Register an account
// @Description Creates an admin panel account. Disabled unless allowRegistration is set in the configuration.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body rest.RegisterRequest true "Account payload"
// @Success 201 {object} rest.Response
// @Failure 400,403,409,500 {object} rest.Response
// @Router /api/v1/auth/register [post]
func (h *Handler) Register(c echo.Context) error {
	if !h.auth.AllowRegistration {
		return fail(c, http.StatusForbidden, "registration is disabled")
	}

	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}

	user, err := h.uc.RegisterUser(c.Request().Context(), req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		return h.handleError(c, err)
	}

	return created(c, NewUser(*user))
}

// Me handles GET /api/v1/auth/me
// @Summary Current user
// @Description Returns the account behind the presented token
// @Tags auth
// @Produce json
// @Success 200 {object} rest.Response
// @Failure 401,404,500 {object} rest.Response
// @Security BearerAuth
// @Router /api/v1/auth/me [get]
func (h *Handler) Me(c echo.Context) error {
	user, err := h.uc.UserByID(c.Request().Context(), sessionUserID(c))
	if err != nil {
		return h.handleError(c, err)
	}
	if user == nil {
		return fail(c, http.StatusNotFound, "user not found")
	}

	return ok(c, NewUser(*user))
}
