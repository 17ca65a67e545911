package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/TreyKys/TogetHed-Hackathon-sub000/base/ctx"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/base/delivery"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain/account"
)

type handler struct {
	account account.Usecase
}

// New registers the account endpoints. Responses never carry key material;
// a successful login or provision only echoes the session address.
func New(e *echo.Echo, account account.Usecase) {
	h := &handler{account}

	g := e.Group("/accounts")

	g.POST("/login", h.login)

	g.POST("/provision", h.provision)

	g.POST("/logout", h.logout)

	g.GET("/:address", h.get)
}

type loginParams struct {
	PrivateKey string `json:"privateKey"`
}

func (h *handler) login(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &loginParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	session, err := h.account.Login(ctx, p.PrivateKey)
	if err == domain.ErrBadParamInput {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	} else if err == domain.ErrNotFound {
		return delivery.MakeJsonResp(c, http.StatusNotFound, err)
	} else if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, map[string]interface{}{
		"address": session.Address,
	})
}

type provisionParams struct {
	Alias string `json:"alias"`
}

func (h *handler) provision(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &provisionParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	session, err := h.account.Provision(ctx, p.Alias)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, map[string]interface{}{
		"address": session.Address,
	})
}

type logoutParams struct {
	Address domain.Address `json:"address"`
}

func (h *handler) logout(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &logoutParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := h.account.Logout(ctx, p.Address); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.account.Get(ctx, domain.Address(c.Param("address")))
	if err == domain.ErrNotFound {
		return delivery.MakeJsonResp(c, http.StatusNotFound, err)
	} else if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
