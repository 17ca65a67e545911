package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/TreyKys/TogetHed-Hackathon-sub000/base/ctx"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/base/delivery"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain/account"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain/asset"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/middleware"
)

type handler struct {
	account account.Usecase
	asset   asset.Usecase
}

func New(e *echo.Echo, account account.Usecase, asset asset.Usecase) {
	h := &handler{account, asset}

	g := e.Group("/assets")

	g.GET("", h.getAll, middleware.CacheHttp(30*time.Second))

	g.POST("/mint", h.mint)

	g.GET("/:collection/:serial", h.get, middleware.CacheHttp(30*time.Second))
}

type mintParams struct {
	Address     domain.Address `json:"address"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	ImageUrl    string         `json:"imageUrl"`
	Category    string         `json:"category"`
}

func (h *handler) mint(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &mintParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	session, err := h.account.Resolve(ctx, p.Address)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusUnauthorized, "no live session for address")
	}

	res, err := h.asset.Mint(ctx, session, asset.MintInput{
		Name:        p.Name,
		Description: p.Description,
		ImageUrl:    p.ImageUrl,
		Category:    p.Category,
	})
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	serial, err := domain.ToSerial(c.Param("serial"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.asset.FindOne(ctx, domain.Address(c.Param("collection")), serial)
	if err == domain.ErrNotFound {
		return delivery.MakeJsonResp(c, http.StatusNotFound, err)
	} else if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

type getAllParams struct {
	CollectionId *domain.Address `query:"collection"`
	Producer     *domain.Address `query:"producer"`
	Category     *string         `query:"category"`
	Offset       int32           `query:"offset"`
	Limit        int32           `query:"limit"`
}

func (h *handler) getAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &getAllParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	opts := []asset.FindAllOptionsFunc{}

	if p.CollectionId != nil {
		opts = append(opts, asset.WithCollectionId(*p.CollectionId))
	}
	if p.Producer != nil {
		opts = append(opts, asset.WithProducer(*p.Producer))
	}
	if p.Category != nil {
		opts = append(opts, asset.WithCategory(*p.Category))
	}
	if p.Offset != 0 || p.Limit != 0 {
		opts = append(opts, asset.WithPagination(p.Offset, p.Limit))
	} else {
		opts = append(opts, asset.WithPagination(0, 100))
	}

	res, err := h.asset.FindAll(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
