package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/TreyKys/TogetHed-Hackathon-sub000/base/ctx"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/base/delivery"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain/account"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain/listing"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/middleware"
)

type handler struct {
	account account.Usecase
	listing listing.Usecase
}

// New registers the listing lifecycle endpoints
func New(e *echo.Echo, account account.Usecase, listing listing.Usecase) {
	h := &handler{account, listing}

	gs := e.Group("/listings")

	gs.GET("", h.getAll, middleware.CacheHttp(30*time.Second))

	gs.POST("", h.list)

	g := e.Group("/listings/:collection/:serial")

	// short ttl, listing detail carries live lifecycle state
	g.GET("", h.get, middleware.CacheHttp(10*time.Second))

	g.POST("/fund", h.fund)

	g.POST("/confirm", h.confirm)

	g.POST("/cancel", h.cancel)
}

type listParams struct {
	Address      domain.Address `json:"address"`
	CollectionId domain.Address `json:"collectionId"`
	Serial       interface{}    `json:"serial"`
	Price        string         `json:"price"`
	Category     string         `json:"category"`
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	ImageUrl     string         `json:"imageUrl"`
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &listParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	session, err := h.account.Resolve(ctx, p.Address)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusUnauthorized, "no live session for address")
	}

	res, err := h.listing.List(ctx, session, listing.ListInput{
		CollectionId: p.CollectionId,
		Serial:       p.Serial,
		PriceHuman:   p.Price,
		Category:     p.Category,
		Name:         p.Name,
		Description:  p.Description,
		ImageUrl:     p.ImageUrl,
	})
	if err != nil {
		return errResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

type actParams struct {
	Address domain.Address `json:"address"`
}

func (h *handler) fund(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := parseListingId(c)
	if err != nil {
		return errResp(c, err)
	}

	p := &actParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	session, err := h.account.Resolve(ctx, p.Address)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusUnauthorized, "no live session for address")
	}

	receipt, err := h.listing.Fund(ctx, session, id)
	if err != nil {
		return errResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, receipt)
}

func (h *handler) confirm(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := parseListingId(c)
	if err != nil {
		return errResp(c, err)
	}

	p := &actParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	session, err := h.account.Resolve(ctx, p.Address)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusUnauthorized, "no live session for address")
	}

	receipt, err := h.listing.ConfirmDelivery(ctx, session, id)
	if err != nil {
		return errResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, receipt)
}

func (h *handler) cancel(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := parseListingId(c)
	if err != nil {
		return errResp(c, err)
	}

	p := &actParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	session, err := h.account.Resolve(ctx, p.Address)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusUnauthorized, "no live session for address")
	}

	receipt, err := h.listing.Cancel(ctx, session, id)
	if err != nil {
		return errResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, receipt)
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := parseListingId(c)
	if err != nil {
		return errResp(c, err)
	}

	res, err := h.listing.FindOne(ctx, id)
	if err != nil {
		return errResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

type getAllParams struct {
	CollectionId *domain.Address `query:"collection"`
	Seller       *domain.Address `query:"seller"`
	Buyer        *domain.Address `query:"buyer"`
	State        *listing.State  `query:"state"`
	Category     *string         `query:"category"`
	Offset       int32           `query:"offset"`
	Limit        int32           `query:"limit"`
	SortBy       *string         `query:"sortBy"`
	SortDir      *string         `query:"sortDir"`
}

func (h *handler) getAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &getAllParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	opts := []listing.FindAllOptionsFunc{}

	if p.CollectionId != nil {
		opts = append(opts, listing.WithCollectionId(*p.CollectionId))
	}
	if p.Seller != nil {
		opts = append(opts, listing.WithSeller(*p.Seller))
	}
	if p.Buyer != nil {
		opts = append(opts, listing.WithBuyer(*p.Buyer))
	}
	if p.State != nil {
		opts = append(opts, listing.WithState(*p.State))
	}
	if p.Category != nil {
		opts = append(opts, listing.WithCategory(*p.Category))
	}
	if p.Offset != 0 || p.Limit != 0 {
		opts = append(opts, listing.WithPagination(p.Offset, p.Limit))
	} else {
		opts = append(opts, listing.WithPagination(0, 100))
	}
	if p.SortBy != nil {
		dir := domain.SortDir(domain.SortDirDesc)
		if p.SortDir != nil && *p.SortDir == "asc" {
			dir = domain.SortDir(domain.SortDirAsc)
		}
		opts = append(opts, listing.WithSort(*p.SortBy, dir))
	}

	res, err := h.listing.FindAll(ctx, opts...)
	if err != nil {
		return errResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func parseListingId(c echo.Context) (listing.Id, error) {
	serial, err := domain.ToSerial(c.Param("serial"))
	if err != nil {
		return listing.Id{}, err
	}
	return listing.Id{
		CollectionId: domain.Address(c.Param("collection")).ToLower(),
		Serial:       serial,
	}, nil
}

// errResp maps the error taxonomy onto http statuses. Input and
// canonicalization failures had no side effect; conflict-class failures mean
// the on-chain effect may already exist and the caller must not resubmit.
func errResp(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrBadParamInput),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidSerial),
		errors.Is(err, domain.ErrInvalidNumberFormat),
		errors.Is(err, domain.ErrPrecisionLoss),
		errors.Is(err, domain.ErrInvalidAddress):
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	case errors.Is(err, domain.ErrNotFound):
		return delivery.MakeJsonResp(c, http.StatusNotFound, err)
	case errors.Is(err, domain.ErrNotListed),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrInvalidStateTransition),
		errors.Is(err, domain.ErrConcurrentModification):
		return delivery.MakeJsonResp(c, http.StatusConflict, err)
	case errors.Is(err, domain.ErrChainRejected),
		errors.Is(err, domain.ErrAllowanceFailed):
		return delivery.MakeJsonResp(c, http.StatusUnprocessableEntity, err)
	default:
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}
