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
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain/loan"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/middleware"
)

type handler struct {
	account account.Usecase
	loan    loan.Usecase
}

// New registers the loan lifecycle endpoints. The admin routes still resolve
// a session; the usecase enforces that it is the configured admin identity.
func New(e *echo.Echo, account account.Usecase, loan loan.Usecase) {
	h := &handler{account, loan}

	gs := e.Group("/loans")

	// short ttl, loan records carry live lifecycle state
	gs.GET("", h.getAll, middleware.CacheHttp(10*time.Second))

	gs.POST("", h.take)

	gs.POST("/:serial/repay", h.repay)

	gs.POST("/admin/liquidate", h.liquidate)

	gs.POST("/admin/deposit", h.deposit)
}

type takeParams struct {
	Address         domain.Address `json:"address"`
	Serial          interface{}    `json:"serial"`
	Principal       string         `json:"principal"`
	Interest        string         `json:"interest"`
	DurationSeconds int64          `json:"durationSeconds"`
}

func (h *handler) take(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &takeParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	session, err := h.account.Resolve(ctx, p.Address)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusUnauthorized, "no live session for address")
	}

	res, err := h.loan.Take(ctx, session, loan.TakeInput{
		Serial:          p.Serial,
		PrincipalHuman:  p.Principal,
		InterestHuman:   p.Interest,
		DurationSeconds: p.DurationSeconds,
	})
	if err != nil {
		return errResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

type repayParams struct {
	Address domain.Address `json:"address"`
	Amount  string         `json:"amount"`
}

func (h *handler) repay(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	serial, err := domain.ToSerial(c.Param("serial"))
	if err != nil {
		return errResp(c, err)
	}

	p := &repayParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	session, err := h.account.Resolve(ctx, p.Address)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusUnauthorized, "no live session for address")
	}

	receipt, err := h.loan.Repay(ctx, session, serial, p.Amount)
	if err != nil {
		return errResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, receipt)
}

type liquidateParams struct {
	Address     domain.Address `json:"address"`
	Serial      interface{}    `json:"serial"`
	Destination domain.Address `json:"destination"`
}

func (h *handler) liquidate(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &liquidateParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	serial, err := domain.ToSerial(p.Serial)
	if err != nil {
		return errResp(c, err)
	}

	session, err := h.account.Resolve(ctx, p.Address)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusUnauthorized, "no live session for address")
	}

	receipt, err := h.loan.Liquidate(ctx, session, serial, p.Destination)
	if err != nil {
		return errResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, receipt)
}

type depositParams struct {
	Address domain.Address `json:"address"`
	Amount  string         `json:"amount"`
}

func (h *handler) deposit(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &depositParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	session, err := h.account.Resolve(ctx, p.Address)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusUnauthorized, "no live session for address")
	}

	receipt, err := h.loan.DepositLiquidity(ctx, session, p.Amount)
	if err != nil {
		return errResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, receipt)
}

type getAllParams struct {
	Borrower *domain.Address `query:"borrower"`
	Serial   *string         `query:"serial"`
	State    *loan.State     `query:"state"`
	Offset   int32           `query:"offset"`
	Limit    int32           `query:"limit"`
}

func (h *handler) getAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &getAllParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	opts := []loan.FindAllOptionsFunc{}

	if p.Borrower != nil {
		opts = append(opts, loan.WithBorrower(*p.Borrower))
	}
	if p.Serial != nil {
		serial, err := domain.ToSerial(*p.Serial)
		if err != nil {
			return errResp(c, err)
		}
		opts = append(opts, loan.WithSerial(serial))
	}
	if p.State != nil {
		opts = append(opts, loan.WithState(*p.State))
	}
	if p.Offset != 0 || p.Limit != 0 {
		opts = append(opts, loan.WithPagination(p.Offset, p.Limit))
	} else {
		opts = append(opts, loan.WithPagination(0, 100))
	}

	res, err := h.loan.FindAll(ctx, opts...)
	if err != nil {
		return errResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

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
	case errors.Is(err, domain.ErrConflict),
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
