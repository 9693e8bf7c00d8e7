package router

import (
	"github.com/gin-gonic/gin"
)

// Liquidity returns one row per pool: the net liquidity up to as_of
// (omit as_of for the whole ledger).
func (r *Router) Liquidity(c *gin.Context) {
	params := &struct {
		Pool string `json:"pool"`
		AsOf *int64 `json:"as_of"`
	}{}

	if err := c.ShouldBindJSON(&params); err != nil {
		badRequest(c, err.Error())
		return
	}

	pool, okPool := normalizeAddressParam(params.Pool)
	if !okPool {
		badRequest(c, "malformed pool address")
		return
	}
	asOf := int64(-1)
	if params.AsOf != nil {
		if *params.AsOf < 0 {
			badRequest(c, "as_of must not be negative")
			return
		}
		asOf = *params.AsOf
	}

	rows, err := r.dbc.GetLiquidity(c.Request.Context(), asOf, pool)
	if err != nil {
		serverError(c)
		return
	}

	ok(c, rows, int64(len(rows)))
}

// LiquidityProviders returns net liquidity per (pool, provider).
func (r *Router) LiquidityProviders(c *gin.Context) {
	params := &struct {
		Pool    string `json:"pool"`
		Address string `json:"address"`
		AsOf    *int64 `json:"as_of"`
	}{}

	if err := c.ShouldBindJSON(&params); err != nil {
		badRequest(c, err.Error())
		return
	}

	pool, okPool := normalizeAddressParam(params.Pool)
	address, okAddress := normalizeAddressParam(params.Address)
	if !okPool || !okAddress {
		badRequest(c, "malformed address")
		return
	}
	asOf := int64(-1)
	if params.AsOf != nil {
		if *params.AsOf < 0 {
			badRequest(c, "as_of must not be negative")
			return
		}
		asOf = *params.AsOf
	}

	rows, err := r.dbc.GetLiquidityFromProvider(c.Request.Context(), asOf, pool, address)
	if err != nil {
		serverError(c)
		return
	}

	ok(c, rows, int64(len(rows)))
}

// Volume returns per-pool swap flow over the inclusive height range
// [from_height, to_height].
func (r *Router) Volume(c *gin.Context) {
	params := &struct {
		Pool       string `json:"pool"`
		FromHeight *int64 `json:"from_height"`
		ToHeight   *int64 `json:"to_height"`
	}{}

	if err := c.ShouldBindJSON(&params); err != nil {
		badRequest(c, err.Error())
		return
	}

	pool, okPool := normalizeAddressParam(params.Pool)
	if !okPool {
		badRequest(c, "malformed pool address")
		return
	}
	from, to, okRange := requiredRange(params.FromHeight, params.ToHeight)
	if !okRange {
		badRequest(c, "from_height/to_height must be a non-negative ordered range")
		return
	}

	rows, err := r.dbc.GetVolume(c.Request.Context(), from, to, pool)
	if err != nil {
		serverError(c)
		return
	}

	ok(c, rows, int64(len(rows)))
}

// VolumeForUser returns per-(pool, initiator) ZIL volume over the
// inclusive height range.
func (r *Router) VolumeForUser(c *gin.Context) {
	params := &struct {
		Pool       string `json:"pool"`
		Address    string `json:"address"`
		FromHeight *int64 `json:"from_height"`
		ToHeight   *int64 `json:"to_height"`
	}{}

	if err := c.ShouldBindJSON(&params); err != nil {
		badRequest(c, err.Error())
		return
	}

	pool, okPool := normalizeAddressParam(params.Pool)
	address, okAddress := normalizeAddressParam(params.Address)
	if !okPool || !okAddress {
		badRequest(c, "malformed address")
		return
	}
	from, to, okRange := requiredRange(params.FromHeight, params.ToHeight)
	if !okRange {
		badRequest(c, "from_height/to_height must be a non-negative ordered range")
		return
	}

	rows, err := r.dbc.GetVolumeForUser(c.Request.Context(), from, to, pool, address)
	if err != nil {
		serverError(c)
		return
	}

	ok(c, rows, int64(len(rows)))
}

func requiredRange(from, to *int64) (int64, int64, bool) {
	if from == nil || to == nil {
		return 0, 0, false
	}
	if *from < 0 || *to < 0 || *from > *to {
		return 0, 0, false
	}
	return *from, *to, true
}
