package router

import (
	"strings"

	"github.com/gin-gonic/gin"

	"zilswap-indexer/storage"
)

func (r *Router) Swaps(c *gin.Context) {
	params := &struct {
		TransactionHash  string `json:"transaction_hash"`
		TokenAddress     string `json:"token_address"`
		InitiatorAddress string `json:"initiator_address"`
		FromHeight       *int64 `json:"from_height"`
		ToHeight         *int64 `json:"to_height"`
		Limit            int    `json:"limit"`
		OffSet           int    `json:"offset"`
	}{
		Limit:  10,
		OffSet: 0,
	}

	if err := c.ShouldBindJSON(&params); err != nil {
		badRequest(c, err.Error())
		return
	}

	token, okToken := normalizeAddressParam(params.TokenAddress)
	initiator, okInitiator := normalizeAddressParam(params.InitiatorAddress)
	if !okToken || !okInitiator {
		badRequest(c, "malformed address filter")
		return
	}
	if !validHeightFilter(params.FromHeight, params.ToHeight) {
		badRequest(c, "invalid height range")
		return
	}

	swaps, total, err := r.dbc.FindSwaps(&storage.SwapFilter{
		TransactionHash:  strings.ToLower(params.TransactionHash),
		TokenAddress:     token,
		InitiatorAddress: initiator,
		FromHeight:       params.FromHeight,
		ToHeight:         params.ToHeight,
		Limit:            params.Limit,
		OffSet:           params.OffSet,
	})
	if err != nil {
		serverError(c)
		return
	}

	ok(c, swaps, total)
}

func (r *Router) LiquidityChanges(c *gin.Context) {
	params := &struct {
		TransactionHash  string `json:"transaction_hash"`
		TokenAddress     string `json:"token_address"`
		InitiatorAddress string `json:"initiator_address"`
		FromHeight       *int64 `json:"from_height"`
		ToHeight         *int64 `json:"to_height"`
		Limit            int    `json:"limit"`
		OffSet           int    `json:"offset"`
	}{
		Limit:  10,
		OffSet: 0,
	}

	if err := c.ShouldBindJSON(&params); err != nil {
		badRequest(c, err.Error())
		return
	}

	token, okToken := normalizeAddressParam(params.TokenAddress)
	initiator, okInitiator := normalizeAddressParam(params.InitiatorAddress)
	if !okToken || !okInitiator {
		badRequest(c, "malformed address filter")
		return
	}
	if !validHeightFilter(params.FromHeight, params.ToHeight) {
		badRequest(c, "invalid height range")
		return
	}

	changes, total, err := r.dbc.FindLiquidityChanges(&storage.LiquidityChangeFilter{
		TransactionHash:  strings.ToLower(params.TransactionHash),
		TokenAddress:     token,
		InitiatorAddress: initiator,
		FromHeight:       params.FromHeight,
		ToHeight:         params.ToHeight,
		Limit:            params.Limit,
		OffSet:           params.OffSet,
	})
	if err != nil {
		serverError(c)
		return
	}

	ok(c, changes, total)
}

func validHeightFilter(from, to *int64) bool {
	if from != nil && *from < 0 {
		return false
	}
	if to != nil && *to < 0 {
		return false
	}
	if from != nil && to != nil && *from > *to {
		return false
	}
	return true
}
