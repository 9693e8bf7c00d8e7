package router

import (
	"net/http"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"

	"zilswap-indexer/storage"
	"zilswap-indexer/utils"
)

// Router exposes the ledger and its aggregate views. Handlers only
// validate parameters and hand the rows through unchanged; every piece
// of business logic lives below the storage boundary.
type Router struct {
	dbc *storage.DBClient
}

func NewRouter(db *storage.DBClient) *Router {
	return &Router{
		dbc: db,
	}
}

func badRequest(c *gin.Context, msg string) {
	result := &utils.HttpResult{}
	result.Code = 400
	result.Msg = msg
	c.JSON(http.StatusBadRequest, result)
}

func serverError(c *gin.Context) {
	result := &utils.HttpResult{}
	result.Code = 500
	result.Msg = "server error"
	c.JSON(http.StatusInternalServerError, result)
}

func ok(c *gin.Context, data interface{}, total int64) {
	result := &utils.HttpResult{}
	result.Code = 200
	result.Msg = "success"
	result.Data = data
	result.Total = total
	c.JSON(http.StatusOK, result)
}

// normalizeAddressParam checks an optional address filter. Empty stays
// empty (no filter); anything else must be a 20-byte hex address and is
// lowercased to match the stored form.
func normalizeAddressParam(addr string) (string, bool) {
	if addr == "" {
		return "", true
	}
	if !common.IsHexAddress(addr) {
		return "", false
	}
	if !strings.HasPrefix(addr, "0x") && !strings.HasPrefix(addr, "0X") {
		addr = "0x" + addr
	}
	return strings.ToLower(addr), true
}
