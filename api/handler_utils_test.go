package api

import (
	"math"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func pageParamsFor(rawQuery string) (int32, int32) {
	gin.SetMode(gin.TestMode)
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest("GET", "/api/v1/wallet/transactions?"+rawQuery, nil)
	return pageParams(ctx)
}

func TestPageParams(t *testing.T) {
	limit, offset := pageParamsFor("")
	assert.EqualValues(t, defaultPageSize, limit)
	assert.Zero(t, offset)

	limit, offset = pageParamsFor("limit=1000&offset=-3")
	assert.EqualValues(t, maxPageSize, limit)
	assert.Zero(t, offset)

	limit, offset = pageParamsFor("limit=abc&offset=40")
	assert.EqualValues(t, defaultPageSize, limit)
	assert.EqualValues(t, 40, offset)

	_, offset = pageParamsFor("offset=9999999999")
	assert.EqualValues(t, math.MaxInt32, offset)
}
