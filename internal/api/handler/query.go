package handler

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

var leadingInt = regexp.MustCompile(`^[+-]?\d+`)

// queryInt reads the integer at the start of a query parameter, so "20abc"
// yields 20. Values without leading digits yield 0. Out-of-range values
// saturate at the int bounds.
func queryInt(c echo.Context, name string) int {
	digits := leadingInt.FindString(strings.TrimSpace(c.QueryParam(name)))
	if digits == "" {
		return 0
	}
	n, err := strconv.ParseInt(digits, 10, 0)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	return int(n)
}
