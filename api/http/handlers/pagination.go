package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

const defaultPageSize = 50

// PageQuery is the limit/offset pair accepted by list endpoints.
type PageQuery struct {
	Limit  int `query:"limit" validate:"omitempty,min=1,max=200"`
	Offset int `query:"offset" validate:"min=0"`
}

// parsePage reads limit and offset from the query string; a missing limit means defLimit.
func parsePage(c *fiber.Ctx, defLimit int) (limit, offset int, err error) {
	var q PageQuery
	if err := c.QueryParser(&q); err != nil {
		return 0, 0, errors.New("limit and offset must be integers")
	}
	if err := validate.Struct(q); err != nil {
		return 0, 0, errors.New(validationMessage(err))
	}
	if q.Limit == 0 {
		q.Limit = defLimit
	}
	return q.Limit, q.Offset, nil
}
