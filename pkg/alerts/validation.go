package alerts

import (
	"fmt"

	z "github.com/Oudwins/zog"
	"liyu1981.xyz/inventory-alert-service/pkg/models"
)

const (
	MaxWindowDays   = 90
	DefaultPageSize = 20
	MaxPageSize     = 100
)

var QueryParamsSchema = z.Struct(z.Shape{
	"type":       z.String().Trim().OneOf([]string{"all", "stock", "expiry"}),
	"severity":   z.String().Trim().OneOf([]string{"info", "warning", "critical", "INFO", "WARNING", "CRITICAL"}),
	"windowDays": z.Int().GTE(1).LTE(MaxWindowDays),
	"unreadOnly": z.Bool(),
	"search":     z.String().Trim(),
	"page":       z.Int().GTE(1),
	"pageSize":   z.Int().GTE(1),
})

// ValidateQueryParams checks params in place. Zero values mean "use the
// default" and are accepted.
func ValidateQueryParams(params *models.QueryParams) error {
	if issues := QueryParamsSchema.Validate(params); len(issues) > 0 {
		return fmt.Errorf("%w: %v", ErrInvalidParams, issues)
	}
	return nil
}
