package catalog

// Order selects the sort key for a catalog listing.
type Order int

const (
	OrderIDNumber Order = iota // default: idnumber ascending
	OrderPriceAsc
	OrderPriceDesc
)

// ListQuery scopes a catalog listing. Field is "series" or "size"
// (empty means unfiltered) and Value holds the canonical stored value,
// so stores may interpolate Field into a query safely.
type ListQuery struct {
	Field string
	Value string
	Order Order
}

// valueMap maps the URL-safe filter tokens to the canonical stored
// values. It is deliberately flat: the field and the value are not
// cross-checked, so filter=size&value=abstract resolves and simply
// matches nothing.
var valueMap = map[string]string{
	"classic":      "Classic",
	"illustrative": "Illustrative",
	"abstract":     "Abstract",
	"10x14":        "10x14",
	"12x28":        "12x28",
	"17x28":        "17x28",
	"23x31":        "23x31",
	"20x24":        "20x24",
}

var orderMap = map[string]Order{
	"":     OrderIDNumber,
	"asc":  OrderPriceAsc,
	"desc": OrderPriceDesc,
}

// ResolveListQuery translates the raw gallery URL parameters into a
// ListQuery. Tokens outside the allow-lists yield ErrUnknownFilter,
// never a silent empty result.
func ResolveListQuery(filter, value, order string) (ListQuery, error) {
	ord, ok := orderMap[order]
	if !ok {
		return ListQuery{}, ErrUnknownFilter
	}
	q := ListQuery{Order: ord}
	if filter == "" {
		return q, nil
	}
	if filter != "series" && filter != "size" {
		return ListQuery{}, ErrUnknownFilter
	}
	v, ok := valueMap[value]
	if !ok {
		return ListQuery{}, ErrUnknownFilter
	}
	q.Field = filter
	q.Value = v
	return q, nil
}
