package enum

// DeliveryFilter selects which slice of the order list a view shows.
// It is a view concern only and is never persisted.
type DeliveryFilter string

const (
	DeliveryFilterAll       DeliveryFilter = "all"
	DeliveryFilterPending   DeliveryFilter = "pending-delivery"
	DeliveryFilterDelivered DeliveryFilter = "delivered"
)

// ParseDeliveryFilter maps a query-string value to a filter; anything
// unrecognized (including the empty string) means no filtering.
func ParseDeliveryFilter(s string) DeliveryFilter {
	switch DeliveryFilter(s) {
	case DeliveryFilterPending:
		return DeliveryFilterPending
	case DeliveryFilterDelivered:
		return DeliveryFilterDelivered
	default:
		return DeliveryFilterAll
	}
}

func (f DeliveryFilter) String() string {
	return string(f)
}
