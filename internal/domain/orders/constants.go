package orders

const (
	WorkStatusWIP     = "WIP"
	WorkStatusReady   = "Ready"
	WorkStatusClaimed = "Claimed"

	PaymentCash  = "Cash"
	PaymentGCash = "GCash"

	PaymentStatusPaid   = "Paid"
	PaymentStatusUnpaid = "Unpaid"
)

var WorkStatuses = []string{WorkStatusWIP, WorkStatusReady, WorkStatusClaimed}

// TierPrices is the per-load price list. Tier names double as the
// service labels on the order slip.
var TierPrices = map[string]float64{
	"Tier 1": 125.0,
	"Tier 2": 150.0,
}

func ValidWorkStatus(status string) bool {
	for _, s := range WorkStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func ValidPaymentType(pt string) bool {
	return pt == PaymentCash || pt == PaymentGCash
}
