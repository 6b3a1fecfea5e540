package domain

type ProjectStatus string

const (
	ProjectOngoing   ProjectStatus = "ongoing"
	ProjectCompleted ProjectStatus = "completed"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentPartial  PaymentStatus = "partial"
	PaymentRefunded PaymentStatus = "refunded"
)

// ValidProjectStatuses is the canonical set of accepted project status strings.
var ValidProjectStatuses = map[string]bool{
	"ongoing": true, "completed": true,
}

// ValidPaymentStatuses is the canonical set of accepted payment status strings.
var ValidPaymentStatuses = map[string]bool{
	"pending": true, "paid": true, "partial": true, "refunded": true,
}
