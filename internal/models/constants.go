package models

// Transaction categories. CategoryOther is the fallback when no rule matches.
const (
	CategoryTransfer   = "TRANSFER"
	CategoryDeposit    = "DEPOSIT"
	CategoryWithdrawal = "WITHDRAWAL"
	CategoryPayment    = "PAYMENT"
	CategoryAirtime    = "AIRTIME"
	CategoryBill       = "BILL"
	CategoryOther      = "OTHER"
)

// Transaction types (direction of funds).
const (
	TypeDebit   = "DEBIT"
	TypeCredit  = "CREDIT"
	TypeUnknown = "UNKNOWN"
)

// Network providers derived from the Ugandan numbering plan.
const (
	NetworkMTN      = "MTN"
	NetworkAirtel   = "AIRTEL"
	NetworkAfricell = "AFRICELL"
	NetworkUnknown  = "UNKNOWN"
)

// Amount buckets. Boundaries are inclusive on the lower bucket.
const (
	AmountBucketSmall     = "SMALL"
	AmountBucketMedium    = "MEDIUM"
	AmountBucketLarge     = "LARGE"
	AmountBucketVeryLarge = "VERY_LARGE"
)

// Time-of-day buckets.
const (
	TimeBucketMorning   = "MORNING"
	TimeBucketAfternoon = "AFTERNOON"
	TimeBucketEvening   = "EVENING"
	TimeBucketNight     = "NIGHT"
	TimeBucketUnknown   = "UNKNOWN"
)

// Defaults applied at load time.
const (
	DefaultCurrency = "UGX"
	StatusSuccess   = "SUCCESS"
)
