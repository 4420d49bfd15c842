// Package seed generates sample transaction data for local development and
// dashboard testing.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"kasozi/momo-etl/internal/models"
)

var seedCategories = []string{
	models.CategoryTransfer,
	models.CategoryAirtime,
	models.CategoryPayment,
	models.CategoryWithdrawal,
	models.CategoryDeposit,
}

var seedNetworks = []string{
	models.NetworkMTN,
	models.NetworkAirtel,
	models.NetworkAfricell,
}

// amount ranges per category, shaped after typical MoMo usage.
var amountRanges = map[string][2]int64{
	models.CategoryAirtime:    {1000, 20000},
	models.CategoryTransfer:   {5000, 500000},
	models.CategoryWithdrawal: {20000, 200000},
	models.CategoryPayment:    {10000, 300000},
	models.CategoryDeposit:    {50000, 1000000},
}

// Generate produces n random sample transactions spread over the 90 days
// before baseDate. The generator is deterministic for a given rng.
func Generate(n int, baseDate time.Time, rng *rand.Rand) []models.Transaction {
	txs := make([]models.Transaction, 0, n)

	for i := 0; i < n; i++ {
		category := seedCategories[rng.Intn(len(seedCategories))]
		network := seedNetworks[rng.Intn(len(seedNetworks))]
		bounds := amountRanges[category]
		amount := bounds[0] + rng.Int63n(bounds[1]-bounds[0]+1)

		txType := models.TypeDebit
		if category == models.CategoryDeposit {
			txType = models.TypeCredit
		}

		fees := decimal.Zero
		if category != models.CategoryDeposit {
			fees = decimal.NewFromInt(rng.Int63n(5001))
		}

		date := baseDate.AddDate(0, 0, -rng.Intn(90)).
			Add(time.Duration(rng.Intn(24)) * time.Hour)

		txs = append(txs, models.Transaction{
			TransactionID:   fmt.Sprintf("tx_%04d", i+1),
			Amount:          decimal.NewFromInt(amount),
			Currency:        models.DefaultCurrency,
			TransactionDate: date,
			TransactionType: txType,
			Category:        category,
			SenderPhone:     randomPhone(rng, "77"),
			ReceiverPhone:   randomPhone(rng, "70"),
			SenderNetwork:   network,
			ReceiverNetwork: seedNetworks[rng.Intn(len(seedNetworks))],
			Description:     fmt.Sprintf("Sample %s transaction", strings.ToLower(category)),
			BalanceBefore:   decimal.NewNullDecimal(decimal.NewFromInt(50000 + rng.Int63n(950001))),
			BalanceAfter:    decimal.NewNullDecimal(decimal.NewFromInt(50000 + rng.Int63n(950001))),
			Fees:            fees,
			Status:          models.StatusSuccess,
		})
	}
	return txs
}

func randomPhone(rng *rand.Rand, prefix string) string {
	return fmt.Sprintf("+256%s%07d", prefix, rng.Intn(10000000))
}
