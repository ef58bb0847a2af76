package models

// Batch statuses as stored in the batch record.
const (
	BatchStatusActive    = "active"
	BatchStatusCompleted = "completed"
)

// Batch represents one flock/production cycle from intake to sale.
// Expense and sales ledgers are embedded maps keyed by generated ids,
// mirroring the push-key layout of the original tree store.
type Batch struct {
	ID                   string                   `bson:"_id,omitempty" json:"id"`
	BatchName            string                   `bson:"batchName" json:"batchName"`
	DateCreated          string                   `bson:"dateCreated" json:"dateCreated"`
	ExpectedCompleteDate string                   `bson:"expectedCompleteDate" json:"expectedCompleteDate"`
	StartingPopulation   int                      `bson:"startingPopulation" json:"startingPopulation"`
	AverageChickWeight   float64                  `bson:"averageChickWeight,omitempty" json:"averageChickWeight,omitempty"`
	VitaminBudget        float64                  `bson:"vitaminBudget" json:"vitaminBudget"`
	Status               string                   `bson:"status" json:"status"`
	Expenses             map[string]ExpenseRecord `bson:"expenses,omitempty" json:"expenses,omitempty"`
	Sales                map[string]SalesRecord   `bson:"sales,omitempty" json:"sales,omitempty"`
	FeedForecast         []FeedForecastEntry      `bson:"feedForecast,omitempty" json:"feedForecast,omitempty"`
	VitaminForecast      []DepletionEvent         `bson:"vitaminForecast,omitempty" json:"vitaminForecast,omitempty"`
}

// ExpenseRecord captures one line item of a batch's expense ledger.
type ExpenseRecord struct {
	Category      string  `bson:"category" json:"category"`
	FeedType      string  `bson:"feedType,omitempty" json:"feedType,omitempty"`
	ItemName      string  `bson:"itemName" json:"itemName"`
	Description   string  `bson:"description" json:"description"`
	Amount        float64 `bson:"amount" json:"amount"`
	Quantity      float64 `bson:"quantity" json:"quantity"`
	PurchaseCount float64 `bson:"purchaseCount,omitempty" json:"purchaseCount,omitempty"`
	Unit          string  `bson:"unit" json:"unit"`
	Date          string  `bson:"date" json:"date"`
	Timestamp     int64   `bson:"timestamp" json:"timestamp"`
}

// SalesRecord captures one sale of birds out of a batch.
type SalesRecord struct {
	BuyerName       string  `bson:"buyerName" json:"buyerName"`
	Address         string  `bson:"address" json:"address"`
	Quantity        int     `bson:"quantity" json:"quantity"`
	PricePerChicken float64 `bson:"pricePerChicken" json:"pricePerChicken"`
	TotalAmount     float64 `bson:"totalAmount" json:"totalAmount"`
	DateOfPurchase  string  `bson:"dateOfPurchase" json:"dateOfPurchase"`
	Timestamp       int64   `bson:"timestamp" json:"timestamp"`
}
