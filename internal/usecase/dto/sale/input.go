package saledto

type ProcessSaleInput struct {
	ProductID  string
	Quantity   int64
	CustomerID *string
}

type ListTransactionsInput struct {
	ProductID string
	Page      int
	Size      int
}
