package domain

// CategoryType partitions categories into income and expense buckets.
type CategoryType string

const (
	CategoryIncome  CategoryType = "income"
	CategoryExpense CategoryType = "expense"
)

// DefaultCategoryColor is the UI tag color applied when none is supplied.
const DefaultCategoryColor = "#22C55E"

// Category labels transactions and anchors monthly budgets.
type Category struct {
	RecordMeta
	Name  string       `json:"name"`
	Type  CategoryType `json:"type"`
	Color string       `json:"color"`
}
