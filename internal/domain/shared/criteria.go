package shared

// Operator is a comparison operator in a query predicate
type Operator string

const (
	// OpEquals matches the field exactly
	OpEquals Operator = "eq"
	// OpContains matches a case-insensitive substring
	OpContains Operator = "contains"
)

// Predicate is a single typed query condition. Predicates are translated
// at the persistence boundary against a per-repository field allow-list,
// so loosely-typed filter bags never reach the store.
type Predicate struct {
	Field string
	Op    Operator
	Value any
}

// Criteria represents query options for list operations
type Criteria struct {
	Page       int
	PageSize   int
	OrderBy    string
	OrderDir   string
	Search     string
	Predicates []Predicate
}

// NewCriteria returns criteria with default pagination
func NewCriteria() Criteria {
	return Criteria{
		Page:     1,
		PageSize: 20,
		OrderBy:  "created_at",
		OrderDir: "desc",
	}
}

// Where appends an exact-match predicate
func (c Criteria) Where(field string, value any) Criteria {
	c.Predicates = append(c.Predicates, Predicate{Field: field, Op: OpEquals, Value: value})
	return c
}

// WhereContains appends a case-insensitive substring predicate
func (c Criteria) WhereContains(field string, value string) Criteria {
	c.Predicates = append(c.Predicates, Predicate{Field: field, Op: OpContains, Value: value})
	return c
}

// Validate rejects unusable pagination bounds
func (c Criteria) Validate() error {
	if c.Page < 1 {
		return NewDomainError("INVALID_INPUT", "Page must be at least 1")
	}
	if c.PageSize < 1 {
		return NewDomainError("INVALID_INPUT", "Page size must be at least 1")
	}
	return nil
}

// Offset returns the row offset for the current page
func (c Criteria) Offset() int {
	return (c.Page - 1) * c.PageSize
}

// Paginated represents a paginated result
type Paginated[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

// NewPaginated creates a new paginated result
func NewPaginated[T any](items []T, total int64, page, pageSize int) Paginated[T] {
	totalPages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		totalPages++
	}
	return Paginated[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
