package persistence

import (
	"strings"

	"github.com/bizdesk/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// FieldSet is a repository's allow-list for criteria translation. Sort and
// predicate fields coming from the API are matched against it before they
// touch SQL; anything outside the list is rejected or replaced.
type FieldSet struct {
	Sortable     map[string]bool
	Filterable   map[string]bool
	Searchable   []string
	DefaultOrder string
}

// validateSortOrder normalizes the sort direction, defaulting to DESC
func validateSortOrder(orderDir string) string {
	if strings.EqualFold(strings.TrimSpace(orderDir), "asc") {
		return "ASC"
	}
	return "DESC"
}

// validateSortField checks a sort field against the allow-list, falling
// back to the default when the input is absent or unlisted
func validateSortField(sortField string, allowed map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed != "" && allowed[trimmed] {
		return trimmed
	}
	return defaultField
}

// applyPredicates translates search and typed predicates into WHERE
// clauses. It applies neither ordering nor pagination, so Count can share
// it with the listing queries.
func applyPredicates(query *gorm.DB, c shared.Criteria, fields FieldSet) (*gorm.DB, error) {
	if c.Search != "" && len(fields.Searchable) > 0 {
		pattern := "%" + c.Search + "%"
		clauses := make([]string, len(fields.Searchable))
		args := make([]interface{}, len(fields.Searchable))
		for i, col := range fields.Searchable {
			clauses[i] = col + " ILIKE ?"
			args[i] = pattern
		}
		query = query.Where(strings.Join(clauses, " OR "), args...)
	}

	for _, p := range c.Predicates {
		if !fields.Filterable[p.Field] {
			return nil, shared.NewDomainError("INVALID_INPUT", "Cannot filter on field "+p.Field)
		}
		switch p.Op {
		case shared.OpEquals:
			query = query.Where(p.Field+" = ?", p.Value)
		case shared.OpContains:
			value, ok := p.Value.(string)
			if !ok {
				return nil, shared.NewDomainError("INVALID_INPUT", "Contains predicate requires a string value")
			}
			query = query.Where(p.Field+" ILIKE ?", "%"+value+"%")
		default:
			return nil, shared.NewDomainError("INVALID_INPUT", "Unsupported predicate operator")
		}
	}

	return query, nil
}

// applyCriteria translates the full criteria: predicates, ordering and
// pagination
func applyCriteria(query *gorm.DB, c shared.Criteria, fields FieldSet) (*gorm.DB, error) {
	query, err := applyPredicates(query, c, fields)
	if err != nil {
		return nil, err
	}

	orderBy := validateSortField(c.OrderBy, fields.Sortable, fields.DefaultOrder)
	query = query.Order(orderBy + " " + validateSortOrder(c.OrderDir))

	if c.Page > 0 && c.PageSize > 0 {
		query = query.Offset(c.Offset()).Limit(c.PageSize)
	}

	return query, nil
}

var clientFields = FieldSet{
	Sortable: map[string]bool{
		"id":             true,
		"created_at":     true,
		"updated_at":     true,
		"code":           true,
		"business_name":  true,
		"business_type":  true,
		"deletion_state": true,
	},
	Filterable: map[string]bool{
		"code":           true,
		"business_name":  true,
		"business_type":  true,
		"deletion_state": true,
		"created_by":     true,
		"address_city":   true,
		"address_state":  true,
	},
	Searchable:   []string{"business_name", "business_type"},
	DefaultOrder: "created_at",
}

var quoteFields = FieldSet{
	Sortable: map[string]bool{
		"id":             true,
		"created_at":     true,
		"updated_at":     true,
		"quote_number":   true,
		"quote_date":     true,
		"status":         true,
		"total_amount":   true,
		"business_name":  true,
		"deletion_state": true,
	},
	Filterable: map[string]bool{
		"quote_number":       true,
		"status":             true,
		"deletion_state":     true,
		"created_by":         true,
		"business_client_id": true,
		"business_name":      true,
		"handler_user_id":    true,
	},
	Searchable:   []string{"business_name", "handler_name"},
	DefaultOrder: "quote_date",
}

var serviceFields = FieldSet{
	Sortable: map[string]bool{
		"id":         true,
		"created_at": true,
		"updated_at": true,
		"name":       true,
		"amount":     true,
	},
	Filterable: map[string]bool{
		"name":           true,
		"deletion_state": true,
		"created_by":     true,
	},
	Searchable:   []string{"name", "description"},
	DefaultOrder: "name",
}
