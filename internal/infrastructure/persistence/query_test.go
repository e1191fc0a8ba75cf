package persistence

import (
	"testing"

	"github.com/bizdesk/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSortOrder(t *testing.T) {
	assert.Equal(t, "ASC", validateSortOrder("asc"))
	assert.Equal(t, "ASC", validateSortOrder(" ASC "))
	assert.Equal(t, "DESC", validateSortOrder("desc"))
	assert.Equal(t, "DESC", validateSortOrder(""))
	assert.Equal(t, "DESC", validateSortOrder("sideways"))
}

func TestValidateSortField(t *testing.T) {
	allowed := map[string]bool{"created_at": true, "code": true}

	assert.Equal(t, "code", validateSortField("code", allowed, "created_at"))
	assert.Equal(t, "created_at", validateSortField("", allowed, "created_at"))
	// Unlisted fields fall back to the default, they never reach SQL
	assert.Equal(t, "created_at", validateSortField("password_hash", allowed, "created_at"))
	assert.Equal(t, "created_at", validateSortField("code; DROP TABLE clients", allowed, "created_at"))
}

func TestApplyPredicates_RejectsUnknownField(t *testing.T) {
	db, _, mockDB := newMockDB(t)
	defer mockDB.Close()

	criteria := shared.NewCriteria().Where("password_hash", "x")
	_, err := applyPredicates(db, criteria, clientFields)

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_INPUT", domainErr.Code)
}

func TestApplyPredicates_RejectsNonStringContains(t *testing.T) {
	db, _, mockDB := newMockDB(t)
	defer mockDB.Close()

	criteria := shared.Criteria{
		Page:       1,
		PageSize:   20,
		Predicates: []shared.Predicate{{Field: "business_name", Op: shared.OpContains, Value: 42}},
	}
	_, err := applyPredicates(db, criteria, clientFields)

	assert.Error(t, err)
}

func TestApplyCriteria_AllowsListedPredicates(t *testing.T) {
	db, _, mockDB := newMockDB(t)
	defer mockDB.Close()

	criteria := shared.NewCriteria().
		Where("deletion_state", shared.DeletionStateActive).
		WhereContains("business_name", "acme")
	criteria.Search = "plumbing"

	query, err := applyCriteria(db, criteria, clientFields)
	require.NoError(t, err)
	assert.NotNil(t, query)
}
