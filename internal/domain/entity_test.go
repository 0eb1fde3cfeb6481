package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEntityType(t *testing.T) {
	for _, s := range []string{"clients", "products", "orders"} {
		et, err := ParseEntityType(s)
		require.NoError(t, err)
		assert.Equal(t, s, et.String())
	}
}

func TestParseEntityTypeRejectsUnknown(t *testing.T) {
	for _, s := range []string{"", "invoices", "Orders", "summaries"} {
		_, err := ParseEntityType(s)
		var valErr *ValidationError
		assert.ErrorAs(t, err, &valErr, "input %q", s)
	}
}

func TestPrimaryEntityTypesOrder(t *testing.T) {
	assert.Equal(t, []EntityType{EntityClients, EntityProducts, EntityOrders}, PrimaryEntityTypes())
}

func TestErrorConstructors(t *testing.T) {
	var notFound *NotFoundError
	assert.ErrorAs(t, ErrNotFound("missing %s", "x"), &notFound)
	assert.Equal(t, "missing x", notFound.Error())

	var valErr *ValidationError
	assert.ErrorAs(t, ErrValidation("bad %d", 7), &valErr)

	var compErr *ComputationError
	assert.ErrorAs(t, ErrComputation("boom"), &compErr)
}
