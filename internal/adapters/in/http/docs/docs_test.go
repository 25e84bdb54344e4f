package docs_test

import (
	"encoding/json"
	"testing"

	"nailorders/internal/adapters/in/http/docs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDocIsRegistered(t *testing.T) {
	raw, err := swag.ReadDoc()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	assert.Equal(t, "/api/v1", doc["basePath"])
	assert.Contains(t, doc["paths"], "/stats/monthly")
}

func TestOpenAPI3(t *testing.T) {
	doc, err := docs.OpenAPI3()
	require.NoError(t, err)

	require.NoError(t, doc.Validate(t.Context()))
	assert.NotNil(t, doc.Paths.Find("/orders"))
	assert.NotNil(t, doc.Paths.Find("/dashboard"))
	assert.Equal(t, "Nail Orders API", doc.Info.Title)
}
