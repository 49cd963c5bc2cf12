package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord() map[string]interface{} {
	return map[string]interface{}{
		"id":   "ext-1",
		"name": "Main Office",
		"contact": map[string]interface{}{
			"email": "a@b.com",
			"phone": map[string]interface{}{
				"number": "+15550100",
			},
		},
		"ivr_details": []interface{}{
			map[string]interface{}{
				"actions": []interface{}{
					map[string]interface{}{"input": "1"},
					map[string]interface{}{"input": "2"},
				},
			},
		},
		"members": []interface{}{
			map[string]interface{}{"ext": float64(101)},
			map[string]interface{}{"ext": float64(102)},
			"not-an-object",
			map[string]interface{}{"name": "no ext here"},
		},
	}
}

func TestGetPlainAndNested(t *testing.T) {
	record := sampleRecord()

	assert.Equal(t, "ext-1", Get(record, "id"))
	assert.Equal(t, "a@b.com", Get(record, "contact.email"))
	assert.Equal(t, "+15550100", Get(record, "contact.phone.number"))
	assert.Nil(t, Get(record, "contact.missing"))
	assert.Nil(t, Get(record, "missing.email"))
	assert.Nil(t, Get(nil, "id"))
	assert.Nil(t, Get(record, ""))
}

func TestGetLiteralKeyWinsOverTraversal(t *testing.T) {
	record := map[string]interface{}{
		"zoomMapping.action": "literal",
		"zoomMapping": map[string]interface{}{
			"action": "nested",
		},
	}

	assert.Equal(t, "literal", Get(record, "zoomMapping.action"))
}

func TestGetArrayIndex(t *testing.T) {
	record := sampleRecord()

	assert.Equal(t, "1", Get(record, "ivr_details[0].actions[0].input"))
	assert.Equal(t, "2", Get(record, "ivr_details[0].actions[1].input"))
	assert.Nil(t, Get(record, "ivr_details[5].actions"))
	assert.Nil(t, Get(record, "contact[0].email"))
}

func TestGetWildcardFanOut(t *testing.T) {
	record := map[string]interface{}{
		"a": map[string]interface{}{
			"b": []interface{}{
				map[string]interface{}{"c": float64(1)},
				map[string]interface{}{"c": float64(2)},
			},
		},
	}

	values, ok := Get(record, "a.b[*].c").([]interface{})
	require.True(t, ok)
	assert.Equal(t, []interface{}{float64(1), float64(2)}, values)
}

func TestGetWildcardKeepsFailedPositions(t *testing.T) {
	record := sampleRecord()

	values, ok := Get(record, "members[*].ext").([]interface{})
	require.True(t, ok)
	require.Len(t, values, 4)
	assert.Equal(t, float64(101), values[0])
	assert.Equal(t, float64(102), values[1])
	assert.Nil(t, values[2])
	assert.Nil(t, values[3])
}

func TestGetWildcardWholeArray(t *testing.T) {
	record := sampleRecord()

	values, ok := Get(record, "ivr_details[*]").([]interface{})
	require.True(t, ok)
	assert.Len(t, values, 1)
}

func TestGetAll(t *testing.T) {
	record := sampleRecord()

	assert.Len(t, GetAll(record, "members[*].ext"), 4)
	assert.Equal(t, []interface{}{"ext-1"}, GetAll(record, "id"))
	assert.Empty(t, GetAll(record, "nope"))
	assert.Empty(t, GetAll(record, "nope[*].x"))
}

func TestSetCreatesIntermediateMaps(t *testing.T) {
	record := map[string]interface{}{}

	Set(record, "user_info.first_name", "Ada")
	Set(record, "user_info.last_name", "Lovelace")
	Set(record, "status", "Enabled")

	userInfo, ok := record["user_info"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Ada", userInfo["first_name"])
	assert.Equal(t, "Lovelace", userInfo["last_name"])
	assert.Equal(t, "Enabled", record["status"])
}

func TestSetOverwritesNonMapIntermediate(t *testing.T) {
	record := map[string]interface{}{"a": "scalar"}

	Set(record, "a.b", 1)

	inner, ok := record["a"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 1, inner["b"])
}

func TestRenderTemplate(t *testing.T) {
	record := sampleRecord()

	assert.Equal(t, "Main Office <a@b.com>", RenderTemplate("{name} <{contact.email}>", record))
	assert.Equal(t, "missing: ", RenderTemplate("missing: {contact.fax}", record))
	assert.Equal(t, "no placeholders", RenderTemplate("no placeholders", record))
}
