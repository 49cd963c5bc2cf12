package ssot

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudwarriors-ai/zoom-api-gateway/internal/models"
)

type stubSource struct {
	mappings []*models.FieldMapping
	err      error
}

func (s *stubSource) Mappings(jobTypeID int, sourcePlatform, targetEntity string) ([]*models.FieldMapping, error) {
	return s.mappings, s.err
}

func TestSitesRemovesBusinessAddress(t *testing.T) {
	tr := NewSitesTransformer(nil, 0, nil)

	input := map[string]interface{}{
		"id":   "1",
		"name": "Main Office",
		"businessAddress": map[string]interface{}{
			"street":  "123 Main St",
			"city":    "SF",
			"state":   "CA",
			"zip":     "94105",
			"country": "United States",
		},
	}

	require.NoError(t, tr.ValidateInput(input))
	out, err := tr.Transform(input)
	require.NoError(t, err)
	require.NoError(t, tr.ValidateOutput(out))

	assert.NotContains(t, out, "businessAddress")
	addr := out["default_emergency_address"].(map[string]interface{})
	assert.Equal(t, "123 Main ST", addr["address_line1"])
	assert.Equal(t, "US", addr["country"])
	assert.Equal(t, "CA", addr["state_code"])
	assert.Equal(t, "MAIN_OFFICE", out["site_code"])
	assert.Equal(t, "active", out["status"])
}

func TestSitesMissingRequiredMappedField(t *testing.T) {
	src := &stubSource{mappings: []*models.FieldMapping{
		{SourceField: "region", TargetField: "region_code", IsRequired: true},
	}}
	tr := NewSitesTransformer(src, 33, nil)

	_, err := tr.Transform(map[string]interface{}{"id": "1", "name": "X"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "region")
}

func TestSitesMappingFetchFailureFallsBack(t *testing.T) {
	src := &stubSource{err: errors.New("db down")}
	tr := NewSitesTransformer(src, 33, nil)

	out, err := tr.Transform(map[string]interface{}{"id": "1", "name": "Main Office"})
	require.NoError(t, err)
	assert.Equal(t, "MAIN_OFFICE", out["site_code"])
}

func TestUsersDefaults(t *testing.T) {
	tr := NewUsersTransformer(nil, 0, nil)

	input := map[string]interface{}{
		"id":         "p-1",
		"first_name": "Ada",
		"last_name":  "Lovelace",
		"email":      "ada@example.com",
		"timezone":   "Eastern Time",
		"user_type":  "DigitalUser",
		"phone_numbers": []interface{}{
			map[string]interface{}{"type": "work", "number": "+15550100"},
		},
	}

	require.NoError(t, tr.ValidateInput(input))
	out, err := tr.Transform(input)
	require.NoError(t, err)
	require.NoError(t, tr.ValidateOutput(out))

	info := out["user_info"].(map[string]interface{})
	assert.Equal(t, "Ada", info["first_name"])
	assert.Equal(t, "America/New_York", info["timezone"])
	assert.Equal(t, 2, info["type"])

	assert.Equal(t, "Ada Lovelace", out["display_name"])
	phones := out["phone_numbers"].([]map[string]interface{})
	require.Len(t, phones, 1)
	assert.Equal(t, "office", phones[0]["type"])
}

func TestUsersNestedMappings(t *testing.T) {
	src := &stubSource{mappings: []*models.FieldMapping{
		{SourceField: "givenName", TargetField: "user_info.first_name"},
		{SourceField: "familyName", TargetField: "user_info.last_name"},
		{SourceField: "mail", TargetField: "user_info.email", TransformationRule: "lowercase"},
	}}
	tr := NewUsersTransformer(src, 39, nil)

	out, err := tr.Transform(map[string]interface{}{
		"id":         "p-2",
		"givenName":  "Grace",
		"familyName": "Hopper",
		"mail":       "GRACE@NAVY.MIL",
	})
	require.NoError(t, err)

	info := out["user_info"].(map[string]interface{})
	assert.Equal(t, "Grace", info["first_name"])
	assert.Equal(t, "grace@navy.mil", info["email"])
	assert.Equal(t, 1, info["type"])
	assert.Equal(t, "Grace Hopper", out["display_name"])
}

func TestUsersConfigOverridesDefaults(t *testing.T) {
	tr := NewUsersTransformer(nil, 0, map[string]interface{}{
		"default_user_type": 2,
		"default_status":    "pending",
	})

	out, err := tr.Transform(map[string]interface{}{
		"id": "p-4", "email": "x@y.z",
	})
	require.NoError(t, err)

	info := out["user_info"].(map[string]interface{})
	assert.Equal(t, 2, info["type"])
	assert.Equal(t, "pending", out["status"])
}

func TestUsersTimezoneObject(t *testing.T) {
	tr := NewUsersTransformer(nil, 0, nil)

	out, err := tr.Transform(map[string]interface{}{
		"id": "p-3", "email": "x@y.z",
		"timezone": map[string]interface{}{"id": "61"},
	})
	require.NoError(t, err)

	info := out["user_info"].(map[string]interface{})
	assert.Equal(t, "America/Los_Angeles", info["timezone"])
}

func TestCallQueues(t *testing.T) {
	tr := NewCallQueuesTransformer(nil, 0)

	out, err := tr.Transform(map[string]interface{}{
		"id":   "cg-1",
		"name": "Support",
		"business_hours": map[string]interface{}{
			"schedule": map[string]interface{}{
				"weeklyRanges": map[string]interface{}{
					"Monday": []interface{}{
						map[string]interface{}{"from": "08:00", "to": "17:00"},
					},
				},
			},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []map[string]interface{}{
		{"weekday": 2, "from": "08:00", "to": "17:00", "type": 2},
	}, out["custom_hours_settings"])
}

func TestAutoReceptionists(t *testing.T) {
	tr := NewAutoReceptionistsTransformer(nil, 0)

	out, err := tr.Transform(map[string]interface{}{
		"id":        "aa-1",
		"site_name": "Downtown Branch",
		"site":      map[string]interface{}{"id": "s-12"},
	})
	require.NoError(t, err)
	require.NoError(t, tr.ValidateOutput(out))

	assert.Equal(t, "s-12", out["rc_site_id"])
	assert.Equal(t, "Downtown Branch (NIU)", out["name"])
}

func TestIVRMirrorsRingCentralShape(t *testing.T) {
	tr := NewIVRTransformer()

	out, err := tr.Transform(map[string]interface{}{
		"id":   "ivr-1",
		"name": "Menu",
		"ivr_details": []interface{}{
			map[string]interface{}{
				"actions": []interface{}{
					map[string]interface{}{
						"input":  "1",
						"action": "Voicemail",
						"extension": map[string]interface{}{
							"id":   "901",
							"name": "Help Desk Queue",
						},
					},
				},
			},
		},
	})
	require.NoError(t, err)

	assert.NotContains(t, out, "ivr_details")
	actions := out["ivr_actions"].([]map[string]interface{})
	require.Len(t, actions, 1)
	assert.Equal(t, 400, actions[0]["action"])
	assert.Equal(t, "call_queue", actions[0]["target"].(map[string]interface{})["type"])
}
