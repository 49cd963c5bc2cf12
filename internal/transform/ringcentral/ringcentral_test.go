package ringcentral

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSitesTransform(t *testing.T) {
	tr := NewSitesTransformer()

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

	assert.Equal(t, "1", out["id"])
	assert.Equal(t, "Main Office", out["name"])
	// the RingCentral variant keeps businessAddress
	assert.Contains(t, out, "businessAddress")

	assert.Equal(t, map[string]interface{}{
		"address_line1": "123 Main St",
		"city":          "SF",
		"state_code":    "CA",
		"zip":           "94105",
		"country":       "US",
	}, out["default_emergency_address"])

	assert.Equal(t, "MAIN_OFFICE", out["site_code"])
	assert.Equal(t, "Main Office (NIU)", out["auto_receptionist_name"])
}

func TestSitesTransformStreet2AndTimezone(t *testing.T) {
	tr := NewSitesTransformer()

	input := map[string]interface{}{
		"id":   "2",
		"name": "Annex",
		"businessAddress": map[string]interface{}{
			"street":  "1 First St",
			"street2": "Suite 200",
			"city":    "NYC",
			"state":   "NY",
			"zip":     "10001",
			"country": "US",
		},
		"regionalSettings": map[string]interface{}{
			"timezone": map[string]interface{}{
				"id":   "58",
				"name": "Eastern Time",
			},
		},
	}

	out, err := tr.Transform(input)
	require.NoError(t, err)

	addr := out["default_emergency_address"].(map[string]interface{})
	assert.Equal(t, "Suite 200", addr["address_line2"])
	assert.Equal(t, "America/New_York", out["timezone"])
}

func TestSitesValidateInput(t *testing.T) {
	tr := NewSitesTransformer()

	err := tr.ValidateInput(map[string]interface{}{"name": "X"})
	assert.Error(t, err)

	err = tr.ValidateInput(map[string]interface{}{
		"businessAddress": map[string]interface{}{},
	})
	assert.Error(t, err)
}

func TestUsersTransform(t *testing.T) {
	tr := NewUsersTransformer()

	input := map[string]interface{}{
		"id":              float64(42),
		"extensionNumber": "101",
		"contact": map[string]interface{}{
			"firstName":     "Ada",
			"lastName":      "Lovelace",
			"email":         "ada@example.com",
			"businessPhone": "+15550100",
		},
	}

	require.NoError(t, tr.ValidateInput(input))
	out, err := tr.Transform(input)
	require.NoError(t, err)
	require.NoError(t, tr.ValidateOutput(out))

	assert.NotContains(t, out, "contact")
	assert.Equal(t, map[string]interface{}{
		"first_name":   "Ada",
		"last_name":    "Lovelace",
		"email":        "ada@example.com",
		"phone_number": "+15550100",
	}, out["user_info"])
	assert.Equal(t, 1, out["type"])
	assert.Equal(t, "101", out["extensionNumber"])
}

func TestUsersTypePassesThrough(t *testing.T) {
	tr := NewUsersTransformer()

	out, err := tr.Transform(map[string]interface{}{
		"id":   "1",
		"type": "DigitalUser",
		"contact": map[string]interface{}{
			"firstName": "A", "lastName": "B", "email": "a@b.com",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "DigitalUser", out["type"])
}

func TestCallQueuesBusinessHours(t *testing.T) {
	tr := NewCallQueuesTransformer()

	input := map[string]interface{}{
		"id":   "q1",
		"name": "Support Queue",
		"business_hours": map[string]interface{}{
			"schedule": map[string]interface{}{
				"weeklyRanges": map[string]interface{}{
					"Monday": []interface{}{
						map[string]interface{}{"from": "08:00", "to": "17:00"},
					},
				},
			},
		},
	}

	out, err := tr.Transform(input)
	require.NoError(t, err)

	assert.Equal(t, []map[string]interface{}{
		{"weekday": 2, "from": "08:00", "to": "17:00", "type": 2},
	}, out["custom_hours_settings"])
	// business_hours itself survives
	assert.Contains(t, out, "business_hours")
}

func TestCallQueuesBusinessHoursArrayForm(t *testing.T) {
	tr := NewCallQueuesTransformer()

	input := map[string]interface{}{
		"id":   "q2",
		"name": "Sales",
		"business_hours": []interface{}{
			map[string]interface{}{
				"schedule": map[string]interface{}{
					"weeklyRanges": map[string]interface{}{
						"friday": []interface{}{
							map[string]interface{}{"from": "09:00", "to": "12:00"},
						},
					},
				},
			},
		},
	}

	out, err := tr.Transform(input)
	require.NoError(t, err)
	require.Contains(t, out, "custom_hours_settings")
}

func TestCallQueuesWithoutBusinessHoursUntouched(t *testing.T) {
	tr := NewCallQueuesTransformer()

	input := map[string]interface{}{"id": "q3", "name": "Ops", "members": []interface{}{}}
	out, err := tr.Transform(input)
	require.NoError(t, err)

	assert.NotContains(t, out, "custom_hours_settings")
	assert.True(t, reflect.DeepEqual(input, out))
}

func TestAutoReceptionistsSiteID(t *testing.T) {
	tr := NewAutoReceptionistsTransformer()

	// literal dotted key form
	out, err := tr.Transform(map[string]interface{}{
		"id": "ar1", "name": "Front Desk", "site.id": "s-9",
	})
	require.NoError(t, err)
	assert.Equal(t, "s-9", out["rc_site_id"])

	// nested form
	out, err = tr.Transform(map[string]interface{}{
		"id": "ar2", "name": "Front Desk",
		"site": map[string]interface{}{"id": float64(7)},
	})
	require.NoError(t, err)
	assert.Equal(t, "7", out["rc_site_id"])
}

func TestIVRTransform(t *testing.T) {
	tr := NewIVRTransformer()

	input := map[string]interface{}{
		"id":   "ivr1",
		"name": "Main Menu",
		"ivr_details": []interface{}{
			map[string]interface{}{
				"actions": []interface{}{
					map[string]interface{}{
						"input":  "1",
						"action": "Connect",
						"extension": map[string]interface{}{
							"id":   float64(301),
							"name": "Sales Queue",
						},
					},
					map[string]interface{}{
						"input":  "Star",
						"action": "Repeat",
						"extension": map[string]interface{}{
							"id":   float64(302),
							"name": "Whatever",
						},
					},
					map[string]interface{}{
						"input":  "2",
						"action": "Connect",
						"extension": map[string]interface{}{
							"id":   float64(303),
							"name": "Jane Doe",
						},
					},
					map[string]interface{}{
						"input":  "NoInput",
						"action": "Disconnect",
					},
				},
			},
		},
	}

	require.NoError(t, tr.ValidateInput(input))
	out, err := tr.Transform(input)
	require.NoError(t, err)
	require.NoError(t, tr.ValidateOutput(out))

	assert.NotContains(t, out, "ivr_details")

	actions, ok := out["ivr_actions"].([]map[string]interface{})
	require.True(t, ok)
	require.Len(t, actions, 4)

	// "Sales Queue" detected as call_queue: Connect → 7
	assert.Equal(t, "1", actions[0]["key"])
	assert.Equal(t, 7, actions[0]["action"])
	assert.Equal(t, map[string]interface{}{
		"type":         "call_queue",
		"extension_id": "301",
	}, actions[0]["target"])

	// Repeat is universal and never carries a target, even with an extension
	assert.Equal(t, "*", actions[1]["key"])
	assert.Equal(t, 21, actions[1]["action"])
	assert.NotContains(t, actions[1], "target")

	// person name defaults to user: Connect → 2
	assert.Equal(t, 2, actions[2]["action"])
	assert.Equal(t, "user", actions[2]["target"].(map[string]interface{})["type"])

	// Disconnect → -1, no target
	assert.Equal(t, "timeout", actions[3]["key"])
	assert.Equal(t, -1, actions[3]["action"])
	assert.NotContains(t, actions[3], "target")
}

func TestIVRWithoutDetails(t *testing.T) {
	tr := NewIVRTransformer()

	input := map[string]interface{}{"id": "ivr2", "name": "Empty"}
	out, err := tr.Transform(input)
	require.NoError(t, err)
	assert.NotContains(t, out, "ivr_actions")
	assert.Equal(t, input, out)
}

func TestTransformersAreIdempotent(t *testing.T) {
	tr := NewIVRTransformer()

	input := map[string]interface{}{
		"id":   "ivr3",
		"name": "Menu",
		"ivr_details": []interface{}{
			map[string]interface{}{
				"actions": []interface{}{
					map[string]interface{}{"input": "1", "action": "Connect"},
				},
			},
		},
	}

	once, err := tr.Transform(input)
	require.NoError(t, err)
	twice, err := tr.Transform(once)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}
