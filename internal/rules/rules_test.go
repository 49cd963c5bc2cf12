package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountryToISO(t *testing.T) {
	assert.Equal(t, "US", CountryToISO("United States"))
	assert.Equal(t, "US", CountryToISO("USA"))
	assert.Equal(t, "GB", CountryToISO("United Kingdom"))
	assert.Equal(t, "DE", CountryToISO("Germany"))
	// unknown names pass through, including already-ISO values
	assert.Equal(t, "NL", CountryToISO("NL"))
	assert.Equal(t, "Atlantis", CountryToISO("Atlantis"))
}

func TestTimezoneToIANA(t *testing.T) {
	cases := map[string]string{
		"58":                    "America/New_York",
		"61":                    "America/Los_Angeles",
		"64":                    "Pacific/Honolulu",
		"Eastern Time":          "America/New_York",
		"Hawaii Time":           "Pacific/Honolulu",
		"Pacific Standard Time": "America/Los_Angeles",
		"EST":                   "America/New_York",
		"GMT":                   "UTC",
		"America/Chicago":       "America/Chicago",
		"Europe/Berlin":         "Europe/Berlin",
		"UTC":                   "UTC",
		"US Eastern (whatever)": "America/New_York",
		"mountain something":    "America/Denver",
		"Zeta Reticuli Time":    "America/Los_Angeles",
		"":                      "America/Los_Angeles",
	}
	for input, want := range cases {
		assert.Equal(t, want, TimezoneToIANA(input), "input %q", input)
	}
}

func TestMapUserType(t *testing.T) {
	assert.Equal(t, 1, MapUserType("User"))
	assert.Equal(t, 2, MapUserType("DigitalUser"))
	assert.Equal(t, 1, MapUserType("FlexibleUser"))
	assert.Equal(t, 99, MapUserType("FaxUser"))
	assert.Equal(t, 99, MapUserType("SomethingNew"))
	assert.Equal(t, 99, MapUserType(""))
}

func TestMapIVRKey(t *testing.T) {
	assert.Equal(t, "*", MapIVRKey("Star"))
	assert.Equal(t, "#", MapIVRKey("Hash"))
	assert.Equal(t, "timeout", MapIVRKey("NoInput"))
	assert.Equal(t, "1", MapIVRKey("1"))
	assert.Equal(t, "9", MapIVRKey("9"))
}

func TestMapIVRActionPerTarget(t *testing.T) {
	assert.Equal(t, 2, MapIVRAction("Connect", "user"))
	assert.Equal(t, 7, MapIVRAction("Connect", "call_queue"))
	assert.Equal(t, 8, MapIVRAction("Connect", "auto_receptionist"))

	assert.Equal(t, 200, MapIVRAction("Voicemail", "user"))
	assert.Equal(t, 400, MapIVRAction("Voicemail", "call_queue"))
	assert.Equal(t, 300, MapIVRAction("Voicemail", "auto_receptionist"))

	assert.Equal(t, 10, MapIVRAction("Transfer", "user"))
	assert.Equal(t, 4, MapIVRAction("DialByName", "call_queue"))
	assert.Equal(t, 2, MapIVRAction("ConnectToOperator", "user"))
}

func TestMapIVRActionUniversal(t *testing.T) {
	for _, target := range []string{"user", "call_queue", "auto_receptionist", "bogus"} {
		assert.Equal(t, 21, MapIVRAction("Repeat", target))
		assert.Equal(t, 22, MapIVRAction("ReturnToRoot", target))
		assert.Equal(t, 22, MapIVRAction("ReturnToTopLevelMenu", target))
		assert.Equal(t, 23, MapIVRAction("ReturnToPrevious", target))
		assert.Equal(t, -1, MapIVRAction("Disconnect", target))
		assert.Equal(t, -1, MapIVRAction("DoNothing", target))
	}
	assert.Equal(t, -1, MapIVRAction("Teleport", "user"))
}

func TestActionNeedsTarget(t *testing.T) {
	for _, code := range []int{-1, 21, 22, 23} {
		assert.False(t, ActionNeedsTarget(code), "code %d", code)
	}
	for _, code := range []int{2, 4, 7, 8, 10, 200, 300, 400} {
		assert.True(t, ActionNeedsTarget(code), "code %d", code)
	}
}

func TestWeeklyRangesToCustomHours(t *testing.T) {
	weekly := map[string]interface{}{
		"monday": []interface{}{
			map[string]interface{}{"from": "08:00", "to": "17:00"},
		},
		"Friday": []interface{}{
			map[string]interface{}{"from": "09:00", "to": "12:00"},
			map[string]interface{}{"from": "13:00", "to": "17:00"},
		},
		"blursday": []interface{}{
			map[string]interface{}{"from": "00:00", "to": "23:59"},
		},
	}

	settings := WeeklyRangesToCustomHours(weekly)
	require.Len(t, settings, 3)

	byWeekday := map[int]int{}
	for _, s := range settings {
		assert.Equal(t, 2, s["type"])
		byWeekday[s["weekday"].(int)]++
	}
	assert.Equal(t, 1, byWeekday[2]) // monday
	assert.Equal(t, 2, byWeekday[6]) // friday
}

func TestWeekdayNumber(t *testing.T) {
	n, ok := WeekdayNumber("Sunday")
	require.True(t, ok)
	assert.Equal(t, 1, n)

	n, ok = WeekdayNumber("saturday")
	require.True(t, ok)
	assert.Equal(t, 7, n)

	_, ok = WeekdayNumber("someday")
	assert.False(t, ok)
}

func TestDetectExtensionType(t *testing.T) {
	assert.Equal(t, "call_queue", DetectExtensionType("Sales Queue"))
	assert.Equal(t, "call_queue", DetectExtensionType("Customer Support"))
	assert.Equal(t, "auto_receptionist", DetectExtensionType("Main Menu"))
	assert.Equal(t, "auto_receptionist", DetectExtensionType("IVR Greeting"))
	assert.Equal(t, "user", DetectExtensionType("Jane Doe"))
}

func TestSiteCode(t *testing.T) {
	assert.Equal(t, "MAIN_OFFICE", SiteCode("Main Office"))
	assert.Equal(t, "EAST_WEST", SiteCode("East-West"))
	assert.Equal(t, "HQ_2", SiteCode("HQ #2"))
	assert.LessOrEqual(t, len(SiteCode("An Extremely Long Site Name That Keeps Going")), 20)
}

func TestAutoReceptionistName(t *testing.T) {
	assert.Equal(t, "Site (NIU)", AutoReceptionistName("Site"))
	assert.Equal(t, "Unknown (NIU)", AutoReceptionistName("  "))

	long := AutoReceptionistName("A Site Name That Is Definitely Too Long For Zoom")
	assert.LessOrEqual(t, len(long), 30)
	assert.True(t, len(long) > len(" (NIU)"))
	assert.Contains(t, long, " (NIU)")
}

func TestNormalizeAddressField(t *testing.T) {
	assert.Equal(t, "123 Main ST", NormalizeAddressField("123 main st"))
	assert.Equal(t, "PO Box 42", NormalizeAddressField("po box 42"))
	assert.Equal(t, "500 Oak AVE NE", NormalizeAddressField("500 OAK AVE NE"))
	assert.Equal(t, "", NormalizeAddressField(""))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Ada Lovelace", DisplayName("Ada", "Lovelace"))
	assert.Equal(t, "Ada", DisplayName("Ada", ""))
	assert.Equal(t, "Lovelace", DisplayName("", "Lovelace"))
	assert.Equal(t, "", DisplayName("", ""))
}

func TestFormatPhoneNumbers(t *testing.T) {
	phones := []interface{}{
		map[string]interface{}{"type": "work", "number": "+15550100"},
		map[string]interface{}{"type": "Direct", "number": "+15550101"},
		map[string]interface{}{"type": "mobile", "number": "+15550102"},
		map[string]interface{}{"type": "carrier-pigeon", "number": "+15550103"},
		map[string]interface{}{"type": "work"},
		"garbage",
	}

	formatted := FormatPhoneNumbers(phones)
	require.Len(t, formatted, 4)
	assert.Equal(t, map[string]interface{}{"number": "+15550100", "type": "office"}, formatted[0])
	assert.Equal(t, "office", formatted[1]["type"])
	assert.Equal(t, "mobile", formatted[2]["type"])
	assert.Equal(t, "office", formatted[3]["type"])
}

func TestDeterministicExtensionStableAndBanded(t *testing.T) {
	first := DeterministicExtension("office-7", "cq")
	assert.Equal(t, first, DeterministicExtension("office-7", "cq"))

	assertBand := func(ext string, lo, hi int) {
		require.NotEmpty(t, ext)
		n := 0
		for _, c := range ext {
			n = n*10 + int(c-'0')
		}
		assert.GreaterOrEqual(t, n, lo)
		assert.LessOrEqual(t, n, hi)
	}

	assertBand(DeterministicExtension("office-7", "cq"), 200, 299)
	assertBand(DeterministicExtension("office-7", "ar"), 300, 399)
	assertBand(DeterministicExtension("office-7", "user"), 400, 999)

	// same id, different class never collides across bands
	assert.NotEqual(t, DeterministicExtension("x", "cq"), DeterministicExtension("x", "ar"))
}
