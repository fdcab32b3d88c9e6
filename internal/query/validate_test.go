package query

import (
	"reflect"
	"testing"

	"ftcscope/internal/catalog"
)

func TestValidateReportsBlankRequiredFields(t *testing.T) {
	v := view(t, "event-rankings")
	missing := Validate(v, catalog.Values{"season": "2025", "eventCode": "  "})
	if !reflect.DeepEqual(missing, []string{"eventCode"}) {
		t.Fatalf("missing: %v", missing)
	}
}

func TestValidatePassesWhenAllPresent(t *testing.T) {
	v := view(t, "event-rankings")
	if missing := Validate(v, catalog.Values{"season": "2025", "eventCode": "USNCCOQ"}); len(missing) != 0 {
		t.Fatalf("missing: %v", missing)
	}
}

func TestValidateKeepsDeclaredOrder(t *testing.T) {
	v := view(t, "team-details")
	missing := Validate(v, catalog.Values{})
	if !reflect.DeepEqual(missing, []string{"season", "teamId"}) {
		t.Fatalf("missing: %v", missing)
	}
}

func TestMissingFieldsErrorUsesLabels(t *testing.T) {
	err := &MissingFieldsError{Fields: []string{"eventCode", "nope"}}
	want := "missing required fields: Event Code, nope"
	if err.Error() != want {
		t.Fatalf("got %q", err.Error())
	}
}
