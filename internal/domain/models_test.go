package domain

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestGenderIsValid(t *testing.T) {
	cases := []struct {
		g    Gender
		want bool
	}{
		{GenderMale, true},
		{GenderFemale, true},
		{Gender(""), false},
		{Gender("MALE"), false},
		{Gender("other"), false},
	}
	for _, tc := range cases {
		if got := tc.g.IsValid(); got != tc.want {
			t.Errorf("IsValid(%q) = %v, want %v", tc.g, got, tc.want)
		}
	}
}

func TestGenderOpposite(t *testing.T) {
	if GenderMale.Opposite() != GenderFemale {
		t.Fatalf("male should target female")
	}
	if GenderFemale.Opposite() != GenderMale {
		t.Fatalf("female should target male")
	}
}

func TestTableNames(t *testing.T) {
	if (Profile{}).TableName() != "profiles" {
		t.Fatalf("unexpected profile table name")
	}
	if (MatchLog{}).TableName() != "match_logs" {
		t.Fatalf("unexpected match log table name")
	}
}

func TestProfileJSON_UsesContactHandleKey(t *testing.T) {
	p := Profile{ID: "id1", Nickname: "A", Age: 25, Gender: GenderMale, Contact: "wx_a"}
	b, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(b), `"contact_handle":"wx_a"`) {
		t.Fatalf("expected contact_handle key, got %s", b)
	}
}

func TestMatchLogJSON_HidesIPHash(t *testing.T) {
	h := "abc"
	b, err := json.Marshal(MatchLog{ID: 1, UserID: "u", MatchedUserID: "m", IPHash: &h})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(b), "abc") || strings.Contains(string(b), "ip_hash") {
		t.Fatalf("ip hash must not be serialized: %s", b)
	}
}
