package event

import "testing"

func TestClassifySource(t *testing.T) {
	cases := []struct {
		in   string
		want SourceKind
	}{
		{"HUMAN", KindHuman},
		{"AI_AGENT", KindAIAgent},
		{"AI_AGENT:crimson", KindAIAgent},
		{"AI_AGENTX", KindUnknown},
		{"", KindUnknown},
		{"robot", KindUnknown},
	}
	for _, c := range cases {
		if got := ClassifySource(c.in); got != c.want {
			t.Fatalf("classify %q: got %v want %v", c.in, got, c.want)
		}
	}
}

func TestValidColor(t *testing.T) {
	valid := []string{"#000000", "#FFFFFF", "#a1B2c3"}
	for _, s := range valid {
		if !ValidColor(s) {
			t.Fatalf("expected valid: %s", s)
		}
	}
	invalid := []string{"", "FFFFFF", "#FFF", "#GGGGGG", "#1234567", "#12345"}
	for _, s := range invalid {
		if ValidColor(s) {
			t.Fatalf("expected invalid: %s", s)
		}
	}
}

func TestNormalizeColor(t *testing.T) {
	if got := NormalizeColor("#a1b2c3"); got != "#A1B2C3" {
		t.Fatalf("normalize: %s", got)
	}
}
