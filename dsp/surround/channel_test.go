package surround

import "testing"

func TestChannelOrder(t *testing.T) {
	want := []string{"L", "R", "C", "LFE", "LS", "RS"}
	for i, name := range want {
		if got := Channel(i).String(); got != name {
			t.Errorf("Channel(%d) = %q, want %q", i, got, name)
		}
	}
}

func TestMainsExcludeLFE(t *testing.T) {
	for _, ch := range Mains {
		if ch == LFE {
			t.Fatal("Mains must not contain LFE")
		}
		if !ch.IsMain() {
			t.Errorf("%v.IsMain() = false", ch)
		}
	}
	if LFE.IsMain() {
		t.Error("LFE.IsMain() = true")
	}
	if Mains != [NumMains]Channel{L, R, C, LS, RS} {
		t.Errorf("Mains = %v", Mains)
	}
}

func TestParseChannel(t *testing.T) {
	tests := []struct {
		in      string
		want    Channel
		wantErr bool
	}{
		{"L", L, false},
		{"lfe", LFE, false},
		{"Rs", RS, false},
		{"X", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseChannel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseChannel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseChannel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestInvalidChannelString(t *testing.T) {
	if got := Channel(9).String(); got != "Channel(9)" {
		t.Fatalf("String() = %q", got)
	}
	if Channel(-1).Valid() {
		t.Fatal("Channel(-1) should be invalid")
	}
}
