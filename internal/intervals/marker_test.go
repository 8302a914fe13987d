package intervals

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   Marker
		wantOK bool
	}{
		{name: "start lower", text: "Ent(12) dis: pump tripped", want: MarkerStart, wantOK: true},
		{name: "start upper", text: "ENT(12) DIS: PUMP", want: MarkerStart, wantOK: true},
		{name: "stop mixed case", text: "Ent(12) Res: restored", want: MarkerStop, wantOK: true},
		{name: "both tokens stop wins", text: "dis: then res: same line", want: MarkerStop, wantOK: true},
		{name: "both tokens reversed order", text: "res: then dis:", want: MarkerStop, wantOK: true},
		{name: "token without colon", text: "dis pump", wantOK: false},
		{name: "no token", text: "routine inspection", wantOK: false},
		{name: "empty", text: "", wantOK: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Classify(tc.text)
			if ok != tc.wantOK {
				t.Fatalf("Classify(%q) ok = %v, want %v", tc.text, ok, tc.wantOK)
			}
			if ok && got != tc.want {
				t.Fatalf("Classify(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestMarkerString(t *testing.T) {
	if MarkerStart.String() != "start" || MarkerStop.String() != "stop" {
		t.Fatalf("unexpected marker names %q %q", MarkerStart, MarkerStop)
	}
	if Marker(0).String() != "unknown" {
		t.Fatalf("Marker(0).String() = %q, want unknown", Marker(0).String())
	}
}
