package dispatch

import (
	"testing"

	"github.com/coregx/strmatch"
)

func arm(t *testing.T, name, pattern string) Arm {
	t.Helper()
	p, err := strmatch.Compile(pattern)
	if err != nil {
		t.Fatalf("Compile(%q) error = %v", pattern, err)
	}
	return Arm{Name: name, Pattern: p}
}

func requestSet(t *testing.T) *Set {
	t.Helper()
	return NewSet([]Arm{
		arm(t, "get", `"GET " [path]`),
		arm(t, "put", `"PUT " [path]`),
		arm(t, "delete", `"DELETE " [path]`),
		arm(t, "fallback", "[_]"),
	})
}

// TestSetMatch checks first-match dispatch over a rule set.
func TestSetMatch(t *testing.T) {
	set := requestSet(t)

	tests := []struct {
		name     string
		input    string
		wantArm  string
		wantPath string
	}{
		{"get request", "GET /index.html", "get", "/index.html"},
		{"put request", "PUT /upload", "put", "/upload"},
		{"delete request", "DELETE /tmp", "delete", "/tmp"},
		{"unknown verb falls through", "PATCH /x", "fallback", ""},
		{"empty input falls through", "", "fallback", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, ok := set.MatchString(tt.input)
			if !ok {
				t.Fatalf("Match(%q) did not match", tt.input)
			}
			if res.Name != tt.wantArm {
				t.Errorf("arm = %q, want %q", res.Name, tt.wantArm)
			}
			if tt.wantPath != "" {
				path, err := res.Captures.Slice("path")
				if err != nil {
					t.Fatalf("Slice(path) error = %v", err)
				}
				if string(path) != tt.wantPath {
					t.Errorf("path = %q, want %q", path, tt.wantPath)
				}
			}
		})
	}
}

// TestSetDeclarationOrder checks that overlapping arms resolve to the first.
func TestSetDeclarationOrder(t *testing.T) {
	set := NewSet([]Arm{
		arm(t, "specific", `"abc" [_]`),
		arm(t, "general", `"ab" [_]`),
	})

	res, ok := set.MatchString("abcdef")
	if !ok {
		t.Fatal("no match")
	}
	if res.Name != "specific" || res.Index != 0 {
		t.Errorf("got arm %q (index %d), want specific (0)", res.Name, res.Index)
	}

	res, ok = set.MatchString("abX")
	if !ok {
		t.Fatal("no match")
	}
	if res.Name != "general" {
		t.Errorf("got arm %q, want general", res.Name)
	}
}

// TestSetNoMatch checks that a set without a fallback arm can miss.
func TestSetNoMatch(t *testing.T) {
	set := NewSet([]Arm{
		arm(t, "get", `"GET " [path]`),
	})
	if _, ok := set.MatchString("POST /x"); ok {
		t.Error("Match succeeded, want miss")
	}
}

// TestSetPrefilterEquivalence checks the prefilter never changes results: a
// set of prefix-literal arms and the same arms behind synthetic no-prefix
// patterns must agree on every input.
func TestSetPrefilterEquivalence(t *testing.T) {
	// Leading wildcard defeats the prefilter, so this set always tries
	// every arm in order.
	unfiltered := NewSet([]Arm{
		arm(t, "get", `_ "ET " [path]`),
		arm(t, "put", `_ "UT " [path]`),
	})
	filtered := NewSet([]Arm{
		arm(t, "get", `"GET " [path]`),
		arm(t, "put", `"PUT " [path]`),
	})
	if filtered.matcher == nil {
		t.Fatal("filtered set built no prefilter")
	}

	inputs := []string{"GET /a", "PUT /b", "POST /c", "", "G", "GET ", "xGET /a"}
	for _, input := range inputs {
		fRes, fOK := filtered.MatchString(input)
		uRes, uOK := unfiltered.MatchString(input)
		if fOK != uOK {
			t.Errorf("input %q: filtered ok = %v, unfiltered ok = %v", input, fOK, uOK)
			continue
		}
		if fOK && fRes.Name != uRes.Name {
			t.Errorf("input %q: filtered arm %q, unfiltered arm %q", input, fRes.Name, uRes.Name)
		}
	}
}

// TestSetSharedPrefix checks arms sharing one leading literal both stay
// reachable through the shared keyword.
func TestSetSharedPrefix(t *testing.T) {
	set := NewSet([]Arm{
		arm(t, "short", `"ab" _`),
		arm(t, "long", `"ab" _x3`),
	})

	res, ok := set.MatchString("abX")
	if !ok || res.Name != "short" {
		t.Fatalf("abX: got %v %v, want short", res, ok)
	}
	res, ok = set.MatchString("abXYZ")
	if !ok || res.Name != "long" {
		t.Fatalf("abXYZ: got %v %v, want long", res, ok)
	}
}
