package changes_test

import (
	"reflect"
	"testing"

	"github.com/keshon/jjhunk/internal/changes"
)

func TestNormalizePatterns(t *testing.T) {
	got := changes.NormalizePatterns([]string{"a/**,b/**", " c ", "", " , "})
	want := []string{"a/**", "b/**", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizePatterns = %v, want %v", got, want)
	}
	if got := changes.NormalizePatterns(nil); got != nil {
		t.Errorf("nil input = %v", got)
	}
}

func TestIncluded(t *testing.T) {
	cases := []struct {
		name    string
		paths   []string
		include []string
		exclude []string
		want    bool
	}{
		{"no patterns", []string{"src/a.go"}, nil, nil, true},
		{"include match", []string{"src/a.go"}, []string{"src/**"}, nil, true},
		{"include miss", []string{"docs/x.md"}, []string{"src/**"}, nil, false},
		{"exclude match", []string{"src/a_test.go"}, nil, []string{"**/*_test.go"}, false},
		{"exclude miss", []string{"src/a.go"}, nil, []string{"**/*_test.go"}, true},
		{"include then exclude", []string{"src/a_test.go"}, []string{"src/**"}, []string{"**/*_test.go"}, false},
		{"dot prefix", []string{"src/a.go"}, []string{"./src/**"}, nil, true},
		{"rename matches either side", []string{"old/name.go", "new/name.go"}, []string{"new/**"}, nil, true},
		{"rename excluded by either side", []string{"old/name.go", "new/name.go"}, nil, []string{"old/**"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := changes.Included(tc.paths, tc.include, tc.exclude); got != tc.want {
				t.Errorf("Included(%v, %v, %v) = %v, want %v", tc.paths, tc.include, tc.exclude, got, tc.want)
			}
		})
	}
}
