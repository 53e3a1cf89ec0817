package matcher

import (
	"reflect"
	"testing"
)

func TestRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{name: "identical", a: "heat", b: "heat", want: 100},
		{name: "both empty", a: "", b: "", want: 100},
		{name: "one empty", a: "heat", b: "", want: 0},
		{name: "classic distance", a: "kitten", b: "sitting", want: 57},
		{name: "one insertion", a: "aliens", b: "alien", want: 83},
		{name: "nothing shared", a: "zzz", b: "heat", want: 0},
		{name: "unicode runes", a: "amélie", b: "amelie", want: 83},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Ratio(tt.a, tt.b); got != tt.want {
				t.Errorf("Ratio(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestPartialRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{name: "substring", a: "dark", b: "the dark knight", want: 100},
		{name: "order independent", a: "the dark knight", b: "dark", want: 100},
		{name: "one typo in window", a: "godfathr", b: "the godfather", want: 88},
		{name: "empty", a: "", b: "heat", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PartialRatio(tt.a, tt.b); got != tt.want {
				t.Errorf("PartialRatio(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestTokenRatios(t *testing.T) {
	if got := TokenSortRatio("knight dark the", "the dark knight"); got != 100 {
		t.Errorf("TokenSortRatio() = %d, want 100", got)
	}
	if got := TokenSetRatio("godfather", "the godfather"); got != 100 {
		t.Errorf("TokenSetRatio() = %d, want 100", got)
	}
	if got := TokenSetRatio("", "the godfather"); got != 0 {
		t.Errorf("TokenSetRatio() with empty side = %d, want 0", got)
	}
}

func TestPartialTokenRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{name: "shared word", a: "matrix", b: "the matrix reloaded", want: 100},
		{name: "no shared word", a: "godfathr", b: "the godfather", want: 88},
		{name: "empty", a: "", b: "heat", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PartialTokenRatio(tt.a, tt.b); got != tt.want {
				t.Errorf("PartialTokenRatio(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestWeightedRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{name: "exact", a: "heat", b: "heat", want: 100},
		{name: "empty query", a: "", b: "heat", want: 0},
		{name: "missing article", a: "godfather", b: "the godfather", want: 95},
		{name: "word inside longer title", a: "heat", b: "the heat", want: 90},
		{name: "single letter in short title", a: "a", b: "heat", want: 90},
		{name: "single letter in long title", a: "a", b: "casablanca", want: 60},
		{name: "single letter in very long title", a: "a", b: "the shawshank redemption", want: 60},
		{name: "typo against longer title", a: "godfathr", b: "the godfather", want: 79},
		{name: "plural", a: "aliens", b: "alien", want: 83},
		{name: "nothing shared", a: "zzz", b: "heat", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeightedRatio(tt.a, tt.b); got != tt.want {
				t.Errorf("WeightedRatio(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestExtract(t *testing.T) {
	choices := []string{"Heat", "The Heat", "Alien", "Aliens", "Vertigo"}

	t.Run("exact match ranks first", func(t *testing.T) {
		got := Extract("  HEAT ", choices, &Options{Limit: 5, Cutoff: 75, Normalize: true})
		if len(got) == 0 || got[0].Choice != "Heat" || got[0].Score != 100 {
			t.Fatalf("Extract() = %+v, want Heat first with score 100", got)
		}
		if len(got) != 2 || got[1].Choice != "The Heat" {
			t.Errorf("Extract() = %+v, want [Heat The Heat]", got)
		}
	})

	t.Run("ties ordered by choice", func(t *testing.T) {
		got := Extract("alien", []string{"Aliens", "Alienz"}, &Options{Cutoff: 75, Normalize: true})
		want := []Result{{Choice: "Aliens", Score: 83}, {Choice: "Alienz", Score: 83}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Extract() = %+v, want %+v", got, want)
		}
	})

	t.Run("limit", func(t *testing.T) {
		got := Extract("a", []string{"a", "ab", "abc", "abcd"}, &Options{Limit: 2, Normalize: true})
		if len(got) != 2 {
			t.Errorf("Extract() returned %d results, want 2", len(got))
		}
	})

	t.Run("no shared characters", func(t *testing.T) {
		got := Extract("qqq", choices, nil)
		if len(got) != 0 {
			t.Errorf("Extract() = %+v, want no results", got)
		}
	})

	t.Run("default options", func(t *testing.T) {
		got := Extract("vertigo", choices)
		if len(got) == 0 || got[0].Choice != "Vertigo" {
			t.Errorf("Extract() = %+v, want Vertigo first", got)
		}
	})
}

func TestNormalize(t *testing.T) {
	if got := Normalize("  The Thing \t"); got != "the thing" {
		t.Errorf("Normalize() = %q, want %q", got, "the thing")
	}
}
