package cfg

import (
	"testing"

	"github.com/flint-project/flint/binfmt/bini"
)

func TestFromBINI(t *testing.T) {
	f := &bini.File{
		Version: 1,
		Sections: []bini.Section{
			{
				Name: "good",
				Entries: []bini.Entry{
					{
						Name: "price",
						Values: []bini.Value{
							{Kind: bini.KindInt, Int: 42},
							{Kind: bini.KindString, Str: "credits"},
						},
					},
				},
			},
		},
	}

	sections := fromBINI(f)
	if len(sections) != 1 || sections[0].Name != "good" {
		t.Fatalf("unexpected sections: %+v", sections)
	}
	values := sections[0].Entries[0].Values
	if len(values) != 2 {
		t.Fatalf("expected 2 values, got %d", len(values))
	}
	if values[0].Kind != KindInt || values[0].Int != 42 {
		t.Errorf("expected Int(42), got %+v", values[0])
	}
	if values[1].Kind != KindString || values[1].Str != "credits" {
		t.Errorf("expected String(credits), got %+v", values[1])
	}
}
