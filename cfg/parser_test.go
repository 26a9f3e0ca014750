package cfg

import "testing"

// TestParseScenario2 covers spec.md §8 scenario 2:
// nickname = li01, foo, 3.5
// -> Entry("nickname", [String("li01"), String("foo"), Float(3.5)])
func TestParseScenario2(t *testing.T) {
	src := "[Object]\nnickname = li01, foo, 3.5\n"
	sections, diags := ParseText([]byte(src))
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if len(sections) != 1 || sections[0].Name != "object" {
		t.Fatalf("unexpected sections: %+v", sections)
	}
	entries := sections[0].Entries
	if len(entries) != 1 || entries[0].Name != "nickname" {
		t.Fatalf("unexpected entries: %+v", entries)
	}
	values := entries[0].Values
	if len(values) != 3 {
		t.Fatalf("expected 3 values, got %d", len(values))
	}
	if values[0].Kind != KindString || values[0].Str != "li01" {
		t.Errorf("value 0: expected String(li01), got %+v", values[0])
	}
	if values[1].Kind != KindString || values[1].Str != "foo" {
		t.Errorf("value 1: expected String(foo), got %+v", values[1])
	}
	if values[2].Kind != KindFloat || values[2].Float != 3.5 {
		t.Errorf("value 2: expected Float(3.5), got %+v", values[2])
	}
}

func TestParseCommentsAndBlankLines(t *testing.T) {
	src := "; a leading comment\n\n[Good]\nprice = 42 ; inline comment\n\n"
	sections, diags := ParseText([]byte(src))
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if len(sections) != 1 || len(sections[0].Entries) != 1 {
		t.Fatalf("unexpected sections: %+v", sections)
	}
	v := sections[0].Entries[0].Values[0]
	if v.Kind != KindInt || v.Int != 42 {
		t.Errorf("expected Int(42), got %+v", v)
	}
}

func TestParseCRLF(t *testing.T) {
	src := "[Good]\r\nprice = 42\r\n"
	sections, diags := ParseText([]byte(src))
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if len(sections) != 1 || sections[0].Entries[0].Name != "price" {
		t.Fatalf("unexpected sections: %+v", sections)
	}
}

func TestParseBOM(t *testing.T) {
	src := append([]byte{0xEF, 0xBB, 0xBF}, []byte("[Good]\nprice = 1\n")...)
	sections, diags := ParseText(src)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if len(sections) != 1 || sections[0].Name != "good" {
		t.Fatalf("expected BOM to be stripped, got sections: %+v", sections)
	}
}

func TestParseBoolLiterals(t *testing.T) {
	src := "[Good]\nvolatile = TRUE, False\n"
	sections, _ := ParseText([]byte(src))
	values := sections[0].Entries[0].Values
	if values[0].Kind != KindBool || values[0].Bool != true {
		t.Errorf("expected Bool(true), got %+v", values[0])
	}
	if values[1].Kind != KindBool || values[1].Bool != false {
		t.Errorf("expected Bool(false), got %+v", values[1])
	}
}

func TestParseMalformedLineSkipped(t *testing.T) {
	src := "[Good]\nthis line has no equals sign\nprice = 1\n"
	sections, diags := ParseText([]byte(src))
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d: %v", len(diags), diags)
	}
	if len(sections[0].Entries) != 1 {
		t.Fatalf("expected the malformed line to be skipped, not abort the file")
	}
}

func TestParseEntryOutsideSection(t *testing.T) {
	src := "price = 1\n"
	sections, diags := ParseText([]byte(src))
	if len(sections) != 0 {
		t.Fatalf("expected no sections, got %+v", sections)
	}
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diags))
	}
}

func TestParseIdentifiersLowercased(t *testing.T) {
	src := "[GOOD]\nNICKNAME = Foo\n"
	sections, _ := ParseText([]byte(src))
	if sections[0].Name != "good" {
		t.Errorf("expected section name lowercased, got %q", sections[0].Name)
	}
	if sections[0].Entries[0].Name != "nickname" {
		t.Errorf("expected entry name lowercased, got %q", sections[0].Entries[0].Name)
	}
}

func TestLoadDispatchesOnMagic(t *testing.T) {
	sections, diags, err := Load([]byte("[Good]\nprice = 1\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if len(sections) != 1 {
		t.Fatalf("unexpected sections: %+v", sections)
	}
}
