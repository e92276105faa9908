package operator

import (
	"testing"

	"github.com/hareeshbabu82ns/vyakarana/upadesha"
)

func mustUp(t *testing.T, raw string) *upadesha.Upadesha {
	t.Helper()
	u, err := upadesha.New(raw, upadesha.Options{})
	if err != nil {
		t.Fatal(err)
	}
	return u
}

// withValue builds an Upadesha whose Value() is exactly value, sidestepping
// the indicatory-letter parse — 1.3.3 hal antyam would otherwise strip a
// bare trailing consonant that isn't protected by a following it-vowel, as
// real dhātupāṭha citations always are. These tests exercise operators as
// pure functions of Value(), not the parser.
func withValue(t *testing.T, value string, samjna ...string) *upadesha.Upadesha {
	t.Helper()
	u := mustUp(t, "a")
	return u.WithLocus(upadesha.Value, value).AddSamjna(samjna...)
}

func TestGuna(t *testing.T) {
	u := withValue(t, "BU")
	out, err := Guna(u, nil)
	if err != nil {
		t.Fatal(err)
	}
	if out.Value() != "Bo" {
		t.Errorf("Value() = %q, want %q", out.Value(), "Bo")
	}
	if !out.HasSamjna("guna") {
		t.Error("guna should tag its result with the guna samjna")
	}
}

func TestGunaBlockedByRightKit(t *testing.T) {
	u := withValue(t, "BU")
	right := withValue(t, "t", "kit")
	out, err := Guna(u, right)
	if err != nil {
		t.Fatal(err)
	}
	if out.Value() != "BU" {
		t.Errorf("guna should be blocked by a kit right-context, got %q", out.Value())
	}
}

func TestDirgha(t *testing.T) {
	u := withValue(t, "i")
	out, err := Dirgha(u, nil)
	if err != nil {
		t.Fatal(err)
	}
	if out.Value() != "I" {
		t.Errorf("Value() = %q, want %q", out.Value(), "I")
	}
}

func TestDirghaNoTargetReturnsSamePointer(t *testing.T) {
	u := withValue(t, "kAr")
	out, err := Dirgha(u, nil)
	if err != nil {
		t.Fatal(err)
	}
	if out != u {
		t.Error("dirgha with no short simple vowel should return the same pointer, not a content-equal copy")
	}
}

func TestHrasva(t *testing.T) {
	u := withValue(t, "I")
	out, err := Hrasva(u, nil)
	if err != nil {
		t.Fatal(err)
	}
	if out.Value() != "i" {
		t.Errorf("Value() = %q, want %q", out.Value(), "i")
	}
}

func TestHrasvaNoTargetReturnsSamePointer(t *testing.T) {
	u := withValue(t, "kar")
	out, err := Hrasva(u, nil)
	if err != nil {
		t.Fatal(err)
	}
	if out != u {
		t.Error("hrasva with no long vowel should return the same pointer, not a content-equal copy")
	}
}

func TestSamprasarana(t *testing.T) {
	u := withValue(t, "vac")
	out, err := Samprasarana(u, nil)
	if err != nil {
		t.Fatal(err)
	}
	if out.Value() != "uc" {
		t.Errorf("Value() = %q, want %q", out.Value(), "uc")
	}
}

func TestTasyaShortString(t *testing.T) {
	u := withValue(t, "gam")
	out, err := Tasya(u, "t", false)
	if err != nil {
		t.Fatal(err)
	}
	if out.Value() != "gat" {
		t.Errorf("Value() = %q, want %q", out.Value(), "gat")
	}
}

func TestTasyaWholesaleString(t *testing.T) {
	u := withValue(t, "gam")
	out, err := Tasya(u, "annat", false)
	if err != nil {
		t.Fatal(err)
	}
	if out.Value() != "annat" {
		t.Errorf("Value() = %q, want %q", out.Value(), "annat")
	}
}

func TestTasyaMit(t *testing.T) {
	cur := withValue(t, "kar")
	other := withValue(t, "i", "mit")
	out, err := Tasya(cur, other, false)
	if err != nil {
		t.Fatal(err)
	}
	if out.Value() != "kair" {
		t.Errorf("Value() = %q, want %q", out.Value(), "kair")
	}
	if !out.HasPart(other.Raw()) {
		t.Error("a mit insertion should record the inserted upadesha's raw as a part of the host term")
	}
}

func TestTasyaKit(t *testing.T) {
	cur := withValue(t, "kar")
	other := withValue(t, "s", "kit")
	out, err := Tasya(cur, other, false)
	if err != nil {
		t.Fatal(err)
	}
	if out.Value() != "kars" {
		t.Errorf("Value() = %q, want %q", out.Value(), "kars")
	}
	if !out.HasPart(other.Raw()) {
		t.Error("a kit insertion should record the inserted upadesha's raw as a part of the host term")
	}
}

func TestTasyaWit(t *testing.T) {
	cur := withValue(t, "kar")
	other := withValue(t, "s", "wit")
	out, err := Tasya(cur, other, false)
	if err != nil {
		t.Fatal(err)
	}
	if out.Value() != "skar" {
		t.Errorf("Value() = %q, want %q", out.Value(), "skar")
	}
	if !out.HasPart(other.Raw()) {
		t.Error("a wit insertion should record the inserted upadesha's raw as a part of the host term")
	}
}

func TestTasyaNit(t *testing.T) {
	cur := withValue(t, "kar")
	other := withValue(t, "e", "Nit")
	out, err := Tasya(cur, other, false)
	if err != nil {
		t.Fatal(err)
	}
	if out.Value() != "kae" {
		t.Errorf("Value() = %q, want %q", out.Value(), "kae")
	}
}

func TestTasyaSit(t *testing.T) {
	cur := withValue(t, "kar")
	other := withValue(t, "Sap", "Sit")
	out, err := Tasya(cur, other, false)
	if err != nil {
		t.Fatal(err)
	}
	if out.Value() != "Sap" {
		t.Errorf("Value() = %q, want %q", out.Value(), "Sap")
	}
}

func TestTasyaUnclassifiableUpadesha(t *testing.T) {
	cur := withValue(t, "kar")
	other := withValue(t, "")
	if _, err := Tasya(cur, other, false); err == nil {
		t.Error("an upadesha matching no branch of the cascade should error, not panic")
	}
}

func TestTasyaAdi(t *testing.T) {
	cur := withValue(t, "gacCati")
	out, err := Tasya(cur, "a", true)
	if err != nil {
		t.Fatal(err)
	}
	if out.Value() != "aacCati" {
		t.Errorf("Value() = %q, want %q", out.Value(), "aacCati")
	}
}

func TestAlTasya(t *testing.T) {
	op, err := AlTasya("i", "a")
	if err != nil {
		t.Fatal(err)
	}
	cur := withValue(t, "iti")
	out, err := op.Func(cur, nil)
	if err != nil {
		t.Fatal(err)
	}
	if out.Value() != "ati" {
		t.Errorf("Value() = %q, want %q", out.Value(), "ati")
	}
}

func TestTi(t *testing.T) {
	op := Ti("a")
	cur := withValue(t, "karoti")
	out, err := op.Func(cur, nil)
	if err != nil {
		t.Fatal(err)
	}
	if out.Value() != "karota" {
		t.Errorf("Value() = %q, want %q", out.Value(), "karota")
	}
}

func TestUpadha(t *testing.T) {
	op := Upadha("e")
	cur := withValue(t, "kar")
	out, err := op.Func(cur, nil)
	if err != nil {
		t.Fatal(err)
	}
	if out.Value() != "ker" {
		t.Errorf("Value() = %q, want %q", out.Value(), "ker")
	}
}

func TestUpadhaNoopReturnsSamePointer(t *testing.T) {
	op := Upadha("a")
	cur := withValue(t, "kar")
	out, err := op.Func(cur, nil)
	if err != nil {
		t.Fatal(err)
	}
	if out != cur {
		t.Error("upadha replacing the penultimate letter with itself should return the same pointer, not a content-equal copy")
	}
}

func TestReplace(t *testing.T) {
	op := Replace("a", "A")
	cur := withValue(t, "gam")
	out, err := op.Func(cur, nil)
	if err != nil {
		t.Fatal(err)
	}
	if out.Value() != "gAm" {
		t.Errorf("Value() = %q, want %q", out.Value(), "gAm")
	}
}

func TestAddSamjnaOp(t *testing.T) {
	op := AddSamjna("tin")
	cur := mustUp(t, "ti")
	out, err := op.Func(cur, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !out.HasSamjna("tin") {
		t.Error("add_samjna should tag the result")
	}
}

func TestYathasamkhya(t *testing.T) {
	op, err := Yathasamkhya([]string{"tip", "sip"}, []string{"ti", "si"})
	if err != nil {
		t.Fatal(err)
	}
	cur := mustUp(t, "tip")
	out, err := op.Func(cur, nil)
	if err != nil {
		t.Fatal(err)
	}
	if out.Raw() != "ti" {
		t.Errorf("Raw() = %q, want %q", out.Raw(), "ti")
	}
}

func TestConflicts(t *testing.T) {
	if !Conflicts(CategoryDirgha, CategoryHrasva) {
		t.Error("dirgha and hrasva should conflict")
	}
	if !Conflicts(CategoryTi, CategoryTasya) {
		t.Error("ti and tasya should conflict")
	}
	if Conflicts(CategoryGuna, CategoryVrddhi) {
		t.Error("guna and vrddhi were not declared as conflicting")
	}
}
