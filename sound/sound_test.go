package sound

import "testing"

func TestPratyaharaAc(t *testing.T) {
	got, err := Pratyahara("ac")
	if err != nil {
		t.Fatal(err)
	}
	want := map[Sound]bool{'a': true, 'A': true, 'i': true, 'I': true, 'u': true, 'U': true,
		'f': true, 'F': true, 'x': true, 'X': true, 'e': true, 'o': true, 'E': true, 'O': true}
	if len(got) != len(want) {
		t.Fatalf("ac = %v, want %d members", got, len(want))
	}
	for _, s := range got {
		if !want[s] {
			t.Errorf("unexpected member of ac: %q", rune(s))
		}
	}
}

func TestPratyaharaHal(t *testing.T) {
	got, err := Pratyahara("hal")
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range got {
		if IsVowel(s) {
			t.Errorf("hal contains a vowel: %q", rune(s))
		}
	}
	if !InGroup("hal", 'k') || !InGroup("hal", 'h') {
		t.Error("hal should contain both k and the closing h")
	}
}

func TestPratyaharaIk(t *testing.T) {
	for _, s := range []Sound{'i', 'I', 'u', 'U', 'f', 'F', 'x', 'X'} {
		if !InGroup("ik", s) {
			t.Errorf("ik should contain %q", rune(s))
		}
	}
	if InGroup("ik", 'a') {
		t.Error("ik should not contain a")
	}
}

func TestPratyaharaYan(t *testing.T) {
	for _, s := range []Sound{'y', 'v', 'r', 'l'} {
		if !InGroup("yaR", s) {
			t.Errorf("yaR should contain %q", rune(s))
		}
	}
}

func TestSavarna(t *testing.T) {
	if !Savarna('a', 'A') {
		t.Error("a and A should be savarna")
	}
	if Savarna('a', 'i') {
		t.Error("a and i should not be savarna")
	}
	if Savarna('k', 'N') {
		t.Error("k and N differ in nasality, not savarna")
	}
}

func TestClosest(t *testing.T) {
	group, err := Pratyahara("ik")
	if err != nil {
		t.Fatal(err)
	}
	got, ok := Closest('a', group)
	if !ok {
		t.Fatal("closest should be total over a nonempty group")
	}
	if !IsVowel(got) {
		t.Errorf("closest(a, ik) = %q, want a vowel", rune(got))
	}
}

func TestClosestEmptyGroup(t *testing.T) {
	if _, ok := Closest('a', nil); ok {
		t.Error("closest over an empty group should report false")
	}
}
