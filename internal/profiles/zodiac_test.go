package profiles

import "testing"

func TestSunSignBoundaries(t *testing.T) {
	cases := []struct {
		month, day int
		want       string
	}{
		{1, 19, "capricorn"},
		{1, 20, "aquarius"},
		{3, 20, "pisces"},
		{3, 21, "aries"},
		{7, 22, "cancer"},
		{7, 23, "leo"},
		{8, 23, "virgo"},
		{11, 22, "sagittarius"},
		{12, 21, "sagittarius"},
		{12, 22, "capricorn"},
	}
	for _, tc := range cases {
		got, ok := SunSign(tc.month, tc.day)
		if !ok || got != tc.want {
			t.Fatalf("SunSign(%d, %d) = (%q, %v), want %q", tc.month, tc.day, got, ok, tc.want)
		}
	}
}

func TestSunSignRejectsOutOfRange(t *testing.T) {
	for _, tc := range [][2]int{{0, 10}, {13, 10}, {5, 0}, {5, 32}} {
		if _, ok := SunSign(tc[0], tc[1]); ok {
			t.Fatalf("SunSign(%d, %d) should be rejected", tc[0], tc[1])
		}
	}
}

func TestChineseZodiacCycle(t *testing.T) {
	cases := []struct {
		year    int
		animal  string
		element string
	}{
		{1900, "rat", "metal"},
		{1990, "horse", "metal"},
		{2000, "dragon", "metal"},
		{1986, "tiger", "fire"},
		{2024, "dragon", "wood"},
	}
	for _, tc := range cases {
		got, ok := ChineseZodiac(tc.year)
		if !ok {
			t.Fatalf("ChineseZodiac(%d) rejected", tc.year)
		}
		if got.Animal != tc.animal || got.Element != tc.element || got.Year != tc.year {
			t.Fatalf("ChineseZodiac(%d) = %+v, want %s/%s", tc.year, got, tc.animal, tc.element)
		}
	}
}

func TestChineseZodiacRange(t *testing.T) {
	if _, ok := ChineseZodiac(1899); ok {
		t.Fatalf("1899 should be out of range")
	}
	if _, ok := ChineseZodiac(2101); ok {
		t.Fatalf("2101 should be out of range")
	}
}
