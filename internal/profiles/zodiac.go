package profiles

// Western sun-sign boundaries, keyed by month. A day on or after the start
// day belongs to the first sign, otherwise the preceding one.
var sunSignTable = [13]struct {
	startDay int
	sign     string
	previous string
}{
	{},
	{20, "aquarius", "capricorn"},    // January
	{19, "pisces", "aquarius"},       // February
	{21, "aries", "pisces"},          // March
	{20, "taurus", "aries"},          // April
	{21, "gemini", "taurus"},         // May
	{21, "cancer", "gemini"},         // June
	{23, "leo", "cancer"},            // July
	{23, "virgo", "leo"},             // August
	{23, "libra", "virgo"},           // September
	{23, "scorpio", "libra"},         // October
	{22, "sagittarius", "scorpio"},   // November
	{22, "capricorn", "sagittarius"}, // December
}

var chineseAnimals = [12]string{
	"rat", "ox", "tiger", "rabbit", "dragon", "snake",
	"horse", "goat", "monkey", "rooster", "dog", "pig",
}

var chineseElements = [5]string{"metal", "water", "wood", "fire", "earth"}

// SunSign returns the western zodiac sun sign for a month (1-12) and day.
func SunSign(month, day int) (string, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return "", false
	}
	entry := sunSignTable[month]
	if day >= entry.startDay {
		return entry.sign, true
	}
	return entry.previous, true
}

// ChineseZodiac derives the animal and element for a birth year. The cycle
// is anchored at 1900 (rat, metal); elements repeat in pairs of years.
func ChineseZodiac(year int) (ChineseZodiacData, bool) {
	if year < 1900 || year > 2100 {
		return ChineseZodiacData{}, false
	}
	offset := year - 1900
	return ChineseZodiacData{
		Animal:  chineseAnimals[offset%12],
		Element: chineseElements[(offset%10)/2],
		Year:    year,
	}, true
}
