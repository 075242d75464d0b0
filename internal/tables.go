package internal

// Currency carries the numeric ISO 4217 code the gateway expects and the
// multiplier that converts a major-unit amount into minor units.
type Currency struct {
	Code       string
	Multiplier int64
}

// currencies is loaded once and read-only afterwards.
var currencies = map[string]Currency{
	"ARS": {"032", 100},
	"AUD": {"036", 100},
	"BGN": {"975", 100},
	"BRL": {"986", 100},
	"CAD": {"124", 100},
	"CHF": {"756", 100},
	"CLP": {"152", 1},
	"COP": {"170", 100},
	"CZK": {"203", 100},
	"DKK": {"208", 100},
	"EUR": {"978", 100},
	"GBP": {"826", 100},
	"HKD": {"344", 100},
	"HUF": {"348", 100},
	"INR": {"356", 100},
	"JPY": {"392", 1},
	"MXN": {"484", 100},
	"MYR": {"458", 100},
	"NOK": {"578", 100},
	"NZD": {"554", 100},
	"PEN": {"604", 100},
	"PLN": {"985", 100},
	"RON": {"946", 100},
	"RUB": {"643", 100},
	"SEK": {"752", 100},
	"SGD": {"702", 100},
	"THB": {"764", 100},
	"TRY": {"949", 100},
	"TWD": {"901", 100},
	"USD": {"840", 100},
	"UYU": {"858", 100},
}

// LookupCurrency resolves an alphabetic currency code.
func LookupCurrency(alpha string) (Currency, bool) {
	currency, ok := currencies[alpha]
	return currency, ok
}

// languages maps ISO language codes to the numeric consumer language
// identifiers of the gateway.
var languages = map[string]string{
	"es":  "001",
	"en":  "002",
	"ca":  "003",
	"fr":  "004",
	"de":  "005",
	"nl":  "006",
	"it":  "007",
	"sv":  "008",
	"pt":  "009",
	"val": "010",
	"pl":  "011",
	"gl":  "012",
	"eu":  "013",
	"bg":  "100",
	"zh":  "156",
	"hr":  "191",
	"cs":  "203",
	"da":  "208",
	"et":  "233",
	"fi":  "246",
	"el":  "300",
	"hu":  "348",
	"ja":  "392",
	"lv":  "428",
	"lt":  "440",
	"mt":  "470",
	"ro":  "642",
	"ru":  "643",
	"sk":  "703",
	"sl":  "705",
	"tr":  "792",
	"uk":  "804",
}

// LookupLanguage resolves a language code to its numeric gateway identifier.
func LookupLanguage(code string) (string, bool) {
	language, ok := languages[code]
	return language, ok
}

// Transaction types accepted by the gateway.
const (
	TransactionAuthorization     = "0"
	TransactionPreauthorization  = "1"
	TransactionConfirmation      = "2"
	TransactionRefund            = "3"
	TransactionRecurring         = "5"
	TransactionSuccessive        = "6"
	TransactionPreauthCancel     = "9"
	TransactionDeferredAuth      = "O"
	TransactionDeferredConfirm   = "P"
	TransactionDeferredCancel    = "Q"
	TransactionAuthByReference   = "R"
	TransactionRecurringDeferred = "S"
)
