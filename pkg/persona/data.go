package persona

// Static tables for persona generation. Everything here is fabricated but
// format-plausible; bank handle suffixes and routing prefixes line up with
// the extraction lexicon so the decoy's own details parse as valid.

type cityProfile struct {
	Name  string
	State string
}

type bankProfile struct {
	Name          string
	RoutingPrefix string
	HandleSuffix  string
	AccountLen    int
	CardPrefix    string
}

var femaleFirstNames = []string{
	"Kamala", "Savitri", "Sushila", "Shanti", "Radha", "Lakshmi", "Parvati",
	"Saraswati", "Meena", "Usha", "Prabha", "Nirmala", "Kaushalya", "Vimla",
}

var maleFirstNames = []string{
	"Ramesh", "Suresh", "Mahesh", "Rajendra", "Harish", "Om Prakash",
	"Satish", "Dinesh", "Mohan", "Gopal",
}

var surnames = []string{
	"Sharma", "Verma", "Gupta", "Agarwal", "Mishra", "Tiwari", "Srivastava",
	"Joshi", "Pandey", "Saxena",
}

var cities = []cityProfile{
	{"Lucknow", "Uttar Pradesh"},
	{"Jaipur", "Rajasthan"},
	{"Bhopal", "Madhya Pradesh"},
	{"Nagpur", "Maharashtra"},
	{"Patna", "Bihar"},
	{"Indore", "Madhya Pradesh"},
	{"Kanpur", "Uttar Pradesh"},
	{"Varanasi", "Uttar Pradesh"},
}

var colonies = []string{
	"Gandhi Nagar", "Nehru Colony", "Shastri Nagar", "Ram Nagar", "Civil Lines",
}

var professions = []string{
	"school teacher", "government clerk", "bank clerk", "post office employee",
	"nurse", "homemaker",
}

var pensions = []int{12000, 15000, 18000, 21000, 25000}

var familySons = []string{
	"works in software company in Bangalore, calls every Sunday",
	"bank employee in Mumbai, very busy",
	"settled in Dubai, sends money sometimes",
}

var familyDaughters = []string{
	"married, lives in Delhi with two children",
	"doctor in Chennai, very proud of her",
	"lives nearby, visits on weekends",
}

var speechPatterns = []string{
	"mixes Hindi words like beta, haan ji, acha into English",
	"repeats words when nervous, speaks slowly",
	"overly polite, addresses everyone as sir or beta",
}

var techLevels = []string{
	"can barely use WhatsApp, son set up the phone",
	"knows calling and SMS only, afraid of touching settings",
	"uses one banking app but forgets passwords constantly",
}

var banks = []bankProfile{
	{"State Bank of India", "SBIN", "oksbi", 11, "4"},
	{"HDFC Bank", "HDFC", "okhdfcbank", 14, "4"},
	{"ICICI Bank", "ICIC", "okicici", 12, "4"},
	{"Punjab National Bank", "PUNB", "okpnb", 13, "6521"},
	{"Axis Bank", "UTIB", "okaxis", 15, "4"},
	{"Kotak Mahindra Bank", "KKBK", "kotak", 14, "6521"},
}
