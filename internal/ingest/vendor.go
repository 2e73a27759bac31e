// Package ingest turns raw transaction sources, manual entry payloads and
// uploaded bank statements, into clean model records.
package ingest

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// VendorInfo is a normalized vendor name plus the expense category it maps to.
type VendorInfo struct {
	Name       string
	Category   string
	Confidence float64
}

type vendorMapping struct {
	keyword string
	info    VendorInfo
}

// vendorMappings resolves known vendor keywords to normalized names and the
// expense categories the dashboard reports on. Order matters: the first
// matching keyword wins, so a description containing several keywords always
// resolves the same way.
var vendorMappings = []vendorMapping{
	// Advertising platforms
	{"google ads", VendorInfo{Name: "Google Ads", Category: "Marketing", Confidence: 0.95}},
	{"facebook ads", VendorInfo{Name: "Facebook Ads", Category: "Marketing", Confidence: 0.95}},
	{"meta platform", VendorInfo{Name: "Meta Ads", Category: "Marketing", Confidence: 0.95}},
	{"linkedin", VendorInfo{Name: "LinkedIn", Category: "Marketing", Confidence: 0.95}},
	{"mailchimp", VendorInfo{Name: "Mailchimp", Category: "Marketing", Confidence: 0.95}},
	{"hubspot", VendorInfo{Name: "HubSpot", Category: "Marketing", Confidence: 0.95}},

	// Office and shop supplies
	{"officeworks", VendorInfo{Name: "Officeworks", Category: "Supplies", Confidence: 0.95}},
	{"office depot", VendorInfo{Name: "Office Depot", Category: "Supplies", Confidence: 0.95}},
	{"staples", VendorInfo{Name: "Staples", Category: "Supplies", Confidence: 0.95}},
	{"uline", VendorInfo{Name: "Uline", Category: "Supplies", Confidence: 0.95}},
	{"costco", VendorInfo{Name: "Costco", Category: "Supplies", Confidence: 0.9}},
	{"amazon web services", VendorInfo{Name: "Amazon Web Services", Category: "Software", Confidence: 0.95}},
	{"amazon", VendorInfo{Name: "Amazon", Category: "Supplies", Confidence: 0.85}},

	// Utilities and telecom
	{"telstra", VendorInfo{Name: "Telstra", Category: "Utilities", Confidence: 0.95}},
	{"optus", VendorInfo{Name: "Optus", Category: "Utilities", Confidence: 0.95}},
	{"verizon", VendorInfo{Name: "Verizon", Category: "Utilities", Confidence: 0.95}},
	{"comcast", VendorInfo{Name: "Comcast", Category: "Utilities", Confidence: 0.95}},
	{"at&t", VendorInfo{Name: "AT&T", Category: "Utilities", Confidence: 0.95}},
	{"agl", VendorInfo{Name: "AGL Energy", Category: "Utilities", Confidence: 0.95}},
	{"origin", VendorInfo{Name: "Origin Energy", Category: "Utilities", Confidence: 0.9}},
	{"pg&e", VendorInfo{Name: "PG&E", Category: "Utilities", Confidence: 0.95}},

	// Fuel, freight and travel
	{"shell", VendorInfo{Name: "Shell", Category: "Transportation", Confidence: 0.95}},
	{"bp", VendorInfo{Name: "BP", Category: "Transportation", Confidence: 0.95}},
	{"chevron", VendorInfo{Name: "Chevron", Category: "Transportation", Confidence: 0.95}},
	{"caltex", VendorInfo{Name: "Caltex", Category: "Transportation", Confidence: 0.95}},
	{"uber", VendorInfo{Name: "Uber", Category: "Transportation", Confidence: 0.95}},
	{"fedex", VendorInfo{Name: "FedEx", Category: "Transportation", Confidence: 0.95}},
	{"ups", VendorInfo{Name: "UPS", Category: "Transportation", Confidence: 0.95}},
	{"auspost", VendorInfo{Name: "Australia Post", Category: "Transportation", Confidence: 0.95}},

	// Software and subscriptions
	{"quickbooks", VendorInfo{Name: "QuickBooks", Category: "Software", Confidence: 0.95}},
	{"xero", VendorInfo{Name: "Xero", Category: "Software", Confidence: 0.95}},
	{"adobe", VendorInfo{Name: "Adobe", Category: "Software", Confidence: 0.95}},
	{"slack", VendorInfo{Name: "Slack", Category: "Software", Confidence: 0.95}},
	{"zoom", VendorInfo{Name: "Zoom", Category: "Software", Confidence: 0.95}},
	{"github", VendorInfo{Name: "GitHub", Category: "Software", Confidence: 0.95}},
	{"aws", VendorInfo{Name: "Amazon Web Services", Category: "Software", Confidence: 0.95}},
	{"azure", VendorInfo{Name: "Microsoft Azure", Category: "Software", Confidence: 0.95}},
	{"gsuite", VendorInfo{Name: "Google Workspace", Category: "Software", Confidence: 0.95}},

	// Equipment and hardware
	{"bunnings", VendorInfo{Name: "Bunnings", Category: "Equipment", Confidence: 0.95}},
	{"home depot", VendorInfo{Name: "Home Depot", Category: "Equipment", Confidence: 0.95}},
	{"jb hi-fi", VendorInfo{Name: "JB Hi-Fi", Category: "Equipment", Confidence: 0.9}},
	{"dell", VendorInfo{Name: "Dell", Category: "Equipment", Confidence: 0.9}},

	// Insurance
	{"allianz", VendorInfo{Name: "Allianz", Category: "Insurance", Confidence: 0.95}},
	{"geico", VendorInfo{Name: "GEICO", Category: "Insurance", Confidence: 0.95}},
	{"aami", VendorInfo{Name: "AAMI", Category: "Insurance", Confidence: 0.95}},
}

type categoryKeyword struct {
	keyword  string
	category string
}

// categoryKeywords maps generic description keywords to fallback categories.
// First match wins, same as vendorMappings.
var categoryKeywords = []categoryKeyword{
	{"advertis", "Marketing"},
	{"marketing", "Marketing"},
	{"promo", "Marketing"},
	{"seo", "Marketing"},

	{"stationery", "Supplies"},
	{"paper", "Supplies"},
	{"packaging", "Supplies"},
	{"supplies", "Supplies"},

	{"electric", "Utilities"},
	{"energy", "Utilities"},
	{"water", "Utilities"},
	{"internet", "Utilities"},
	{"broadband", "Utilities"},
	{"phone", "Utilities"},
	{"mobile", "Utilities"},

	{"fuel", "Transportation"},
	{"petrol", "Transportation"},
	{"parking", "Transportation"},
	{"toll", "Transportation"},
	{"freight", "Transportation"},
	{"courier", "Transportation"},
	{"postage", "Transportation"},

	{"insurance", "Insurance"},
	{"premium", "Insurance"},

	{"rent", "Rent"},
	{"lease", "Rent"},
	{"landlord", "Rent"},

	{"software", "Software"},
	{"subscription", "Software"},
	{"license", "Software"},
	{"hosting", "Software"},

	{"equipment", "Equipment"},
	{"machinery", "Equipment"},
	{"tools", "Equipment"},
	{"repair", "Equipment"},
}

var (
	prefixPattern = regexp.MustCompile(`(?i)^(pos |eftpos |visa |mastercard |amex |paypal \*|sq \*)`)
	suffixPattern = regexp.MustCompile(`(?i)\s+(pty|ltd|inc|corp|llc|au|us|uk|nz|sg)\.?$`)
	longNumbers   = regexp.MustCompile(`\d{6,}`)
	specialChars  = regexp.MustCompile(`[*#]+`)
)

// NormalizeVendor cleans up a raw statement description and resolves the
// vendor name and expense category it most likely belongs to.
func NormalizeVendor(raw string) VendorInfo {
	lower := strings.ToLower(strings.TrimSpace(raw))

	cleaned := prefixPattern.ReplaceAllString(lower, "")
	cleaned = suffixPattern.ReplaceAllString(cleaned, "")
	cleaned = longNumbers.ReplaceAllString(cleaned, "")
	cleaned = specialChars.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(cleaned)

	for _, m := range vendorMappings {
		if strings.Contains(cleaned, m.keyword) {
			return m.info
		}
	}

	// Partial word matches carry lower confidence.
	for _, m := range vendorMappings {
		for _, word := range strings.Fields(m.keyword) {
			if len(word) > 3 && strings.Contains(cleaned, word) {
				return VendorInfo{Name: m.info.Name, Category: m.info.Category, Confidence: 0.8}
			}
		}
	}

	for _, k := range categoryKeywords {
		if strings.Contains(cleaned, k.keyword) {
			return VendorInfo{Name: FormatVendorName(raw), Category: k.category, Confidence: 0.6}
		}
	}

	return VendorInfo{Name: FormatVendorName(raw), Category: "Other", Confidence: 0.3}
}

// FormatVendorName cleans a raw statement description for display.
func FormatVendorName(raw string) string {
	cleaned := prefixPattern.ReplaceAllString(raw, "")
	cleaned = suffixPattern.ReplaceAllString(cleaned, "")
	cleaned = longNumbers.ReplaceAllString(cleaned, "")
	cleaned = specialChars.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(cleaned)

	caser := cases.Title(language.English)
	words := strings.Fields(cleaned)
	for i, word := range words {
		if len(word) > 2 {
			words[i] = caser.String(strings.ToLower(word))
		} else {
			words[i] = strings.ToUpper(word)
		}
	}

	result := strings.Join(words, " ")
	if len(result) > 50 {
		result = result[:50]
	}
	return result
}
