package categorizer

// keywords holds the built-in keywords per category. Categories listed
// first take precedence, e.g. "gas" is Transportation, not Utilities.
var keywords = []struct {
	category string
	keywords []string
}{
	{"Housing", []string{"rent", "mortgage", "property tax", "home insurance", "maintenance", "repairs"}},
	{"Transportation", []string{"gas", "fuel", "car payment", "car insurance", "parking", "public transit", "uber", "lyft"}},
	{"Food", []string{"groceries", "grocery", "restaurant", "takeout", "delivery", "coffee"}},
	{"Utilities", []string{"electricity", "electric", "water", "internet", "phone", "cable"}},
	{"Healthcare", []string{"medical", "dental", "vision", "prescription", "pharmacy", "insurance"}},
	{"Entertainment", []string{"movies", "music", "streaming", "netflix", "spotify", "hobbies", "sports"}},
	{"Shopping", []string{"clothing", "electronics", "home goods", "amazon", "target", "walmart"}},
	{"Personal", []string{"haircut", "gym", "beauty", "spa"}},
	{"Education", []string{"tuition", "books", "courses", "supplies"}},
	{"Savings", []string{"investment", "401k", "ira", "savings deposit"}},
	{"Income", []string{"salary", "payroll", "bonus", "interest", "dividend", "refund"}},
}

// DefaultRules returns the built-in rule table.
func DefaultRules() []Rule {
	rules := make([]Rule, 0)
	for i, c := range keywords {
		for _, k := range c.keywords {
			rules = append(rules, Rule{
				Priority: uint(i+1) * 10,
				Category: c.category,
				Match:    k,
				Sign:     SignAny,
			})
		}
	}

	return rules
}
