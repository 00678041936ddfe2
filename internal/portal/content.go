package portal

// Tone selects one of the card color schemes used by the pages.
type Tone string

const (
	ToneLight  Tone = "light"
	ToneDark   Tone = "dark"
	ToneMuted  Tone = "muted"
	ToneAccent Tone = "accent"
)

// Item is an immutable display record: an icon, a title, a description and an
// optional timestamp label or call to action.
type Item struct {
	Icon        string
	Title       string
	Description string
	Timestamp   string
	Action      string
	Tone        Tone
}

// Hero is the large introductory block at the top of a page.
type Hero struct {
	Headline string
	Body     string
	Action   string
}

// DashboardContent is everything the dashboard displays.
type DashboardContent struct {
	Brand        string
	Nav          []string
	Hero         Hero
	Features     []Item
	Activity     []Item
	QuickActions []Item
	Support      Item
}

// LoginShowcase is the marketing panel next to the login form.
type LoginShowcase struct {
	Brand       string
	Tagline     string
	Hero        Hero
	Features    []Item
	TrustBadges []string
}

const brand = "GST Portal"

// DefaultDashboard returns a fresh copy of the dashboard's static content.
func DefaultDashboard() DashboardContent {
	return DashboardContent{
		Brand: brand,
		Nav:   []string{"Dashboard", "Returns", "Reports", "Payments", "Help"},
		Hero: Hero{
			Headline: "Navigating the digital landscape for success",
			Body:     "Our comprehensive GST management platform helps businesses streamline their tax compliance and reporting processes with ease and efficiency.",
			Action:   "Get Started",
		},
		Features: []Item{
			{Icon: "file-text", Title: "GST Returns", Description: "File your monthly and quarterly GST returns with automated calculations and validations.", Action: "File Return", Tone: ToneLight},
			{Icon: "calculator", Title: "Tax Calculator", Description: "Calculate GST amounts, input tax credits, and net tax liability instantly.", Action: "Calculate", Tone: ToneDark},
			{Icon: "trending-up", Title: "Analytics", Description: "Get detailed insights into your tax patterns and compliance status.", Action: "View Reports", Tone: ToneMuted},
			{Icon: "shield", Title: "Compliance", Description: "Stay compliant with automated reminders and deadline tracking.", Action: "Check Status", Tone: ToneAccent},
		},
		Activity: []Item{
			{Icon: "check-circle", Title: "GSTR-1 Filed Successfully", Description: "March 2024 return submitted", Timestamp: "2 hours ago", Tone: ToneAccent},
			{Icon: "clock", Title: "GSTR-3B Due Soon", Description: "Due date: April 20, 2024", Timestamp: "1 day ago", Tone: ToneMuted},
			{Icon: "download", Title: "Certificate Downloaded", Description: "GST registration certificate", Timestamp: "3 days ago", Tone: ToneDark},
		},
		QuickActions: []Item{
			{Icon: "arrow-right", Title: "File GSTR-1"},
			{Icon: "arrow-right", Title: "Pay Tax"},
			{Icon: "arrow-right", Title: "Generate Invoice"},
			{Icon: "arrow-right", Title: "View Reports"},
		},
		Support: Item{
			Title:       "Need Help?",
			Description: "Our support team is available 24/7 to assist you with any queries.",
			Action:      "Contact Support",
			Tone:        ToneDark,
		},
	}
}

// DefaultLoginShowcase returns a fresh copy of the login page's showcase panel.
func DefaultLoginShowcase() LoginShowcase {
	return LoginShowcase{
		Brand:   brand,
		Tagline: "Customer Interface",
		Hero: Hero{
			Headline: "Navigating the digital landscape for success",
			Body:     "Our comprehensive GST management platform helps businesses streamline their tax compliance and reporting processes with ease.",
			Action:   "Learn More",
		},
		Features: []Item{
			{Title: "Automated Filing", Description: "Streamline your GST returns with our automated filing system.", Tone: ToneLight},
			{Title: "Real-time Analytics", Description: "Get insights into your tax obligations and compliance status.", Tone: ToneDark},
			{Title: "Secure Storage", Description: "Your data is protected with enterprise-grade security.", Tone: ToneMuted},
			{Title: "24/7 Support", Description: "Expert assistance whenever you need it.", Tone: ToneAccent},
		},
		TrustBadges: []string{"256-bit SSL", "GDPR Compliant", "ISO 27001"},
	}
}
