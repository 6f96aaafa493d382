package dashboard

import (
	"github.com/zjrosen/txdash/internal/ui/charts"
	"github.com/zjrosen/txdash/internal/vtable"
)

// Section is one sidebar entry: its KPI cards, three charts and the shape
// of the transactions dataset it shows.
type Section struct {
	Name  string
	Title string

	KPIs  []charts.KPI
	Bar   charts.Bar
	Donut charts.Donut
	Line  charts.Line

	Rows     int
	Statuses []vtable.Status
}

// DefaultSection is shown on startup and for unknown section names.
const DefaultSection = "dashboard"

var (
	weekdays = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	months   = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	letters  = []string{"J", "F", "M", "A", "M", "J", "J", "A", "S", "O", "N", "D"}
	quarters = []string{"Q1", "Q2", "Q3", "Q4", "Q1", "Q2", "Q3", "Q4", "Q1", "Q2", "Q3", "Q4"}

	weekTips = []string{"3.5k", "5.2k", "6.8k", "7.4k", "5.6k", "9.2k", "4.4k"}
)

const (
	paid    = vtable.StatusPaid
	pending = vtable.StatusPending
	failed  = vtable.StatusFailed
)

func kpis(orders, ordersDelta, ordersNote, users, usersNote, conv, convNote, revenue, revenueNote string) []charts.KPI {
	return []charts.KPI{
		{Label: "Orders", Value: orders, Delta: ordersDelta, Note: ordersNote},
		{Label: "Users", Value: users, Note: usersNote},
		{Label: "Conversion", Value: conv, Note: convNote},
		{Label: "Revenue", Value: revenue, Note: revenueNote},
	}
}

// Sections returns the sidebar sections in display order.
func Sections() []Section {
	return []Section{
		{
			Name:  "dashboard",
			Title: "Dashboard",
			KPIs: kpis("201", "+12%", "vs last week",
				"4890", "Avg. session 6m 12s",
				"1.20%", "+0.14% MoM",
				"$30,562", "MRR · Q2"),
			Bar: charts.Bar{
				Title: "Weekly Sales (Bar)", Chip1: "This week", Chip2: "USD",
				Labels: weekdays, Values: []float64{35, 52, 68, 74, 56, 92, 44}, Tooltips: weekTips,
			},
			Donut: charts.Donut{
				Title: "Orders by Source (Donut)", Chip: "Last 30 days", Percent: 68,
				Legend: []string{"Paid Ads", "Organic", "Referral"},
			},
			Line: charts.Line{
				Title: "Monthly Trend (Line)", Chip: "2025", Months: months,
				Values: []float64{12.0, 14.2, 15.1, 17.9, 21.4, 19.6, 22.8, 24.0, 25.2, 22.3, 26.8, 25.6},
			},
			Rows:     10000,
			Statuses: []vtable.Status{paid, pending, failed},
		},
		{
			Name:  "products",
			Title: "Products",
			KPIs: kpis("540", "+8%", "new SKUs",
				"2180", "Avg. views 4.1",
				"2.04%", "+0.22% MoM",
				"$64,210", "Last 30 days"),
			Bar: charts.Bar{
				Title: "Units Sold / Day", Chip1: "Top SKU", Chip2: "Units",
				Labels: weekdays, Values: []float64{20, 34, 50, 72, 80, 90, 60},
				Tooltips: []string{"200", "340", "500", "720", "800", "900", "600"},
			},
			Donut: charts.Donut{
				Title: "Inventory Health", Chip: "In-stock %", Percent: 82,
				Legend: []string{"In Stock", "Backorder", "Discontinued"},
			},
			Line: charts.Line{
				Title: "Price vs Sales Trend", Chip: "12 mo", Months: letters,
				Values: []float64{10, 12, 13, 15, 16, 18, 20, 19, 17, 18, 19, 21},
			},
			Rows:     6000,
			Statuses: []vtable.Status{paid, paid, pending},
		},
		{
			Name:  "customers",
			Title: "Customers",
			KPIs: kpis("120", "+3%", "new signups",
				"9800", "MAU",
				"0.92%", "-0.05% MoM",
				"$12,404", "ARPU $1.26"),
			Bar: charts.Bar{
				Title: "New Customers / Day", Chip1: "This week", Chip2: "People",
				Labels: weekdays, Values: []float64{30, 48, 54, 60, 66, 58, 40}, Tooltips: weekTips,
			},
			Donut: charts.Donut{
				Title: "Acquisition Source", Chip: "Last 30 days", Percent: 56,
				Legend: []string{"Organic", "Paid", "Referral"},
			},
			Line: charts.Line{
				Title: "Retention Trend", Chip: "Cohort 2025", Months: months,
				Values: []float64{26, 24, 23, 22, 21, 21, 20, 20, 19, 19, 18, 18},
			},
			Rows:     8000,
			Statuses: []vtable.Status{paid, paid, paid, pending},
		},
		{
			Name:  "reports",
			Title: "Reports",
			KPIs: kpis("310", "+18%", "QoQ",
				"3520", "Report views",
				"1.56%", "+0.08% QoQ",
				"$98,700", "Quarter total"),
			Bar: charts.Bar{
				Title: "Report Downloads", Chip1: "This week", Chip2: "Count",
				Labels: weekdays, Values: []float64{15, 22, 30, 45, 55, 70, 24}, Tooltips: weekTips,
			},
			Donut: charts.Donut{
				Title: "Report Types Share", Chip: "QTD", Percent: 44,
				Legend: []string{"PDF", "Dashboard", "CSV"},
			},
			Line: charts.Line{
				Title: "Quarterly Revenue Trend", Chip: "Q1–Q4", Months: quarters,
				Values: []float64{18, 22, 25, 27, 20, 24, 28, 30, 22, 26, 31, 33},
			},
			Rows:     5000,
			Statuses: []vtable.Status{paid, pending, pending, failed},
		},
		{
			Name:  "settings",
			Title: "Settings",
			KPIs: kpis("0", "+0%", "system",
				"1", "Admin online",
				"—", "No data",
				"$0", "—"),
			Bar: charts.Bar{
				Title: "No Sales Data", Chip1: "Settings", Chip2: "—",
				Labels: weekdays, Values: []float64{0, 0, 0, 0, 0, 0, 0},
			},
			Donut: charts.Donut{
				Title: "Config Completion", Chip: "Profile, Billing, API", Percent: 88,
				Legend: []string{"Complete", "Left", "N/A"},
			},
			Line: charts.Line{
				Title: "System Health", Chip: "Uptime % (12 mo)", Months: months,
				Values: []float64{99.8, 99.7, 99.9, 99.9, 99.8, 99.9, 99.9, 99.9, 99.8, 99.9, 99.9, 99.9},
			},
			Rows:     300,
			Statuses: []vtable.Status{paid},
		},
	}
}

// SectionIndex returns the position of name in sections, or -1.
func SectionIndex(sections []Section, name string) int {
	for i, s := range sections {
		if s.Name == name {
			return i
		}
	}
	return -1
}
