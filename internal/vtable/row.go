// Package vtable renders large row lists inside a fixed-height scrolling
// viewport while only materializing the rows that are visible.
//
// The renderer owns the dataset, a uniform row height, and the last rendered
// window. It never draws anything itself: callers supply a Viewport to read
// the scroll position from, a Body that receives the windowed rows, a Spacer
// sized to the full logical content height, and an optional Counter for the
// row count display. The terminal table (ui/txtable) and the HTML snapshot
// (snapshot) are the two implementations in this module.
//
// Scroll notifications are coalesced: the first OnScroll since the last frame
// schedules exactly one FrameMsg, later ones are dropped until that frame has
// rendered.
package vtable

// Status is the settlement state of a transaction row.
type Status string

const (
	StatusPaid    Status = "Paid"
	StatusPending Status = "Pending"
	StatusFailed  Status = "Failed"
)

// Statuses lists the known statuses in display order.
func Statuses() []Status {
	return []Status{StatusPaid, StatusPending, StatusFailed}
}

// Style classes a row's status cell can carry.
const (
	ClassOK   = "ok"
	ClassWarn = "warn"
)

// StatusClass returns the style class for a status: "ok" for Paid, "warn" for
// anything else (including unknown values).
func StatusClass(s Status) string {
	if s == StatusPaid {
		return ClassOK
	}
	return ClassWarn
}

// Row is a single transaction record. The renderer treats it as opaque apart
// from deriving the status class.
type Row struct {
	ID       string `json:"id"`
	Customer string `json:"customer"`
	Amount   string `json:"amount"`
	Status   Status `json:"status"`
}

// RowView is one materialized row handed to a Body.
type RowView struct {
	Index int // position in the full dataset
	Row   Row
	Class string // ClassOK or ClassWarn
}

// sampleRow is rendered once off-window to measure the row height.
var sampleRow = RowView{
	Index: -1,
	Row:   Row{ID: "#0000", Customer: "Sample Name", Amount: "$000.00", Status: StatusPaid},
	Class: ClassOK,
}

// SampleRow returns the representative row used for height measurement.
func SampleRow() RowView {
	return sampleRow
}
