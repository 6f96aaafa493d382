package testutil

// rowData holds one transaction to be inserted. Nil fields are stored as
// NULL.
type rowData struct {
	id       string
	customer *string
	amount   *string
	status   *string
}

// defaultRow returns a paid $100.00 transaction for "Test Customer".
func defaultRow(id string) rowData {
	customer := "Test Customer"
	amount := "$100.00"
	status := "Paid"
	return rowData{id: id, customer: &customer, amount: &amount, status: &status}
}

// RowOption configures a transaction during builder setup.
type RowOption func(*rowData)

// Customer sets the customer name.
func Customer(name string) RowOption {
	return func(r *rowData) { r.customer = &name }
}

// Amount sets the formatted amount, e.g. "$12.50".
func Amount(amount string) RowOption {
	return func(r *rowData) { r.amount = &amount }
}

// Status sets the status text. Any string is accepted so tests can store
// values outside Paid, Pending and Failed.
func Status(status string) RowOption {
	return func(r *rowData) { r.status = &status }
}

// NullCustomer stores NULL in the customer column.
func NullCustomer() RowOption {
	return func(r *rowData) { r.customer = nil }
}

// NullAmount stores NULL in the amount column.
func NullAmount() RowOption {
	return func(r *rowData) { r.amount = nil }
}

// NullStatus stores NULL in the status column.
func NullStatus() RowOption {
	return func(r *rowData) { r.status = nil }
}
