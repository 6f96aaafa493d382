package testutil

// WithStandardTestData adds six transactions covering every status.
func (b *Builder) WithStandardTestData() *Builder {
	return b.
		WithRow("#1001", Customer("Riya A"), Amount("$120.00"), Status("Paid")).
		WithRow("#1002", Customer("Arjun B"), Amount("$75.50"), Status("Pending")).
		WithRow("#1003", Customer("Nora C"), Amount("$9.99"), Status("Failed")).
		WithRow("#1004", Customer("Rahul D"), Amount("$1,250.00"), Status("Paid")).
		WithRow("#1005", Customer("Fatima E"), Amount("$42.00"), Status("Pending")).
		WithRow("#1006", Customer("John F"), Amount("$310.25"), Status("Paid"))
}

// WithSparseTestData adds rows with NULL and unknown column values, the
// shapes an externally written database may contain.
func (b *Builder) WithSparseTestData() *Builder {
	return b.
		WithRow("#2001", NullCustomer()).
		WithRow("#2002", NullAmount(), Status("Refunded")).
		WithRow("#2003", NullStatus()).
		WithRow("#2004", NullCustomer(), NullAmount(), NullStatus())
}
