package models

// Bucket identifies one named sub-balance of a profile.
type Bucket string

const (
	BucketTotal    Bucket = "total"
	BucketCard     Bucket = "card"
	BucketEWallet  Bucket = "e_wallet"
	BucketBalance  Bucket = "balance"
	BucketReserved Bucket = "reserved"
)

// Schema is the layout of balance buckets a profile uses.
type Schema string

const (
	// SchemaSplit has separate total, card and e-wallet buckets.
	SchemaSplit Schema = "split"

	// SchemaSingle has one aggregate balance.
	SchemaSingle Schema = "single"

	// SchemaReserved is SchemaSplit with a reserved bucket that receives
	// all funds allocated to goals.
	SchemaReserved Schema = "reserved"
)

// Valid reports whether s is a known schema.
func (s Schema) Valid() bool {
	switch s {
	case SchemaSplit, SchemaSingle, SchemaReserved:
		return true
	}
	return false
}

// Sources returns the buckets that funds can be allocated from.
func (s Schema) Sources() []Bucket {
	switch s {
	case SchemaSplit, SchemaReserved:
		return []Bucket{BucketTotal, BucketCard, BucketEWallet}
	case SchemaSingle:
		return []Bucket{BucketBalance}
	}
	return nil
}

// AllowsSource reports whether b is a valid allocation source for the schema.
func (s Schema) AllowsSource(b Bucket) bool {
	for _, source := range s.Sources() {
		if source == b {
			return true
		}
	}
	return false
}

// DefaultSource is the source used when none is selected.
func (s Schema) DefaultSource() Bucket {
	if s == SchemaSingle {
		return BucketBalance
	}
	return BucketTotal
}

// ReservesAllocations reports whether allocated funds are moved into
// the reserved bucket.
func (s Schema) ReservesAllocations() bool {
	return s == SchemaReserved
}
