package storage

// RowReader is the interface any listing source must satisfy. ReadHeader
// must be called once before ReadRow; ReadRow returns io.EOF when the
// source is exhausted.
type RowReader interface {
	ReadHeader() ([]string, error)
	ReadRow() ([]string, error)
	Close() error
}
