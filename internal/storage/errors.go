package storage

// StorageError wraps any backend failure of a Store operation. The cause is
// kept as is; no attempt is made to classify SQL error codes.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return "storage." + e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
