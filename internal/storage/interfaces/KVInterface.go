package interfaces

// KVInterface is a durable keyed blob store. Get reports false for a
// missing key without error so callers can distinguish "empty" from
// "broken medium".
type KVInterface interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
}
