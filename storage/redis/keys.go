package redis

import "fmt"

// The registry persists exactly three top-level keys per namespace.

// genesisKey holds the one-time initialization flag for the namespace.
func (r *Storage) genesisKey() string {
	return fmt.Sprintf("%s:GENESIS", r.Namespace)
}

// worldKey holds the encoded World record: name, entity ID counter, entity
// table, and system registry.
func (r *Storage) worldKey() string {
	return fmt.Sprintf("%s:WORLD", r.Namespace)
}

// registerKey holds the encoded Register record: the bit counter, the
// registered address list, and the bit-to-address audit map.
func (r *Storage) registerKey() string {
	return fmt.Sprintf("%s:REGISTER", r.Namespace)
}
