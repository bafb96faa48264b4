package core

// Entity is an opaque entity identifier, 0 is never issued
type Entity uint64
