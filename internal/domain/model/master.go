package model

// MasterRecord is the singleton master-password record. Hash is the
// hex-encoded Argon2id digest and Salt the hex-encoded random salt it was
// computed with. The record is created on first run and only ever replaced
// wholesale.
type MasterRecord struct {
	Hash string
	Salt string
}
