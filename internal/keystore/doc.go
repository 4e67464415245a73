// Package keystore owns the symmetric key of a store and performs
// authenticated encryption with it.
//
// Encryption uses NaCl secretbox (XSalsa20-Poly1305) with a 32-byte key and
// a fresh random 24-byte nonce per call. The ciphertext is the plaintext
// plus a 16-byte Poly1305 tag. Decryption verifies the tag before returning
// anything.
//
// # Key File
//
// The key file is a MessagePack map holding the raw key bytes. It is written
// with 0600 permissions and is NOT encrypted: anyone who can read it can read
// every secret. There is no key rotation and no passphrase-derived key.
//
// # Secret File
//
// Each stored secret is a MessagePack map of {nonce, ciphertext}, produced by
// MarshalEncrypted and read back with UnmarshalEncrypted.
package keystore
