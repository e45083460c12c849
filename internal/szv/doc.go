// Package szv reads the station's obfuscated credential file (SZV.dat) and
// verifies operator passwords against it.
//
// # File format
//
// Every line of the file is a hex string. After hex decoding, each byte is
// XORed with a keystream seeded by the line length:
//
//	k0 = len(line) mod 32
//	out[i] = in[i] ^ (k_i ^ 0x6)
//	k_{i+1} = (k_i + 5) mod 32
//
// The result is windows-1250 text whose fields are separated by U+0015:
//
//	token<0x15>a,b,surname,given_name,prefix
//
// The keystream is an obfuscation layer for a legacy encoder, not
// encryption.
//
// # Lookup
//
// The index maps sha256(token) in lowercase hex to the decoded record.
// A login hashes the trimmed password and looks the digest up; the record's
// comma separated attributes then yield surname, given name and prefix.
//
// Per-line problems (bad hex, bytes undefined in windows-1250) skip the line
// and never abort a load. Only failing to open or read the file is fatal
// to a login attempt (ErrFileAccess).
package szv
