// Package envfile reads and updates variables in dotenv files while
// preserving everything it does not own.
//
// A binding line is [ws]*(export )?KEY=VALUE. The value runs verbatim
// from the first '=' to end of line; no quoting convention is
// interpreted. Lines that are blank or start with '#' after leading
// whitespace are preserved but never parsed.
//
// Duplicate policy: Read returns the last binding of a key, matching
// shell "last wins" semantics; Upsert rewrites every binding of the key
// in place, so after an upsert all duplicates agree.
//
// Writes are whole-file and not atomic; concurrent writers to the same
// file must serialise externally.
package envfile
