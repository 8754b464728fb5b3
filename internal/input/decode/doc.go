// Package decode turns a raw terminal byte stream into logical keys.
//
// Every byte other than ESC is a key by itself. After ESC the decoder walks
// a lexicographically sorted table of escape sequences one byte at a time,
// keeping a cursor on the first entry that can still match. Because the
// table is sorted, meeting an entry greater than the bytes read so far
// proves nothing further can match and decoding stops with key.Unknown.
// An entry equal to the bytes read so far ends decoding with its key.
//
// The decoder never reads past the byte that completes or rules out a
// sequence, so it never blocks waiting for input a legal sequence does not
// need. Rejected bytes are consumed, not replayed.
package decode
