// Package container holds the stream trees documents are read from and written to.
//
// A Container maps slash-separated paths such as "BodyText/Section0" to stream bytes.
// Storage is the in-memory implementation; LoadCFB fills one from a compound file and
// Pack/Unpack persist one as a checksummed, compressed bundle.
package container
