// Package header implements the FileHeader stream: the fixed 256-byte block that opens
// every document and carries the signature, format version and property flags.
//
// Layout (little-endian):
//
//	offset  size  field
//	0       32    signature, "HWP Document File" zero-padded
//	32      4     version: revision, build, minor, major (byte 32 is revision)
//	36      4     property flags
//	40      216   reserved; newer producers store license/encryption details here
package header
