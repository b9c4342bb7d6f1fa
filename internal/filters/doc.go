// Package filters provides the PDF stream compression filters used when
// writing documents.
//
// # Supported Filters
//
// FlateDecode (zlib/deflate) is the only filter written by this module.
// Page content streams and image XObjects are compressed with it:
//
//	encoded, err := filters.FlateEncode(data)
//
// [FlateDecode] reverses the operation and is used to inspect written
// streams.
package filters
