// Package filesystem implements the document reader and part writer on the
// local filesystem.
//
// The reader decodes a file with a named text encoding (any label known to
// the WHATWG encoding index, UTF-8 by default), drops a leading byte order
// mark and splits the text into lines on "\n", "\r\n" or "\r". The writer
// performs the reverse: it terminates every line, encodes the text and
// overwrites the destination.
package filesystem
