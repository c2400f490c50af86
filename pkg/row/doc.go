// Package row defines the table's single record schema and the decoder that
// turns an insert line into one.
//
// A Row has three columns: an 8-bit unsigned id and two 32 code point text
// columns, username and email. Decoding is all-or-nothing: Decode returns a
// complete Row or a *DecodeError and never a partially filled value.
//
// Rows also have a fixed-stride binary form of exactly Size bytes, written by
// Serialize and read back by Deserialize. The table keeps its rows in this
// form so that the layout can later back an on-disk page.
package row
