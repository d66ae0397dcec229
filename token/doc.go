// Package token provides tokenization support for the TextGrid dialects.
//
// [Tokenize] is a function for tokenizing bytes; the dialect is selected
// with a [TokenOpt].
package token
