// Package templating substitutes placeholders in template text using
// valyala/fasttemplate. Tags default to "${" and "}", so "${KEY}" is replaced
// by the value of KEY. Placeholders without a value are kept verbatim, and
// substitution is a single pass: values are never expanded again.
//
// The Engine type holds the tag configuration and offers Render for
// substitution and Placeholders/Unresolved for inspecting which tags a
// template references.
package templating
