// Package json parses JSON documents into explicit value trees and
// renders them back to compact text.
//
// Parse and ParseReader decode exactly one document and reject trailing
// content. The result is a Value: a kind-tagged tree whose objects keep
// members in insertion order.
//
//	v, err := json.Parse([]byte(`{"key":"value"}`))
//	if err != nil {
//	   log.Fatalf("parse failed: %v", err)
//	}
//	s, _ := v.Get("key")
//
// Marshal and Append render a Value as compact JSON with no inserted
// whitespace. Grammar violations are reported as *SyntaxError, bad
// numeric tokens as *NumberFormatError, and failures of the underlying
// reader pass through wrapped, distinct from clean end of stream.
package json
