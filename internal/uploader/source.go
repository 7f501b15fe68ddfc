package uploader

import "strings"

// Kind distinguishes an already-durable image URL from a raw payload that
// still has to go through the upload gateway.
type Kind int

const (
	// KindReference is a durable URL; during update reconciliation it is
	// kept as-is without touching the gateway.
	KindReference Kind = iota
	// KindRawPayload is inline image data (e.g. a data URI) that must be
	// resolved to a durable URL before it can be persisted.
	KindRawPayload
)

// Source is an image input tagged with how it should be treated.
type Source struct {
	Kind  Kind
	Value string
}

// Parse classifies an incoming image string. Durable URLs are recognized by
// their http(s) prefix; everything else is raw payload.
func Parse(s string) Source {
	if strings.HasPrefix(s, "http") {
		return Source{Kind: KindReference, Value: s}
	}
	return Source{Kind: KindRawPayload, Value: s}
}
