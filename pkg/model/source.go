package model

import "context"

// Source is where narration or data comes from. The set of implementations is closed:
// InlineSource, PathSource and AsyncSource.
type Source interface {
	sourceKind() SourceKind
}

// SourceKind names the variant of a Source, as reported by KindOf.
type SourceKind string

const (
	// SourceNone means the field was left unset.
	SourceNone   SourceKind = "none"
	SourceInline SourceKind = "inline"
	SourcePath   SourceKind = "path"
	// SourceAsync is a value that resolves later through a ResolveFunc.
	SourceAsync  SourceKind = "async"
)

// InlineSource carries already-available records, typically []map[string]any.
type InlineSource struct {
	Value any
}

// PathSource names a file that a downstream fetcher parses according to its extension.
type PathSource struct {
	Path string
}

// ResolveFunc produces the payload of an AsyncSource.
type ResolveFunc func(ctx context.Context) (any, error)

// AsyncSource is a pending value resolved later by the rendering pipeline.
type AsyncSource struct {
	Name    string
	Resolve ResolveFunc
}

func (InlineSource) sourceKind() SourceKind { return SourceInline }
func (PathSource) sourceKind() SourceKind   { return SourcePath }
func (AsyncSource) sourceKind() SourceKind  { return SourceAsync }

// Deref normalises pointer forms of the source types to values. A nil pointer yields nil.
func Deref(src Source) Source {
	switch s := src.(type) {
	case *InlineSource:
		if s == nil {
			return nil
		}
		return *s
	case *PathSource:
		if s == nil {
			return nil
		}
		return *s
	case *AsyncSource:
		if s == nil {
			return nil
		}
		return *s
	}
	return src
}

// KindOf reports the kind of src, or SourceNone when src is nil.
func KindOf(src Source) SourceKind {
	src = Deref(src)
	if src == nil {
		return SourceNone
	}
	return src.sourceKind()
}
