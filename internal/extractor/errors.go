package extractor

import "errors"

// ErrEngine wraps a language engine failure for one text.
var ErrEngine = errors.New("nlp engine failed")
