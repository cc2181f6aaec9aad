package nlp

import "errors"

// ErrModelUnavailable indicates that the language model backing the tagger
// could not be initialized or used. This is the one hard failure of the
// structural pipeline: without lemmas and part-of-speech tags the verb and
// keyword analyses cannot run. Callers should match it with errors.Is and
// surface it separately from input-validation problems.
var ErrModelUnavailable = errors.New("nlp model unavailable")
