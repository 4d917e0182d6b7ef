package hexcodec

import "bytes"

// bytesBufferWriterAdapter lets a *bytes.Buffer back a Writer without a second buffer.
type bytesBufferWriterAdapter struct{ *bytes.Buffer }

func (w *bytesBufferWriterAdapter) Flush() error { return nil }
func (w *bytesBufferWriterAdapter) Size() int    { return w.Available() }
