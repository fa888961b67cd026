// Package capture drains streamed HTTP message bodies into owned in-memory
// buffers so they can be inspected and then replayed unchanged.
//
// A [Captured] value owns its bytes. [Captured.Reader] hands the buffer over
// to a fresh body exactly once; after that the Captured value is empty, so
// the buffer is never shared between the inspector and the next consumer.
package capture
