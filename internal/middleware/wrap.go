package middleware

import "net/http"

// ResponseRecorder wraps ResponseWriter, captures the status code and byte
// count, and can run a hook right before the first header write.
type ResponseRecorder struct {
	http.ResponseWriter
	status      int
	bytes       int64
	wrote       bool
	beforeWrite func(http.ResponseWriter)
}

func NewResponseRecorder(w http.ResponseWriter) *ResponseRecorder {
	if rw, ok := w.(*ResponseRecorder); ok {
		return rw
	}
	return &ResponseRecorder{ResponseWriter: w, status: http.StatusOK}
}

// SetBeforeWrite registers fn to run once, before headers are sent.
// Hooks chain: an earlier hook still runs when a later one is set.
func (rw *ResponseRecorder) SetBeforeWrite(fn func(http.ResponseWriter)) {
	prev := rw.beforeWrite
	if prev == nil {
		rw.beforeWrite = fn
		return
	}
	rw.beforeWrite = func(w http.ResponseWriter) {
		prev(w)
		fn(w)
	}
}

func (rw *ResponseRecorder) flushHeaders() {
	if rw.wrote {
		return
	}
	rw.wrote = true
	if rw.beforeWrite != nil {
		rw.beforeWrite(rw.ResponseWriter)
	}
}

func (rw *ResponseRecorder) WriteHeader(statusCode int) {
	if rw.wrote {
		return
	}
	rw.status = statusCode
	rw.flushHeaders()
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (rw *ResponseRecorder) Write(b []byte) (int, error) {
	if !rw.wrote {
		rw.WriteHeader(http.StatusOK)
	}
	n, err := rw.ResponseWriter.Write(b)
	rw.bytes += int64(n)
	return n, err
}

// Flush forwards to the underlying writer when it supports streaming.
func (rw *ResponseRecorder) Flush() {
	rw.flushHeaders()
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (rw *ResponseRecorder) Unwrap() http.ResponseWriter { return rw.ResponseWriter }

func (rw *ResponseRecorder) Status() int { return rw.status }

func (rw *ResponseRecorder) BytesWritten() int64 { return rw.bytes }

// Wrote reports whether headers have been sent.
func (rw *ResponseRecorder) Wrote() bool { return rw.wrote }
