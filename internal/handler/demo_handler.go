package handler

import (
	"io"
	"net/http"
	"strconv"

	"oop-pillars/internal/demo"
)

// Demo serves the console walkthrough as plain text.
func Demo(w http.ResponseWriter, r *http.Request) {
	transcript := demo.Transcript()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(transcript)))
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, transcript)
}
