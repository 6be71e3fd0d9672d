package responses

import (
	"fmt"
	"log"
	"net/http"
)

func WriteFileBytesWithFilename(w http.ResponseWriter, filename string, contentType string, fileBytes []byte) {
	WriteFileResponseHeaders(w, filename, contentType)
	_, err := w.Write(fileBytes)
	if err != nil {
		log.Printf("[ERROR] writing file to response: %v", err)
	}
}

// WriteFileResponseHeaders write HTTP response headers for a file download response. i.e. headers are frozen
func WriteFileResponseHeaders(w http.ResponseWriter, filename string, contentType string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK) // Response Header Sent & Frozen
}
