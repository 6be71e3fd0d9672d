package requests

import (
	"encoding/json/v2"
	"errors"
	"log"
	"net/http"
)

// DecodeJSONBody Decode the Request Body JSON Stream into dst
func DecodeJSONBody(r *http.Request, dst any) error {
	if !HasBody(r) || r.Body == nil {
		return errors.New("request has no body")
	}
	defer func() {
		if closeErr := r.Body.Close(); closeErr != nil {
			log.Printf("[ERROR] %v", closeErr)
		}
	}()
	return json.UnmarshalRead(r.Body, dst)
}
