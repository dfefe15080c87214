package coingecko

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// BodyMaxSize is the maximum accepted response body, in bytes. The simple
// price payload for one coin is a few dozen bytes; anything bigger than this
// cap is not the payload we asked for.
const BodyMaxSize = 128

// jwget performs an HTTP GET request to the given address and unmarshals the
// JSON response body into the provided data structure.
//
// The body is read through a hard cap of BodyMaxSize bytes: an oversized
// response fails the transfer, it is never truncated into a plausible but
// wrong payload.
func jwget(client *http.Client, addr string, data interface{}) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	n, err := io.Copy(&buf, io.LimitReader(resp.Body, BodyMaxSize+1))
	if err != nil {
		return err
	}
	if n > BodyMaxSize {
		return fmt.Errorf("cannot http GET %v/%v: response body over %d bytes", resp.Request.URL.Host, resp.Request.URL.Path, BodyMaxSize)
	}
	return json.Unmarshal(buf.Bytes(), data)
}
