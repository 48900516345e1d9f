package client

import (
	"os"

	"proteus/pkg/client"
)

const defaultURI = "http://127.0.0.1:8080"

// New returns a new proteus client targeting the controller whose address is
// read from PROTEUS_CONTROLLER_URI.
func New() (client.Client, error) {
	uri := os.Getenv("PROTEUS_CONTROLLER_URI")
	if uri == "" {
		uri = defaultURI
	}
	return client.NewClient(uri)
}
