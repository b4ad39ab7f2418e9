package rpc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// JSONClient calls a JSON-RPC server over HTTP.
type JSONClient struct {
	url    string
	client *http.Client
}

// NewJSONClient points a client at url.
func NewJSONClient(url string) *JSONClient {
	return &JSONClient{url: url, client: &http.Client{}}
}

type clientRequest struct {
	Method string `json:"method"`
	Params [1]any `json:"params"`
	ID     uint64 `json:"id"`
}

type clientResponse struct {
	ID     uint64           `json:"id"`
	Result *json.RawMessage `json:"result"`
	Error  any              `json:"error"`
}

// Call invokes method with params and decodes the result into resp.
func (c *JSONClient) Call(method string, params, resp any) error {
	req := clientRequest{Method: method, ID: 1}
	req.Params[0] = params
	data, err := json.Marshal(&req)
	if err != nil {
		return err
	}
	httpResp, err := c.client.Post(c.url, "application/json", bytes.NewBuffer(data))
	if err != nil {
		return err
	}
	defer httpResp.Body.Close()
	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return err
	}
	var cresp clientResponse
	if err := json.Unmarshal(body, &cresp); err != nil {
		return err
	}
	if cresp.Error != nil {
		x, ok := cresp.Error.(string)
		if !ok {
			return fmt.Errorf("invalid error %v", cresp.Error)
		}
		return errors.New(x)
	}
	if cresp.Result == nil {
		return errors.New("unexpected null result")
	}
	return json.Unmarshal(*cresp.Result, resp)
}
