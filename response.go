// MIT License

// Copyright (c) 2023 wetrycode

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package apiresponse

import (
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

const (
	// DefaultSuccessStatus status code used when a response has none
	DefaultSuccessStatus = 200
	// DefaultErrorStatus status code used when an error has none
	DefaultErrorStatus = 500
	// FailureThreshold first status code treated as a failure
	FailureThreshold = 400
	// SetCookieHeader header carrying the formatted cookie
	SetCookieHeader = "Set-Cookie"
)

// Response the descriptor produced by application code
type Response struct {
	StatusCode int               `json:"statusCode,omitempty"` // StatusCode zero means absent
	Body       interface{}       `json:"body,omitempty"`       // Body any JSON encodable value
	Headers    map[string]string `json:"headers,omitempty"`    // Headers response headers
	Cookies    *Cookies          `json:"cookies,omitempty"`    // Cookies only the first one is emitted
}

// UnmarshalJSON decode a response descriptor. Cookies are decoded directly
// so their errors still match ErrInvalidCookie and ErrInvalidExpires.
func (r *Response) UnmarshalJSON(data []byte) error {
	var raw struct {
		StatusCode int                 `json:"statusCode"`
		Body       interface{}         `json:"body"`
		Headers    map[string]string   `json:"headers"`
		Cookies    jsoniter.RawMessage `json:"cookies"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var cookies *Cookies
	if len(raw.Cookies) > 0 && string(raw.Cookies) != "null" {
		cookies = &Cookies{}
		if err := cookies.UnmarshalJSON(raw.Cookies); err != nil {
			return err
		}
	}
	r.StatusCode = raw.StatusCode
	r.Body = raw.Body
	r.Headers = raw.Headers
	r.Cookies = cookies
	return nil
}

// ResponseOption optional settings of Response
type ResponseOption func(r *Response)

// ResponseWithStatus set the response status code
func ResponseWithStatus(statusCode int) ResponseOption {
	return func(r *Response) {
		r.StatusCode = statusCode
	}
}

// ResponseWithHeaders set the response headers
func ResponseWithHeaders(headers map[string]string) ResponseOption {
	return func(r *Response) {
		r.Headers = headers
	}
}

// ResponseWithCookies set the response cookies
func ResponseWithCookies(cookies *Cookies) ResponseOption {
	return func(r *Response) {
		r.Cookies = cookies
	}
}

// NewResponse create a response descriptor with body
func NewResponse(body interface{}, opts ...ResponseOption) *Response {
	r := &Response{Body: body}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Envelope the finalized success response returned to the gateway
type Envelope struct {
	StatusCode                   int               `json:"statusCode"`
	StatusCodeForPatternMatching string            `json:"statusCodeForPatternMatching"`
	Headers                      map[string]string `json:"headers,omitempty"`
	Body                         string            `json:"body"`
}

// FailureEnvelope the envelope carried by an EnvelopeError. Body stays structured,
// only its messageVariables are re-encoded to text.
type FailureEnvelope struct {
	StatusCode                   int               `json:"statusCode"`
	StatusCodeForPatternMatching string            `json:"statusCodeForPatternMatching"`
	Headers                      map[string]string `json:"headers,omitempty"`
	Body                         interface{}       `json:"body,omitempty"`
}

// PatternStatus the bracketed status code used by gateways matching on strings
func PatternStatus(statusCode int) string {
	return "[" + strconv.Itoa(statusCode) + "]"
}

// normalized the working copy of a descriptor shared by both entry points
type normalized struct {
	statusCode int
	pattern    string
	headers    map[string]string
	body       interface{}
}

func normalize(r *Response, defaultStatus int) *normalized {
	n := &normalized{statusCode: defaultStatus}
	if r == nil {
		n.pattern = PatternStatus(n.statusCode)
		return n
	}
	if r.StatusCode != 0 {
		n.statusCode = r.StatusCode
	}
	n.pattern = PatternStatus(n.statusCode)
	n.headers = copyHeaders(r.Headers)
	n.body = r.Body
	if cookie, ok := FormatCookies(r); ok {
		if n.headers == nil {
			n.headers = make(map[string]string, 1)
		}
		n.headers[SetCookieHeader] = cookie
	}
	return n
}

func copyHeaders(headers map[string]string) map[string]string {
	if headers == nil {
		return nil
	}
	out := make(map[string]string, len(headers)+1)
	for k, v := range headers {
		out[k] = v
	}
	return out
}
