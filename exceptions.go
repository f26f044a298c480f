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
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrEnvelopeFailure error = errors.New("envelope serialization failure")
	ErrBodyEncoding    error = errors.New("encode response body error")
	ErrInvalidCookie   error = errors.New("invalid cookie value")
	ErrInvalidExpires  error = fmt.Errorf("%w: expires must be a string or null", ErrInvalidCookie)
	ErrDescriptorRead  error = errors.New("read response descriptor error")
	ErrInvalidMode     error = errors.New("invalid output mode")
)

// DescriptorError a JSON descriptor could not be read. It matches
// ErrDescriptorRead and unwraps to the decoding error.
type DescriptorError struct {
	Err error
}

func (e *DescriptorError) Error() string {
	return ErrDescriptorRead.Error() + ": " + e.Err.Error()
}

func (e *DescriptorError) Is(target error) bool {
	return target == ErrDescriptorRead
}

func (e *DescriptorError) Unwrap() error {
	return e.Err
}

// EnvelopeError is returned by the finalizer whenever the effective status
// code is 400 or above. Its message is the serialized failure envelope.
type EnvelopeError struct {
	Envelope *FailureEnvelope
	message  string
}

func (e *EnvelopeError) Error() string {
	return e.message
}

// Unwrap makes errors.Is(err, ErrEnvelopeFailure) hold for every envelope error.
func (e *EnvelopeError) Unwrap() error {
	return ErrEnvelopeFailure
}

// StatusCode the status code carried by the failure envelope
func (e *EnvelopeError) StatusCode() int {
	return e.Envelope.StatusCode
}

// StatusCoder is implemented by errors that know their response status code.
type StatusCoder interface {
	StatusCode() int
}

// HeaderCarrier is implemented by errors that carry response headers.
type HeaderCarrier interface {
	Headers() map[string]string
}

// BodyCarrier is implemented by errors that carry their own response body.
type BodyCarrier interface {
	Body() interface{}
}

// HTTPError an error-like response descriptor consumed by SendError
type HTTPError struct {
	Code            int
	ResponseHeaders map[string]string
	ResponseBody    interface{}
	Message         string
	Cause           error
}

// HTTPErrorOption optional settings of HTTPError
type HTTPErrorOption func(e *HTTPError)

// HTTPErrorWithHeaders set the response headers of the error
func HTTPErrorWithHeaders(headers map[string]string) HTTPErrorOption {
	return func(e *HTTPError) {
		e.ResponseHeaders = headers
	}
}

// HTTPErrorWithBody set the response body of the error
func HTTPErrorWithBody(body interface{}) HTTPErrorOption {
	return func(e *HTTPError) {
		e.ResponseBody = body
	}
}

// HTTPErrorWithCause set the wrapped cause of the error
func HTTPErrorWithCause(cause error) HTTPErrorOption {
	return func(e *HTTPError) {
		e.Cause = cause
	}
}

// NewHTTPError create an HTTPError with status code and message
func NewHTTPError(code int, message string, opts ...HTTPErrorOption) *HTTPError {
	e := &HTTPError{
		Code:    code,
		Message: message,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	code := e.Code
	if code == 0 {
		code = DefaultErrorStatus
	}
	if text := http.StatusText(code); text != "" {
		return text
	}
	return fmt.Sprintf("status %d", code)
}

func (e *HTTPError) Unwrap() error {
	return e.Cause
}

func (e *HTTPError) StatusCode() int {
	return e.Code
}

func (e *HTTPError) Headers() map[string]string {
	return e.ResponseHeaders
}

func (e *HTTPError) Body() interface{} {
	return e.ResponseBody
}
