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
	"reflect"

	"github.com/sirupsen/logrus"
)

// Finalizer turns response descriptors and errors into gateway envelopes.
// It holds no per call state and is safe for concurrent use.
type Finalizer struct {
	mode   Mode
	logger logrus.FieldLogger
}

// NewFinalizer create a gateway mode finalizer logging to the package logger
func NewFinalizer(opts ...Option) *Finalizer {
	f := &Finalizer{
		mode:   ModeGateway,
		logger: GetLogger("finalizer"),
	}
	for _, o := range opts {
		o(f)
	}
	return f
}

// Mode the output mode of the finalizer
func (f *Finalizer) Mode() Mode {
	return f.mode
}

// Send finalize a response descriptor. Status codes below 400 produce an
// envelope with a text encoded body, anything else an *EnvelopeError.
func (f *Finalizer) Send(response *Response) (*Envelope, error) {
	return f.finalize(normalize(response, DefaultSuccessStatus))
}

// SendError log err and finalize it as a response descriptor. Status,
// headers and body are read from the StatusCoder, HeaderCarrier and
// BodyCarrier found in the chain of err, the status defaults to 500 and
// the body to {"message": err.Error()}.
func (f *Finalizer) SendError(err error) (*Envelope, error) {
	if err == nil {
		err = NewHTTPError(DefaultErrorStatus, "")
	}
	n := normalize(responseFromError(err), DefaultErrorStatus)
	f.logError(err, n)
	return f.finalize(n)
}

// Output render an envelope for the gateway: the whole envelope in
// gateway mode, only the encoded body in offline mode.
func (f *Finalizer) Output(envelope *Envelope) ([]byte, error) {
	if envelope == nil {
		return nil, fmt.Errorf("%w: nil envelope", ErrBodyEncoding)
	}
	if f.mode == ModeOffline {
		return []byte(envelope.Body), nil
	}
	return json.Marshal(envelope)
}

func responseFromError(err error) *Response {
	response := &Response{}
	var coder StatusCoder
	if errors.As(err, &coder) {
		response.StatusCode = coder.StatusCode()
	}
	var headers HeaderCarrier
	if errors.As(err, &headers) {
		response.Headers = headers.Headers()
	}
	var body BodyCarrier
	if errors.As(err, &body) {
		response.Body = body.Body()
	}
	if response.Body == nil {
		response.Body = map[string]interface{}{"message": err.Error()}
	}
	return response
}

func (f *Finalizer) logError(err error, n *normalized) {
	defer func() {
		// the failure must reach the caller even when the sink panics
		_ = recover()
	}()
	if f.logger == nil {
		return
	}
	f.logger.WithFields(logrus.Fields{
		"statusCode":   n.statusCode,
		"invocationId": GetUUID(),
	}).WithError(err).Error("api response error")
}

func (f *Finalizer) finalize(n *normalized) (*Envelope, error) {
	if n.statusCode < FailureThreshold {
		body, err := encodeText(n.body)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrBodyEncoding, err.Error())
		}
		return &Envelope{
			StatusCode:                   n.statusCode,
			StatusCodeForPatternMatching: n.pattern,
			Headers:                      n.headers,
			Body:                         body,
		}, nil
	}
	envelope := &FailureEnvelope{
		StatusCode:                   n.statusCode,
		StatusCodeForPatternMatching: n.pattern,
		Headers:                      n.headers,
		Body:                         sanitizeBody(n.body),
	}
	return nil, &EnvelopeError{Envelope: envelope, message: f.failureMessage(envelope)}
}

func (f *Finalizer) failureMessage(envelope *FailureEnvelope) string {
	if f.mode == ModeGateway {
		if text, err := encodeText(envelope); err == nil {
			return text
		}
	}
	return envelope.StatusCodeForPatternMatching + " " + failureText(envelope)
}

func failureText(envelope *FailureEnvelope) string {
	if body, ok := asMapping(envelope.Body); ok {
		if message, exists := body["message"]; exists && ShapeOf(message) == ShapeScalar {
			return scalarText(indirect(reflect.ValueOf(message)))
		}
	}
	if text := http.StatusText(envelope.StatusCode); text != "" {
		return text
	}
	return "error"
}

// sanitizeBody replace body.messageVariables with its sanitized JSON text.
// Bodies without a mapping under messageVariables are returned as they are.
func sanitizeBody(body interface{}) interface{} {
	mapping, ok := asMapping(body)
	if !ok {
		return body
	}
	raw, exists := mapping[MessageVariablesKey]
	if !exists {
		return body
	}
	vars, ok := asMapping(raw)
	if !ok {
		return body
	}
	text, err := encodeText(SanitizeMessageVariables(vars))
	if err != nil {
		return body
	}
	sanitized := make(map[string]interface{}, len(mapping))
	for key, value := range mapping {
		sanitized[key] = value
	}
	sanitized[MessageVariablesKey] = text
	return sanitized
}

// asMapping view value as a string keyed mapping. Other maps and structs
// are converted through the JSON codec, the result must not be mutated.
func asMapping(value interface{}) (map[string]interface{}, bool) {
	if mapping, ok := value.(map[string]interface{}); ok {
		return mapping, mapping != nil
	}
	v := reflect.ValueOf(value)
	if shapeOf(v) != ShapeObject {
		return nil, false
	}
	switch indirect(v).Kind() {
	case reflect.Map, reflect.Struct:
	default:
		return nil, false
	}
	data, err := json.Marshal(value)
	if err != nil {
		return nil, false
	}
	var mapping map[string]interface{}
	if err := json.Unmarshal(data, &mapping); err != nil || mapping == nil {
		return nil, false
	}
	return mapping, true
}
