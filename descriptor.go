// Copyright (c) 2023 wetrycode
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package apiresponse

// errorDescriptor the JSON form of an error-like value
type errorDescriptor struct {
	StatusCode int               `json:"statusCode,omitempty"`
	Headers    map[string]string `json:"headers,omitempty"`
	Body       interface{}       `json:"body,omitempty"`
	Message    string            `json:"message"`
}

// DecodeResponse decode a JSON response descriptor. Cookie order follows the document.
func DecodeResponse(data []byte) (*Response, error) {
	response := &Response{}
	if err := response.UnmarshalJSON(data); err != nil {
		return nil, &DescriptorError{Err: err}
	}
	return response, nil
}

// DecodeError decode a JSON error descriptor {statusCode?, headers?, body?, message}
func DecodeError(data []byte) (*HTTPError, error) {
	descriptor := &errorDescriptor{}
	if err := json.Unmarshal(data, descriptor); err != nil {
		return nil, &DescriptorError{Err: err}
	}
	return NewHTTPError(
		descriptor.StatusCode,
		descriptor.Message,
		HTTPErrorWithHeaders(descriptor.Headers),
		HTTPErrorWithBody(descriptor.Body),
	), nil
}
