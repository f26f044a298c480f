// Copyright (c) 2023 wetrycode
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package apiresponse

import jsoniter "github.com/json-iterator/go"

// json the canonical text encoding of bodies and envelopes
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// encodeText serialize v to its canonical JSON text
func encodeText(v interface{}) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
